package ghclient

// Export unexported functions for testing
var (
	ClassifyAPIErrorForTest    = classifyAPIError
	IsPermanentForTest         = isPermanent
	CodeAlertSeverityForTest   = codeAlertSeverity
	SecretTypeNameForTest      = secretTypeName
	PropertyValueStringForTest = propertyValueString
)
