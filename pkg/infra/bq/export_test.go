package bq

// Export unexported functions for testing
var (
	SanitizeProtoJSON  = sanitizeProtoJSON
	ProtoFieldJSONName = protoFieldJSONName
)
