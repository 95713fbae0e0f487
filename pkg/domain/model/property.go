package model

import (
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mcp-research/mcp-security-scans/pkg/domain/types"
)

// Custom property names managed on the target organization. The catalog
// below is the single source of truth: the schema ensurer creates exactly
// these, and the property writer refuses keys outside this set.
const (
	PropStatusUpdated types.PropertyName = "GHAS_Status_Updated"

	PropCodeAlerts         types.PropertyName = "CodeAlerts"
	PropCodeAlertsCritical types.PropertyName = "CodeAlerts_Critical"
	PropCodeAlertsHigh     types.PropertyName = "CodeAlerts_High"
	PropCodeAlertsMedium   types.PropertyName = "CodeAlerts_Medium"
	PropCodeAlertsLow      types.PropertyName = "CodeAlerts_Low"

	PropSecretAlerts       types.PropertyName = "SecretAlerts"
	PropSecretAlertsTotal  types.PropertyName = "SecretAlerts_Total"
	PropSecretAlertsByType types.PropertyName = "SecretAlerts_By_Type"

	PropDependencyAlerts         types.PropertyName = "DependencyAlerts"
	PropDependencyAlertsCritical types.PropertyName = "DependencyAlerts_Critical"
	PropDependencyAlertsHigh     types.PropertyName = "DependencyAlerts_High"
	PropDependencyAlertsModerate types.PropertyName = "DependencyAlerts_Moderate"
	PropDependencyAlertsLow      types.PropertyName = "DependencyAlerts_Low"
)

// StatusTestingMarker in GHAS_Status_Updated forces the next analyze run to
// process the repository regardless of freshness.
const StatusTestingMarker = "Testing"

// PropertyDefinition describes one org-level custom property.
type PropertyDefinition struct {
	Name        types.PropertyName
	ValueType   types.PropertyValueType
	Description string
}

func (x *PropertyDefinition) Validate() error {
	if x.Name == "" {
		return goerr.Wrap(types.ErrValidation, "property name is empty")
	}
	if !x.ValueType.IsValid() {
		return goerr.Wrap(types.ErrValidation, "unknown property value type",
			goerr.V("name", x.Name), goerr.V("value_type", x.ValueType))
	}
	return nil
}

// PropertyCatalog returns the full managed schema in creation order.
func PropertyCatalog() []*PropertyDefinition {
	defs := []*PropertyDefinition{
		{Name: PropStatusUpdated, Description: "UTC timestamp of the last completed alert collection"},
		{Name: PropCodeAlerts, Description: "Open code scanning alerts (total)"},
		{Name: PropCodeAlertsCritical, Description: "Open code scanning alerts, critical severity"},
		{Name: PropCodeAlertsHigh, Description: "Open code scanning alerts, high severity"},
		{Name: PropCodeAlertsMedium, Description: "Open code scanning alerts, medium severity"},
		{Name: PropCodeAlertsLow, Description: "Open code scanning alerts, low severity"},
		{Name: PropSecretAlerts, Description: "Open secret scanning alerts (total)"},
		{Name: PropSecretAlertsTotal, Description: "Open secret scanning alerts (total, legacy name)"},
		{Name: PropSecretAlertsByType, Description: "Open secret scanning alerts by secret type, JSON object"},
		{Name: PropDependencyAlerts, Description: "Open Dependabot alerts (total)"},
		{Name: PropDependencyAlertsCritical, Description: "Open Dependabot alerts, critical severity"},
		{Name: PropDependencyAlertsHigh, Description: "Open Dependabot alerts, high severity"},
		{Name: PropDependencyAlertsModerate, Description: "Open Dependabot alerts, moderate severity"},
		{Name: PropDependencyAlertsLow, Description: "Open Dependabot alerts, low severity"},
	}
	for _, def := range defs {
		def.ValueType = types.PropertyTypeString
	}
	return defs
}

var catalogNames = func() map[types.PropertyName]struct{} {
	names := map[types.PropertyName]struct{}{}
	for _, def := range PropertyCatalog() {
		names[def.Name] = struct{}{}
	}
	return names
}()

func IsCatalogProperty(name types.PropertyName) bool {
	_, ok := catalogNames[name]
	return ok
}

// PropertyValues is a set of custom property values keyed by name. All
// values are strings on the wire; booleans are lowercased.
type PropertyValues map[types.PropertyName]string

// ValidateKeys rejects any key outside the catalog. Called before a write
// goes anywhere near the network.
func (x PropertyValues) ValidateKeys() error {
	for name := range x {
		if !IsCatalogProperty(name) {
			return goerr.Wrap(types.ErrValidation, "property is not in the managed schema", goerr.V("name", name))
		}
	}
	return nil
}

// Get returns the value for name and whether it was present.
func (x PropertyValues) Get(name types.PropertyName) (string, bool) {
	v, ok := x[name]
	return v, ok
}

// AlertProperties renders the collected counts as the write set, without
// the freshness timestamp. The timestamp is written separately, last.
func AlertProperties(counts *AlertCounts) (PropertyValues, error) {
	secretTypes, err := counts.Secrets.TypesJSON()
	if err != nil {
		return nil, err
	}

	return PropertyValues{
		PropCodeAlerts:         strconv.Itoa(counts.Code.Total),
		PropCodeAlertsCritical: strconv.Itoa(counts.Code.Critical),
		PropCodeAlertsHigh:     strconv.Itoa(counts.Code.High),
		PropCodeAlertsMedium:   strconv.Itoa(counts.Code.Medium),
		PropCodeAlertsLow:      strconv.Itoa(counts.Code.Low),

		PropSecretAlerts:       strconv.Itoa(counts.Secrets.Total),
		PropSecretAlertsTotal:  strconv.Itoa(counts.Secrets.Total),
		PropSecretAlertsByType: secretTypes,

		PropDependencyAlerts:         strconv.Itoa(counts.Dependencies.Total),
		PropDependencyAlertsCritical: strconv.Itoa(counts.Dependencies.Critical),
		PropDependencyAlertsHigh:     strconv.Itoa(counts.Dependencies.High),
		PropDependencyAlertsModerate: strconv.Itoa(counts.Dependencies.Moderate),
		PropDependencyAlertsLow:      strconv.Itoa(counts.Dependencies.Low),
	}, nil
}

// StatusProperty renders the freshness timestamp write set.
func StatusProperty(at time.Time) PropertyValues {
	return PropertyValues{
		PropStatusUpdated: at.UTC().Format(time.RFC3339),
	}
}
