package hospital

import "github.com/gaureshpai/cprm-prototype-sub001/pkg/models"

// CodeProfile carries the defaults an emergency code falls back to when the
// broadcaster gives no explicit severity or message.
type CodeProfile struct {
	Severity models.Severity
	Message  string
}

var codeCatalog = map[models.AlertCode]CodeProfile{
	models.CodeBlue:   {Severity: models.SeverityCritical, Message: "Medical Emergency - Cardiac/Respiratory Arrest"},
	models.CodeRed:    {Severity: models.SeverityCritical, Message: "Fire Emergency"},
	models.CodePink:   {Severity: models.SeverityHigh, Message: "Infant/Child Abduction"},
	models.CodeYellow: {Severity: models.SeverityMedium, Message: "External Disaster - Mass Casualty Intake"},
	models.CodeGreen:  {Severity: models.SeverityLow, Message: "Evacuation Required"},
}

var knownSeverities = map[models.Severity]bool{
	models.SeverityCritical: true,
	models.SeverityHigh:     true,
	models.SeverityMedium:   true,
	models.SeverityLow:      true,
}

// LookupCodeProfile returns the catalog entry for a code, false if the code
// is not one of the five recognized hospital codes.
func LookupCodeProfile(code models.AlertCode) (CodeProfile, bool) {
	profile, ok := codeCatalog[code]
	return profile, ok
}
