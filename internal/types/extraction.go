package types

// ExtractionResult is the typed record produced by sanitizing the extraction
// collaborator's output. It is always fully populated: malformed input yields
// conservative defaults (zero years, false booleans, empty skills, zero
// confidence) rather than an error or a partial record.
type ExtractionResult struct {
	YearsExperience          float64  `json:"years_experience"`
	HasRequiredCertification bool     `json:"has_required_certification"`
	EducationLevel           string   `json:"education_level"`
	Skills                   []string `json:"skills"`
	AvailabilityConfirmed    bool     `json:"availability_confirmed"`
	// Confidence is on the 0-100 scale used throughout the system. Values
	// outside the range are clamped at the validation boundary.
	Confidence int `json:"confidence"`
}

// ExtractionOutcome is the tagged result of the validation boundary: either
// the payload parsed cleanly (Defaulted is false) or conservative defaults
// were substituted, with Reason recording why. Either way Result is complete.
type ExtractionOutcome struct {
	Result    ExtractionResult `json:"result"`
	Defaulted bool             `json:"defaulted"`
	Reason    string           `json:"reason,omitempty"`
	// RawResponse preserves the collaborator output for the audit trail.
	RawResponse string `json:"raw_response,omitempty"`
}
