package models

// ValidationState is the derived submit-eligibility of a lead form. It is
// recomputed wholesale on every input change and never persisted.
type ValidationState struct {
	IsValid       bool              `json:"isValid"`
	MissingFields []string          `json:"missingFields"`
	Errors        map[string]string `json:"errors"`
	CanSubmit     bool              `json:"canSubmit"`
}
