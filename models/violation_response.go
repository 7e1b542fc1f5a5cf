package models

// ViolationResponse is the transport representation of a failed validation.
// Invalid values are left out: they may carry secrets such as passwords.
type ViolationResponse struct {
	// FailureID correlates the response with server side diagnostics.
	FailureID string `json:"failure_id"`

	// Kind is "instance", "parameters" or "return value".
	Kind string `json:"kind"`

	// Target is the validated type or "<type>.<method>".
	Target string `json:"target"`

	Violations []ViolationDetail `json:"violations"`
}

// ViolationDetail describes one violation of a ViolationResponse.
type ViolationDetail struct {
	Path       string `json:"path"`
	Message    string `json:"message"`
	Constraint string `json:"constraint"`
}
