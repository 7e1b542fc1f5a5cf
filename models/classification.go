package models

// Classification is the validation eligibility of a type, computed once from
// its declared metadata and never changed afterwards.
type Classification struct {
	// Static is true when instances of the type must be validated as a whole
	// on provisioning.
	Static bool

	// Dynamic is true when at least one method of the type has a validated
	// contract and calls to it must be intercepted.
	Dynamic bool
}
