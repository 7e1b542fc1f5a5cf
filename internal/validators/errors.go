package validators

import "errors"

var (
	ErrUnsupportedType         = errors.New("unsupported type for validation")
	ErrNilInstance             = errors.New("nil instance cannot be validated")
	ErrUnsupportedLocale       = errors.New("unsupported message locale")
	ErrExecutablesUnsupported  = errors.New("executable validation is not supported")
	ErrParameterCountMismatch  = errors.New("method spec declares more parameters than were passed")
	ErrEngineFailure           = errors.New("constraint engine failure")
	ErrTranslationRegistration = errors.New("error registering violation messages")
)
