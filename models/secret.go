package models

// Secret is a string that never shows up in formatted output: fmt verbs,
// failure summaries and logs print a placeholder instead. JSON encoding is
// unchanged, so request payloads still carry the value.
type Secret string

const redactedSecret = "[REDACTED]"

// String returns the placeholder, or "" for an empty secret.
func (s Secret) String() string {
	if s == "" {
		return ""
	}
	return redactedSecret
}

// GoString keeps %#v redacted as well.
func (s Secret) GoString() string {
	return `models.Secret("` + s.String() + `")`
}

// Reveal returns the secret value.
func (s Secret) Reveal() string {
	return string(s)
}
