package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and checks password hashes. It knows nothing about
// accounts or storage.
type PasswordHasher interface {
	// Hash derives a salted hash of password and returns it in its encoded
	// form "argon2id$<salt>$<key>" (base64, no padding).
	Hash(password string) (string, error)

	// Verify reports whether password matches an encoded hash produced by
	// Hash. It returns ErrMalformedHash when encoded cannot be decoded.
	Verify(password, encoded string) (bool, error)
}
