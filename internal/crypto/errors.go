package crypto

import "errors"

var (
	ErrMalformedHash = errors.New("malformed password hash")
	ErrReadingSalt   = errors.New("error reading random salt")
)
