package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrLoginTaken      = errors.New("login already taken")
	ErrAccountNotFound = errors.New("account not found")
	ErrUnderage        = errors.New("account owner is under the minimal age")

	ErrHashingPassword = errors.New("error hashing password")
	ErrGeneratingID    = errors.New("error generating account ID")

	ErrInvalidToken = errors.New("invalid session token")
	ErrSigningToken = errors.New("error signing session token")
)
