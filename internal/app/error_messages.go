// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// transport handlers.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies or status details to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the request is structurally
	// incomplete for the service layer.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgValidationFailed accompanies responses listing constraint violations.
	MsgValidationFailed = "request failed validation"

	// MsgValidationUnavailable is returned when method call validation is not
	// supported by the running server and calls cannot be checked.
	MsgValidationUnavailable = "request validation is unavailable"

	// MsgInvalidLoginPassword is returned when the supplied login/password
	// combination does not match any account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInvalidToken is returned when the session token is missing,
	// malformed, expired or signed by someone else.
	MsgInvalidToken = "invalid session token"

	// MsgLoginTaken is returned when a registration uses an existing login.
	MsgLoginTaken = "login already taken"

	// MsgAccountNotFound is returned when no account has the requested login.
	MsgAccountNotFound = "account not found"

	// MsgUnderage is returned when the account owner is younger than the
	// configured minimal age.
	MsgUnderage = "account owner is under the minimal age"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"
)
