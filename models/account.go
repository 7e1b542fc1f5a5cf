// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// SignupRequest is the payload of an account registration.
type SignupRequest struct {
	// Login is the unique account name.
	Login string `json:"login" validate:"required,alphanum,min=3,max=32"`

	// Email is the contact address of the account owner.
	Email string `json:"email" validate:"required,email"`

	// Password is the plain password chosen at registration. It is never
	// stored nor returned.
	Password Secret `json:"password" validate:"required,min=8,max=72"`

	// Profile is validated recursively.
	Profile *Profile `json:"profile" validate:"required" cascade:""`
}

// Profile holds the public details of an account owner.
type Profile struct {
	DisplayName string `json:"display_name" validate:"required,max=64"`
	Age         int    `json:"age" validate:"gte=0,lte=150"`
	Country     string `json:"country,omitempty" validate:"omitempty,iso3166_1_alpha2"`
}

// Account is a registered account.
type Account struct {
	ID        uuid.UUID `json:"id" validate:"required"`
	Login     string    `json:"login" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Realm     string    `json:"realm" validate:"required"`
	Profile   Profile   `json:"profile" cascade:""`
	CreatedAt time.Time `json:"created_at" validate:"required"`
}

// Credentials identify an account owner.
type Credentials struct {
	Login    string `json:"login" validate:"required"`
	Password Secret `json:"password" validate:"required"`
}

// AccountRecord is the persisted form of an account.
type AccountRecord struct {
	Account      Account
	PasswordHash string
}
