// Package models defines the data model for the CredVault client.
package models

import "time"

// Role distinguishes the two account kinds supported by VitaHealth.
// A role is fixed at registration and never changes afterward.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RolePatient || r == RoleDoctor
}

// Account is a registered identity, stored durably under the "users" key.
// Salt and Verifier are the only credential material that is ever persisted;
// the plaintext password never leaves the registration/login call.
type Account struct {
	// Id is an opaque unique identifier, assigned at creation, immutable.
	Id string `json:"id"`

	// Name is the display name, non-empty per the calling UI's validation.
	Name string `json:"name"`

	// Email is the unique lookup key across all accounts. Comparison is
	// exact (case-sensitive).
	Email string `json:"email"`

	// Role is patient or doctor, fixed at registration.
	Role Role `json:"role"`

	// CreatedAt is the registration timestamp in UTC, immutable.
	CreatedAt time.Time `json:"createdAt"`

	// Salt and Verifier hold the hashed credential (see internal/cryptox).
	Salt     []byte `json:"salt"`
	Verifier []byte `json:"verifier"`

	// Optional profile fields.
	Avatar         string `json:"avatar,omitempty"`
	Phone          string `json:"phone,omitempty"`
	DateOfBirth    string `json:"dateOfBirth,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	LicenseNumber  string `json:"licenseNumber,omitempty"`
}

// PublicAccount is the secret-stripped view of an Account. It is the only
// shape returned to callers and the only shape persisted under the
// "session" key.
type PublicAccount struct {
	Id             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	Avatar         string    `json:"avatar,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	DateOfBirth    string    `json:"dateOfBirth,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	LicenseNumber  string    `json:"licenseNumber,omitempty"`
}

// Public returns the account with credential material stripped.
func (a *Account) Public() *PublicAccount {
	return &PublicAccount{
		Id:             a.Id,
		Name:           a.Name,
		Email:          a.Email,
		Role:           a.Role,
		CreatedAt:      a.CreatedAt,
		Avatar:         a.Avatar,
		Phone:          a.Phone,
		DateOfBirth:    a.DateOfBirth,
		Specialization: a.Specialization,
		LicenseNumber:  a.LicenseNumber,
	}
}
