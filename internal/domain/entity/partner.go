// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Partner is the sole entity of the system, an account record issued to an
// integration partner. The Token field holds the opaque identifier generated
// at creation time; it is unique across the whole partner set regardless of
// status, while Email uniqueness only applies to active, non-deleted rows.
type Partner struct {
	ID        int64     `json:"id"`        // Store-assigned identifier, immutable after creation.
	Name      string    `json:"name"`      // First name of the partner contact.
	Lastname  string    `json:"lastname"`  // Last name of the partner contact.
	Email     string    `json:"email"`     // Login identifier, unique among active non-deleted partners.
	Password  string    `json:"-"`         // Bcrypt hash, never the plaintext. Excluded from JSON.
	Token     string    `json:"token"`     // Opaque lookup token, unique store-wide.
	IsActive  bool      `json:"isActive"`  // Activation flag; inactive partners cannot log in.
	Deleted   bool      `json:"deleted"`   // Soft-delete flag; the row is retained.
	CreatedAt time.Time `json:"createdAt"` // Timestamp of when this partner was created.
	UpdatedAt time.Time `json:"updatedAt"` // Timestamp of the last modification.
}
