package domain

import "time"

// User represents a registered account.
//
// Key is the internal storage identifier; ID is the public numeric
// identifier assigned from the user_id counter at creation and is the only
// identifier callers ever see.
type User struct {
	Key          string    `json:"-"` // storage key, never exposed
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name,omitempty"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialize
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Counter is a named monotonic sequence. A counter starts at 1 on first use
// and only ever moves forward.
type Counter struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// UserIDCounter is the counter that assigns public user identifiers.
const UserIDCounter = "user_id"
