package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a user in the system
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the caller recovered from a verified token. It is never persisted.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Identity projects the user onto the fields carried inside a token
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Username: u.Username, Role: u.Role}
}

// CredentialsRequest is the body for register, register-admin and login
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisteredUser is what registration returns; the hash and role stay server-side
type RegisteredUser struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}
