package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// User models a login identity, either local (email + password) or linked
// to Google. A Google-provider user never authenticates with a password.
type User struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	Provider     string     `json:"provider"`
	GoogleID     string     `json:"google_id,omitempty"`
	Photo        string     `json:"photo,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
}

// Sanitized returns a copy of the user with the password hash blanked.
// Everything leaving the auth layer goes through this.
func (u *User) Sanitized() *User {
	clone := *u
	clone.PasswordHash = ""
	return &clone
}
