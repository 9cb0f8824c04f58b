package models

import (
	"html"
	"strings"
	"time"

	"github.com/google/uuid"
)

// User matches the users table.
// Columns: id, email (NOT NULL UNIQUE), display_name, password_hash, created_at, last_login_at
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        string     `json:"email"`
	DisplayName  string     `json:"displayName"`
	Password     string     `json:"password,omitempty"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

func (u *User) Prepare() {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.Email = html.EscapeString(strings.TrimSpace(u.Email))
	if u.DisplayName == "" {
		// Fall back to the email prefix, e.g. "mason" for mason@site.com
		if at := strings.Index(u.Email, "@"); at > 0 {
			u.DisplayName = u.Email[:at]
		}
	}
}
