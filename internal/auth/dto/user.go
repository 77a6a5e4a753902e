package dto

import (
	"time"
)

type UserOutput struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// SessionBundle is the success body for signup, login and refresh. The refresh
// token is duplicated in the body for non-cookie clients; the cookie is
// authoritative for browsers.
type SessionBundle struct {
	User         *UserOutput `json:"user,omitempty"`
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	CsrfToken    string      `json:"csrfToken"`
	ExpiresIn    int         `json:"expiresIn"`
}
