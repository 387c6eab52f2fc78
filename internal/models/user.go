package models

import "time"

// User is the full user record. PasswordHash never leaves the process: it is
// excluded from JSON and absent from PublicUser.
type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	PasswordHash   string    `json:"-"`
	FirstName      *string   `json:"first_name,omitempty"`
	LastName       *string   `json:"last_name,omitempty"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	PreferredColor *string   `json:"preferred_color,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// PublicUser is the projection returned by the API and attached to messages
// as the author snapshot.
type PublicUser struct {
	ID             int64   `json:"id"`
	Email          string  `json:"email,omitempty"`
	Username       string  `json:"username"`
	FirstName      *string `json:"first_name,omitempty"`
	LastName       *string `json:"last_name,omitempty"`
	AvatarURL      *string `json:"avatar_url,omitempty"`
	PreferredColor *string `json:"preferred_color,omitempty"`
}

// Public returns the user's public projection.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:             u.ID,
		Email:          u.Email,
		Username:       u.Username,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		AvatarURL:      u.AvatarURL,
		PreferredColor: u.PreferredColor,
	}
}
