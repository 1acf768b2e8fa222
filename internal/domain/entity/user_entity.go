package entity

import "time"

// User is the aggregate root for the credential domain.
// Password holds a bcrypt hash and must never be serialized outward;
// handlers expose only PublicUser.
type User struct {
	ID        string
	Email     string
	Password  string
	CreatedAt time.Time
}

// PublicUser is the externally visible projection of a User.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips credential fields.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}
