package models

import "time"

// User is a registered viewer or administrator. PasswordHash is excluded
// from every JSON response.
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"`
	Role          string    `json:"role"`
	Approved      bool      `json:"approved"`
	Avatar        string    `json:"avatar"`
	Favorites     []string  `json:"favorites"`
	Subscriptions []string  `json:"subscriptions"`
	CreatedAt     time.Time `json:"createdAt"`
}
