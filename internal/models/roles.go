package models

// Roles assignable to a user. Signup always produces RoleUser; admins are
// provisioned out of band.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
