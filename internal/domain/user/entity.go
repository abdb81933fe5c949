package user

import "time"

type Role string

const (
	RoleAdmin   Role = "admin"   // Business owner - full access, no till duty
	RoleManager Role = "manager" // Approves overrides, runs a till when needed
	RoleCashier Role = "cashier" // Runs a till
)

type User struct {
	ID           string
	BusinessID   string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         Role
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user is the business admin
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager checks if the user is a manager or admin
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

func (u *User) FullName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	return u.FirstName + " " + u.LastName
}
