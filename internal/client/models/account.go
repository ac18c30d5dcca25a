// Package models defines the console's data model: the built-in mock
// accounts, the session state, and the resource records fetched from the
// demo API.
package models

// Role is the coarse permission level of a built-in account.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Account is a built-in mock user. The list is fixed at compile time and
// used only for credential comparison and display.
type Account struct {
	ID       int
	Username string
	Password string
	Email    string
	Name     string
	Role     Role
	Avatar   string
}

// Profile is the public part of an Account, safe to persist and display.
type Profile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar"`
}

// Profile strips the password.
func (a Account) Profile() Profile {
	return Profile{
		ID:       a.ID,
		Username: a.Username,
		Email:    a.Email,
		Name:     a.Name,
		Role:     a.Role,
		Avatar:   a.Avatar,
	}
}

// BuiltinAccounts returns a fresh copy of the two demo accounts.
func BuiltinAccounts() []Account {
	return []Account{
		{
			ID:       1,
			Username: "admin",
			Password: "admin123",
			Email:    "admin@bod.com",
			Name:     "Administrator",
			Role:     RoleAdmin,
			Avatar:   "https://primefaces.org/cdn/primereact/images/avatar/amyelsner.png",
		},
		{
			ID:       2,
			Username: "user",
			Password: "user123",
			Email:    "user@bod.com",
			Name:     "John Doe",
			Role:     RoleUser,
			Avatar:   "https://primefaces.org/cdn/primereact/images/avatar/asiyajavayant.png",
		},
	}
}
