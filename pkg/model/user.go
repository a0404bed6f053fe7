package model

import "time"

// Role represents the role of a user in the P2H system.
type Role string

const (
	// RoleSuperadmin has full administrative access.
	RoleSuperadmin Role = "superadmin"
	// RoleAdmin manages master data, vehicles, and users.
	RoleAdmin Role = "admin"
	// RoleUser is a driver/operator submitting daily inspections.
	RoleUser Role = "user"
	// RoleViewer may only watch the public monitoring screen.
	RoleViewer Role = "viewer"
)

// IsAdmin reports whether the role carries administrative access.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// Known reports whether the role is one of the defined values.
// Roles outside the enum are preserved as-is; authorization treats
// them permissively (see the guard package).
func (r Role) Known() bool {
	switch r {
	case RoleSuperadmin, RoleAdmin, RoleUser, RoleViewer:
		return true
	}
	return false
}

// Kategori identifies which fleet a user or vehicle belongs to.
type Kategori string

const (
	KategoriIMM    Kategori = "IMM"
	KategoriTravel Kategori = "Travel"
)

// User is the profile returned by the auth/me endpoint.
type User struct {
	ID          string    `json:"id"`
	FullName    string    `json:"full_name"`
	Email       string    `json:"email,omitempty"`
	PhoneNumber string    `json:"phone_number"`
	BirthDate   string    `json:"birth_date,omitempty"`
	Role        Role      `json:"role"`
	Kategori    Kategori  `json:"kategori_pengguna,omitempty"`
	Company     string    `json:"company_name,omitempty"`
	Department  string    `json:"department_name,omitempty"`
	Position    string    `json:"position_name,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

// Label returns the display label for a role.
func (r Role) Label() string {
	switch r {
	case RoleSuperadmin:
		return "Super Administrator"
	case RoleAdmin:
		return "Administrator"
	default:
		return "User"
	}
}

// RoleLabel returns the display label for the user's role.
func (u *User) RoleLabel() string {
	return u.Role.Label()
}
