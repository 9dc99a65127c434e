package users

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// RoleType defines user roles known to the backend
type RoleType string

const (
	RoleCustomer RoleType = "customer"
	RoleCobbler  RoleType = "cobbler"
	RoleAdmin    RoleType = "admin"
)

// Profile is the user record cached alongside the token. It is display data
// only; the backend remains authoritative for everything in it.
type Profile struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Role    string `json:"role,omitempty"`
}

// DisplayName returns the name to show in UI output, falling back to the
// email local part when the name is unset.
func (p *Profile) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.Name != "" {
		return p.Name
	}
	if at := strings.Index(p.Email, "@"); at > 0 {
		return p.Email[:at]
	}
	return p.Email
}

func (p *Profile) IsAdmin() bool {
	return p != nil && RoleType(p.Role) == RoleAdmin
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
