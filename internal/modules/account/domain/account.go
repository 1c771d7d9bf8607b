package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// Account is a registered identity. Password is stored verbatim; WorkSync
// does not pretend to be a real authentication system.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	Password string `json:"password,omitempty"`
}

// Public returns the account with its secret stripped, the shape used for
// the session record and for every value handed back to callers.
func (a Account) Public() Account {
	a.Password = ""
	return a
}

// Matches reports whether email and password both match exactly.
func (a Account) Matches(email, password string) bool {
	return a.Email == email && a.Password == password
}

// AvatarURL derives the deterministic placeholder avatar for an email.
func AvatarURL(email string) string {
	return "https://picsum.photos/seed/" + url.PathEscape(email) + "/200"
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(a.Email) == "" {
		return fmt.Errorf("email is required")
	}
	return nil
}

// FindByEmail returns the index of the account registered under email, or -1.
func FindByEmail(accounts []Account, email string) int {
	for i, a := range accounts {
		if a.Email == email {
			return i
		}
	}
	return -1
}
