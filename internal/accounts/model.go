package accounts

import "time"

// AuthProviderLocal marks accounts registered with email and password;
// AuthProviderGoogle marks accounts created through the Google OAuth flow.
const (
	AuthProviderLocal  = "local"
	AuthProviderGoogle = "google"
)

// User is a registered account. PasswordHash is empty for OAuth accounts.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	PasswordHash string    `json:"-"`
	DateOfBirth  string    `json:"dateOfBirth,omitempty"`
	AuthProvider string    `json:"authProvider"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// FullName joins the name parts for display and token claims.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	default:
		return u.FirstName + " " + u.LastName
	}
}
