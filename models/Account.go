package models

import "strings"

// Account represents a registered listener: credentials, profile flags and
// the mailing-list opt-in recorded at signup.
type Account struct {
	Email         string `json:"email"`
	Passphrase    string `json:"pass"`
	Name          string `json:"name"`
	Verified      bool   `json:"isVerified"`
	OnMailingList bool   `json:"onMailingList"`
	JoinedAt      int64  `json:"joinedAt"`
}

// NormalizeEmail lowercases and trims an email so it can act as the unique
// account key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// DisplayNameOrDefault falls back to the email local part when no display
// name was provided at signup.
func DisplayNameOrDefault(name, email string) string {
	name = strings.TrimSpace(name)
	if name != "" {
		return name
	}
	email = NormalizeEmail(email)
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return email
}
