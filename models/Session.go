package models

// SessionRole distinguishes listener sessions from DJ sessions.
type SessionRole string

const (
	RoleListener SessionRole = "listener"
	RoleDJ       SessionRole = "dj"
)

// Session is the reduced projection of an identity that is currently signed
// in. At most one Session aggregate is active at a time; it is cleared on
// sign-out and never deletes the underlying Account.
type Session struct {
	Email    string      `json:"email"`
	Name     string      `json:"name"`
	Verified bool        `json:"isVerified"`
	Role     SessionRole `json:"role"`
	DJID     string      `json:"djId,omitempty"`
}

// ListenerSession projects an account into an active session.
func ListenerSession(account Account) Session {
	return Session{
		Email:    account.Email,
		Name:     account.Name,
		Verified: account.Verified,
		Role:     RoleListener,
	}
}

// DJSession projects a DJ identity into an active session. DJ logins are
// always considered verified.
func DJSession(dj DJ) Session {
	email := NormalizeEmail(dj.Email)
	if email == "" {
		email = NormalizeEmail(dj.Name) + "@remixkingz.com"
	}
	return Session{
		Email:    email,
		Name:     "DJ " + dj.Name,
		Verified: true,
		Role:     RoleDJ,
		DJID:     dj.ID,
	}
}

// Active reports whether the session represents a signed-in, verified
// identity. Only an active session may reach tabs beyond the auth screen.
func (s Session) Active() bool {
	return s.Email != "" && s.Verified
}
