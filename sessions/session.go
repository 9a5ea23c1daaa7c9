// Package sessions holds the client's locally persisted proof of
// authentication: identity plus bearer credential.
package sessions

// Session is the authenticated identity. All three fields are written
// together on login; a session missing its user id or credential is
// treated as absent everywhere.
type Session struct {
	UserID     string `json:"userId"`
	Email      string `json:"userEmail"`
	Credential string `json:"token"`
}

// Valid reports whether the session is whole enough to pass a guard.
// Email is display metadata and does not affect validity.
func (s Session) Valid() bool {
	return s.UserID != "" && s.Credential != ""
}
