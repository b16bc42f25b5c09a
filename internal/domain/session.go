package domain

// Identity is the session's snapshot of the signed-in user. ID is empty for
// the hardcoded super admin, which is not a roster entry.
type Identity struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}

// Session is the portal's single authentication state. It is persisted
// verbatim under the "auth" snapshot key.
type Session struct {
	IsAuthenticated     bool      `json:"isAuthenticated"`
	User                *Identity `json:"user"`
	IsTemporaryPassword bool      `json:"isTemporaryPassword"`
}
