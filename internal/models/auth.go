package models

// IdentityClaims is the decoded identity carried by a verified bearer token.
// It is derived per-request and never persisted.
type IdentityClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}
