package domain

import "time"

// Credential is the stored admin identity: a username and a bcrypt digest of
// the password. The plaintext password is never stored or logged.
type Credential struct {
	Username       string `json:"username"`
	PasswordDigest string `json:"passwordDigest"`
}

// SessionUser is the user payload carried by an authenticated session.
type SessionUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	LoginTime time.Time `json:"loginTime"`
}

// AuthResult is the outcome of an auth operation. Failures are values, not
// errors: a wrong password is an expected answer, not a fault.
type AuthResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
