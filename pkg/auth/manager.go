// Package auth implements the admin session and credential store: one
// administrator identity with a bcrypt password digest, sessions carried as
// signed tokens in durable storage, rehydrated at startup and lazily
// expired.
package auth

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lilhale/sitestore/pkg/domain"
	"github.com/lilhale/sitestore/pkg/kv"
)

// Storage keys for the credential record and the cookie-like session
// entries.
const (
	CredentialsKey = "adminCredentials"
	TokenKey       = "adminToken"
	UserKey        = "adminUser"
)

// Defaults for a freshly seeded profile.
const (
	DefaultUsername = "admin"
	DefaultPassword = "password"
	DefaultRole     = "admin"

	// DefaultSessionTTL is how long a login stays valid.
	DefaultSessionTTL = 7 * 24 * time.Hour
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgWrongPassword      = "Current password is incorrect"
)

// tokenEntry is the persisted shape of the adminToken key.
type tokenEntry struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// userEntry is the persisted shape of the adminUser key.
type userEntry struct {
	User      domain.SessionUser `json:"user"`
	ExpiresAt time.Time          `json:"expiresAt"`
}

// Manager owns the admin credential and the current session.
type Manager struct {
	mu sync.RWMutex

	kv        kv.Store
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time

	credential domain.Credential
	session    *domain.SessionUser
	token      string
	expiresAt  time.Time
}

// Compile-time check that Manager implements the session store contract
var _ domain.SessionStore = (*Manager)(nil)

type ManagerOption func(*Manager)

// WithClock overrides the time source, for expiry tests.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.now = now
	}
}

// WithSessionTTL overrides the session lifetime (default 7 days).
func WithSessionTTL(ttl time.Duration) ManagerOption {
	return func(m *Manager) {
		m.ttl = ttl
	}
}

// NewManager creates a session manager backed by the given key-value store.
// It seeds the default admin credential on first run and restores an
// unexpired session if one is stored.
func NewManager(kvStore kv.Store, secretKey []byte, options ...ManagerOption) (*Manager, error) {
	m := &Manager{
		kv:        kvStore,
		secretKey: secretKey,
		ttl:       DefaultSessionTTL,
		now:       time.Now,
	}

	for _, option := range options {
		option(m)
	}

	if err := m.loadOrSeedCredential(); err != nil {
		return nil, err
	}
	m.rehydrateSession()

	return m, nil
}

// Login verifies the username/password pair against the stored credential.
// On success it mints a session and stores the token and user entries with a
// fixed expiry. Any mismatch, including malformed input, yields a failed
// result and leaves existing state untouched.
func (m *Manager) Login(username, password string) domain.AuthResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	if username != m.credential.Username {
		return domain.AuthResult{Success: false, Message: msgInvalidCredentials}
	}
	if bcrypt.CompareHashAndPassword([]byte(m.credential.PasswordDigest), []byte(password)) != nil {
		return domain.AuthResult{Success: false, Message: msgInvalidCredentials}
	}

	now := m.now()
	user := &domain.SessionUser{
		ID:        uuid.NewString(),
		Username:  username,
		Role:      DefaultRole,
		LoginTime: now,
	}

	token, err := mintToken(user, m.secretKey, m.ttl, now)
	if err != nil {
		log.Printf("ERROR: Failed to mint session token: %v", err)
		return domain.AuthResult{Success: false, Message: msgInvalidCredentials}
	}

	expiresAt := now.Add(m.ttl)
	m.storeEntry(TokenKey, tokenEntry{Token: token, ExpiresAt: expiresAt})
	m.storeEntry(UserKey, userEntry{User: *user, ExpiresAt: expiresAt})

	m.session = user
	m.token = token
	m.expiresAt = expiresAt
	log.Printf("INFO: Admin '%s' logged in", username)
	return domain.AuthResult{Success: true}
}

// Logout clears the stored session entries and drops the session.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.kv.Delete(TokenKey); err != nil {
		log.Printf("WARN: Failed to clear token entry: %v", err)
	}
	if err := m.kv.Delete(UserKey); err != nil {
		log.Printf("WARN: Failed to clear user entry: %v", err)
	}
	m.session = nil
	m.token = ""
	m.expiresAt = time.Time{}
}

// ChangePassword verifies the current password and replaces the stored
// digest with a digest of the new one. Existing sessions stay valid.
func (m *Manager) ChangePassword(currentPassword, newPassword string) domain.AuthResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	if bcrypt.CompareHashAndPassword([]byte(m.credential.PasswordDigest), []byte(currentPassword)) != nil {
		return domain.AuthResult{Success: false, Message: msgWrongPassword}
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("ERROR: Failed to digest new password: %v", err)
		return domain.AuthResult{Success: false, Message: msgWrongPassword}
	}

	m.credential.PasswordDigest = string(digest)
	m.storeEntry(CredentialsKey, m.credential)
	log.Printf("INFO: Admin password changed")
	return domain.AuthResult{Success: true}
}

// CurrentUser returns the session user, or nil when unauthenticated or
// expired. Expiry is checked lazily here rather than by any timer.
func (m *Manager) CurrentUser() *domain.SessionUser {
	m.mu.RLock()
	session := m.session
	expiresAt := m.expiresAt
	m.mu.RUnlock()

	if session == nil {
		return nil
	}
	if !m.now().Before(expiresAt) {
		m.Logout()
		return nil
	}
	user := *session
	return &user
}

// SessionToken returns the current session's token, or "" when
// unauthenticated or expired.
func (m *Manager) SessionToken() string {
	if m.CurrentUser() == nil {
		return ""
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// ValidateToken checks a bearer token's signature and expiry and returns the
// session user it carries.
func (m *Manager) ValidateToken(token string) (*domain.SessionUser, error) {
	claims, err := parseToken(token, m.secretKey, m.now)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &domain.SessionUser{
		ID:        claims.Subject,
		Username:  claims.Username,
		Role:      claims.Role,
		LoginTime: claims.IssuedAt.Time,
	}, nil
}

// loadOrSeedCredential reads the stored credential, seeding the default
// admin identity on a fresh profile.
func (m *Manager) loadOrSeedCredential() error {
	data, err := m.kv.Get(CredentialsKey)
	if err == nil {
		var cred domain.Credential
		if jsonErr := json.Unmarshal(data, &cred); jsonErr == nil && cred.Username != "" {
			m.credential = cred
			return nil
		}
		log.Printf("WARN: Stored credential is unreadable, reseeding")
	} else if !errors.Is(err, kv.ErrKeyNotFound) {
		return err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	m.credential = domain.Credential{
		Username:       DefaultUsername,
		PasswordDigest: string(digest),
	}
	m.storeEntry(CredentialsKey, m.credential)
	log.Printf("INFO: Seeded default admin credential")
	return nil
}

// rehydrateSession restores an unexpired session from the stored entries.
// Anything unreadable, unverifiable, or expired just means starting
// unauthenticated.
func (m *Manager) rehydrateSession() {
	var token tokenEntry
	if !m.loadEntry(TokenKey, &token) {
		return
	}
	var user userEntry
	if !m.loadEntry(UserKey, &user) {
		return
	}

	now := m.now()
	if !now.Before(token.ExpiresAt) || !now.Before(user.ExpiresAt) {
		log.Printf("INFO: Stored session expired, discarding")
		return
	}
	if _, err := parseToken(token.Token, m.secretKey, m.now); err != nil {
		log.Printf("WARN: Stored session token failed verification, discarding: %v", err)
		return
	}

	session := user.User
	m.session = &session
	m.token = token.Token
	m.expiresAt = token.ExpiresAt
	log.Printf("INFO: Restored session for '%s'", session.Username)
}

// storeEntry JSON-encodes v under key. Write failures are warnings: the
// in-memory state is already correct.
func (m *Manager) storeEntry(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("WARN: Failed to encode entry '%s': %v", key, err)
		return
	}
	if err := m.kv.Set(key, data); err != nil {
		log.Printf("WARN: Failed to persist entry '%s': %v", key, err)
	}
}

// loadEntry reads and decodes the entry under key, reporting whether it was
// present and readable.
func (m *Manager) loadEntry(key string, v interface{}) bool {
	data, err := m.kv.Get(key)
	if err != nil {
		return false
	}
	return json.Unmarshal(data, v) == nil
}
