package domain

// ContentStore defines the interface for the site's content document.
// This is the core business interface that implementations must conform to
type ContentStore interface {
	Initialize() (*Document, error)
	AddRecord(collName string, fields Record) (Record, error)
	UpdateRecord(collName, id string, fields Record) (Record, error)
	DeleteRecord(collName, id string) (bool, error)
	GetRecord(collName, id string) (Record, error)
	ListCollection(collName string) []Record
	ListPage(collName string, opts *PageOptions) (*PageResult, error)
	GetSettings() Settings
	UpdateSettings(patch SettingsPatch) (Settings, error)
}

// SessionStore defines the interface for admin authentication.
type SessionStore interface {
	Login(username, password string) AuthResult
	Logout()
	ChangePassword(currentPassword, newPassword string) AuthResult
	CurrentUser() *SessionUser
	SessionToken() string
	ValidateToken(token string) (*SessionUser, error)
}
