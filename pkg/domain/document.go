package domain

// Record represents a single item in a collection. Field shapes are
// collection-specific and opaque to the store; only the "id" field is
// managed by the store itself.
type Record map[string]interface{}

// ID returns the record's id field, or "" if unset.
func (r Record) ID() string {
	id, _ := r["id"].(string)
	return id
}

// Clone returns a deep copy of the record. Nested maps and slices are
// copied recursively so callers never alias the store's memory.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch val := v.(type) {
	case Record:
		return val.Clone()
	case map[string]interface{}:
		out := make(map[string]interface{}, len(val))
		for k, item := range val {
			out[k] = cloneValue(item)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}

// Document is the entire persisted data graph for one site: every named
// collection plus the settings singleton. It persists as one blob.
type Document struct {
	Collections map[string][]Record `json:"collections" msgpack:"collections"`
	Settings    Settings            `json:"settings" msgpack:"settings"`
}

// NewDocument creates an empty document
func NewDocument() *Document {
	return &Document{
		Collections: make(map[string][]Record),
	}
}

// Well-known collection names. The set is open: the store creates any
// collection it is asked to write to.
const (
	CollStudents     = "students"
	CollCourses      = "courses"
	CollUsers        = "users"
	CollForums       = "forums"
	CollCertificates = "certificates"
	CollProgress     = "progress"
	CollGallery      = "gallery"
)

// Settings holds the site metadata singleton. It is addressed by name, never
// by id, and is not a collection.
type Settings struct {
	SiteName    string      `json:"siteName" msgpack:"siteName"`
	Tagline     string      `json:"tagline" msgpack:"tagline"`
	Description string      `json:"description" msgpack:"description"`
	Phone       string      `json:"phone" msgpack:"phone"`
	Email       string      `json:"email" msgpack:"email"`
	Address     string      `json:"address" msgpack:"address"`
	SocialMedia SocialMedia `json:"socialMedia" msgpack:"socialMedia"`
	Theme       Theme       `json:"theme" msgpack:"theme"`
}

// SocialMedia holds the site's social links.
type SocialMedia struct {
	Facebook  string `json:"facebook" msgpack:"facebook"`
	Instagram string `json:"instagram" msgpack:"instagram"`
	Twitter   string `json:"twitter" msgpack:"twitter"`
	YouTube   string `json:"youtube" msgpack:"youtube"`
}

// Theme holds the site's color palette.
type Theme struct {
	Primary   string `json:"primary" msgpack:"primary"`
	Secondary string `json:"secondary" msgpack:"secondary"`
	Accent    string `json:"accent" msgpack:"accent"`
}

// SettingsPatch is a partial settings update. Nil fields are left untouched;
// nested patches merge field-wise so updating one social link preserves the
// others.
type SettingsPatch struct {
	SiteName    *string           `json:"siteName,omitempty"`
	Tagline     *string           `json:"tagline,omitempty"`
	Description *string           `json:"description,omitempty"`
	Phone       *string           `json:"phone,omitempty"`
	Email       *string           `json:"email,omitempty"`
	Address     *string           `json:"address,omitempty"`
	SocialMedia *SocialMediaPatch `json:"socialMedia,omitempty"`
	Theme       *ThemePatch       `json:"theme,omitempty"`
}

// SocialMediaPatch is a partial update of SocialMedia.
type SocialMediaPatch struct {
	Facebook  *string `json:"facebook,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	YouTube   *string `json:"youtube,omitempty"`
}

// ThemePatch is a partial update of Theme.
type ThemePatch struct {
	Primary   *string `json:"primary,omitempty"`
	Secondary *string `json:"secondary,omitempty"`
	Accent    *string `json:"accent,omitempty"`
}

// Apply merges the patch into s.
func (p *SettingsPatch) Apply(s *Settings) {
	if p == nil {
		return
	}
	if p.SiteName != nil {
		s.SiteName = *p.SiteName
	}
	if p.Tagline != nil {
		s.Tagline = *p.Tagline
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.SocialMedia != nil {
		if p.SocialMedia.Facebook != nil {
			s.SocialMedia.Facebook = *p.SocialMedia.Facebook
		}
		if p.SocialMedia.Instagram != nil {
			s.SocialMedia.Instagram = *p.SocialMedia.Instagram
		}
		if p.SocialMedia.Twitter != nil {
			s.SocialMedia.Twitter = *p.SocialMedia.Twitter
		}
		if p.SocialMedia.YouTube != nil {
			s.SocialMedia.YouTube = *p.SocialMedia.YouTube
		}
	}
	if p.Theme != nil {
		if p.Theme.Primary != nil {
			s.Theme.Primary = *p.Theme.Primary
		}
		if p.Theme.Secondary != nil {
			s.Theme.Secondary = *p.Theme.Secondary
		}
		if p.Theme.Accent != nil {
			s.Theme.Accent = *p.Theme.Accent
		}
	}
}
