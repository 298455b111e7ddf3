package content

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Meta is the shared shape every manageable content row embeds.
// Column names are a deployment contract with the hosted schema and
// must not change (is_active, position, created_at, updated_at).
type Meta struct {
	ID       uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Position int       `gorm:"column:position;default:0" json:"position"`
	// IsActive is a pointer so an omitted flag is distinguishable from
	// an explicit false. Create fills it in, so persisted rows always
	// carry a concrete value.
	IsActive  *bool     `gorm:"column:is_active;not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContentMeta lets any embedding model satisfy the Row interface.
func (m *Meta) ContentMeta() *Meta { return m }

// Active reports the effective activation state. Unset means active.
func (m *Meta) Active() bool { return m.IsActive == nil || *m.IsActive }

// Bool builds an activation flag value.
func Bool(v bool) *bool { return &v }

// Row is implemented by every content model via an embedded Meta plus a
// per-category Normalize that maps empty optional fields to NULL.
type Row interface {
	ContentMeta() *Meta
	Normalize()
}

// Discriminated is implemented by models whose category is split by a
// discriminator column (e.g. satellite church type, gallery album).
type Discriminated interface {
	DiscriminatorValue() string
}

// Spec declares one content category for the generic CRUD engine.
type Spec struct {
	Name          string   // log/event name, e.g. "banner"
	Table         string   // database table
	Path          string   // URL segment, e.g. "banners"
	Positioned    bool     // ordered by position ASC instead of created_at DESC
	Discriminator string   // optional filter column, e.g. "type"
	MediaColumns  []string // columns holding storage URLs, used by the orphan audit
	PublicLimit   int      // default limit for public fetches, 0 = no limit
}

// OrderClause returns the render/list order for the category.
func (s Spec) OrderClause() string {
	if s.Positioned {
		return `"position" ASC, created_at ASC`
	}
	return "created_at DESC"
}

// ListOptions narrows a category fetch.
type ListOptions struct {
	ActiveOnly    bool
	Discriminator string // value for Spec.Discriminator, empty = all
	Limit         int
}

// IsEphemeralRef reports whether a value is a browser-local preview
// reference rather than a permanent storage URL. Such values must never
// be persisted.
func IsEphemeralRef(v string) bool {
	return strings.HasPrefix(v, "blob:") || strings.HasPrefix(v, "data:")
}

// SanitizeOptional trims an optional text field and returns nil for
// empty or ephemeral-preview values, so they persist as NULL.
func SanitizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" || IsEphemeralRef(v) {
		return nil
	}
	return &v
}

// SanitizeRequired trims a required text field in place and blanks out
// ephemeral-preview values.
func SanitizeRequired(s *string) {
	v := strings.TrimSpace(*s)
	if IsEphemeralRef(v) {
		v = ""
	}
	*s = v
}
