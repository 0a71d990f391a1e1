package models

import (
	"net/netip"
	"strings"
	"time"
)

// Post is a single guestbook message. Posts are never physically removed:
// a set DeletedAt hides the post from every public listing.
type Post struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Author    string     `gorm:"size:15;not null" json:"author"`
	Email     string     `gorm:"size:255;not null;index" json:"email"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	IP        string     `gorm:"size:45;not null;index" json:"-"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime:false" json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	Token     string     `gorm:"size:64;uniqueIndex;not null" json:"-"`

	// Filled at query time, not a database column.
	AuthorPostCount int `gorm:"-" json:"author_post_count"`
}

// IsDeleted reports whether the post has been soft-deleted.
func (p Post) IsDeleted() bool {
	return p.DeletedAt != nil
}

// WasEdited reports whether the post has been changed since creation.
func (p Post) WasEdited() bool {
	return !p.UpdatedAt.IsZero()
}

// MaskedIP returns the source address with its tail hidden for display.
// IPv4 keeps the first two octets, IPv6 the first four groups of the
// fully expanded form. Unparseable addresses yield an empty string.
func (p Post) MaskedIP() string {
	addr, err := netip.ParseAddr(p.IP)
	if err != nil {
		return ""
	}

	if addr.Is4() {
		parts := strings.Split(addr.String(), ".")
		return parts[0] + "." + parts[1] + ".**.**"
	}

	groups := strings.Split(addr.StringExpanded(), ":")
	return strings.Join(groups[:4], ":") + ":****:****:****:****"
}
