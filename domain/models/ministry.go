package models

import (
	"github.com/gosimple/slug"

	"github.com/VSP7988/maranatha-api/domain/content"
)

// Ministry is one ministry page (youth, worship, outreach, ...).
type Ministry struct {
	content.Meta
	Name        string  `gorm:"size:255;not null" json:"name" validate:"required,max=255"`
	Slug        string  `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description *string `gorm:"type:text" json:"description"`
	Icon        string  `gorm:"size:50;not null;default:'cross'" json:"icon"`
	ImageURL    *string `gorm:"column:image_url;type:text" json:"image_url"`
}

func (Ministry) TableName() string { return "ministries" }

func (m *Ministry) Normalize() {
	content.SanitizeRequired(&m.Name)
	if m.Slug == "" {
		m.Slug = slug.Make(m.Name)
	} else {
		m.Slug = slug.Make(m.Slug)
	}
	m.Description = content.SanitizeOptional(m.Description)
	m.Icon = ResolveIcon(m.Icon)
	m.ImageURL = content.SanitizeOptional(m.ImageURL)
}

var MinistrySpec = content.Spec{
	Name:         "ministry",
	Table:        "ministries",
	Path:         "ministries",
	Positioned:   true,
	MediaColumns: []string{"image_url"},
}
