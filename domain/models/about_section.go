package models

import (
	"github.com/VSP7988/maranatha-api/domain/content"
)

// AboutSection is one block of the public about page.
type AboutSection struct {
	content.Meta
	Title    string  `gorm:"size:255;not null" json:"title" validate:"required,max=255"`
	Content  string  `gorm:"type:text;not null" json:"content" validate:"required"`
	ImageURL *string `gorm:"column:image_url;type:text" json:"image_url"`
}

func (AboutSection) TableName() string { return "about_sections" }

func (a *AboutSection) Normalize() {
	content.SanitizeRequired(&a.Title)
	content.SanitizeRequired(&a.Content)
	a.ImageURL = content.SanitizeOptional(a.ImageURL)
}

var AboutSpec = content.Spec{
	Name:         "about-section",
	Table:        "about_sections",
	Path:         "about",
	Positioned:   true,
	MediaColumns: []string{"image_url"},
}
