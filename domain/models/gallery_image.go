package models

import (
	"github.com/VSP7988/maranatha-api/domain/content"
)

// GalleryImage is one photo of the public gallery grid. Album is a free
// grouping label (also the storage path prefix, gallery-<album>/...).
type GalleryImage struct {
	content.Meta
	Title    *string `gorm:"size:255" json:"title"`
	Album    string  `gorm:"size:100;not null;default:'general';index" json:"album"`
	ImageURL string  `gorm:"column:image_url;type:text;not null" json:"image_url" validate:"required"`
}

func (GalleryImage) TableName() string { return "gallery_images" }

func (g *GalleryImage) Normalize() {
	g.Title = content.SanitizeOptional(g.Title)
	content.SanitizeRequired(&g.Album)
	if g.Album == "" {
		g.Album = "general"
	}
	content.SanitizeRequired(&g.ImageURL)
}

func (g *GalleryImage) DiscriminatorValue() string { return g.Album }

var GallerySpec = content.Spec{
	Name:          "gallery-image",
	Table:         "gallery_images",
	Path:          "gallery",
	Positioned:    true,
	Discriminator: "album",
	MediaColumns:  []string{"image_url"},
}
