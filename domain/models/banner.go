package models

import (
	"github.com/VSP7988/maranatha-api/domain/content"
)

const (
	BannerTypeImage = "image"
	BannerTypeVideo = "video"
)

// Banner is one slide of the public hero carousel.
type Banner struct {
	content.Meta
	Type     string  `gorm:"size:20;not null;default:'image'" json:"type" validate:"required,oneof=image video"`
	Title    string  `gorm:"size:255;not null" json:"title" validate:"required,max=255"`
	Subtitle *string `gorm:"size:500" json:"subtitle"`
	ImageURL *string `gorm:"column:image_url;type:text" json:"image_url"`
	VideoURL *string `gorm:"column:video_url;type:text" json:"video_url"`
	LinkURL  *string `gorm:"column:link_url;type:text" json:"link_url"`
}

func (Banner) TableName() string { return "banners" }

func (b *Banner) Normalize() {
	content.SanitizeRequired(&b.Title)
	b.Subtitle = content.SanitizeOptional(b.Subtitle)
	b.ImageURL = content.SanitizeOptional(b.ImageURL)
	b.VideoURL = content.SanitizeOptional(b.VideoURL)
	b.LinkURL = content.SanitizeOptional(b.LinkURL)
}

var BannerSpec = content.Spec{
	Name:         "banner",
	Table:        "banners",
	Path:         "banners",
	Positioned:   true,
	MediaColumns: []string{"image_url", "video_url"},
	PublicLimit:  10,
}
