package models

import (
	"github.com/VSP7988/maranatha-api/domain/content"
)

const (
	SatelliteTypeNational      = "national"
	SatelliteTypeInternational = "international"
)

// SatelliteChurch is one satellite-church location. The type column
// discriminates the national and international admin tabs.
type SatelliteChurch struct {
	content.Meta
	Type       string  `gorm:"size:20;not null;index" json:"type" validate:"required,oneof=national international"`
	Name       string  `gorm:"size:255;not null" json:"name" validate:"required,max=255"`
	Address    *string `gorm:"type:text" json:"address"`
	City       *string `gorm:"size:100" json:"city"`
	Country    *string `gorm:"size:100" json:"country"`
	PastorName *string `gorm:"column:pastor_name;size:255" json:"pastor_name"`
	Email      *string `gorm:"size:255" json:"email" validate:"omitempty,email"`
	Phone      *string `gorm:"size:50" json:"phone"`
	ImageURL   *string `gorm:"column:image_url;type:text" json:"image_url"`
}

func (SatelliteChurch) TableName() string { return "satellite_churches" }

func (s *SatelliteChurch) Normalize() {
	content.SanitizeRequired(&s.Name)
	s.Address = content.SanitizeOptional(s.Address)
	s.City = content.SanitizeOptional(s.City)
	s.Country = content.SanitizeOptional(s.Country)
	s.PastorName = content.SanitizeOptional(s.PastorName)
	s.Email = content.SanitizeOptional(s.Email)
	s.Phone = content.SanitizeOptional(s.Phone)
	s.ImageURL = content.SanitizeOptional(s.ImageURL)
}

func (s *SatelliteChurch) DiscriminatorValue() string { return s.Type }

var SatelliteChurchSpec = content.Spec{
	Name:          "satellite-church",
	Table:         "satellite_churches",
	Path:          "satellite-churches",
	Positioned:    true,
	Discriminator: "type",
	MediaColumns:  []string{"image_url"},
}

// SatelliteBanner is the banner sub-table of the satellite feature page.
// It shares nothing with SatelliteChurch at the database level; the two
// are joined only by the admin console's tab selection.
type SatelliteBanner struct {
	content.Meta
	Title    *string `gorm:"size:255" json:"title"`
	ImageURL string  `gorm:"column:image_url;type:text;not null" json:"image_url" validate:"required"`
}

func (SatelliteBanner) TableName() string { return "satellite_banners" }

func (s *SatelliteBanner) Normalize() {
	s.Title = content.SanitizeOptional(s.Title)
	content.SanitizeRequired(&s.ImageURL)
}

var SatelliteBannerSpec = content.Spec{
	Name:         "satellite-banner",
	Table:        "satellite_banners",
	Path:         "satellite-banners",
	Positioned:   true,
	MediaColumns: []string{"image_url"},
	PublicLimit:  10,
}
