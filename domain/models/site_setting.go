package models

import (
	"time"

	"github.com/google/uuid"
)

// SiteSetting stores one site-configuration value (contact details,
// social links, service times). Values resolve through the
// ENV > database > default chain in pkg/settings.
type SiteSetting struct {
	ID        uuid.UUID `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Section   string    `gorm:"size:50;not null;uniqueIndex:idx_site_settings_section_key"`
	Key       string    `gorm:"size:100;not null;uniqueIndex:idx_site_settings_section_key"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SiteSetting) TableName() string {
	return "site_settings"
}

// SettingSection groups site settings for the admin form tabs.
type SettingSection string

const (
	SettingSectionSite    SettingSection = "site"
	SettingSectionContact SettingSection = "contact"
	SettingSectionSocial  SettingSection = "social"
)

var ValidSettingSections = []SettingSection{
	SettingSectionSite,
	SettingSectionContact,
	SettingSectionSocial,
}

func IsValidSettingSection(s string) bool {
	for _, valid := range ValidSettingSections {
		if string(valid) == s {
			return true
		}
	}
	return false
}
