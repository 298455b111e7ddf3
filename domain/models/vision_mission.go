package models

import (
	"github.com/VSP7988/maranatha-api/domain/content"
)

const (
	StatementKindVision  = "vision"
	StatementKindMission = "mission"
)

// VisionMission is one vision or mission statement card.
type VisionMission struct {
	content.Meta
	Kind    string `gorm:"size:20;not null;index" json:"kind" validate:"required,oneof=vision mission"`
	Title   string `gorm:"size:255;not null" json:"title" validate:"required,max=255"`
	Content string `gorm:"type:text;not null" json:"content" validate:"required"`
	Icon    string `gorm:"size:50;not null;default:'cross'" json:"icon"`
}

func (VisionMission) TableName() string { return "vision_mission" }

func (v *VisionMission) Normalize() {
	content.SanitizeRequired(&v.Title)
	content.SanitizeRequired(&v.Content)
	v.Icon = ResolveIcon(v.Icon)
}

func (v *VisionMission) DiscriminatorValue() string { return v.Kind }

var VisionMissionSpec = content.Spec{
	Name:          "vision-mission",
	Table:         "vision_mission",
	Path:          "vision-mission",
	Positioned:    true,
	Discriminator: "kind",
}
