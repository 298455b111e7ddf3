package models

import (
	"github.com/VSP7988/maranatha-api/domain/content"
)

// Event is a church event shown on the public events strip.
// event_date / event_time are kept as plain strings because the hosted
// schema stores them as date and text columns the frontend renders verbatim.
type Event struct {
	content.Meta
	Title       string  `gorm:"size:255;not null" json:"title" validate:"required,max=255"`
	Description *string `gorm:"type:text" json:"description"`
	EventDate   string  `gorm:"column:event_date;size:20;not null" json:"event_date" validate:"required"`
	EventTime   *string `gorm:"column:event_time;size:50" json:"event_time"`
	Location    *string `gorm:"size:255" json:"location"`
	ImageURL    *string `gorm:"column:image_url;type:text" json:"image_url"`
	PDFURL      *string `gorm:"column:pdf_url;type:text" json:"pdf_url"`
}

func (Event) TableName() string { return "events" }

func (e *Event) Normalize() {
	content.SanitizeRequired(&e.Title)
	content.SanitizeRequired(&e.EventDate)
	e.Description = content.SanitizeOptional(e.Description)
	e.EventTime = content.SanitizeOptional(e.EventTime)
	e.Location = content.SanitizeOptional(e.Location)
	e.ImageURL = content.SanitizeOptional(e.ImageURL)
	e.PDFURL = content.SanitizeOptional(e.PDFURL)
}

var EventSpec = content.Spec{
	Name:         "event",
	Table:        "events",
	Path:         "events",
	Positioned:   false,
	MediaColumns: []string{"image_url", "pdf_url"},
	PublicLimit:  6,
}
