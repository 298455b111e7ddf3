package models

import (
	"github.com/VSP7988/maranatha-api/domain/content"
)

// Fallback datasets for the public panels. Whenever a public fetch
// errors or returns zero rows, the matching sample set is served so a
// page never renders empty. These never reach the database.

func strPtr(s string) *string { return &s }

func sampleMeta(position int) content.Meta {
	return content.Meta{Position: position, IsActive: content.Bool(true)}
}

func SampleBanners(_ string) []Banner {
	return []Banner{
		{
			Meta:     sampleMeta(1),
			Type:     BannerTypeImage,
			Title:    "Welcome to Maranatha Prayer House",
			Subtitle: strPtr("Come, let us worship and bow down"),
			ImageURL: strPtr("/assets/sample/banner-worship.jpg"),
		},
		{
			Meta:     sampleMeta(2),
			Type:     BannerTypeImage,
			Title:    "Sunday Worship Service",
			Subtitle: strPtr("Every Sunday at 9:00 AM"),
			ImageURL: strPtr("/assets/sample/banner-service.jpg"),
		},
	}
}

func SampleEvents(_ string) []Event {
	return []Event{
		{
			Meta:        sampleMeta(0),
			Title:       "Sunday Worship Service",
			Description: strPtr("Join us for praise, worship and the Word."),
			EventDate:   "2025-01-05",
			EventTime:   strPtr("9:00 AM"),
			Location:    strPtr("Main Sanctuary"),
		},
		{
			Meta:        sampleMeta(0),
			Title:       "Midweek Prayer Meeting",
			Description: strPtr("An evening of intercession and fellowship."),
			EventDate:   "2025-01-08",
			EventTime:   strPtr("7:00 PM"),
			Location:    strPtr("Prayer Hall"),
		},
		{
			Meta:        sampleMeta(0),
			Title:       "Youth Fellowship",
			Description: strPtr("Games, worship and a message for young people."),
			EventDate:   "2025-01-11",
			EventTime:   strPtr("5:30 PM"),
			Location:    strPtr("Community Hall"),
		},
	}
}

func SampleGalleryImages(_ string) []GalleryImage {
	return []GalleryImage{
		{Meta: sampleMeta(1), Title: strPtr("Worship night"), Album: "general", ImageURL: "/assets/sample/gallery-1.jpg"},
		{Meta: sampleMeta(2), Title: strPtr("Christmas celebration"), Album: "general", ImageURL: "/assets/sample/gallery-2.jpg"},
		{Meta: sampleMeta(3), Title: strPtr("Baptism service"), Album: "general", ImageURL: "/assets/sample/gallery-3.jpg"},
		{Meta: sampleMeta(4), Title: strPtr("Community outreach"), Album: "general", ImageURL: "/assets/sample/gallery-4.jpg"},
	}
}

func SampleVisionMission(kind string) []VisionMission {
	vision := VisionMission{
		Meta:    sampleMeta(1),
		Kind:    StatementKindVision,
		Title:   "Our Vision",
		Content: "To be a house of prayer for all nations, raising disciples who love God and serve people.",
		Icon:    "eye",
	}
	mission := VisionMission{
		Meta:    sampleMeta(1),
		Kind:    StatementKindMission,
		Title:   "Our Mission",
		Content: "Preach the gospel, teach the Word, and care for every member of our community.",
		Icon:    "target",
	}
	switch kind {
	case StatementKindVision:
		return []VisionMission{vision}
	case StatementKindMission:
		return []VisionMission{mission}
	default:
		return []VisionMission{vision, mission}
	}
}

func SampleDonations(_ string) []Donation {
	return []Donation{
		{
			Meta:        sampleMeta(1),
			Title:       "General Offering",
			Description: strPtr("Support the ministry and upkeep of the church."),
			BankDetails: BankDetails{
				AccountName:   "Maranatha Prayer House",
				AccountNumber: "000000000000",
				IFSCCode:      "BANK0000000",
				BankName:      "State Bank",
				Branch:        "Main Branch",
			},
		},
	}
}

func SampleSatelliteChurches(satType string) []SatelliteChurch {
	national := SatelliteChurch{
		Meta:       sampleMeta(1),
		Type:       SatelliteTypeNational,
		Name:       "Maranatha Prayer House City Chapel",
		City:       strPtr("Visakhapatnam"),
		Country:    strPtr("India"),
		PastorName: strPtr("Pastor John"),
	}
	international := SatelliteChurch{
		Meta:       sampleMeta(1),
		Type:       SatelliteTypeInternational,
		Name:       "Maranatha Fellowship Abroad",
		City:       strPtr("Dubai"),
		Country:    strPtr("United Arab Emirates"),
		PastorName: strPtr("Pastor Thomas"),
	}
	switch satType {
	case SatelliteTypeNational:
		return []SatelliteChurch{national}
	case SatelliteTypeInternational:
		return []SatelliteChurch{international}
	default:
		return []SatelliteChurch{national, international}
	}
}

func SampleSatelliteBanners(_ string) []SatelliteBanner {
	return []SatelliteBanner{
		{Meta: sampleMeta(1), Title: strPtr("Our Satellite Churches"), ImageURL: "/assets/sample/satellite-banner.jpg"},
	}
}

func SampleMinistries(_ string) []Ministry {
	return []Ministry{
		{Meta: sampleMeta(1), Name: "Worship Ministry", Slug: "worship-ministry", Icon: "music", Description: strPtr("Leading the congregation into the presence of God.")},
		{Meta: sampleMeta(2), Name: "Youth Ministry", Slug: "youth-ministry", Icon: "users", Description: strPtr("Raising the next generation in faith.")},
		{Meta: sampleMeta(3), Name: "Outreach Ministry", Slug: "outreach-ministry", Icon: "globe", Description: strPtr("Serving our neighbourhood with the love of Christ.")},
	}
}

func SampleAboutSections(_ string) []AboutSection {
	return []AboutSection{
		{
			Meta:    sampleMeta(1),
			Title:   "About Our Church",
			Content: "Maranatha Prayer House has been serving the community for over two decades, gathering believers for worship, prayer and fellowship.",
		},
	}
}
