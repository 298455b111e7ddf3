package settings

// DefaultSettings holds the hardcoded bottom layer of the resolution
// chain. The admin console can override any of these through the
// database layer; deployments can pin values through EnvMapping.
var DefaultSettings = map[string]map[string]string{
	"site": {
		"title":         "Maranatha Prayer House",
		"tagline":       "Come, let us worship together",
		"service_times": "Sunday 9:00 AM, Wednesday 7:00 PM",
		"logo_url":      "",
	},
	"contact": {
		"email":   "info@maranathaprayerhouse.org",
		"phone":   "",
		"address": "",
	},
	"social": {
		"facebook":  "",
		"instagram": "",
		"youtube":   "",
		"whatsapp":  "",
	},
}

// EnvMapping pins a setting to an environment variable. An ENV value,
// when set, wins over both the database and the default.
var EnvMapping = map[string]string{
	"site.title":    "SITE_TITLE",
	"contact.email": "SITE_CONTACT_EMAIL",
	"contact.phone": "SITE_CONTACT_PHONE",
}
