package models

// Icon names the frontend can render. Unknown names degrade to
// DefaultIcon so a typo in the admin form never breaks a public page.
const DefaultIcon = "cross"

var knownIcons = map[string]bool{
	"cross":      true,
	"heart":      true,
	"eye":        true,
	"target":     true,
	"book":       true,
	"globe":      true,
	"users":      true,
	"hands":      true,
	"dove":       true,
	"flame":      true,
	"star":       true,
	"music":      true,
	"home":       true,
	"calendar":   true,
	"megaphone":  true,
	"graduation": true,
}

// ResolveIcon canonicalizes an icon name, falling back to DefaultIcon
// for empty or unknown values.
func ResolveIcon(name string) string {
	if knownIcons[name] {
		return name
	}
	return DefaultIcon
}
