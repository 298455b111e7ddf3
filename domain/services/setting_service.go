package services

import (
	"context"
)

// SettingService manages the singleton site configuration (contact
// details, social links, service times) with the ENV > database >
// default resolution chain.
type SettingService interface {
	// Resolved returns every setting section with values resolved
	// through the fallback chain.
	Resolved(ctx context.Context) map[string]map[string]string
	// ResolvedSection returns one resolved section.
	ResolvedSection(ctx context.Context, section string) (map[string]string, error)
	// Update writes one value to the database layer of the chain.
	Update(ctx context.Context, section, key, value string) error
}
