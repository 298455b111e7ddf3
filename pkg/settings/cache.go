package settings

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/VSP7988/maranatha-api/domain/repositories"
	"github.com/VSP7988/maranatha-api/pkg/logger"
)

// Cache keeps site settings in memory and resolves each value through
// the fallback chain: ENV > database > hardcoded default.
type Cache struct {
	mu       sync.RWMutex
	values   map[string]map[string]string // section -> key -> value
	loadedAt time.Time
	ttl      time.Duration
	repo     repositories.SettingRepository
}

func NewCache(repo repositories.SettingRepository) *Cache {
	return &Cache{
		values: make(map[string]map[string]string),
		ttl:    5 * time.Minute,
		repo:   repo,
	}
}

// Reload rebuilds the database layer of the cache. Without a
// repository the chain still works from ENV and defaults.
func (c *Cache) Reload(ctx context.Context) error {
	if c.repo == nil {
		logger.WarnContext(ctx, "Settings repository not configured, serving ENV and defaults only")
		return nil
	}

	rows, err := c.repo.GetAll(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load site settings", "error", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.values = make(map[string]map[string]string)
	for _, s := range rows {
		if c.values[s.Section] == nil {
			c.values[s.Section] = make(map[string]string)
		}
		c.values[s.Section][s.Key] = s.Value
	}
	c.loadedAt = time.Now()

	logger.InfoContext(ctx, "Site settings cache reloaded", "count", len(rows))
	return nil
}

// Get resolves one value through the fallback chain.
func (c *Cache) Get(section, key string) string {
	if envKey, ok := EnvMapping[section+"."+key]; ok {
		if v := os.Getenv(envKey); v != "" {
			return v
		}
	}

	c.mu.RLock()
	if sec, ok := c.values[section]; ok {
		if v, ok := sec[key]; ok {
			c.mu.RUnlock()
			return v
		}
	}
	c.mu.RUnlock()

	if sec, ok := DefaultSettings[section]; ok {
		return sec[key]
	}
	return ""
}

// Section returns every resolved value of one section. Keys come from
// the defaults plus whatever the database layer added.
func (c *Cache) Section(section string) map[string]string {
	result := make(map[string]string)

	for key, value := range DefaultSettings[section] {
		result[key] = value
	}

	c.mu.RLock()
	for key, value := range c.values[section] {
		result[key] = value
	}
	c.mu.RUnlock()

	for key := range result {
		if envKey, ok := EnvMapping[section+"."+key]; ok {
			if v := os.Getenv(envKey); v != "" {
				result[key] = v
			}
		}
	}

	return result
}

// All returns every known section fully resolved.
func (c *Cache) All() map[string]map[string]string {
	sections := make(map[string]struct{})
	for section := range DefaultSettings {
		sections[section] = struct{}{}
	}
	c.mu.RLock()
	for section := range c.values {
		sections[section] = struct{}{}
	}
	c.mu.RUnlock()

	result := make(map[string]map[string]string, len(sections))
	for section := range sections {
		result[section] = c.Section(section)
	}
	return result
}

// Set updates the in-memory database layer after a successful write.
func (c *Cache) Set(section, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.values[section] == nil {
		c.values[section] = make(map[string]string)
	}
	c.values[section][key] = value
}

// Invalidate drops the cached database layer of one section.
func (c *Cache) Invalidate(section string) {
	c.mu.Lock()
	delete(c.values, section)
	c.mu.Unlock()
}

// NeedsReload reports whether the cache is past its TTL.
func (c *Cache) NeedsReload() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Since(c.loadedAt) > c.ttl
}

// IsEnvOverridden reports whether a deployment pinned this value.
func (c *Cache) IsEnvOverridden(section, key string) bool {
	if envKey, ok := EnvMapping[section+"."+key]; ok {
		return os.Getenv(envKey) != ""
	}
	return false
}
