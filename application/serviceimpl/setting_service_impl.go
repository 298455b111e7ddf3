package serviceimpl

import (
	"context"
	"fmt"
	"strings"

	"github.com/VSP7988/maranatha-api/domain/models"
	"github.com/VSP7988/maranatha-api/domain/repositories"
	"github.com/VSP7988/maranatha-api/domain/services"
	"github.com/VSP7988/maranatha-api/pkg/logger"
	"github.com/VSP7988/maranatha-api/pkg/settings"
)

type SettingServiceImpl struct {
	repo  repositories.SettingRepository
	cache *settings.Cache
}

func NewSettingService(repo repositories.SettingRepository, cache *settings.Cache) services.SettingService {
	return &SettingServiceImpl{repo: repo, cache: cache}
}

func (s *SettingServiceImpl) Resolved(ctx context.Context) map[string]map[string]string {
	s.maybeReload(ctx)
	return s.cache.All()
}

func (s *SettingServiceImpl) ResolvedSection(ctx context.Context, section string) (map[string]string, error) {
	if !models.IsValidSettingSection(section) {
		return nil, fmt.Errorf("unknown settings section %q", section)
	}
	s.maybeReload(ctx)
	return s.cache.Section(section), nil
}

func (s *SettingServiceImpl) Update(ctx context.Context, section, key, value string) error {
	if !models.IsValidSettingSection(section) {
		return fmt.Errorf("unknown settings section %q", section)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("setting key is required")
	}
	if s.repo == nil {
		return fmt.Errorf("settings are read only without a database")
	}

	setting := &models.SiteSetting{
		Section: section,
		Key:     key,
		Value:   value,
	}
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return err
	}

	s.cache.Set(section, key, value)
	logger.InfoContext(ctx, "Site setting updated", "section", section, "key", key)
	return nil
}

func (s *SettingServiceImpl) maybeReload(ctx context.Context) {
	if s.cache.NeedsReload() {
		if err := s.cache.Reload(ctx); err != nil {
			logger.WarnContext(ctx, "Settings reload failed, serving cached values", "error", err)
		}
	}
}
