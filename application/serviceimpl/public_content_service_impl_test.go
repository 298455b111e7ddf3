package serviceimpl

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VSP7988/maranatha-api/domain/content"
	"github.com/VSP7988/maranatha-api/domain/models"
)

func TestListActiveServesDatabaseRows(t *testing.T) {
	repo := newFakeRepo[models.Banner](bannerMeta)
	admin := NewContentService[models.Banner, *models.Banner](repo, models.BannerSpec, nil, nil)
	_, err := admin.Create(context.Background(), &models.Banner{Type: models.BannerTypeImage, Title: "Live slide"})
	require.NoError(t, err)

	public := NewPublicContentService[models.Banner](repo, models.BannerSpec, nil, models.SampleBanners)

	rows, fallback := public.ListActive(context.Background(), "", 0)
	assert.False(t, fallback)
	require.Len(t, rows, 1)
	assert.Equal(t, "Live slide", rows[0].Title)
}

func TestListActiveFallsBackOnEmpty(t *testing.T) {
	repo := newFakeRepo[models.Banner](bannerMeta)
	public := NewPublicContentService[models.Banner](repo, models.BannerSpec, nil, models.SampleBanners)

	rows, fallback := public.ListActive(context.Background(), "", 0)
	assert.True(t, fallback, "an empty category must serve the sample set")
	assert.NotEmpty(t, rows)
}

func TestListActiveFallsBackOnError(t *testing.T) {
	repo := newFakeRepo[models.Banner](bannerMeta)
	repo.listErr = errors.New("connection refused")
	public := NewPublicContentService[models.Banner](repo, models.BannerSpec, nil, models.SampleBanners)

	rows, fallback := public.ListActive(context.Background(), "", 0)
	assert.True(t, fallback, "a failed fetch must serve the sample set, never an error")
	assert.NotEmpty(t, rows)
}

func TestListActiveFallbackRespectsLimit(t *testing.T) {
	repo := newFakeRepo[models.Banner](bannerMeta)
	public := NewPublicContentService[models.Banner](repo, models.BannerSpec, nil, models.SampleBanners)

	rows, fallback := public.ListActive(context.Background(), "", 1)
	assert.True(t, fallback)
	assert.Len(t, rows, 1)
}

func TestListActiveFallbackHonorsDiscriminator(t *testing.T) {
	repo := newFakeRepo[models.VisionMission](func(v *models.VisionMission) *content.Meta {
		return v.ContentMeta()
	})
	public := NewPublicContentService[models.VisionMission](repo, models.VisionMissionSpec, nil, models.SampleVisionMission)

	rows, fallback := public.ListActive(context.Background(), models.StatementKindMission, 0)
	assert.True(t, fallback)
	require.NotEmpty(t, rows)
	for _, row := range rows {
		assert.Equal(t, models.StatementKindMission, row.Kind)
	}
}
