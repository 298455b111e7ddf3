package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VSP7988/maranatha-api/domain/models"
)

type fakePublicService struct {
	rows     []models.Banner
	fallback bool
}

func (f *fakePublicService) ListActive(context.Context, string, int) ([]models.Banner, bool) {
	return f.rows, f.fallback
}

type fakeAdminService struct {
	created *models.Banner
}

func (f *fakeAdminService) List(context.Context, string) ([]models.Banner, error) { return nil, nil }
func (f *fakeAdminService) Get(context.Context, uuid.UUID) (*models.Banner, error) {
	return nil, nil
}
func (f *fakeAdminService) Create(_ context.Context, row *models.Banner) (*models.Banner, error) {
	f.created = row
	return row, nil
}
func (f *fakeAdminService) Update(_ context.Context, _ uuid.UUID, row *models.Banner) (*models.Banner, error) {
	return row, nil
}
func (f *fakeAdminService) Delete(context.Context, uuid.UUID) error { return nil }
func (f *fakeAdminService) ToggleActive(context.Context, uuid.UUID) (*models.Banner, error) {
	return nil, nil
}

func TestPublicListReportsFallback(t *testing.T) {
	svc := &fakePublicService{rows: models.SampleBanners(""), fallback: true}
	h := NewPublicContentHandler[models.Banner](svc, models.BannerSpec)

	app := fiber.New()
	app.Get("/banners", h.List)

	resp, err := app.Test(httptest.NewRequest("GET", "/banners", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Items    []models.Banner `json:"items"`
			Fallback bool            `json:"fallback"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.True(t, body.Data.Fallback)
	assert.NotEmpty(t, body.Data.Items)
}

func TestAdminCreateValidatesBody(t *testing.T) {
	svc := &fakeAdminService{}
	h := NewAdminContentHandler[models.Banner, *models.Banner](svc, models.BannerSpec)

	app := fiber.New()
	app.Post("/banners", h.Create)

	// Missing required title.
	payload := []byte(`{"type":"image"}`)
	req := httptest.NewRequest("POST", "/banners", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Success bool `json:"success"`
		Error   struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "title")
	assert.Nil(t, svc.created, "invalid payloads never reach the service")
}

func TestAdminCreateAcceptsValidBody(t *testing.T) {
	svc := &fakeAdminService{}
	h := NewAdminContentHandler[models.Banner, *models.Banner](svc, models.BannerSpec)

	app := fiber.New()
	app.Post("/banners", h.Create)

	payload := []byte(`{"type":"image","title":"Welcome","image_url":"https://cdn.test/banner.jpg"}`)
	req := httptest.NewRequest("POST", "/banners", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.NotNil(t, svc.created)
	assert.Equal(t, "Welcome", svc.created.Title)
}

func TestAdminCreateRejectsInvalidID(t *testing.T) {
	svc := &fakeAdminService{}
	h := NewAdminContentHandler[models.Banner, *models.Banner](svc, models.BannerSpec)

	app := fiber.New()
	app.Delete("/banners/:id", h.Delete)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/banners/not-a-uuid", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
