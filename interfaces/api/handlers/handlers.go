package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/VSP7988/maranatha-api/pkg/utils"
)

// Handlers bundles the non-generic handler set for route registration.
// Content category handlers are generic and wired separately.
type Handlers struct {
	Auth    *AuthHandler
	Upload  *UploadHandler
	Setting *SettingHandler
	Health  *HealthHandler
}

// repositoryError maps data-layer failures to responses. A nil
// database session means the deployment runs without persistence, which
// is a valid read-only mode, not a crash.
func repositoryError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.NotFoundResponse(c, "")
	case errors.Is(err, gorm.ErrInvalidDB):
		return utils.ServiceUnavailableResponse(c, "Database is not configured, content is read only")
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
