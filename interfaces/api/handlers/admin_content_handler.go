package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/VSP7988/maranatha-api/domain/content"
	"github.com/VSP7988/maranatha-api/domain/services"
	"github.com/VSP7988/maranatha-api/pkg/logger"
	"github.com/VSP7988/maranatha-api/pkg/utils"
)

// AdminContentHandler is the admin CRUD surface of one content
// category. One generic type serves all categories; the Spec carries
// the per-category differences.
type AdminContentHandler[T any, P interface {
	content.Row
	*T
}] struct {
	service services.ContentService[T]
	spec    content.Spec
}

func NewAdminContentHandler[T any, P interface {
	content.Row
	*T
}](service services.ContentService[T], spec content.Spec) *AdminContentHandler[T, P] {
	return &AdminContentHandler[T, P]{service: service, spec: spec}
}

// List returns every row, active and inactive, in admin order. The
// optional discriminator query narrows split categories.
func (h *AdminContentHandler[T, P]) List(c *fiber.Ctx) error {
	discriminator := c.Query(h.spec.Discriminator)
	rows, err := h.service.List(c.UserContext(), discriminator)
	if err != nil {
		return repositoryError(c, err)
	}
	return utils.SuccessResponse(c, rows)
}

func (h *AdminContentHandler[T, P]) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid id")
	}

	row, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return repositoryError(c, err)
	}
	return utils.SuccessResponse(c, row)
}

func (h *AdminContentHandler[T, P]) Create(c *fiber.Ctx) error {
	row := new(T)
	if err := c.BodyParser(row); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	P(row).Normalize()
	if err := utils.ValidateStruct(row); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	created, err := h.service.Create(c.UserContext(), row)
	if err != nil {
		logger.ErrorContext(c.UserContext(), "Create failed",
			"category", h.spec.Name, "error", err)
		return repositoryError(c, err)
	}
	return utils.CreatedResponse(c, created)
}

func (h *AdminContentHandler[T, P]) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid id")
	}

	row := new(T)
	if err := c.BodyParser(row); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	P(row).Normalize()
	if err := utils.ValidateStruct(row); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	updated, err := h.service.Update(c.UserContext(), id, row)
	if err != nil {
		logger.ErrorContext(c.UserContext(), "Update failed",
			"category", h.spec.Name, "id", id, "error", err)
		return repositoryError(c, err)
	}
	return utils.SuccessResponse(c, updated)
}

func (h *AdminContentHandler[T, P]) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid id")
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return repositoryError(c, err)
	}
	return utils.NoContentResponse(c)
}

// Toggle flips is_active without touching the rest of the row.
func (h *AdminContentHandler[T, P]) Toggle(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid id")
	}

	row, err := h.service.ToggleActive(c.UserContext(), id)
	if err != nil {
		return repositoryError(c, err)
	}
	return utils.SuccessResponse(c, row)
}
