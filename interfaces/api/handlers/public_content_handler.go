package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VSP7988/maranatha-api/domain/content"
	"github.com/VSP7988/maranatha-api/domain/services"
	"github.com/VSP7988/maranatha-api/pkg/utils"
)

// PublicContentHandler serves one category to the public site. It
// never returns an error status: the service guarantees rows, falling
// back to the category's sample dataset when the database cannot serve.
type PublicContentHandler[T any] struct {
	service services.PublicContentService[T]
	spec    content.Spec
}

func NewPublicContentHandler[T any](service services.PublicContentService[T], spec content.Spec) *PublicContentHandler[T] {
	return &PublicContentHandler[T]{service: service, spec: spec}
}

func (h *PublicContentHandler[T]) List(c *fiber.Ctx) error {
	discriminator := c.Query(h.spec.Discriminator)
	limit := c.QueryInt("limit")

	rows, fallback := h.service.ListActive(c.UserContext(), discriminator, limit)
	return utils.SuccessResponse(c, fiber.Map{
		"items":    rows,
		"fallback": fallback,
	})
}
