package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/VSP7988/maranatha-api/domain/dto"
	"github.com/VSP7988/maranatha-api/domain/services"
	"github.com/VSP7988/maranatha-api/pkg/utils"
)

type SettingHandler struct {
	settingService services.SettingService
}

func NewSettingHandler(settingService services.SettingService) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// SiteInfo is the public endpoint the site header and footer read.
func (h *SettingHandler) SiteInfo(c *fiber.Ctx) error {
	resolved := h.settingService.Resolved(c.UserContext())
	return utils.SuccessResponse(c, dto.SiteInfoResponse{Settings: resolved})
}

// Section returns one resolved settings section for the admin form.
func (h *SettingHandler) Section(c *fiber.Ctx) error {
	section := c.Params("section")
	values, err := h.settingService.ResolvedSection(c.UserContext(), section)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, values)
}

func (h *SettingHandler) Update(c *fiber.Ctx) error {
	req := new(dto.UpdateSettingRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	if err := h.settingService.Update(c.UserContext(), req.Section, req.Key, req.Value); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	return utils.SuccessResponse(c, fiber.Map{
		"section": req.Section,
		"key":     req.Key,
	})
}
