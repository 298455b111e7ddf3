package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/VSP7988/maranatha-api/application/serviceimpl"
	"github.com/VSP7988/maranatha-api/domain/dto"
	"github.com/VSP7988/maranatha-api/domain/services"
	"github.com/VSP7988/maranatha-api/pkg/utils"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req := new(dto.LoginRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	if err := utils.ValidateStruct(req); err != nil {
		return utils.ValidationErrorResponse(c, utils.GetValidationErrors(err))
	}

	resp, err := h.userService.Login(c.UserContext(), req)
	if err != nil {
		if errors.Is(err, serviceimpl.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid username or password")
		}
		return repositoryError(c, err)
	}
	return utils.SuccessResponse(c, resp)
}

// Me returns the account behind the current token.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	claims := utils.GetUserFromContext(c)
	if claims == nil {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.userService.GetByID(c.UserContext(), claims.UserID)
	if err != nil {
		return repositoryError(c, err)
	}
	return utils.SuccessResponse(c, dto.UserToUserResponse(user))
}
