package controllers

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/middleware"
	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/utils"
)

type RoleStore interface {
	UpdateUserRole(ctx context.Context, id string, role models.Role) (*models.User, error)
}

type AuthHandler struct {
	store    RoleStore
	validate *validator.Validate
}

func NewAuthHandler(store RoleStore) *AuthHandler {
	return &AuthHandler{store: store, validate: validator.New()}
}

// GetCurrentUser returns the user behind the session, as upserted by the
// auth middleware on this request.
func (h *AuthHandler) GetCurrentUser(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}
	return c.JSON(p.User)
}

type setUserTypeRequest struct {
	UserType string `json:"userType"`
}

// SetUserType records the onboarding choice between customer and provider.
func (h *AuthHandler) SetUserType(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}

	var req setUserTypeRequest
	if err := utils.ParseBody(c, h.validate, &req); err != nil {
		return err
	}
	role, ok := models.ParseRole(req.UserType)
	if !ok {
		return apperr.Validation("Invalid user type")
	}

	user, err := h.store.UpdateUserRole(c.UserContext(), p.User.ID, role)
	if err != nil {
		return apperr.Unexpected("Failed to update user type", err)
	}
	return c.JSON(user)
}
