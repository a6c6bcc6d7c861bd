package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/middleware"
	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/repository"
	"github.com/meinhoongagan/handyhub/utils"
)

type ProfileStore interface {
	CreateProviderProfile(ctx context.Context, profile *models.ProviderProfile) error
}

type ProfileHandler struct {
	store    ProfileStore
	validate *validator.Validate
}

func NewProfileHandler(store ProfileStore) *ProfileHandler {
	return &ProfileHandler{store: store, validate: validator.New()}
}

func (h *ProfileHandler) GetProfile(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}
	if p.Profile == nil {
		return apperr.NotFound("Profile not found")
	}
	return c.JSON(p.Profile)
}

type createProfileRequest struct {
	Bio             string `json:"bio"`
	Phone           string `json:"phone" validate:"max=20"`
	Location        string `json:"location" validate:"max=255"`
	YearsExperience string `json:"yearsExperience" validate:"max=50"`
}

// CreateProfile creates the caller's provider profile. userId and verified
// are never taken from the body.
func (h *ProfileHandler) CreateProfile(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}

	var req createProfileRequest
	if err := utils.ParseBody(c, h.validate, &req); err != nil {
		return err
	}

	profile := &models.ProviderProfile{
		UserID:          p.User.ID,
		Bio:             req.Bio,
		Phone:           req.Phone,
		Location:        req.Location,
		YearsExperience: req.YearsExperience,
	}
	err = h.store.CreateProviderProfile(c.UserContext(), profile)
	if errors.Is(err, repository.ErrAlreadyExists) {
		return apperr.Validation("Provider profile already exists")
	}
	if err != nil {
		return apperr.Unexpected("Failed to create provider profile", err)
	}

	return c.Status(fiber.StatusCreated).JSON(profile)
}
