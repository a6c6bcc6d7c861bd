package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/meinhoongagan/handyhub/access"
	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/middleware"
	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/repository"
	"github.com/meinhoongagan/handyhub/utils"
)

var maxPricePerHour = decimal.RequireFromString("99999999.99")

type ServiceStore interface {
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListProviderServices(ctx context.Context, providerID string) ([]models.Service, error)
	CreateService(ctx context.Context, service *models.Service) error
	UpdateServiceImage(ctx context.Context, id, imageURL string) (*models.Service, error)
}

type ServiceHandler struct {
	store    ServiceStore
	uploader utils.Uploader
	validate *validator.Validate
}

func NewServiceHandler(store ServiceStore, uploader utils.Uploader) *ServiceHandler {
	if uploader == nil {
		uploader = utils.NopUploader{}
	}
	return &ServiceHandler{store: store, uploader: uploader, validate: validator.New()}
}

// ListServices returns the caller's own services, newest first.
func (h *ServiceHandler) ListServices(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}

	services, err := h.store.ListProviderServices(c.UserContext(), p.Profile.ID)
	if err != nil {
		return apperr.Unexpected("Failed to fetch provider services", err)
	}
	return c.JSON(services)
}

type createServiceRequest struct {
	Category     string       `json:"category" validate:"required"`
	Title        string       `json:"title" validate:"required,max=200"`
	Description  string       `json:"description"`
	PricePerHour models.Money `json:"pricePerHour"`
}

// CreateService publishes a service under the caller's profile. A providerId
// in the body is ignored. The route requires access.CreateService.
func (h *ServiceHandler) CreateService(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}

	var req createServiceRequest
	if err := utils.ParseBody(c, h.validate, &req); err != nil {
		return err
	}
	category, ok := models.NormalizeCategory(req.Category)
	if !ok {
		return apperr.Validationf("Unknown category: %s", req.Category)
	}
	if !req.PricePerHour.IsPositive() || req.PricePerHour.GreaterThan(maxPricePerHour) {
		return apperr.Validation("Price per hour must be a positive amount")
	}

	service := &models.Service{
		ProviderID:   p.Profile.ID,
		Category:     category,
		Title:        req.Title,
		Description:  req.Description,
		PricePerHour: req.PricePerHour,
	}
	if err := h.store.CreateService(c.UserContext(), service); err != nil {
		return apperr.Unexpected("Failed to create service", err)
	}

	return c.Status(fiber.StatusCreated).JSON(service)
}

// UploadImage stores the multipart "image" file and sets it as the service
// image. Only the owning provider may do this.
func (h *ServiceHandler) UploadImage(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}

	service, err := h.store.GetService(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("Service not found")
	}
	if err != nil {
		return apperr.Unexpected("Failed to fetch service", err)
	}
	if err := access.Authorize(p, access.ManageService, access.Resource{Service: service}); err != nil {
		return err
	}

	header, err := c.FormFile("image")
	if err != nil {
		return apperr.Validation("Image file is required")
	}
	file, err := header.Open()
	if err != nil {
		return apperr.Validation("Image file is unreadable")
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.UserContext(), file, fmt.Sprintf("service_%s", service.ID), "services")
	if errors.Is(err, utils.ErrUploadsDisabled) {
		return apperr.Unconfigured("Image uploads not configured")
	}
	if err != nil {
		return apperr.Unexpected("Failed to upload image", err)
	}

	updated, err := h.store.UpdateServiceImage(c.UserContext(), service.ID, url)
	if err != nil {
		return apperr.Unexpected("Failed to update service", err)
	}
	return c.JSON(updated)
}
