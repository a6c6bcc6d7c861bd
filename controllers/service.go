package controllers

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/models"
	"github.com/meinhoongagan/handyhub/repository"
)

type CatalogStore interface {
	ListServiceViews(ctx context.Context, filter repository.ServiceFilter) ([]models.ServiceView, error)
	GetServiceView(ctx context.Context, id string) (*models.ServiceView, error)
}

// CatalogHandler serves the public service listing. No session is needed.
type CatalogHandler struct {
	store CatalogStore
}

func NewCatalogHandler(store CatalogStore) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// ListServices supports ?category= (exact, case-insensitive) and ?q= (title
// or description substring).
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	filter := repository.ServiceFilter{
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}
	if filter.Category != "" {
		category, ok := models.NormalizeCategory(filter.Category)
		if !ok {
			return apperr.Validationf("Unknown category: %s", filter.Category)
		}
		filter.Category = category
	}

	services, err := h.store.ListServiceViews(c.UserContext(), filter)
	if err != nil {
		return apperr.Unexpected("Failed to fetch services", err)
	}
	return c.JSON(services)
}

func (h *CatalogHandler) GetService(c *fiber.Ctx) error {
	service, err := h.store.GetServiceView(c.UserContext(), c.Params("id"))
	if errors.Is(err, repository.ErrNotFound) {
		return apperr.NotFound("Service not found")
	}
	if err != nil {
		return apperr.Unexpected("Failed to fetch service", err)
	}
	return c.JSON(service)
}
