package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm/clause"

	"github.com/meinhoongagan/handyhub/models"
)

// likeEscaper makes a search term match literally inside a LIKE pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListServiceViews returns every service with its provider and the
// provider's user, newest first. Providers and users are loaded in one batch
// each, not per row.
func (s *GormStore) ListServiceViews(ctx context.Context, filter ServiceFilter) ([]models.ServiceView, error) {
	q := s.db.WithContext(ctx).Preload("Provider.User")

	if filter.Category != "" {
		q = q.Where("LOWER(services.category) = ?", strings.ToLower(filter.Category))
	}
	if term := strings.TrimSpace(filter.Query); term != "" {
		like := "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
		q = q.Where(`(LOWER(services.title) LIKE ? ESCAPE '\' OR LOWER(services.description) LIKE ? ESCAPE '\')`, like, like)
	}

	var services []models.Service
	if err := q.Order("services.created_at DESC").Find(&services).Error; err != nil {
		return nil, err
	}

	views := make([]models.ServiceView, 0, len(services))
	for _, svc := range services {
		views = append(views, models.NewServiceView(svc))
	}
	return views, nil
}

func (s *GormStore) GetServiceView(ctx context.Context, id string) (*models.ServiceView, error) {
	var svc models.Service
	if err := s.db.WithContext(ctx).Preload("Provider.User").First(&svc, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	view := models.NewServiceView(svc)
	return &view, nil
}

func (s *GormStore) GetService(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := s.db.WithContext(ctx).First(&svc, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &svc, nil
}

func (s *GormStore) ListProviderServices(ctx context.Context, providerID string) ([]models.Service, error) {
	services := make([]models.Service, 0)
	err := s.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&services).Error
	return services, err
}

func (s *GormStore) CreateService(ctx context.Context, service *models.Service) error {
	return s.db.WithContext(ctx).Omit(clause.Associations).Create(service).Error
}

func (s *GormStore) UpdateServiceImage(ctx context.Context, id, imageURL string) (*models.Service, error) {
	res := s.db.WithContext(ctx).
		Model(&models.Service{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"image_url": imageURL, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetService(ctx, id)
}
