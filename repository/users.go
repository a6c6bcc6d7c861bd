package repository

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	"github.com/meinhoongagan/handyhub/models"
)

func (s *GormStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// UpsertUser inserts the user or refreshes its identity fields. The role is
// never overwritten by an upsert.
func (s *GormStore) UpsertUser(ctx context.Context, user *models.User) (*models.User, error) {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "first_name", "last_name", "profile_image_url", "updated_at"}),
		}).
		Create(user).Error
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, user.ID)
}

func (s *GormStore) UpdateUserRole(ctx context.Context, id string, role models.Role) (*models.User, error) {
	res := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"user_type": role, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.GetUser(ctx, id)
}

func (s *GormStore) GetProviderProfileByUser(ctx context.Context, userID string) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	if err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

func (s *GormStore) GetProviderProfile(ctx context.Context, id string) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &profile, nil
}

// CreateProviderProfile relies on the unique user_id index. A second profile
// for the same user, concurrent or not, yields ErrAlreadyExists.
func (s *GormStore) CreateProviderProfile(ctx context.Context, profile *models.ProviderProfile) error {
	return duplicate(s.db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error)
}
