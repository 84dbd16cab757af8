//go:generate mockery --name IdentityRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"csgobeans/internal/middleware"
	"csgobeans/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type IdentityRepository interface {
	Create(ctx context.Context, db *gorm.DB, identity *model.ExternalIdentity) error
	FindByExternalID(ctx context.Context, db *gorm.DB, externalID string) (*model.ExternalIdentity, error)
	FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.ExternalIdentity, error)
}

type gormIdentityRepository struct{}

func NewGormIdentityRepository() IdentityRepository {
	return &gormIdentityRepository{}
}

func (r *gormIdentityRepository) Create(ctx context.Context, db *gorm.DB, identity *model.ExternalIdentity) error {
	logger := middleware.GetLogger(ctx)
	result := db.WithContext(ctx).Create(identity)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn(
				"Duplicate key error on create external identity",
				"error", result.Error,
				"external_id", identity.ExternalID,
			)
			return model.ErrConflict
		}
		logger.Error(
			"Error creating external identity in DB",
			"error", result.Error,
			"external_id", identity.ExternalID,
			"user_id", identity.UserID.String(),
		)
		return fmt.Errorf("gormIdentityRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormIdentityRepository) FindByExternalID(ctx context.Context, db *gorm.DB, externalID string) (*model.ExternalIdentity, error) {
	logger := middleware.GetLogger(ctx)
	var identity model.ExternalIdentity

	result := db.WithContext(ctx).Where("external_id = ?", externalID).First(&identity)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding external identity in DB",
			"error", result.Error,
			"external_id", externalID,
		)
		return nil, fmt.Errorf("gormIdentityRepository.FindByExternalID: %w", result.Error)
	}
	return &identity, nil
}

func (r *gormIdentityRepository) FindByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.ExternalIdentity, error) {
	logger := middleware.GetLogger(ctx)
	var identities []*model.ExternalIdentity

	result := db.WithContext(ctx).Where("user_id = ?", userID).Find(&identities)
	if result.Error != nil {
		logger.Error(
			"Error finding external identities by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormIdentityRepository.FindByUserID: %w", result.Error)
	}
	return identities, nil
}
