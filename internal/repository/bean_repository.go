//go:generate mockery --name BeanRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"

	"csgobeans/internal/middleware"
	"csgobeans/internal/model"

	"gorm.io/gorm"
)

type BeanRepository interface {
	Create(ctx context.Context, db *gorm.DB, bean *model.Bean) error
	FindByID(ctx context.Context, db *gorm.DB, beanID uint) (*model.Bean, error)
	FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Bean, error)
	List(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.Bean, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
}

type gormBeanRepository struct{}

func NewGormBeanRepository() BeanRepository {
	return &gormBeanRepository{}
}

func (r *gormBeanRepository) Create(ctx context.Context, db *gorm.DB, bean *model.Bean) error {
	logger := middleware.GetLogger(ctx)

	result := db.WithContext(ctx).Create(bean)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			logger.Warn(
				"Duplicate key error on create bean",
				"error", result.Error,
				"name", bean.Name,
			)
			return model.ErrConflict
		}
		logger.Error(
			"Error creating bean in DB",
			"error", result.Error,
			"name", bean.Name,
		)
		return fmt.Errorf("gormBeanRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormBeanRepository) FindByID(ctx context.Context, db *gorm.DB, beanID uint) (*model.Bean, error) {
	logger := middleware.GetLogger(ctx)
	var bean model.Bean

	result := db.WithContext(ctx).Where("bean_id = ?", beanID).First(&bean)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding bean by ID in DB",
			"error", result.Error,
			"bean_id", beanID,
		)
		return nil, fmt.Errorf("gormBeanRepository.FindByID: %w", result.Error)
	}
	return &bean, nil
}

func (r *gormBeanRepository) FindByName(ctx context.Context, db *gorm.DB, name string) (*model.Bean, error) {
	logger := middleware.GetLogger(ctx)
	var bean model.Bean

	result := db.WithContext(ctx).Where("name = ?", name).First(&bean)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			logger.Debug("Bean not found by name", "name", name)
			return nil, model.ErrNotFound
		}
		logger.Error(
			"Error finding bean by name in DB",
			"error", result.Error,
			"name", name,
		)
		return nil, fmt.Errorf("gormBeanRepository.FindByName: %w", result.Error)
	}
	return &bean, nil
}

// List は名前順のカタログ一覧を返します。limit < 0 は無制限
func (r *gormBeanRepository) List(ctx context.Context, db *gorm.DB, offset, limit int) ([]*model.Bean, error) {
	logger := middleware.GetLogger(ctx)
	var beans []*model.Bean

	query := db.WithContext(ctx).Order("name ASC")
	if offset > 0 {
		query = query.Offset(offset)
	}
	if limit >= 0 {
		query = query.Limit(limit)
	}

	result := query.Find(&beans)
	if result.Error != nil {
		logger.Error("Error listing beans in DB", "error", result.Error)
		return nil, fmt.Errorf("gormBeanRepository.List: %w", result.Error)
	}
	return beans, nil
}

func (r *gormBeanRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	logger := middleware.GetLogger(ctx)
	var count int64

	result := db.WithContext(ctx).Model(&model.Bean{}).Count(&count)
	if result.Error != nil {
		logger.Error("Error counting beans in DB", "error", result.Error)
		return 0, fmt.Errorf("gormBeanRepository.Count: %w", result.Error)
	}
	return count, nil
}
