package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/abeliasun/backoffice/internal/domain"
)

type ServiceRepo struct{ db *gorm.DB }

func NewServiceRepo(db *gorm.DB) *ServiceRepo { return &ServiceRepo{db: db} }

func (r *ServiceRepo) List(ctx context.Context) ([]domain.Service, error) {
	var list []domain.Service
	err := r.db.WithContext(ctx).
		Preload("SubServices", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Order("id").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (r *ServiceRepo) MissingServiceIDs(ctx context.Context, ids []uint) ([]uint, error) {
	return missingIDs(r.db.WithContext(ctx), &domain.Service{}, ids)
}

func (r *ServiceRepo) MissingSubServiceIDs(ctx context.Context, ids []uint) ([]uint, error) {
	return missingIDs(r.db.WithContext(ctx), &domain.SubService{}, ids)
}

func (r *ServiceRepo) Seed(ctx context.Context, services []domain.Service) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&domain.Service{}).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		return tx.Create(&services).Error
	})
}
