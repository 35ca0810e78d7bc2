package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/abeliasun/backoffice/internal/domain"
)

type CustomerRepo struct{ db *gorm.DB }

func NewCustomerRepo(db *gorm.DB) *CustomerRepo { return &CustomerRepo{db: db} }

func (r *CustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	if c.Email != "" {
		c.Email = strings.ToLower(c.Email)
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailExists
		}
		return err
	}
	return nil
}

func (r *CustomerRepo) Get(ctx context.Context, id uint) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) List(ctx context.Context) ([]domain.Customer, error) {
	var list []domain.Customer
	if err := r.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *CustomerRepo) Update(ctx context.Context, id uint, upd *domain.CustomerUpdate) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if upd.Name != nil {
		c.Name = *upd.Name
	}
	if upd.Email != nil {
		c.Email = strings.ToLower(*upd.Email)
	}
	if upd.AdditionalEmail != nil {
		c.AdditionalEmail = *upd.AdditionalEmail
	}
	if upd.Phone != nil {
		c.Phone = *upd.Phone
	}
	if upd.Street != nil {
		c.Street = *upd.Street
	}
	if upd.City != nil {
		c.City = *upd.City
	}
	if upd.PostalCode != nil {
		c.PostalCode = upd.PostalCode
	}
	if err := r.db.WithContext(ctx).Save(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrEmailExists
		}
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id uint, policy domain.DeletePolicy) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c domain.Customer
		if err := tx.First(&c, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		switch policy {
		case domain.DeleteRestrict:
			var n int64
			if err := tx.Model(&domain.Invoice{}).Where("customer_id = ?", id).Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return domain.ErrCustomerHasInvoices
			}
		case domain.DeleteCascade:
			var ids []uint
			if err := tx.Model(&domain.Invoice{}).Where("customer_id = ?", id).Pluck("id", &ids).Error; err != nil {
				return err
			}
			if len(ids) > 0 {
				if err := purgeInvoiceAssociations(tx, ids); err != nil {
					return err
				}
				if err := tx.Delete(&domain.Invoice{}, ids).Error; err != nil {
					return err
				}
			}
		}
		return tx.Delete(&domain.Customer{}, id).Error
	})
}

func (r *CustomerRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&domain.Customer{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *CustomerRepo) ExistingEmails(ctx context.Context, emails []string) ([]string, error) {
	found := []string{}
	if len(emails) == 0 {
		return found, nil
	}
	err := r.db.WithContext(ctx).Model(&domain.Customer{}).
		Where("email IN ?", emails).
		Order("email").
		Pluck("email", &found).Error
	return found, err
}

func (r *CustomerRepo) BulkCreate(ctx context.Context, customers []domain.Customer) error {
	if len(customers) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&customers).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrEmailExists
	}
	return err
}
