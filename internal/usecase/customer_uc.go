package usecase

import (
	"context"
	"strings"

	"github.com/abeliasun/backoffice/internal/domain"
)

type CustomerUC struct {
	Customers domain.CustomerRepo
	// DeletePolicy applies to invoices still referencing a deleted
	// customer.
	DeletePolicy domain.DeletePolicy
}

func (uc *CustomerUC) Create(ctx context.Context, c *domain.Customer) error {
	if c == nil || c.Name == "" || c.Email == "" || c.Phone == "" {
		return domain.Validationf("name, email and phone are required")
	}
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	if c.AdditionalEmail == nil {
		c.AdditionalEmail = []string{}
	}
	return uc.Customers.Create(ctx, c)
}

func (uc *CustomerUC) Get(ctx context.Context, id uint) (*domain.Customer, error) {
	return uc.Customers.Get(ctx, id)
}

func (uc *CustomerUC) List(ctx context.Context) ([]domain.Customer, error) {
	return uc.Customers.List(ctx)
}

func (uc *CustomerUC) Update(ctx context.Context, id uint, upd *domain.CustomerUpdate) (*domain.Customer, error) {
	if upd == nil {
		return nil, domain.Validationf("empty payload")
	}
	if upd.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*upd.Email))
		if e == "" {
			return nil, domain.Validationf("email cannot be empty")
		}
		upd.Email = &e
	}
	return uc.Customers.Update(ctx, id, upd)
}

func (uc *CustomerUC) Delete(ctx context.Context, id uint) error {
	return uc.Customers.Delete(ctx, id, uc.DeletePolicy)
}
