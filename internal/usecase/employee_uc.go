package usecase

import (
	"context"

	"github.com/abeliasun/backoffice/internal/domain"
)

type EmployeeUC struct {
	Employees domain.EmployeeRepo
}

func (uc *EmployeeUC) Create(ctx context.Context, e *domain.Employee) error {
	if e == nil || e.Name == "" {
		return domain.Validationf("name is required")
	}
	return uc.Employees.Create(ctx, e)
}

func (uc *EmployeeUC) Get(ctx context.Context, id uint) (*domain.Employee, error) {
	return uc.Employees.Get(ctx, id)
}

func (uc *EmployeeUC) List(ctx context.Context) ([]domain.Employee, error) {
	return uc.Employees.List(ctx)
}

func (uc *EmployeeUC) Update(ctx context.Context, id uint, upd *domain.EmployeeUpdate) (*domain.Employee, error) {
	if upd == nil {
		return nil, domain.Validationf("empty payload")
	}
	return uc.Employees.Update(ctx, id, upd)
}

func (uc *EmployeeUC) Delete(ctx context.Context, id uint) error {
	return uc.Employees.Delete(ctx, id)
}
