package usecase

import (
	"context"
	"time"

	"github.com/abeliasun/backoffice/internal/domain"
)

// InvoiceUC manages an invoice's scalar fields and its three association
// sets. Every referenced id is resolved before anything is written: an
// unresolved reference fails the whole operation instead of being skipped
// or inserted dangling.
type InvoiceUC struct {
	Invoices  domain.InvoiceRepo
	Customers domain.CustomerRepo
	Employees domain.EmployeeRepo
	Services  domain.ServiceRepo
}

func (uc *InvoiceUC) Create(ctx context.Context, in *domain.InvoiceInput) (*domain.Invoice, error) {
	if in == nil {
		return nil, domain.Validationf("empty payload")
	}
	if in.Date.IsZero() {
		return nil, domain.Validationf("date is required")
	}
	if in.CustomerID == 0 {
		return nil, domain.Validationf("customerId is required")
	}
	if err := uc.resolveCustomer(ctx, in.CustomerID); err != nil {
		return nil, err
	}
	if err := uc.resolveAssociations(ctx, in.AssociatedServices, in.SelectedSubServices, in.EmployeeHours); err != nil {
		return nil, err
	}
	return uc.Invoices.Create(ctx, in)
}

func (uc *InvoiceUC) Update(ctx context.Context, id uint, upd *domain.InvoiceUpdate) (*domain.Invoice, error) {
	if upd == nil {
		return nil, domain.Validationf("empty payload")
	}
	if upd.CustomerID != nil {
		if err := uc.resolveCustomer(ctx, *upd.CustomerID); err != nil {
			return nil, err
		}
	}
	var services, subServices []uint
	var hours []domain.EmployeeHoursInput
	if upd.AssociatedServices != nil {
		services = *upd.AssociatedServices
	}
	if upd.SelectedSubServices != nil {
		subServices = *upd.SelectedSubServices
	}
	if upd.EmployeeHours != nil {
		hours = *upd.EmployeeHours
	}
	if err := uc.resolveAssociations(ctx, services, subServices, hours); err != nil {
		return nil, err
	}
	return uc.Invoices.Update(ctx, id, upd)
}

func (uc *InvoiceUC) Delete(ctx context.Context, id uint) error {
	return uc.Invoices.Delete(ctx, id)
}

func (uc *InvoiceUC) Get(ctx context.Context, id uint) (*domain.Invoice, error) {
	return uc.Invoices.Get(ctx, id)
}

func (uc *InvoiceUC) List(ctx context.Context) ([]domain.Invoice, error) {
	return uc.Invoices.List(ctx)
}

func (uc *InvoiceUC) ListEmployeeRows(ctx context.Context) ([]domain.InvoiceEmployee, error) {
	return uc.Invoices.ListEmployeeRows(ctx)
}

func (uc *InvoiceUC) WorkedHours(ctx context.Context, from, to time.Time) ([]domain.InvoiceEmployee, error) {
	if from.IsZero() || to.IsZero() {
		return nil, domain.Validationf("startDate and endDate are required")
	}
	if to.Before(from) {
		return nil, domain.Validationf("endDate is before startDate")
	}
	return uc.Invoices.WorkedHours(ctx, from, to)
}

func (uc *InvoiceUC) resolveCustomer(ctx context.Context, id uint) error {
	ok, err := uc.Customers.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &domain.UnknownRefError{Kind: "customer", IDs: []uint{id}}
	}
	return nil
}

func (uc *InvoiceUC) resolveAssociations(ctx context.Context, services, subServices []uint, hours []domain.EmployeeHoursInput) error {
	if len(services) > 0 {
		missing, err := uc.Services.MissingServiceIDs(ctx, services)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return &domain.UnknownRefError{Kind: "service", IDs: missing}
		}
	}
	if len(subServices) > 0 {
		missing, err := uc.Services.MissingSubServiceIDs(ctx, subServices)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return &domain.UnknownRefError{Kind: "sub-service", IDs: missing}
		}
	}
	if len(hours) > 0 {
		ids := make([]uint, 0, len(hours))
		seen := make(map[uint]struct{}, len(hours))
		for _, eh := range hours {
			if eh.EmployeeID == 0 {
				return domain.Validationf("employeeHours entry without employeeId")
			}
			if _, ok := seen[eh.EmployeeID]; !ok {
				seen[eh.EmployeeID] = struct{}{}
				ids = append(ids, eh.EmployeeID)
			}
		}
		missing, err := uc.Employees.MissingIDs(ctx, ids)
		if err != nil {
			return err
		}
		if len(missing) > 0 {
			return &domain.UnknownRefError{Kind: "employee", IDs: missing}
		}
	}
	return nil
}
