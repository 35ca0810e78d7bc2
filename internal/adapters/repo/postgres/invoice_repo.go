package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/abeliasun/backoffice/internal/domain"
)

type InvoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepo(db *gorm.DB) *InvoiceRepo { return &InvoiceRepo{db: db} }

// Create writes the invoice row and all three association sets in a single
// transaction, so a failed association write never leaves a partial
// invoice behind. Employee-hours rows carry the invoice's date.
func (r *InvoiceRepo) Create(ctx context.Context, in *domain.InvoiceInput) (*domain.Invoice, error) {
	inv := domain.Invoice{
		Date:          in.Date,
		NumberInvoice: in.NumberInvoice,
		Tagline:       in.Tagline,
		Pictures:      in.Pictures,
		CustomerID:    in.CustomerID,
	}
	if inv.Pictures == nil {
		inv.Pictures = []string{}
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&inv).Error; err != nil {
			return err
		}
		if len(in.AssociatedServices) > 0 {
			var svcs []domain.Service
			if err := tx.Find(&svcs, in.AssociatedServices).Error; err != nil {
				return err
			}
			if err := tx.Model(&inv).Association("AssociatedServices").Append(&svcs); err != nil {
				return err
			}
		}
		if len(in.SelectedSubServices) > 0 {
			var subs []domain.SubService
			if err := tx.Find(&subs, in.SelectedSubServices).Error; err != nil {
				return err
			}
			if err := tx.Model(&inv).Association("SelectedSubServices").Append(&subs); err != nil {
				return err
			}
		}
		return createEmployeeHours(tx, inv.ID, inv.Date, in.EmployeeHours)
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, inv.ID)
}

// Update overwrites the supplied scalar fields and wholesale-replaces each
// association set present in the payload; absent sets stay untouched. The
// employee-hours rows are deleted and recreated, their date taken from the
// invoice's (possibly just updated) date.
func (r *InvoiceRepo) Update(ctx context.Context, id uint, upd *domain.InvoiceUpdate) (*domain.Invoice, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv domain.Invoice
		if err := tx.First(&inv, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if upd.Date != nil {
			inv.Date = *upd.Date
		}
		if upd.NumberInvoice != nil {
			inv.NumberInvoice = *upd.NumberInvoice
		}
		if upd.CustomerID != nil {
			inv.CustomerID = *upd.CustomerID
		}
		if upd.Tagline != nil {
			inv.Tagline = *upd.Tagline
		}
		if upd.Pictures != nil {
			inv.Pictures = *upd.Pictures
		}
		if err := tx.Save(&inv).Error; err != nil {
			return err
		}
		if upd.AssociatedServices != nil {
			svcs := []domain.Service{}
			if len(*upd.AssociatedServices) > 0 {
				if err := tx.Find(&svcs, *upd.AssociatedServices).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&inv).Association("AssociatedServices").Replace(&svcs); err != nil {
				return err
			}
		}
		if upd.SelectedSubServices != nil {
			subs := []domain.SubService{}
			if len(*upd.SelectedSubServices) > 0 {
				if err := tx.Find(&subs, *upd.SelectedSubServices).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&inv).Association("SelectedSubServices").Replace(&subs); err != nil {
				return err
			}
		}
		if upd.EmployeeHours != nil {
			if err := tx.Where("invoice_id = ?", id).Delete(&domain.InvoiceEmployee{}).Error; err != nil {
				return err
			}
			return createEmployeeHours(tx, id, inv.Date, *upd.EmployeeHours)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.Get(ctx, id)
}

// Delete removes the invoice and every join row referencing it, so no
// orphaned association survives the row itself.
func (r *InvoiceRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var inv domain.Invoice
		if err := tx.First(&inv, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNotFound
			}
			return err
		}
		if err := purgeInvoiceAssociations(tx, []uint{id}); err != nil {
			return err
		}
		return tx.Delete(&domain.Invoice{}, id).Error
	})
}

func (r *InvoiceRepo) Get(ctx context.Context, id uint) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.hydrated(r.db.WithContext(ctx)).First(&inv, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepo) List(ctx context.Context) ([]domain.Invoice, error) {
	var list []domain.Invoice
	if err := r.hydrated(r.db.WithContext(ctx)).Order("id").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *InvoiceRepo) ListEmployeeRows(ctx context.Context) ([]domain.InvoiceEmployee, error) {
	var rows []domain.InvoiceEmployee
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Preload("Invoice").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *InvoiceRepo) WorkedHours(ctx context.Context, from, to time.Time) ([]domain.InvoiceEmployee, error) {
	var rows []domain.InvoiceEmployee
	err := r.db.WithContext(ctx).
		Joins("JOIN invoices ON invoices.id = invoice_employees.invoice_id").
		Where("invoices.date BETWEEN ? AND ?", from, to).
		Preload("Employee").
		Preload("Invoice").
		Order("invoice_employees.id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *InvoiceRepo) hydrated(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Customer").
		Preload("EmployeeHours", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("EmployeeHours.Employee").
		Preload("AssociatedServices").
		Preload("SelectedSubServices")
}

func createEmployeeHours(tx *gorm.DB, invoiceID uint, date time.Time, hours []domain.EmployeeHoursInput) error {
	if len(hours) == 0 {
		return nil
	}
	rows := make([]domain.InvoiceEmployee, len(hours))
	for i, eh := range hours {
		rows[i] = domain.InvoiceEmployee{
			InvoiceID:  invoiceID,
			EmployeeID: eh.EmployeeID,
			Hours:      eh.Hours,
			Date:       date,
		}
	}
	return tx.Create(&rows).Error
}

// purgeInvoiceAssociations clears the employee-hours rows and both
// payload-free join tables for the given invoices. Must run inside the
// transaction that deletes the invoices themselves.
func purgeInvoiceAssociations(tx *gorm.DB, invoiceIDs []uint) error {
	if len(invoiceIDs) == 0 {
		return nil
	}
	if err := tx.Where("invoice_id IN ?", invoiceIDs).Delete(&domain.InvoiceEmployee{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM invoice_services WHERE invoice_id IN ?", invoiceIDs).Error; err != nil {
		return err
	}
	return tx.Exec("DELETE FROM invoice_sub_services WHERE invoice_id IN ?", invoiceIDs).Error
}
