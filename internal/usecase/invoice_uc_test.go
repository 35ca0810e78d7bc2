package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/abeliasun/backoffice/internal/adapters/repo/postgres"
	"github.com/abeliasun/backoffice/internal/domain"
)

func newInvoiceUC(t *testing.T) (*InvoiceUC, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return &InvoiceUC{
		Invoices:  postgres.NewInvoiceRepo(db),
		Customers: postgres.NewCustomerRepo(db),
		Employees: postgres.NewEmployeeRepo(db),
		Services:  postgres.NewServiceRepo(db),
	}, db
}

func TestCreateRequiresDateAndCustomer(t *testing.T) {
	uc, _ := newInvoiceUC(t)
	ctx := context.Background()

	var vErr *domain.ValidationError
	_, err := uc.Create(ctx, &domain.InvoiceInput{CustomerID: 1})
	require.ErrorAs(t, err, &vErr)

	_, err = uc.Create(ctx, &domain.InvoiceInput{Date: time.Now()})
	require.ErrorAs(t, err, &vErr)
}

func TestCreateRejectsUnknownReferences(t *testing.T) {
	uc, db := newInvoiceUC(t)
	ctx := context.Background()

	c := domain.Customer{Name: "A", Email: "a@x.com", Phone: "1", Street: "S"}
	require.NoError(t, db.Create(&c).Error)
	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("unknown customer", func(t *testing.T) {
		_, err := uc.Create(ctx, &domain.InvoiceInput{CustomerID: 999, Date: date})
		var rErr *domain.UnknownRefError
		require.ErrorAs(t, err, &rErr)
		assert.Equal(t, "customer", rErr.Kind)
	})

	t.Run("unknown service", func(t *testing.T) {
		_, err := uc.Create(ctx, &domain.InvoiceInput{
			CustomerID:         c.ID,
			Date:               date,
			AssociatedServices: []uint{41, 42},
		})
		var rErr *domain.UnknownRefError
		require.ErrorAs(t, err, &rErr)
		assert.Equal(t, "service", rErr.Kind)
		assert.Equal(t, []uint{41, 42}, rErr.IDs, "the error lists every unresolved id")
	})

	t.Run("unknown employee", func(t *testing.T) {
		_, err := uc.Create(ctx, &domain.InvoiceInput{
			CustomerID:    c.ID,
			Date:          date,
			EmployeeHours: []domain.EmployeeHoursInput{{EmployeeID: 77, Hours: 2}},
		})
		var rErr *domain.UnknownRefError
		require.ErrorAs(t, err, &rErr)
		assert.Equal(t, "employee", rErr.Kind)
	})

	// nothing may have been written by the rejected attempts
	var n int64
	require.NoError(t, db.Model(&domain.Invoice{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestUpdateValidatesSuppliedSetsOnly(t *testing.T) {
	uc, db := newInvoiceUC(t)
	ctx := context.Background()

	c := domain.Customer{Name: "A", Email: "a@x.com", Phone: "1", Street: "S"}
	require.NoError(t, db.Create(&c).Error)
	inv, err := uc.Create(ctx, &domain.InvoiceInput{
		CustomerID: c.ID,
		Date:       time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	bad := []uint{500}
	_, err = uc.Update(ctx, inv.ID, &domain.InvoiceUpdate{SelectedSubServices: &bad})
	var rErr *domain.UnknownRefError
	require.ErrorAs(t, err, &rErr)
	assert.Equal(t, "sub-service", rErr.Kind)

	// an update without association fields does not touch them
	num := 3
	got, err := uc.Update(ctx, inv.ID, &domain.InvoiceUpdate{NumberInvoice: &num})
	require.NoError(t, err)
	assert.Equal(t, 3, got.NumberInvoice)
}

func TestWorkedHoursValidatesRange(t *testing.T) {
	uc, _ := newInvoiceUC(t)
	ctx := context.Background()

	var vErr *domain.ValidationError
	_, err := uc.WorkedHours(ctx, time.Time{}, time.Now())
	require.ErrorAs(t, err, &vErr)

	_, err = uc.WorkedHours(ctx,
		time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.ErrorAs(t, err, &vErr)
}
