package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/abeliasun/backoffice/internal/domain"
)

type invoiceFixtures struct {
	customer  domain.Customer
	employees []domain.Employee
	services  []domain.Service
}

func seedInvoiceFixtures(t *testing.T, db *gorm.DB) invoiceFixtures {
	t.Helper()
	f := invoiceFixtures{
		customer: domain.Customer{Name: "Martin", Email: "martin@x.com", Phone: "0470", Street: "Rue Basse 3"},
		employees: []domain.Employee{
			{Name: "Luc"}, {Name: "Anne"},
		},
		services: []domain.Service{
			{Name: "Entretien", SubServices: []domain.SubService{{Name: "Tonte"}, {Name: "Broyage"}}},
			{Name: "Aménagement", SubServices: []domain.SubService{{Name: "Aménagement pierre"}}},
		},
	}
	require.NoError(t, db.Create(&f.customer).Error)
	require.NoError(t, db.Create(&f.employees).Error)
	require.NoError(t, db.Create(&f.services).Error)
	return f
}

func TestInvoiceCreateHydrated(t *testing.T) {
	db := setupTestDB(t)
	f := seedInvoiceFixtures(t, db)
	repo := NewInvoiceRepo(db)
	ctx := context.Background()

	date := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	inv, err := repo.Create(ctx, &domain.InvoiceInput{
		CustomerID:          f.customer.ID,
		Date:                date,
		NumberInvoice:       7,
		Tagline:             "data:image/png;base64,sig",
		Pictures:            []string{"data:image/png;base64,p1"},
		AssociatedServices:  []uint{f.services[0].ID},
		SelectedSubServices: []uint{f.services[0].SubServices[0].ID, f.services[1].SubServices[0].ID},
		EmployeeHours:       []domain.EmployeeHoursInput{{EmployeeID: f.employees[0].ID, Hours: 3.5}},
	})
	require.NoError(t, err)

	require.NotNil(t, inv.Customer)
	assert.Equal(t, "martin@x.com", inv.Customer.Email)
	require.Len(t, inv.EmployeeHours, 1)
	assert.Equal(t, f.employees[0].ID, inv.EmployeeHours[0].EmployeeID)
	assert.InDelta(t, 3.5, inv.EmployeeHours[0].Hours, 1e-9)
	assert.True(t, inv.EmployeeHours[0].Date.Equal(date), "employee-hours rows carry the invoice date")
	require.Len(t, inv.AssociatedServices, 1)
	assert.Equal(t, "Entretien", inv.AssociatedServices[0].Name)
	assert.Len(t, inv.SelectedSubServices, 2)
	assert.Equal(t, []string{"data:image/png;base64,p1"}, inv.Pictures)
}

func TestInvoiceUpdateReplacesEmployeeHours(t *testing.T) {
	db := setupTestDB(t)
	f := seedInvoiceFixtures(t, db)
	repo := NewInvoiceRepo(db)
	ctx := context.Background()

	inv, err := repo.Create(ctx, &domain.InvoiceInput{
		CustomerID:    f.customer.ID,
		Date:          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		EmployeeHours: []domain.EmployeeHoursInput{{EmployeeID: f.employees[0].ID, Hours: 3.5}},
	})
	require.NoError(t, err)

	hours := []domain.EmployeeHoursInput{
		{EmployeeID: f.employees[0].ID, Hours: 5},
		{EmployeeID: f.employees[1].ID, Hours: 2},
	}
	updated, err := repo.Update(ctx, inv.ID, &domain.InvoiceUpdate{EmployeeHours: &hours})
	require.NoError(t, err)

	require.Len(t, updated.EmployeeHours, 2, "old rows must be gone, exactly the new set remains")
	byEmployee := map[uint]float64{}
	for _, row := range updated.EmployeeHours {
		byEmployee[row.EmployeeID] = row.Hours
	}
	assert.InDelta(t, 5, byEmployee[f.employees[0].ID], 1e-9)
	assert.InDelta(t, 2, byEmployee[f.employees[1].ID], 1e-9)

	var n int64
	require.NoError(t, db.Model(&domain.InvoiceEmployee{}).Where("invoice_id = ?", inv.ID).Count(&n).Error)
	assert.EqualValues(t, 2, n)
}

func TestInvoiceUpdateRefreshesRowDates(t *testing.T) {
	db := setupTestDB(t)
	f := seedInvoiceFixtures(t, db)
	repo := NewInvoiceRepo(db)
	ctx := context.Background()

	inv, err := repo.Create(ctx, &domain.InvoiceInput{
		CustomerID:    f.customer.ID,
		Date:          time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		EmployeeHours: []domain.EmployeeHoursInput{{EmployeeID: f.employees[0].ID, Hours: 1}},
	})
	require.NoError(t, err)

	newDate := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	hours := []domain.EmployeeHoursInput{{EmployeeID: f.employees[0].ID, Hours: 1}}
	updated, err := repo.Update(ctx, inv.ID, &domain.InvoiceUpdate{Date: &newDate, EmployeeHours: &hours})
	require.NoError(t, err)

	require.Len(t, updated.EmployeeHours, 1)
	assert.True(t, updated.EmployeeHours[0].Date.Equal(newDate), "recreated rows take the updated invoice date")
}

func TestInvoiceUpdateLeavesAbsentSetsUntouched(t *testing.T) {
	db := setupTestDB(t)
	f := seedInvoiceFixtures(t, db)
	repo := NewInvoiceRepo(db)
	ctx := context.Background()

	inv, err := repo.Create(ctx, &domain.InvoiceInput{
		CustomerID:         f.customer.ID,
		Date:               time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		AssociatedServices: []uint{f.services[0].ID, f.services[1].ID},
		EmployeeHours:      []domain.EmployeeHoursInput{{EmployeeID: f.employees[0].ID, Hours: 3}},
	})
	require.NoError(t, err)

	num := 99
	updated, err := repo.Update(ctx, inv.ID, &domain.InvoiceUpdate{NumberInvoice: &num})
	require.NoError(t, err)

	assert.Equal(t, 99, updated.NumberInvoice)
	assert.Len(t, updated.AssociatedServices, 2, "absent associatedServices leaves the set unchanged")
	assert.Len(t, updated.EmployeeHours, 1, "absent employeeHours leaves the rows unchanged")
}

func TestInvoiceUpdateReplacesServiceSets(t *testing.T) {
	db := setupTestDB(t)
	f := seedInvoiceFixtures(t, db)
	repo := NewInvoiceRepo(db)
	ctx := context.Background()

	inv, err := repo.Create(ctx, &domain.InvoiceInput{
		CustomerID:          f.customer.ID,
		Date:                time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		AssociatedServices:  []uint{f.services[0].ID},
		SelectedSubServices: []uint{f.services[0].SubServices[0].ID},
	})
	require.NoError(t, err)

	services := []uint{f.services[1].ID}
	none := []uint{}
	updated, err := repo.Update(ctx, inv.ID, &domain.InvoiceUpdate{
		AssociatedServices:  &services,
		SelectedSubServices: &none,
	})
	require.NoError(t, err)

	require.Len(t, updated.AssociatedServices, 1)
	assert.Equal(t, f.services[1].ID, updated.AssociatedServices[0].ID)
	assert.Empty(t, updated.SelectedSubServices, "an empty supplied list clears the set")
}

func TestInvoiceUpdateNotFound(t *testing.T) {
	repo := NewInvoiceRepo(setupTestDB(t))
	num := 1
	_, err := repo.Update(context.Background(), 123, &domain.InvoiceUpdate{NumberInvoice: &num})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceDeleteRemovesJoinRows(t *testing.T) {
	db := setupTestDB(t)
	f := seedInvoiceFixtures(t, db)
	repo := NewInvoiceRepo(db)
	ctx := context.Background()

	inv, err := repo.Create(ctx, &domain.InvoiceInput{
		CustomerID:          f.customer.ID,
		Date:                time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		AssociatedServices:  []uint{f.services[0].ID},
		SelectedSubServices: []uint{f.services[0].SubServices[0].ID},
		EmployeeHours:       []domain.EmployeeHoursInput{{EmployeeID: f.employees[0].ID, Hours: 4}},
	})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, inv.ID))

	_, err = repo.Get(ctx, inv.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var n int64
	require.NoError(t, db.Model(&domain.InvoiceEmployee{}).Where("invoice_id = ?", inv.ID).Count(&n).Error)
	assert.Zero(t, n, "no employee-hours rows may reference a deleted invoice")
	require.NoError(t, db.Table("invoice_services").Where("invoice_id = ?", inv.ID).Count(&n).Error)
	assert.Zero(t, n)
	require.NoError(t, db.Table("invoice_sub_services").Where("invoice_id = ?", inv.ID).Count(&n).Error)
	assert.Zero(t, n)
}

func TestInvoiceDeleteNotFound(t *testing.T) {
	repo := NewInvoiceRepo(setupTestDB(t))
	assert.ErrorIs(t, repo.Delete(context.Background(), 55), domain.ErrNotFound)
}

func TestWorkedHoursRange(t *testing.T) {
	db := setupTestDB(t)
	f := seedInvoiceFixtures(t, db)
	repo := NewInvoiceRepo(db)
	ctx := context.Background()

	mk := func(day int, hours float64) {
		_, err := repo.Create(ctx, &domain.InvoiceInput{
			CustomerID:    f.customer.ID,
			Date:          time.Date(2025, 1, day, 0, 0, 0, 0, time.UTC),
			EmployeeHours: []domain.EmployeeHoursInput{{EmployeeID: f.employees[0].ID, Hours: hours}},
		})
		require.NoError(t, err)
	}
	mk(5, 2)
	mk(15, 3)
	mk(25, 4)

	rows, err := repo.WorkedHours(ctx,
		time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, 3, rows[0].Hours, 1e-9)
	require.NotNil(t, rows[0].Employee)
	assert.Equal(t, "Luc", rows[0].Employee.Name)
	require.NotNil(t, rows[0].Invoice)
}
