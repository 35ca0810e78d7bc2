package domain

import (
	"context"
	"time"
)

type CustomerRepo interface {
	Create(ctx context.Context, c *Customer) error
	Get(ctx context.Context, id uint) (*Customer, error)
	List(ctx context.Context) ([]Customer, error)
	Update(ctx context.Context, id uint, upd *CustomerUpdate) (*Customer, error)
	Delete(ctx context.Context, id uint, policy DeletePolicy) error
	Exists(ctx context.Context, id uint) (bool, error)
	// ExistingEmails returns the subset of emails already present in the
	// store, lowercased.
	ExistingEmails(ctx context.Context, emails []string) ([]string, error)
	// BulkCreate inserts all records in one transaction; none are inserted
	// on failure.
	BulkCreate(ctx context.Context, customers []Customer) error
}

type EmployeeRepo interface {
	Create(ctx context.Context, e *Employee) error
	Get(ctx context.Context, id uint) (*Employee, error)
	List(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, id uint, upd *EmployeeUpdate) (*Employee, error)
	Delete(ctx context.Context, id uint) error
	// MissingIDs returns the ids among the given ones that do not exist.
	MissingIDs(ctx context.Context, ids []uint) ([]uint, error)
}

type ServiceRepo interface {
	List(ctx context.Context) ([]Service, error)
	MissingServiceIDs(ctx context.Context, ids []uint) ([]uint, error)
	MissingSubServiceIDs(ctx context.Context, ids []uint) ([]uint, error)
	// Seed inserts the service catalogue if the table is empty.
	Seed(ctx context.Context, services []Service) error
}

type InvoiceRepo interface {
	// Create writes the invoice and all three association sets in one
	// transaction. Referenced ids must have been resolved by the caller.
	Create(ctx context.Context, in *InvoiceInput) (*Invoice, error)
	// Update overwrites supplied scalars and wholesale-replaces each
	// association set present in the payload, in one transaction.
	Update(ctx context.Context, id uint, upd *InvoiceUpdate) (*Invoice, error)
	// Delete removes the invoice and every join row referencing it.
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*Invoice, error)
	List(ctx context.Context) ([]Invoice, error)
	ListEmployeeRows(ctx context.Context) ([]InvoiceEmployee, error)
	// WorkedHours returns employee-hours rows for invoices dated within
	// [from, to].
	WorkedHours(ctx context.Context, from, to time.Time) ([]InvoiceEmployee, error)
}

// ReportMail is a rendered report ready for delivery. The PDF itself is
// produced outside this system.
type ReportMail struct {
	Recipients []string
	Subject    string
	Body       string
	Filename   string
	PDF        []byte
}

type ReportMailer interface {
	Send(ctx context.Context, m *ReportMail) error
}
