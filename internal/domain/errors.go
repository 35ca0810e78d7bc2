package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrEmailExists signals a customer email uniqueness violation. It is
	// kept distinct from generic validation so callers can show a
	// specific message.
	ErrEmailExists = errors.New("email already exists")

	// ErrCustomerHasInvoices is returned by the restrict delete policy.
	ErrCustomerHasInvoices = errors.New("customer is still referenced by invoices")
)

// ValidationError reports malformed or incomplete input. No state change
// accompanies it.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UnknownRefError lists referenced ids that do not resolve to existing
// entities. Composition operations fail outright on it instead of writing
// dangling join rows.
type UnknownRefError struct {
	Kind string
	IDs  []uint
}

func (e *UnknownRefError) Error() string {
	parts := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		parts[i] = fmt.Sprint(id)
	}
	return fmt.Sprintf("unknown %s id(s): %s", e.Kind, strings.Join(parts, ", "))
}

// DuplicateEmailsError rejects an import batch whose candidates collide
// with each other.
type DuplicateEmailsError struct {
	Emails []string
}

func (e *DuplicateEmailsError) Error() string {
	return "duplicate email addresses within the batch: " + strings.Join(e.Emails, ", ")
}

// ExistingEmailsError rejects an import batch colliding with customers
// already in the store.
type ExistingEmailsError struct {
	Emails []string
}

func (e *ExistingEmailsError) Error() string {
	return "email addresses already registered: " + strings.Join(e.Emails, ", ")
}
