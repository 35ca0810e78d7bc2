package domain

import "time"

// Invoice is a dated service report for one customer. Its three association
// sets are independent of each other: the (employee, hours) rows are the
// authoritative record of work performed and are never derived from the
// associated services.
type Invoice struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Date          time.Time `gorm:"not null" json:"date"`
	NumberInvoice int       `json:"numberInvoice"`
	Pictures      []string  `gorm:"type:jsonb;serializer:json" json:"pictures"`
	Tagline       string    `gorm:"type:text" json:"tagline,omitempty"`
	CustomerID    uint      `gorm:"index;not null" json:"customerId"`
	Customer      *Customer `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`

	EmployeeHours       []InvoiceEmployee `gorm:"foreignKey:InvoiceID" json:"employeeHours,omitempty"`
	AssociatedServices  []Service         `gorm:"many2many:invoice_services" json:"associatedServices,omitempty"`
	SelectedSubServices []SubService      `gorm:"many2many:invoice_sub_services" json:"selectedSubServices,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// InvoiceEmployee links an invoice to an employee and carries payload: the
// hours worked and the date they were worked (copied from the invoice).
type InvoiceEmployee struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	InvoiceID  uint      `gorm:"index;not null" json:"invoiceId"`
	Invoice    *Invoice  `gorm:"foreignKey:InvoiceID" json:"invoice,omitempty"`
	EmployeeID uint      `gorm:"index;not null" json:"employeeId"`
	Employee   *Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Hours      float64   `gorm:"type:decimal(6,2)" json:"hours"`
	Date       time.Time `json:"date"`
}

// EmployeeHoursInput is one (employee, hours) pair of a create/update payload.
type EmployeeHoursInput struct {
	EmployeeID uint    `json:"employeeId"`
	Hours      float64 `json:"hours"`
}

// InvoiceInput is the create payload. Association lists may be empty.
type InvoiceInput struct {
	CustomerID          uint                 `json:"customerId"`
	Date                time.Time            `json:"date"`
	NumberInvoice       int                  `json:"numberInvoice"`
	Tagline             string               `json:"tagline"`
	Pictures            []string             `json:"pictures"`
	AssociatedServices  []uint               `json:"associatedServices"`
	SelectedSubServices []uint               `json:"selectedSubServices"`
	EmployeeHours       []EmployeeHoursInput `json:"employeeHours"`
}

// InvoiceUpdate is the update payload. Nil scalar fields keep the stored
// value. A nil association list leaves that set untouched; a non-nil list
// replaces the set wholesale, an empty one included.
type InvoiceUpdate struct {
	Date                *time.Time            `json:"date"`
	NumberInvoice       *int                  `json:"numberInvoice"`
	CustomerID          *uint                 `json:"customerId"`
	Tagline             *string               `json:"tagline"`
	Pictures            *[]string             `json:"pictures"`
	AssociatedServices  *[]uint               `json:"associatedServices"`
	SelectedSubServices *[]uint               `json:"selectedSubServices"`
	EmployeeHours       *[]EmployeeHoursInput `json:"employeeHours"`
}
