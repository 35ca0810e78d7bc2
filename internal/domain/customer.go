package domain

import (
	"time"
)

// Customer is a billing/contact record. Email is the natural key: it is
// unique across all customers and lowercased at rest.
type Customer struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"size:140;not null" json:"name"`
	Email           string    `gorm:"size:140;uniqueIndex;not null" json:"email"`
	AdditionalEmail []string  `gorm:"type:jsonb;serializer:json" json:"additionalEmail"`
	Phone           string    `gorm:"size:60;not null" json:"phone"`
	Street          string    `gorm:"size:255;not null" json:"street"`
	City            string    `gorm:"size:100" json:"city,omitempty"`
	PostalCode      *int      `json:"postalCode,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// CustomerUpdate carries a partial update. Nil fields keep the stored value.
type CustomerUpdate struct {
	Name            *string   `json:"name"`
	Email           *string   `json:"email"`
	AdditionalEmail *[]string `json:"additionalEmail"`
	Phone           *string   `json:"phone"`
	Street          *string   `json:"street"`
	City            *string   `json:"city"`
	PostalCode      *int      `json:"postalCode"`
}

// CustomerCandidate is one row of a bulk import, after column mapping but
// before validation. Pointer fields keep the missing / empty / present
// distinction the validation step depends on.
type CustomerCandidate struct {
	Name            *string  `json:"name"`
	Email           *string  `json:"email"`
	AdditionalEmail []string `json:"additionalEmail"`
	Phone           *string  `json:"phone"`
	Street          *string  `json:"street"`
	City            *string  `json:"city"`
	PostalCode      *int     `json:"postalCode"`
}

// Valid reports whether the candidate carries every required field.
func (c *CustomerCandidate) Valid() bool {
	for _, f := range []*string{c.Name, c.Email, c.Phone, c.Street} {
		if f == nil || *f == "" {
			return false
		}
	}
	return true
}

// Customer converts a valid candidate into an insertable record.
func (c *CustomerCandidate) Customer() Customer {
	out := Customer{
		Name:            *c.Name,
		Email:           *c.Email,
		Phone:           *c.Phone,
		Street:          *c.Street,
		AdditionalEmail: c.AdditionalEmail,
		PostalCode:      c.PostalCode,
	}
	if c.City != nil {
		out.City = *c.City
	}
	if out.AdditionalEmail == nil {
		out.AdditionalEmail = []string{}
	}
	return out
}

// DeletePolicy decides what happens to invoices that still reference a
// customer being deleted. The source system orphaned them; restrict and
// cascade are offered as explicit alternatives.
type DeletePolicy string

const (
	DeleteOrphan   DeletePolicy = "orphan"
	DeleteRestrict DeletePolicy = "restrict"
	DeleteCascade  DeletePolicy = "cascade"
)

// ParseDeletePolicy maps a config string to a policy, defaulting to orphan.
func ParseDeletePolicy(s string) DeletePolicy {
	switch DeletePolicy(s) {
	case DeleteRestrict:
		return DeleteRestrict
	case DeleteCascade:
		return DeleteCascade
	default:
		return DeleteOrphan
	}
}
