package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/abeliasun/backoffice/internal/adapters/repo/postgres"
	"github.com/abeliasun/backoffice/internal/domain"
)

func candidate(name, email, phone, street string) domain.CustomerCandidate {
	return domain.CustomerCandidate{Name: str(name), Email: str(email), Phone: str(phone), Street: str(street)}
}

func customerCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.Customer{}).Count(&n).Error)
	return n
}

func TestImportInsertsValidSubset(t *testing.T) {
	db := newTestDB(t)
	uc := &ImportUC{Customers: postgres.NewCustomerRepo(db)}

	res, err := uc.Import(context.Background(), []domain.CustomerCandidate{
		candidate("A", "a@x.com", "1", "S"),
		candidate("B", "b@x.com", "2", "T"),
		{Name: str("C"), Email: str("c@x.com")}, // missing phone and street
	})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Imported)
	assert.Equal(t, 1, res.Skipped)
	assert.EqualValues(t, 2, customerCount(t, db))
}

func TestImportRejectsEmptyBatch(t *testing.T) {
	uc := &ImportUC{Customers: postgres.NewCustomerRepo(newTestDB(t))}

	_, err := uc.Import(context.Background(), nil)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Msg, "no candidate records")
}

func TestImportRejectsAllInvalid(t *testing.T) {
	db := newTestDB(t)
	uc := &ImportUC{Customers: postgres.NewCustomerRepo(db)}

	_, err := uc.Import(context.Background(), []domain.CustomerCandidate{
		{Name: str("A")},
		{Email: str(""), Name: str("B"), Phone: str("2"), Street: str("T")},
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Msg, "no valid customers")
	assert.Zero(t, customerCount(t, db))
}

func TestImportRejectsDuplicateInBatch(t *testing.T) {
	db := newTestDB(t)
	uc := &ImportUC{Customers: postgres.NewCustomerRepo(db)}

	_, err := uc.Import(context.Background(), []domain.CustomerCandidate{
		candidate("A", "a@x.com", "1", "S"),
		candidate("B", "a@x.com", "2", "T"),
	})
	var dErr *domain.DuplicateEmailsError
	require.ErrorAs(t, err, &dErr)
	assert.Equal(t, []string{"a@x.com"}, dErr.Emails, "the error must name the colliding email")
	assert.Zero(t, customerCount(t, db), "a rejected batch inserts nothing")
}

func TestImportRejectsExistingEmail(t *testing.T) {
	db := newTestDB(t)
	repo := postgres.NewCustomerRepo(db)
	require.NoError(t, repo.Create(context.Background(), &domain.Customer{Name: "Old", Email: "a@x.com", Phone: "0", Street: "S"}))
	uc := &ImportUC{Customers: repo}

	_, err := uc.Import(context.Background(), []domain.CustomerCandidate{
		candidate("A", "a@x.com", "1", "S"),
		candidate("B", "b@x.com", "2", "T"),
	})
	var xErr *domain.ExistingEmailsError
	require.ErrorAs(t, err, &xErr)
	assert.Equal(t, []string{"a@x.com"}, xErr.Emails)
	assert.EqualValues(t, 1, customerCount(t, db), "only the pre-existing row may remain")
}

func TestImportNormalizesEmailCase(t *testing.T) {
	db := newTestDB(t)
	uc := &ImportUC{Customers: postgres.NewCustomerRepo(db)}

	// same address in different casing is still an intra-batch duplicate
	_, err := uc.Import(context.Background(), []domain.CustomerCandidate{
		candidate("A", "A@X.com", "1", "S"),
		candidate("B", "a@x.com", "2", "T"),
	})
	var dErr *domain.DuplicateEmailsError
	require.ErrorAs(t, err, &dErr)
	assert.Zero(t, customerCount(t, db))
}
