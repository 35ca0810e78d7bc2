package usecase

import (
	"context"
	"strings"

	"github.com/abeliasun/backoffice/internal/domain"
)

// ImportUC is the bulk customer reconciler. A batch either passes every
// check and is inserted whole, or is rejected without touching the store.
// The only per-record filtering happens before the checks: candidates
// missing a required field are dropped and counted, not reported one by
// one.
type ImportUC struct {
	Customers domain.CustomerRepo
}

type ImportResult struct {
	Imported int
	Skipped  int
}

func (uc *ImportUC) Import(ctx context.Context, candidates []domain.CustomerCandidate) (*ImportResult, error) {
	if len(candidates) == 0 {
		return nil, domain.Validationf("no candidate records supplied")
	}

	valid := make([]domain.CustomerCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Valid() {
			valid = append(valid, c)
		}
	}
	skipped := len(candidates) - len(valid)
	if len(valid) == 0 {
		return nil, domain.Validationf("no valid customers found; name, email, phone and street are required")
	}

	emails := make([]string, 0, len(valid))
	seen := make(map[string]int, len(valid))
	var dups []string
	for _, c := range valid {
		e := strings.ToLower(strings.TrimSpace(*c.Email))
		seen[e]++
		if seen[e] == 2 {
			dups = append(dups, e)
		}
		emails = append(emails, e)
	}
	if len(dups) > 0 {
		return nil, &domain.DuplicateEmailsError{Emails: dups}
	}

	existing, err := uc.Customers.ExistingEmails(ctx, emails)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, &domain.ExistingEmailsError{Emails: existing}
	}

	records := make([]domain.Customer, len(valid))
	for i, c := range valid {
		records[i] = c.Customer()
		records[i].Email = emails[i]
	}
	if err := uc.Customers.BulkCreate(ctx, records); err != nil {
		return nil, err
	}
	return &ImportResult{Imported: len(records), Skipped: skipped}, nil
}
