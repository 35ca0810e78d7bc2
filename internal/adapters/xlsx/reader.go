// Package xlsx maps spreadsheet rows onto candidate customer records. The
// first row is treated as a header line and matched against French and
// English column names; unmapped columns are ignored. Cells a row does not
// have stay nil, so the import pipeline can tell missing from empty.
package xlsx

import (
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/abeliasun/backoffice/internal/domain"
)

type columnMap struct {
	name, email, additional, phone, street, city, postal int
}

func mapHeaders(headers []string) columnMap {
	m := columnMap{name: -1, email: -1, additional: -1, phone: -1, street: -1, city: -1, postal: -1}
	for i, h := range headers {
		l := strings.ToLower(strings.TrimSpace(h))
		switch {
		case l == "":
		case strings.Contains(l, "additional") || strings.Contains(l, "secondaire"):
			m.additional = pick(m.additional, i)
		case strings.Contains(l, "email") || strings.Contains(l, "e-mail") || strings.Contains(l, "mail"):
			m.email = pick(m.email, i)
		case strings.Contains(l, "nom") || strings.Contains(l, "name"):
			m.name = pick(m.name, i)
		case strings.Contains(l, "phone") || strings.Contains(l, "téléphone") || strings.Contains(l, "telephone") || strings.Contains(l, "tél"):
			m.phone = pick(m.phone, i)
		case strings.Contains(l, "rue") || strings.Contains(l, "street") || strings.Contains(l, "adresse") || strings.Contains(l, "address"):
			m.street = pick(m.street, i)
		case strings.Contains(l, "ville") || strings.Contains(l, "city"):
			m.city = pick(m.city, i)
		case strings.Contains(l, "postal") || l == "cp" || strings.Contains(l, "zip"):
			m.postal = pick(m.postal, i)
		}
	}
	return m
}

// pick keeps the first matching column.
func pick(current, candidate int) int {
	if current >= 0 {
		return current
	}
	return candidate
}

// ReadCandidates parses the first sheet of a workbook into candidate
// records. Rows with no mapped cell at all are skipped.
func ReadCandidates(r io.Reader) ([]domain.CustomerCandidate, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, domain.Validationf("cannot read workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, domain.Validationf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, domain.Validationf("sheet has no data rows")
	}

	cols := mapHeaders(rows[0])
	var out []domain.CustomerCandidate
	for _, row := range rows[1:] {
		c := domain.CustomerCandidate{
			Name:   cell(row, cols.name),
			Email:  cell(row, cols.email),
			Phone:  cell(row, cols.phone),
			Street: cell(row, cols.street),
			City:   cell(row, cols.city),
		}
		if extra := cell(row, cols.additional); extra != nil && *extra != "" {
			for _, e := range strings.FieldsFunc(*extra, func(r rune) bool { return r == ',' || r == ';' }) {
				if e = strings.TrimSpace(e); e != "" {
					c.AdditionalEmail = append(c.AdditionalEmail, e)
				}
			}
		}
		if raw := cell(row, cols.postal); raw != nil {
			if n, err := strconv.Atoi(strings.TrimSpace(*raw)); err == nil {
				c.PostalCode = &n
			}
		}
		if empty(c) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func cell(row []string, idx int) *string {
	if idx < 0 || idx >= len(row) {
		return nil
	}
	v := strings.TrimSpace(row[idx])
	return &v
}

func empty(c domain.CustomerCandidate) bool {
	for _, f := range []*string{c.Name, c.Email, c.Phone, c.Street, c.City} {
		if f != nil && *f != "" {
			return false
		}
	}
	return len(c.AdditionalEmail) == 0 && c.PostalCode == nil
}
