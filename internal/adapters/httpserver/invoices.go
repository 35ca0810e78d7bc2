package httpserver

import (
	"net/http"
	"time"

	"github.com/abeliasun/backoffice/internal/domain"
)

// invoiceCreateReq mirrors domain.InvoiceInput with the date as a string,
// accepted in RFC 3339 or plain YYYY-MM-DD form.
type invoiceCreateReq struct {
	CustomerID          uint                        `json:"customerId"`
	Date                string                      `json:"date"`
	NumberInvoice       int                         `json:"numberInvoice"`
	Tagline             string                      `json:"tagline"`
	Pictures            []string                    `json:"pictures"`
	AssociatedServices  []uint                      `json:"associatedServices"`
	SelectedSubServices []uint                      `json:"selectedSubServices"`
	EmployeeHours       []domain.EmployeeHoursInput `json:"employeeHours"`
}

type invoiceUpdateReq struct {
	CustomerID          *uint                        `json:"customerId"`
	Date                *string                      `json:"date"`
	NumberInvoice       *int                         `json:"numberInvoice"`
	Tagline             *string                      `json:"tagline"`
	Pictures            *[]string                    `json:"pictures"`
	AssociatedServices  *[]uint                      `json:"associatedServices"`
	SelectedSubServices *[]uint                      `json:"selectedSubServices"`
	EmployeeHours       *[]domain.EmployeeHoursInput `json:"employeeHours"`
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, domain.Validationf("invalid date %q", s)
	}
	return t, nil
}

func (s *Server) createInvoice(w http.ResponseWriter, r *http.Request) {
	var req invoiceCreateReq
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	in := domain.InvoiceInput{
		CustomerID:          req.CustomerID,
		NumberInvoice:       req.NumberInvoice,
		Tagline:             req.Tagline,
		Pictures:            req.Pictures,
		AssociatedServices:  req.AssociatedServices,
		SelectedSubServices: req.SelectedSubServices,
		EmployeeHours:       req.EmployeeHours,
	}
	if req.Date != "" {
		d, err := parseDate(req.Date)
		if err != nil {
			respondError(w, err)
			return
		}
		in.Date = d
	}
	inv, err := s.invoices.Create(r.Context(), &in)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, inv)
}

func (s *Server) listInvoices(w http.ResponseWriter, r *http.Request) {
	list, err := s.invoices.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) getInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	inv, err := s.invoices.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, inv)
}

func (s *Server) updateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req invoiceUpdateReq
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	upd := domain.InvoiceUpdate{
		CustomerID:          req.CustomerID,
		NumberInvoice:       req.NumberInvoice,
		Tagline:             req.Tagline,
		Pictures:            req.Pictures,
		AssociatedServices:  req.AssociatedServices,
		SelectedSubServices: req.SelectedSubServices,
		EmployeeHours:       req.EmployeeHours,
	}
	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			respondError(w, err)
			return
		}
		upd.Date = &d
	}
	inv, err := s.invoices.Update(r.Context(), id, &upd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, inv)
}

func (s *Server) deleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.invoices.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "invoice deleted"})
}

func (s *Server) listInvoiceEmployees(w http.ResponseWriter, r *http.Request) {
	rows, err := s.invoices.ListEmployeeRows(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (s *Server) workedHours(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, err := parseDate(q.Get("startDate"))
	if err != nil {
		respondError(w, err)
		return
	}
	to, err := parseDate(q.Get("endDate"))
	if err != nil {
		respondError(w, err)
		return
	}
	rows, err := s.invoices.WorkedHours(r.Context(), from, to)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}
