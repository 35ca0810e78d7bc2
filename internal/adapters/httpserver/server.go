package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/abeliasun/backoffice/internal/domain"
	"github.com/abeliasun/backoffice/internal/usecase"
)

type Server struct {
	mux       *http.ServeMux
	customers *usecase.CustomerUC
	imports   *usecase.ImportUC
	employees *usecase.EmployeeUC
	services  *usecase.ServiceUC
	invoices  *usecase.InvoiceUC
	mailer    domain.ReportMailer
}

func New(c *usecase.CustomerUC, imp *usecase.ImportUC, e *usecase.EmployeeUC, sv *usecase.ServiceUC, inv *usecase.InvoiceUC, m domain.ReportMailer) http.Handler {
	s := &Server{
		mux:       http.NewServeMux(),
		customers: c,
		imports:   imp,
		employees: e,
		services:  sv,
		invoices:  inv,
		mailer:    m,
	}
	s.routes()
	return Chain(s.mux, RequestID, Logging, Recovery)
}

func (s *Server) routes() {
	s.mux.HandleFunc("POST /api/customers", s.createCustomer)
	s.mux.HandleFunc("GET /api/customers", s.listCustomers)
	s.mux.HandleFunc("POST /api/customers/import", s.importCustomers)
	s.mux.HandleFunc("GET /api/customers/{id}", s.getCustomer)
	s.mux.HandleFunc("PUT /api/customers/{id}", s.updateCustomer)
	s.mux.HandleFunc("DELETE /api/customers/{id}", s.deleteCustomer)

	s.mux.HandleFunc("POST /api/employees", s.createEmployee)
	s.mux.HandleFunc("GET /api/employees", s.listEmployees)
	s.mux.HandleFunc("GET /api/employees/{id}", s.getEmployee)
	s.mux.HandleFunc("PUT /api/employees/{id}", s.updateEmployee)
	s.mux.HandleFunc("DELETE /api/employees/{id}", s.deleteEmployee)

	s.mux.HandleFunc("GET /api/services", s.listServices)

	s.mux.HandleFunc("POST /api/invoices", s.createInvoice)
	s.mux.HandleFunc("GET /api/invoices", s.listInvoices)
	s.mux.HandleFunc("GET /api/invoices/{id}", s.getInvoice)
	s.mux.HandleFunc("PUT /api/invoices/{id}", s.updateInvoice)
	s.mux.HandleFunc("DELETE /api/invoices/{id}", s.deleteInvoice)

	s.mux.HandleFunc("GET /api/invoice-employees", s.listInvoiceEmployees)
	s.mux.HandleFunc("GET /api/invoice-employees/hours", s.workedHours)

	s.mux.HandleFunc("POST /api/send-invoice-email", s.sendReportEmail)
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError maps the domain error taxonomy onto HTTP statuses:
// not-found 404, validation and uniqueness 400, everything else 500.
func respondError(w http.ResponseWriter, err error) {
	var (
		vErr *domain.ValidationError
		rErr *domain.UnknownRefError
		dErr *domain.DuplicateEmailsError
		xErr *domain.ExistingEmailsError
		code = http.StatusInternalServerError
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domain.ErrEmailExists),
		errors.Is(err, domain.ErrCustomerHasInvoices),
		errors.As(err, &vErr),
		errors.As(err, &rErr),
		errors.As(err, &dErr),
		errors.As(err, &xErr):
		code = http.StatusBadRequest
	}
	respondJSON(w, code, map[string]string{"error": err.Error()})
}

func pathID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, domain.Validationf("invalid id")
	}
	return uint(id), nil
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.Validationf("invalid json payload")
	}
	return nil
}
