package httpserver

import (
	"errors"
	"net/http"
	"strings"

	"github.com/abeliasun/backoffice/internal/adapters/xlsx"
	"github.com/abeliasun/backoffice/internal/domain"
)

func (s *Server) createCustomer(w http.ResponseWriter, r *http.Request) {
	var c domain.Customer
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, err)
		return
	}
	c.ID = 0
	if err := s.customers.Create(r.Context(), &c); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, c)
}

func (s *Server) listCustomers(w http.ResponseWriter, r *http.Request) {
	list, err := s.customers.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) getCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	c, err := s.customers.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (s *Server) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var upd domain.CustomerUpdate
	if err := decodeJSON(r, &upd); err != nil {
		respondError(w, err)
		return
	}
	c, err := s.customers.Update(r.Context(), id, &upd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (s *Server) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.customers.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "customer deleted"})
}

type importResponse struct {
	Success       bool   `json:"success"`
	Message       string `json:"message,omitempty"`
	ImportedCount int    `json:"importedCount,omitempty"`
	SkippedCount  int    `json:"skippedCount,omitempty"`
}

// importCustomers accepts either a pre-mapped JSON body
// ({"customers": [...]}) or a multipart upload with an xlsx "file" field
// that is column-mapped here. Both feed the same all-or-nothing pipeline.
func (s *Server) importCustomers(w http.ResponseWriter, r *http.Request) {
	var (
		candidates []domain.CustomerCandidate
		err        error
	)
	if strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
		candidates, err = candidatesFromUpload(r)
	} else {
		var body struct {
			Customers []domain.CustomerCandidate `json:"customers"`
		}
		err = decodeJSON(r, &body)
		candidates = body.Customers
	}
	if err != nil {
		respondJSON(w, http.StatusBadRequest, importResponse{Success: false, Message: err.Error()})
		return
	}

	res, err := s.imports.Import(r.Context(), candidates)
	if err != nil {
		status := http.StatusBadRequest
		var vErr *domain.ValidationError
		var dErr *domain.DuplicateEmailsError
		var xErr *domain.ExistingEmailsError
		if !errors.As(err, &vErr) && !errors.As(err, &dErr) && !errors.As(err, &xErr) {
			status = http.StatusInternalServerError
		}
		respondJSON(w, status, importResponse{Success: false, Message: err.Error()})
		return
	}
	respondJSON(w, http.StatusCreated, importResponse{
		Success:       true,
		Message:       "import completed",
		ImportedCount: res.Imported,
		SkippedCount:  res.Skipped,
	})
}

func candidatesFromUpload(r *http.Request) ([]domain.CustomerCandidate, error) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		return nil, domain.Validationf("invalid multipart form")
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		return nil, domain.Validationf("missing spreadsheet file")
	}
	defer file.Close()
	return xlsx.ReadCandidates(file)
}
