package httpserver

import (
	"net/http"

	"github.com/abeliasun/backoffice/internal/domain"
)

func (s *Server) createEmployee(w http.ResponseWriter, r *http.Request) {
	var e domain.Employee
	if err := decodeJSON(r, &e); err != nil {
		respondError(w, err)
		return
	}
	e.ID = 0
	if err := s.employees.Create(r.Context(), &e); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, e)
}

func (s *Server) listEmployees(w http.ResponseWriter, r *http.Request) {
	list, err := s.employees.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}

func (s *Server) getEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	e, err := s.employees.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, e)
}

func (s *Server) updateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var upd domain.EmployeeUpdate
	if err := decodeJSON(r, &upd); err != nil {
		respondError(w, err)
		return
	}
	e, err := s.employees.Update(r.Context(), id, &upd)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, e)
}

func (s *Server) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := s.employees.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "employee deleted"})
}
