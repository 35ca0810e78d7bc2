package httpserver

import "net/http"

func (s *Server) listServices(w http.ResponseWriter, r *http.Request) {
	list, err := s.services.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, list)
}
