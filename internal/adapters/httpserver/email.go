package httpserver

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/abeliasun/backoffice/internal/domain"
)

type emailResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// sendReportEmail forwards an already-rendered PDF report to a list of
// recipients. Multipart form: "pdf" file, "recipients" JSON array,
// "subject", "message".
func (s *Server) sendReportEmail(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		respondJSON(w, http.StatusBadRequest, emailResponse{Success: false, Message: "invalid multipart form"})
		return
	}
	file, hdr, err := r.FormFile("pdf")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, emailResponse{Success: false, Message: "no pdf file supplied"})
		return
	}
	defer file.Close()
	pdf, err := io.ReadAll(file)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, emailResponse{Success: false, Message: "cannot read pdf file"})
		return
	}

	var recipients []string
	if raw := r.FormValue("recipients"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &recipients); err != nil {
			respondJSON(w, http.StatusBadRequest, emailResponse{Success: false, Message: "recipients must be a json array"})
			return
		}
	}
	if len(recipients) == 0 {
		respondJSON(w, http.StatusBadRequest, emailResponse{Success: false, Message: "no recipients specified"})
		return
	}

	mail := domain.ReportMail{
		Recipients: recipients,
		Subject:    r.FormValue("subject"),
		Body:       r.FormValue("message"),
		Filename:   hdr.Filename,
		PDF:        pdf,
	}
	if err := s.mailer.Send(r.Context(), &mail); err != nil {
		respondJSON(w, http.StatusInternalServerError, emailResponse{Success: false, Message: "email delivery failed: " + err.Error()})
		return
	}
	respondJSON(w, http.StatusOK, emailResponse{Success: true, Message: "email sent"})
}
