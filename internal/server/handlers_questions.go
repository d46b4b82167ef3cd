package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bobmcallan/compass/internal/models"
)

// handleQuestions handles GET /api/questions/{role}.
//
// The role segment is free-form and may contain percent-encoded
// characters (including %2F); the raw escaped path is decoded here so the
// full remainder after the prefix is treated as one label.
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	raw := strings.TrimPrefix(r.URL.EscapedPath(), "/api/questions/")
	role, err := url.PathUnescape(raw)
	if err != nil {
		role = raw
	}

	ds, err := s.app.Datasets.Resolve(r.Context(), role)
	if err != nil {
		var nf *models.DatasetNotFoundError
		if errors.As(err, &nf) {
			WriteJSON(w, http.StatusNotFound, models.QuestionsNotFoundResponse{
				Success: false,
				Message: fmt.Sprintf("Dataset not found for role: %s", role),
				Path:    nf.Path,
			})
			return
		}

		WriteJSON(w, http.StatusInternalServerError, models.QuestionsErrorResponse{
			Success: false,
			Message: "Error loading dataset",
			Error:   err.Error(),
		})
		return
	}

	WriteJSON(w, http.StatusOK, models.QuestionsResponse{
		Success:   true,
		Role:      ds.Role,
		Filename:  ds.Filename,
		Questions: ds.Questions,
	})
}
