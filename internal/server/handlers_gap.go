package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/bobmcallan/compass/internal/models"
)

// handleEducatorGap handles POST /educator_gap. JSON bodies are forwarded
// verbatim to the external gap-analysis service; multipart uploads with a
// curriculum file part are converted to text first (PDFs are extracted
// server-side).
func (s *Server) handleEducatorGap(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if !s.app.GapClient.Configured() {
		WriteError(w, http.StatusServiceUnavailable, "gap analysis service is not configured")
		return
	}

	payload, ok := s.gapPayload(w, r)
	if !ok {
		return
	}

	status, body, err := s.app.GapClient.Analyze(r.Context(), payload)
	if err != nil {
		WriteError(w, http.StatusBadGateway, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// gapPayload builds the JSON payload to forward. Returns false after
// writing an error response when the request could not be read.
func (s *Server) gapPayload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(16 << 20); err != nil {
			WriteError(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
			return nil, false
		}

		file, header, err := r.FormFile("curriculum")
		if err != nil {
			WriteError(w, http.StatusBadRequest, "curriculum file part is required")
			return nil, false
		}
		defer file.Close()

		text, err := curriculumText(file, header)
		if err != nil {
			WriteError(w, http.StatusBadRequest, "Failed to read curriculum: "+err.Error())
			return nil, false
		}

		payload, err := json.Marshal(models.CurriculumRequest{Curriculum: text})
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Failed to encode payload: "+err.Error())
			return nil, false
		}
		return payload, true
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB limit
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "Failed to read request body: "+err.Error())
		return nil, false
	}
	if !json.Valid(payload) {
		WriteError(w, http.StatusBadRequest, "Request body must be JSON")
		return nil, false
	}
	return payload, true
}

// curriculumText reads an uploaded curriculum file as text. PDF files are
// extracted page by page; everything else is treated as UTF-8 text.
func curriculumText(file multipart.File, header *multipart.FileHeader) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}

	if strings.EqualFold(filepath.Ext(header.Filename), ".pdf") {
		return extractPDFText(data)
	}
	return string(data), nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var textBuilder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}
