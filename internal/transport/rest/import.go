package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/internal/service/songimport"
)

type importService interface {
	ImportSongs(ctx context.Context, input songimport.ImportInput) (*songimport.ImportResult, error)
}

// ImportHandler serves the CSV song import endpoint.
type ImportHandler struct {
	svc importService
	log *slog.Logger
}

// NewImportHandler creates an ImportHandler.
func NewImportHandler(svc importService, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{svc: svc, log: logger.With("handler", "import")}
}

type importRowRequest struct {
	Date   string `json:"date"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

type importRequest struct {
	StudentID    uuid.UUID          `json:"studentId"`
	Rows         []importRowRequest `json:"rows"`
	ValidateOnly bool               `json:"validateOnly"`
}

// ImportSongs handles POST /api/v1/imports/songs.
func (h *ImportHandler) ImportSongs(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rows := make([]songimport.ImportRow, len(req.Rows))
	for i, row := range req.Rows {
		rows[i] = songimport.ImportRow{Date: row.Date, Title: row.Title, Author: row.Author}
	}

	result, err := h.svc.ImportSongs(r.Context(), songimport.ImportInput{
		StudentID:    req.StudentID,
		Rows:         rows,
		ValidateOnly: req.ValidateOnly,
	})
	if err != nil {
		// Anonymous callers and non-teaching roles get the same envelope.
		if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrForbidden) {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, result)
}
