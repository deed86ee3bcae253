package songimport

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
)

// ImportRow is a single parsed CSV row.
type ImportRow struct {
	// Date is the raw lesson date in DD.MM.YYYY form. Empty means "today".
	Date string
	// Title is the song title as it appeared in the CSV.
	Title string
	// Author is optional; blank resolves to domain.UnknownAuthor.
	Author string
}

// ImportInput is the request for ImportSongs.
type ImportInput struct {
	StudentID    uuid.UUID
	Rows         []ImportRow
	ValidateOnly bool
}

// Validate checks structural constraints before any row is processed.
func (in *ImportInput) Validate(maxRows int) error {
	var fields []domain.FieldError

	if in.StudentID == uuid.Nil {
		fields = append(fields, domain.FieldError{Field: "studentId", Message: "student ID is required"})
	}
	if len(in.Rows) == 0 {
		fields = append(fields, domain.FieldError{Field: "rows", Message: "at least one row is required"})
	}
	if len(in.Rows) > maxRows {
		fields = append(fields, domain.FieldError{
			Field:   "rows",
			Message: fmt.Sprintf("too many rows: %d (max %d)", len(in.Rows), maxRows),
		})
	}
	for i, row := range in.Rows {
		if strings.TrimSpace(row.Title) == "" {
			fields = append(fields, domain.FieldError{
				Field:   fmt.Sprintf("rows[%d].title", i),
				Message: "title is required",
			})
		}
	}

	if len(fields) > 0 {
		return domain.NewValidationErrors(fields)
	}
	return nil
}
