package songimport

import (
	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
)

// RowResult reports the outcome of a single imported row. RowIndex refers
// to the row's position in the submitted slice, not the processing order.
type RowResult struct {
	RowIndex int    `json:"rowIndex"`
	Date     string `json:"date"`
	Title    string `json:"title"`
	Author   string `json:"author"`

	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`

	MatchStatus      domain.MatchStatus `json:"matchStatus"`
	MatchedSongTitle string             `json:"matchedSongTitle,omitempty"`
	MatchScore       *float64           `json:"matchScore,omitempty"`

	SongID   *uuid.UUID `json:"songId,omitempty"`
	LessonID *uuid.UUID `json:"lessonId,omitempty"`

	LessonCreated bool `json:"lessonCreated"`
	SongCreated   bool `json:"songCreated"`
}

// Summary aggregates counters across the whole import run.
type Summary struct {
	TotalRows       int `json:"totalRows"`
	SongsMatched    int `json:"songsMatched"`
	SongsCreated    int `json:"songsCreated"`
	LessonsCreated  int `json:"lessonsCreated"`
	LessonsExisting int `json:"lessonsExisting"`
	Errors          int `json:"errors"`
}

// ImportResult is the full outcome of an import run. Row failures do not
// fail the run; they are reported per row and counted in Summary.Errors.
type ImportResult struct {
	Results []RowResult `json:"results"`
	Summary Summary     `json:"summary"`
}
