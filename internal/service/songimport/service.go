// Package songimport implements the CSV song import pipeline: rows are
// grouped by lesson date, titles are reconciled against the song catalog
// via fuzzy matching, and resolved songs are linked to per-day lessons.
package songimport

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
)

// ImportedLessonTitle is the title given to lessons created by the importer.
const ImportedLessonTitle = "Lesson (imported)"

type songCatalog interface {
	FindSimilar(ctx context.Context, title string, threshold float64, maxResults int) ([]domain.SongMatch, error)
	Insert(ctx context.Context, song *domain.Song) (*domain.Song, error)
}

type lessonStore interface {
	FindByDay(ctx context.Context, teacherID, studentID uuid.UUID, day time.Time) (*domain.Lesson, error)
	Insert(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error)
}

type lessonSongStore interface {
	Upsert(ctx context.Context, link *domain.LessonSong) error
}

// Config holds the importer tuning knobs.
type Config struct {
	// MatchThreshold is the minimum trigram similarity for a catalog
	// candidate to be considered at all.
	MatchThreshold float64
	// MatchConfidence is the similarity at or above which a candidate is
	// accepted as a confident match.
	MatchConfidence float64
	// MaxRows caps the number of rows accepted in a single import.
	MaxRows int
}

// Service provides the song import operation.
type Service struct {
	songs       songCatalog
	lessons     lessonStore
	lessonSongs lessonSongStore
	cfg         Config
	log         *slog.Logger

	// now is swappable for tests; rows with an empty date default to the
	// current day.
	now func() time.Time
}

// NewService creates a new song import service.
func NewService(
	log *slog.Logger,
	cfg Config,
	songs songCatalog,
	lessons lessonStore,
	lessonSongs lessonSongStore,
) *Service {
	return &Service{
		songs:       songs,
		lessons:     lessons,
		lessonSongs: lessonSongs,
		cfg:         cfg,
		log:         log.With("service", "songimport"),
		now:         time.Now,
	}
}
