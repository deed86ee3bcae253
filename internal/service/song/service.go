// Package song implements the song catalog service: fuzzy search,
// creation, and listing of the shared song catalog.
package song

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 20
	DefaultListLimit   = 50
	MaxListLimit       = 200
)

type songRepo interface {
	FindSimilar(ctx context.Context, title string, threshold float64, maxResults int) ([]domain.SongMatch, error)
	Insert(ctx context.Context, song *domain.Song) (*domain.Song, error)
	GetByID(ctx context.Context, songID uuid.UUID) (*domain.Song, error)
	List(ctx context.Context, search *string, limit, offset int) ([]domain.Song, int, error)
}

// Service provides song catalog operations.
type Service struct {
	songs          songRepo
	matchThreshold float64
	log            *slog.Logger
}

// NewService creates a new song catalog service. matchThreshold is the
// minimum trigram similarity used by Search.
func NewService(
	log *slog.Logger,
	songs songRepo,
	matchThreshold float64,
) *Service {
	return &Service{
		songs:          songs,
		matchThreshold: matchThreshold,
		log:            log.With("service", "song"),
	}
}
