package song

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

// Get returns a single catalog song.
func (s *Service) Get(ctx context.Context, songID uuid.UUID) (*domain.Song, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	song, err := s.songs.GetByID(ctx, songID)
	if err != nil {
		return nil, fmt.Errorf("get song: %w", err)
	}
	return song, nil
}
