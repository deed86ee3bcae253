package song

import (
	"context"
	"fmt"
	"strings"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

// Search returns catalog songs similar to the query, best match first.
// Any authenticated user may search.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]domain.SongMatch, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.NewValidationError("query", "search query is required")
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}

	matches, err := s.songs.FindSimilar(ctx, query, s.matchThreshold, limit)
	if err != nil {
		return nil, fmt.Errorf("search songs: %w", err)
	}

	return matches, nil
}
