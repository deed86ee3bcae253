package song

import (
	"context"
	"fmt"
	"strings"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

// ListInput holds pagination and filtering for List.
type ListInput struct {
	// Search optionally narrows results to titles containing this string.
	Search string
	Limit  int
	Offset int
}

// ListResult is a page of catalog songs plus the unpaged total.
type ListResult struct {
	Songs []domain.Song
	Total int
}

// List returns catalog songs ordered by title.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}
	if input.Offset < 0 {
		input.Offset = 0
	}

	var search *string
	if q := strings.TrimSpace(input.Search); q != "" {
		search = &q
	}

	songs, total, err := s.songs.List(ctx, search, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list songs: %w", err)
	}

	return &ListResult{Songs: songs, Total: total}, nil
}
