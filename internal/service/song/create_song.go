package song

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

// CreateInput holds the fields for a new catalog song.
type CreateInput struct {
	Title  string
	Author string
}

// Create adds a song to the catalog. Only teachers and admins may create.
// A blank author resolves to domain.UnknownAuthor.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Song, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !domain.UserRole(ctxutil.RoleFromCtx(ctx)).CanTeach() {
		return nil, domain.ErrForbidden
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewValidationError("title", "title is required")
	}

	author := strings.TrimSpace(input.Author)
	if author == "" {
		author = domain.UnknownAuthor
	}

	created, err := s.songs.Insert(ctx, &domain.Song{
		ID:     uuid.New(),
		Title:  title,
		Author: author,
	})
	if err != nil {
		return nil, fmt.Errorf("create song: %w", err)
	}

	s.log.Info("song created", "song_id", created.ID, "user_id", userID)
	return created, nil
}
