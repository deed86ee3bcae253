package lesson

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

// Get returns a lesson visible to the caller: the owning teacher, the
// enrolled student, or an admin.
func (s *Service) Get(ctx context.Context, lessonID uuid.UUID) (*domain.Lesson, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	lesson, err := s.lessons.GetByID(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("get lesson: %w", err)
	}

	if !canView(lesson, userID, domain.UserRole(ctxutil.RoleFromCtx(ctx))) {
		return nil, domain.ErrForbidden
	}

	return lesson, nil
}
