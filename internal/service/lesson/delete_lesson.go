package lesson

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

// Delete soft-deletes the calling teacher's lesson. Song links stay in
// place so learning history is preserved.
func (s *Service) Delete(ctx context.Context, lessonID uuid.UUID) error {
	teacherID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !domain.UserRole(ctxutil.RoleFromCtx(ctx)).CanTeach() {
		return domain.ErrForbidden
	}

	if err := s.lessons.SoftDelete(ctx, teacherID, lessonID); err != nil {
		return fmt.Errorf("delete lesson: %w", err)
	}

	s.log.Info("lesson deleted", "lesson_id", lessonID, "teacher_id", teacherID)
	return nil
}
