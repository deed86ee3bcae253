package lesson

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

// Complete marks the calling teacher's lesson as COMPLETED.
func (s *Service) Complete(ctx context.Context, lessonID uuid.UUID) error {
	teacherID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !domain.UserRole(ctxutil.RoleFromCtx(ctx)).CanTeach() {
		return domain.ErrForbidden
	}

	if err := s.lessons.UpdateStatus(ctx, teacherID, lessonID, domain.LessonStatusCompleted); err != nil {
		return fmt.Errorf("complete lesson: %w", err)
	}

	s.log.Info("lesson completed", "lesson_id", lessonID, "teacher_id", teacherID)
	return nil
}
