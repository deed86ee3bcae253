package lesson

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

// SongsForLesson returns the songs linked to a lesson, with catalog
// titles. Visibility follows the same rules as Get.
func (s *Service) SongsForLesson(ctx context.Context, lessonID uuid.UUID) ([]domain.LessonSongDetail, error) {
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

	links, err := s.lessonSongs.ListByLesson(ctx, lessonID)
	if err != nil {
		return nil, fmt.Errorf("list lesson songs: %w", err)
	}
	return links, nil
}

// UpdateSongStatus advances a linked song's learning status. Only the
// owning teacher may change it.
func (s *Service) UpdateSongStatus(ctx context.Context, lessonID, songID uuid.UUID, status domain.LessonSongStatus) error {
	teacherID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if !domain.UserRole(ctxutil.RoleFromCtx(ctx)).CanTeach() {
		return domain.ErrForbidden
	}

	if !status.IsValid() {
		return domain.NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}

	lesson, err := s.lessons.GetByID(ctx, lessonID)
	if err != nil {
		return fmt.Errorf("get lesson: %w", err)
	}
	if lesson.TeacherID != teacherID && !domain.UserRole(ctxutil.RoleFromCtx(ctx)).IsAdmin() {
		return domain.ErrForbidden
	}

	if err := s.lessonSongs.UpdateStatus(ctx, lessonID, songID, status); err != nil {
		return fmt.Errorf("update song status: %w", err)
	}

	s.log.Info("lesson song status updated",
		"lesson_id", lessonID,
		"song_id", songID,
		"status", status,
	)
	return nil
}
