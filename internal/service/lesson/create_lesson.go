package lesson

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

// CreateInput holds the fields for a new lesson. SongIDs optionally links
// catalog songs to the lesson at creation time, each starting at to_learn.
type CreateInput struct {
	StudentID   uuid.UUID
	Title       string
	ScheduledAt time.Time
	SongIDs     []uuid.UUID
}

// Create makes a new scheduled lesson owned by the calling teacher. The
// lesson and its initial song links are written in one transaction.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Lesson, error) {
	teacherID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !domain.UserRole(ctxutil.RoleFromCtx(ctx)).CanTeach() {
		return nil, domain.ErrForbidden
	}

	if input.StudentID == uuid.Nil {
		return nil, domain.NewValidationError("studentId", "student ID is required")
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.NewValidationError("title", "title is required")
	}
	if input.ScheduledAt.IsZero() {
		return nil, domain.NewValidationError("scheduledAt", "scheduled time is required")
	}

	var created *domain.Lesson
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.lessons.Insert(ctx, &domain.Lesson{
			ID:          uuid.New(),
			TeacherID:   teacherID,
			StudentID:   input.StudentID,
			Title:       title,
			Status:      domain.LessonStatusScheduled,
			ScheduledAt: input.ScheduledAt.UTC(),
		})
		if err != nil {
			return fmt.Errorf("insert lesson: %w", err)
		}

		for _, songID := range input.SongIDs {
			err := s.lessonSongs.Upsert(ctx, &domain.LessonSong{
				LessonID: created.ID,
				SongID:   songID,
				Status:   domain.LessonSongStatusToLearn,
			})
			if err != nil {
				return fmt.Errorf("link song %s: %w", songID, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("lesson created",
		"lesson_id", created.ID,
		"teacher_id", teacherID,
		"student_id", input.StudentID,
		"songs", len(input.SongIDs),
	)
	return created, nil
}
