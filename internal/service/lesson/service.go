// Package lesson implements lesson management: creation, listing,
// status transitions, soft deletion, and per-song progress tracking.
package lesson

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

type lessonRepo interface {
	Insert(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error)
	GetByID(ctx context.Context, lessonID uuid.UUID) (*domain.Lesson, error)
	ListByStudent(ctx context.Context, teacherID, studentID uuid.UUID, limit, offset int) ([]domain.Lesson, int, error)
	UpdateStatus(ctx context.Context, teacherID, lessonID uuid.UUID, status domain.LessonStatus) error
	SoftDelete(ctx context.Context, teacherID, lessonID uuid.UUID) error
}

type lessonSongRepo interface {
	Upsert(ctx context.Context, link *domain.LessonSong) error
	ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]domain.LessonSongDetail, error)
	UpdateStatus(ctx context.Context, lessonID, songID uuid.UUID, status domain.LessonSongStatus) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides lesson management operations.
type Service struct {
	lessons     lessonRepo
	lessonSongs lessonSongRepo
	tx          txManager
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new lesson service.
func NewService(
	log *slog.Logger,
	lessons lessonRepo,
	lessonSongs lessonSongRepo,
	tx txManager,
) *Service {
	return &Service{
		lessons:     lessons,
		lessonSongs: lessonSongs,
		tx:          tx,
		log:         log.With("service", "lesson"),
		now:         time.Now,
	}
}

// canView reports whether the actor may read the lesson: the owning
// teacher, the enrolled student, or an admin.
func canView(lesson *domain.Lesson, userID uuid.UUID, role domain.UserRole) bool {
	return role.IsAdmin() || lesson.TeacherID == userID || lesson.StudentID == userID
}
