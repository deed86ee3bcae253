package domain

import (
	"time"

	"github.com/google/uuid"
)

// Lesson is a teaching session between a teacher and a student.
// Soft-deleted lessons keep their row but carry a non-nil DeletedAt.
type Lesson struct {
	ID          uuid.UUID
	TeacherID   uuid.UUID
	StudentID   uuid.UUID
	Title       string
	Status      LessonStatus
	ScheduledAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// IsDeleted reports whether the lesson has been soft-deleted.
func (l *Lesson) IsDeleted() bool {
	return l.DeletedAt != nil
}

// LessonSong links a song to a lesson with a learning-progress status.
// The (LessonID, SongID) pair is unique.
type LessonSong struct {
	LessonID  uuid.UUID
	SongID    uuid.UUID
	Status    LessonSongStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LessonSongDetail is a lesson-song link joined with catalog fields.
type LessonSongDetail struct {
	LessonID  uuid.UUID
	SongID    uuid.UUID
	Status    LessonSongStatus
	Title     string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
