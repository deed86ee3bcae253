package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tabline/tabline-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        string(role) + "-" + suffix + "@example.com",
		Name:         "Test " + string(role) + " " + suffix,
		Role:         role,
		PasswordHash: "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtest",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Email, user.Name, string(user.Role), user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seedUser insert user: %v", err)
	}

	return user
}

// SeedTeacher creates a user with the teacher role.
func SeedTeacher(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleTeacher)
}

// SeedStudent creates a user with the student role.
func SeedStudent(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleStudent)
}

// SeedSong creates a catalog song with the given title. The author defaults
// to domain.UnknownAuthor.
func SeedSong(t *testing.T, pool *pgxpool.Pool, title string) domain.Song {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	song := domain.Song{
		ID:        uuid.New(),
		Title:     title,
		Author:    domain.UnknownAuthor,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO songs (id, title, author, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		song.ID, song.Title, song.Author, song.CreatedAt, song.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSong insert song: %v", err)
	}

	return song
}

// SeedLesson creates a completed lesson for the teacher/student pair at the
// given instant.
func SeedLesson(t *testing.T, pool *pgxpool.Pool, teacherID, studentID uuid.UUID, scheduledAt time.Time) domain.Lesson {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	lesson := domain.Lesson{
		ID:          uuid.New(),
		TeacherID:   teacherID,
		StudentID:   studentID,
		Title:       "Lesson (imported)",
		Status:      domain.LessonStatusCompleted,
		ScheduledAt: scheduledAt.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO lessons (id, teacher_id, student_id, title, status, scheduled_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		lesson.ID, lesson.TeacherID, lesson.StudentID, lesson.Title, string(lesson.Status),
		lesson.ScheduledAt, lesson.CreatedAt, lesson.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLesson insert lesson: %v", err)
	}

	return lesson
}
