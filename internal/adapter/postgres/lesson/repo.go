// Package lesson implements the lesson repository using PostgreSQL.
package lesson

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tabline/tabline-backend/internal/adapter/postgres"
	"github.com/tabline/tabline-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const lessonColumns = "id, teacher_id, student_id, title, status, scheduled_at, created_at, updated_at, deleted_at"

// Repo provides lesson persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lesson repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a lesson by primary key. Soft-deleted lessons are not found.
func (r *Repo) GetByID(ctx context.Context, lessonID uuid.UUID) (*domain.Lesson, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.
		Select(lessonColumns).
		From("lessons").
		Where(sq.Eq{"id": lessonID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	l, err := scanLesson(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "lesson", lessonID)
	}

	return l, nil
}

// FindByDay returns the first non-deleted lesson for the teacher/student pair
// whose scheduled_at falls within the given calendar day (UTC).
// The window upper bound is 23:59:59, one second short of midnight.
// Returns domain.ErrNotFound when no lesson exists on that day.
func (r *Repo) FindByDay(ctx context.Context, teacherID, studentID uuid.UUID, day time.Time) (*domain.Lesson, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(23*time.Hour + 59*time.Minute + 59*time.Second)

	query, args, err := qb.
		Select(lessonColumns).
		From("lessons").
		Where(sq.Eq{"teacher_id": teacherID, "student_id": studentID, "deleted_at": nil}).
		Where(sq.GtOrEq{"scheduled_at": start}).
		Where(sq.Lt{"scheduled_at": end}).
		OrderBy("scheduled_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	l, err := scanLesson(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "lesson", uuid.Nil)
	}

	return l, nil
}

// ListByStudent returns the teacher's lessons for a student, newest first,
// with pagination. Soft-deleted lessons are excluded.
func (r *Repo) ListByStudent(ctx context.Context, teacherID, studentID uuid.UUID, limit, offset int) ([]domain.Lesson, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	where := sq.Eq{"teacher_id": teacherID, "student_id": studentID, "deleted_at": nil}

	query, args, err := qb.Select("count(*)").From("lessons").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count lessons: %w", err)
	}

	query, args, err = qb.
		Select(lessonColumns).
		From("lessons").
		Where(where).
		OrderBy("scheduled_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list lessons: %w", err)
	}
	defer rows.Close()

	var lessons []domain.Lesson
	for rows.Next() {
		l, err := scanLesson(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan lesson: %w", err)
		}
		lessons = append(lessons, *l)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate lessons: %w", err)
	}

	return lessons, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert persists a new lesson and returns it with database-assigned timestamps.
func (r *Repo) Insert(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.
		Insert("lessons").
		Columns("id", "teacher_id", "student_id", "title", "status", "scheduled_at").
		Values(lesson.ID, lesson.TeacherID, lesson.StudentID, lesson.Title, lesson.Status, lesson.ScheduledAt).
		Suffix("RETURNING " + lessonColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	created, err := scanLesson(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, mapError(err, "lesson", lesson.ID)
	}

	return created, nil
}

// UpdateStatus sets the lesson status. Only the owning teacher's lessons are
// affected; returns domain.ErrNotFound otherwise.
func (r *Repo) UpdateStatus(ctx context.Context, teacherID, lessonID uuid.UUID, status domain.LessonStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.
		Update("lessons").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": lessonID, "teacher_id": teacherID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "lesson", lessonID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lesson %s: %w", lessonID, domain.ErrNotFound)
	}

	return nil
}

// SoftDelete marks the lesson deleted without removing the row, so linked
// song history survives. Idempotent on already-deleted lessons only in the
// sense that a second call reports not found.
func (r *Repo) SoftDelete(ctx context.Context, teacherID, lessonID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.
		Update("lessons").
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": lessonID, "teacher_id": teacherID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, "lesson", lessonID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lesson %s: %w", lessonID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanLesson(row pgx.Row) (*domain.Lesson, error) {
	var l domain.Lesson
	err := row.Scan(
		&l.ID, &l.TeacherID, &l.StudentID, &l.Title, &l.Status,
		&l.ScheduledAt, &l.CreatedAt, &l.UpdatedAt, &l.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}
