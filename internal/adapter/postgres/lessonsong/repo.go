// Package lessonsong implements the lesson-song link repository.
package lessonsong

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tabline/tabline-backend/internal/adapter/postgres"
	"github.com/tabline/tabline-backend/internal/domain"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides lesson-song link persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lesson-song repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Upsert links a song to a lesson. If the link already exists the row is
// left untouched, including its status, and no error is returned.
func (r *Repo) Upsert(ctx context.Context, link *domain.LessonSong) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.
		Insert("lesson_songs").
		Columns("lesson_id", "song_id", "status").
		Values(link.LessonID, link.SongID, link.Status).
		Suffix("ON CONFLICT (lesson_id, song_id) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := q.Exec(ctx, query, args...); err != nil {
		return mapError(err, link.LessonID, link.SongID)
	}

	return nil
}

// ListByLesson returns all songs linked to a lesson, joined with catalog
// titles, ordered by link creation time.
func (r *Repo) ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]domain.LessonSongDetail, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.
		Select("ls.lesson_id", "ls.song_id", "ls.status", "ls.created_at", "ls.updated_at",
			"s.title", "s.author").
		From("lesson_songs ls").
		Join("songs s ON s.id = ls.song_id").
		Where(sq.Eq{"ls.lesson_id": lessonID}).
		OrderBy("ls.created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list lesson songs: %w", err)
	}
	defer rows.Close()

	var links []domain.LessonSongDetail
	for rows.Next() {
		var d domain.LessonSongDetail
		err := rows.Scan(
			&d.LessonID, &d.SongID, &d.Status, &d.CreatedAt, &d.UpdatedAt,
			&d.Title, &d.Author,
		)
		if err != nil {
			return nil, fmt.Errorf("scan lesson song: %w", err)
		}
		links = append(links, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lesson songs: %w", err)
	}

	return links, nil
}

// UpdateStatus advances the learning status of a linked song.
// Returns domain.ErrNotFound if the link does not exist.
func (r *Repo) UpdateStatus(ctx context.Context, lessonID, songID uuid.UUID, status domain.LessonSongStatus) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.
		Update("lesson_songs").
		Set("status", status).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"lesson_id": lessonID, "song_id": songID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return mapError(err, lessonID, songID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("lesson %s song %s: %w", lessonID, songID, domain.ErrNotFound)
	}

	return nil
}

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, lessonID, songID uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("lesson %s song %s: %w", lessonID, songID, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("lesson %s song %s: %w", lessonID, songID, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("lesson %s song %s: %w", lessonID, songID, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("lesson %s song %s: %w", lessonID, songID, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("lesson %s song %s: %w", lessonID, songID, domain.ErrValidation)
		}
	}

	return fmt.Errorf("lesson %s song %s: %w", lessonID, songID, err)
}
