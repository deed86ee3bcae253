// Package song implements the song catalog repository using PostgreSQL.
// Fuzzy title lookup relies on the pg_trgm extension's similarity().
package song

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

// Repo provides song catalog persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new song repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a song by primary key.
func (r *Repo) GetByID(ctx context.Context, songID uuid.UUID) (*domain.Song, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.
		Select("id", "title", "author", "created_at", "updated_at").
		From("songs").
		Where(sq.Eq{"id": songID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var s domain.Song
	err = q.QueryRow(ctx, query, args...).
		Scan(&s.ID, &s.Title, &s.Author, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, mapError(err, "song", songID)
	}

	return &s, nil
}

// FindSimilar returns catalog candidates whose title trigram-similarity to
// the given title is at or above threshold, best match first. An empty
// result is not an error.
func (r *Repo) FindSimilar(ctx context.Context, title string, threshold float64, maxResults int) ([]domain.SongMatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.
		Select("id", "title").
		Column(sq.Alias(sq.Expr("similarity(title, ?)", title), "sim")).
		From("songs").
		Where(sq.Expr("similarity(title, ?) >= ?", title, threshold)).
		OrderBy("sim DESC", "title ASC").
		Limit(uint64(maxResults)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("find similar songs: %w", err)
	}
	defer rows.Close()

	var matches []domain.SongMatch
	for rows.Next() {
		var m domain.SongMatch
		if err := rows.Scan(&m.ID, &m.Title, &m.Similarity); err != nil {
			return nil, fmt.Errorf("scan song match: %w", err)
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate song matches: %w", err)
	}

	return matches, nil
}

// List returns songs ordered by title with pagination, optionally filtered
// by a case-insensitive substring search on the title.
func (r *Repo) List(ctx context.Context, search *string, limit, offset int) ([]domain.Song, int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countQ := qb.Select("count(*)").From("songs")
	listQ := qb.
		Select("id", "title", "author", "created_at", "updated_at").
		From("songs").
		OrderBy("title ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset))

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		countQ = countQ.Where(sq.ILike{"title": pattern})
		listQ = listQ.Where(sq.ILike{"title": pattern})
	}

	query, args, err := countQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count songs: %w", err)
	}

	query, args, err = listQ.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list songs: %w", err)
	}
	defer rows.Close()

	var songs []domain.Song
	for rows.Next() {
		var s domain.Song
		if err := rows.Scan(&s.ID, &s.Title, &s.Author, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate songs: %w", err)
	}

	return songs, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert persists a new song and returns it with database-assigned timestamps.
func (r *Repo) Insert(ctx context.Context, song *domain.Song) (*domain.Song, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := qb.
		Insert("songs").
		Columns("id", "title", "author").
		Values(song.ID, song.Title, song.Author).
		Suffix("RETURNING id, title, author, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var created domain.Song
	err = q.QueryRow(ctx, query, args...).
		Scan(&created.ID, &created.Title, &created.Author, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, mapError(err, "song", song.ID)
	}

	return &created, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	// context errors pass through as-is
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	// pgx.ErrNoRows -> domain.ErrNotFound
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	// PgError codes
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

	// Everything else: wrap with context
	return fmt.Errorf("%s %s: %w", entity, id, err)
}
