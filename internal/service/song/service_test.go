package song

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

//go:generate moq -out song_repo_mock_test.go -pkg song . songRepo

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func authedCtx(role domain.UserRole) context.Context {
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	return ctxutil.WithRole(ctx, string(role))
}

func newService(repo *songRepoMock) *Service {
	return NewService(testLogger(), repo, 0.3)
}

func TestSearch_HappyPath(t *testing.T) {
	t.Parallel()

	repo := &songRepoMock{
		FindSimilarFunc: func(ctx context.Context, title string, threshold float64, maxResults int) ([]domain.SongMatch, error) {
			return []domain.SongMatch{{ID: uuid.New(), Title: "Blackbird", Similarity: 0.8}}, nil
		},
	}
	svc := newService(repo)

	matches, err := svc.Search(authedCtx(domain.UserRoleStudent), "Blackbird", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	calls := repo.FindSimilarCalls()
	if calls[0].Threshold != 0.3 {
		t.Errorf("threshold: got %f, want 0.3", calls[0].Threshold)
	}
	if calls[0].MaxResults != 5 {
		t.Errorf("maxResults: got %d, want 5", calls[0].MaxResults)
	}
}

func TestSearch_Unauthenticated(t *testing.T) {
	t.Parallel()

	svc := newService(&songRepoMock{})
	_, err := svc.Search(context.Background(), "anything", 5)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	t.Parallel()

	svc := newService(&songRepoMock{})
	_, err := svc.Search(authedCtx(domain.UserRoleTeacher), "   ", 5)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestSearch_ClampsLimit(t *testing.T) {
	t.Parallel()

	repo := &songRepoMock{
		FindSimilarFunc: func(ctx context.Context, title string, threshold float64, maxResults int) ([]domain.SongMatch, error) {
			return nil, nil
		},
	}
	svc := newService(repo)

	if _, err := svc.Search(authedCtx(domain.UserRoleTeacher), "q", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Search(authedCtx(domain.UserRoleTeacher), "q", 9999); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	calls := repo.FindSimilarCalls()
	if calls[0].MaxResults != DefaultSearchLimit {
		t.Errorf("zero limit should default to %d, got %d", DefaultSearchLimit, calls[0].MaxResults)
	}
	if calls[1].MaxResults != MaxSearchLimit {
		t.Errorf("oversized limit should clamp to %d, got %d", MaxSearchLimit, calls[1].MaxResults)
	}
}

func TestCreate_HappyPath(t *testing.T) {
	t.Parallel()

	repo := &songRepoMock{
		InsertFunc: func(ctx context.Context, song *domain.Song) (*domain.Song, error) {
			created := *song
			return &created, nil
		},
	}
	svc := newService(repo)

	got, err := svc.Create(authedCtx(domain.UserRoleTeacher), CreateInput{Title: "  Dust in the Wind  ", Author: "Kansas"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Title != "Dust in the Wind" {
		t.Errorf("title should be trimmed: got %q", got.Title)
	}
	if got.Author != "Kansas" {
		t.Errorf("author: got %q", got.Author)
	}
}

func TestCreate_BlankAuthorDefaultsToUnknown(t *testing.T) {
	t.Parallel()

	repo := &songRepoMock{
		InsertFunc: func(ctx context.Context, song *domain.Song) (*domain.Song, error) {
			created := *song
			return &created, nil
		},
	}
	svc := newService(repo)

	got, err := svc.Create(authedCtx(domain.UserRoleAdmin), CreateInput{Title: "Nameless"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Author != domain.UnknownAuthor {
		t.Errorf("author: got %q, want %q", got.Author, domain.UnknownAuthor)
	}
}

func TestCreate_StudentForbidden(t *testing.T) {
	t.Parallel()

	svc := newService(&songRepoMock{})
	_, err := svc.Create(authedCtx(domain.UserRoleStudent), CreateInput{Title: "Nope"})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestCreate_EmptyTitle(t *testing.T) {
	t.Parallel()

	svc := newService(&songRepoMock{})
	_, err := svc.Create(authedCtx(domain.UserRoleTeacher), CreateInput{Title: " "})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestGet_NotFoundPassesThrough(t *testing.T) {
	t.Parallel()

	repo := &songRepoMock{
		GetByIDFunc: func(ctx context.Context, songID uuid.UUID) (*domain.Song, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newService(repo)

	_, err := svc.Get(authedCtx(domain.UserRoleTeacher), uuid.New())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestList_ClampsAndFilters(t *testing.T) {
	t.Parallel()

	repo := &songRepoMock{
		ListFunc: func(ctx context.Context, search *string, limit, offset int) ([]domain.Song, int, error) {
			return []domain.Song{}, 0, nil
		},
	}
	svc := newService(repo)

	_, err := svc.List(authedCtx(domain.UserRoleTeacher), ListInput{Search: " black ", Limit: -5, Offset: -1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	call := repo.ListCalls()[0]
	if call.Limit != DefaultListLimit {
		t.Errorf("limit: got %d, want %d", call.Limit, DefaultListLimit)
	}
	if call.Offset != 0 {
		t.Errorf("offset: got %d, want 0", call.Offset)
	}
	if call.Search == nil || *call.Search != "black" {
		t.Errorf("search should be trimmed: got %v", call.Search)
	}
}
