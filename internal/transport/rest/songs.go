package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/internal/service/song"
)

type songService interface {
	Search(ctx context.Context, query string, limit int) ([]domain.SongMatch, error)
	Create(ctx context.Context, input song.CreateInput) (*domain.Song, error)
	Get(ctx context.Context, songID uuid.UUID) (*domain.Song, error)
	List(ctx context.Context, input song.ListInput) (*song.ListResult, error)
}

// SongHandler serves song catalog endpoints.
type SongHandler struct {
	svc songService
	log *slog.Logger
}

// NewSongHandler creates a SongHandler.
func NewSongHandler(svc songService, logger *slog.Logger) *SongHandler {
	return &SongHandler{svc: svc, log: logger.With("handler", "song")}
}

type songResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toSongResponse(s *domain.Song) songResponse {
	return songResponse{
		ID:        s.ID,
		Title:     s.Title,
		Author:    s.Author,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

type songMatchResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Similarity float64   `json:"similarity"`
}

type songListResponse struct {
	Songs []songResponse `json:"songs"`
	Total int            `json:"total"`
}

type createSongRequest struct {
	Title  string `json:"title"`
	Author string `json:"author"`
}

// List handles GET /api/v1/songs. With a `q` parameter it runs a fuzzy
// search instead of a paged listing.
func (h *SongHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	if query := q.Get("q"); query != "" {
		matches, err := h.svc.Search(r.Context(), query, intParam(q.Get("limit")))
		if err != nil {
			writeDomainError(w, r, h.log, err)
			return
		}
		out := make([]songMatchResponse, 0, len(matches))
		for _, m := range matches {
			out = append(out, songMatchResponse{ID: m.ID, Title: m.Title, Similarity: m.Similarity})
		}
		writeData(w, http.StatusOK, out)
		return
	}

	result, err := h.svc.List(r.Context(), song.ListInput{
		Search: q.Get("search"),
		Limit:  intParam(q.Get("limit")),
		Offset: intParam(q.Get("offset")),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := songListResponse{Songs: make([]songResponse, 0, len(result.Songs)), Total: result.Total}
	for i := range result.Songs {
		out.Songs = append(out.Songs, toSongResponse(&result.Songs[i]))
	}
	writeData(w, http.StatusOK, out)
}

// Create handles POST /api/v1/songs.
func (h *SongHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createSongRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), song.CreateInput{Title: req.Title, Author: req.Author})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toSongResponse(created))
}

// Get handles GET /api/v1/songs/{id}.
func (h *SongHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid song ID")
		return
	}

	s, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toSongResponse(s))
}

// intParam parses a query parameter as int, zero on absence or garbage.
func intParam(raw string) int {
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
