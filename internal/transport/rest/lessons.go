package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/internal/service/lesson"
)

type lessonService interface {
	Create(ctx context.Context, input lesson.CreateInput) (*domain.Lesson, error)
	Get(ctx context.Context, lessonID uuid.UUID) (*domain.Lesson, error)
	List(ctx context.Context, input lesson.ListInput) (*lesson.ListResult, error)
	Complete(ctx context.Context, lessonID uuid.UUID) error
	Delete(ctx context.Context, lessonID uuid.UUID) error
	SongsForLesson(ctx context.Context, lessonID uuid.UUID) ([]domain.LessonSongDetail, error)
	UpdateSongStatus(ctx context.Context, lessonID, songID uuid.UUID, status domain.LessonSongStatus) error
}

// LessonHandler serves lesson endpoints.
type LessonHandler struct {
	svc lessonService
	log *slog.Logger
}

// NewLessonHandler creates a LessonHandler.
func NewLessonHandler(svc lessonService, logger *slog.Logger) *LessonHandler {
	return &LessonHandler{svc: svc, log: logger.With("handler", "lesson")}
}

type lessonResponse struct {
	ID          uuid.UUID `json:"id"`
	TeacherID   uuid.UUID `json:"teacherId"`
	StudentID   uuid.UUID `json:"studentId"`
	Title       string    `json:"title"`
	Status      string    `json:"status"`
	ScheduledAt time.Time `json:"scheduledAt"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toLessonResponse(l *domain.Lesson) lessonResponse {
	return lessonResponse{
		ID:          l.ID,
		TeacherID:   l.TeacherID,
		StudentID:   l.StudentID,
		Title:       l.Title,
		Status:      string(l.Status),
		ScheduledAt: l.ScheduledAt,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

type lessonListResponse struct {
	Lessons []lessonResponse `json:"lessons"`
	Total   int              `json:"total"`
}

type createLessonRequest struct {
	StudentID   uuid.UUID   `json:"studentId"`
	Title       string      `json:"title"`
	ScheduledAt time.Time   `json:"scheduledAt"`
	SongIDs     []uuid.UUID `json:"songIds"`
}

type lessonSongResponse struct {
	SongID    uuid.UUID `json:"songId"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type updateSongStatusRequest struct {
	Status string `json:"status"`
}

// Create handles POST /api/v1/lessons.
func (h *LessonHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLessonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.svc.Create(r.Context(), lesson.CreateInput{
		StudentID:   req.StudentID,
		Title:       req.Title,
		ScheduledAt: req.ScheduledAt,
		SongIDs:     req.SongIDs,
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusCreated, toLessonResponse(created))
}

// List handles GET /api/v1/lessons?studentId=...&limit=...&offset=...
func (h *LessonHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var studentID uuid.UUID
	if raw := q.Get("studentId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid student ID")
			return
		}
		studentID = id
	}

	result, err := h.svc.List(r.Context(), lesson.ListInput{
		StudentID: studentID,
		Limit:     intParam(q.Get("limit")),
		Offset:    intParam(q.Get("offset")),
	})
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := lessonListResponse{Lessons: make([]lessonResponse, 0, len(result.Lessons)), Total: result.Total}
	for i := range result.Lessons {
		out.Lessons = append(out.Lessons, toLessonResponse(&result.Lessons[i]))
	}
	writeData(w, http.StatusOK, out)
}

// Get handles GET /api/v1/lessons/{id}.
func (h *LessonHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	l, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, toLessonResponse(l))
}

// Complete handles POST /api/v1/lessons/{id}/complete.
func (h *LessonHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	if err := h.svc.Complete(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"status": string(domain.LessonStatusCompleted)})
}

// Delete handles DELETE /api/v1/lessons/{id}.
func (h *LessonHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Songs handles GET /api/v1/lessons/{id}/songs.
func (h *LessonHandler) Songs(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}

	links, err := h.svc.SongsForLesson(r.Context(), id)
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	out := make([]lessonSongResponse, 0, len(links))
	for _, l := range links {
		out = append(out, lessonSongResponse{
			SongID:    l.SongID,
			Title:     l.Title,
			Author:    l.Author,
			Status:    string(l.Status),
			CreatedAt: l.CreatedAt,
			UpdatedAt: l.UpdatedAt,
		})
	}
	writeData(w, http.StatusOK, out)
}

// UpdateSongStatus handles PATCH /api/v1/lessons/{id}/songs/{songID}.
func (h *LessonHandler) UpdateSongStatus(w http.ResponseWriter, r *http.Request) {
	lessonID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid lesson ID")
		return
	}
	songID, err := uuid.Parse(r.PathValue("songID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid song ID")
		return
	}

	var req updateSongStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.svc.UpdateSongStatus(r.Context(), lessonID, songID, domain.LessonSongStatus(req.Status))
	if err != nil {
		writeDomainError(w, r, h.log, err)
		return
	}

	writeData(w, http.StatusOK, map[string]string{"status": req.Status})
}
