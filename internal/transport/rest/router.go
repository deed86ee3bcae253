package rest

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/config"
	"github.com/tabline/tabline-backend/internal/transport/middleware"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (uuid.UUID, string, error)
}

// RouterDeps collects everything the HTTP router needs.
type RouterDeps struct {
	Logger    *slog.Logger
	Validator tokenValidator
	CORS      config.CORSConfig

	// RateLimiter, when set, throttles the import endpoint per client IP
	// at ImportRatePerMin requests per minute.
	RateLimiter      *middleware.RateLimiter
	ImportRatePerMin int

	Health  *HealthHandler
	Imports *ImportHandler
	Songs   *SongHandler
	Lessons *LessonHandler
}

// NewRouter assembles the full HTTP handler: health probes outside the
// middleware chain, API routes inside it.
func NewRouter(deps RouterDeps) http.Handler {
	api := http.NewServeMux()

	var importHandler http.Handler = http.HandlerFunc(deps.Imports.ImportSongs)
	if deps.RateLimiter != nil && deps.ImportRatePerMin > 0 {
		importHandler = deps.RateLimiter.Limit(deps.ImportRatePerMin)(importHandler)
	}
	api.Handle("POST /api/v1/imports/songs", importHandler)

	api.HandleFunc("GET /api/v1/songs", deps.Songs.List)
	api.HandleFunc("POST /api/v1/songs", deps.Songs.Create)
	api.HandleFunc("GET /api/v1/songs/{id}", deps.Songs.Get)

	api.HandleFunc("POST /api/v1/lessons", deps.Lessons.Create)
	api.HandleFunc("GET /api/v1/lessons", deps.Lessons.List)
	api.HandleFunc("GET /api/v1/lessons/{id}", deps.Lessons.Get)
	api.HandleFunc("POST /api/v1/lessons/{id}/complete", deps.Lessons.Complete)
	api.HandleFunc("DELETE /api/v1/lessons/{id}", deps.Lessons.Delete)
	api.HandleFunc("GET /api/v1/lessons/{id}/songs", deps.Lessons.Songs)
	api.HandleFunc("PATCH /api/v1/lessons/{id}/songs/{songID}", deps.Lessons.UpdateSongStatus)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Validator),
	)

	root := http.NewServeMux()
	root.HandleFunc("GET /health", deps.Health.Health)
	root.HandleFunc("GET /health/live", deps.Health.Live)
	root.HandleFunc("GET /health/ready", deps.Health.Ready)
	root.Handle("/api/v1/", chain(api))

	return root
}
