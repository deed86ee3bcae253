package domain

import (
	"time"

	"github.com/google/uuid"
)

// UnknownAuthor is the author recorded for songs imported without one.
const UnknownAuthor = "Unknown"

// Song is a catalog entry shared across all teachers.
type Song struct {
	ID        uuid.UUID
	Title     string
	Author    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SongMatch is a fuzzy-search candidate returned by the catalog,
// with a trigram similarity score in [0, 1].
type SongMatch struct {
	ID         uuid.UUID
	Title      string
	Similarity float64
}
