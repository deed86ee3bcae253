package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an application user: a student, a teacher, or an admin.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	Role         UserRole
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
