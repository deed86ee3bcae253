package lesson

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

// ListInput holds filters and pagination for List.
type ListInput struct {
	StudentID uuid.UUID
	Limit     int
	Offset    int
}

// ListResult is a page of lessons plus the unpaged total.
type ListResult struct {
	Lessons []domain.Lesson
	Total   int
}

// List returns the calling teacher's lessons for one student, newest
// first. Soft-deleted lessons are excluded.
func (s *Service) List(ctx context.Context, input ListInput) (*ListResult, error) {
	teacherID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !domain.UserRole(ctxutil.RoleFromCtx(ctx)).CanTeach() {
		return nil, domain.ErrForbidden
	}

	if input.StudentID == uuid.Nil {
		return nil, domain.NewValidationError("studentId", "student ID is required")
	}
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}
	if input.Offset < 0 {
		input.Offset = 0
	}

	lessons, total, err := s.lessons.ListByStudent(ctx, teacherID, input.StudentID, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	return &ListResult{Lessons: lessons, Total: total}, nil
}
