package middleware

import (
	"context"

	"github.com/tabline/tabline-backend/internal/domain"
	"github.com/tabline/tabline-backend/pkg/ctxutil"
)

// RequireTeacher returns domain.ErrForbidden unless the context user is a
// teacher or admin. Use in handlers, not as HTTP middleware.
func RequireTeacher(ctx context.Context) error {
	if !domain.UserRole(ctxutil.RoleFromCtx(ctx)).CanTeach() {
		return domain.ErrForbidden
	}
	return nil
}

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
func RequireAdmin(ctx context.Context) error {
	if !domain.UserRole(ctxutil.RoleFromCtx(ctx)).IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}
