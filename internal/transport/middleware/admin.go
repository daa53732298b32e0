package middleware

import (
	"context"

	"github.com/journalmind/journalmind-backend/internal/domain"
	"github.com/journalmind/journalmind-backend/pkg/ctxutil"
)

// RequireAdmin returns domain.ErrForbidden if the context user is not admin.
// Used inside handlers guarding the approval gate, not as HTTP middleware.
func RequireAdmin(ctx context.Context) error {
	if !ctxutil.IsAdminCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}
