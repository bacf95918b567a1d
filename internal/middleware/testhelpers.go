package middleware

import (
	"context"

	"github.com/sanctuary-tracker/api/internal/models"
	"github.com/sanctuary-tracker/api/internal/request"
)

// SetUserInContext attaches a user to a context. Exported so handler tests can
// simulate an authenticated request without running the auth middleware.
func SetUserInContext(ctx context.Context, user *models.User) context.Context {
	return request.WithUser(ctx, user)
}
