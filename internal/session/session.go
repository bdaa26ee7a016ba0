package session

import (
	"context"
	"net/http"

	"hr-admin/internal/shared/apperror"
	"hr-admin/internal/shared/principal"
)

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "hr_session"

var ErrSessionNotFound = apperror.New(
	apperror.CodeUnauthorized,
	"Session is invalid or has expired",
	http.StatusUnauthorized,
)

//go:generate mockgen -source=session.go -destination=mock/session_store_mock.go -package=mock
type Store interface {
	// Create persists the principal server-side and returns the opaque token.
	Create(ctx context.Context, p principal.Principal) (string, error)
	// Get resolves a token back to its principal, ErrSessionNotFound otherwise.
	Get(ctx context.Context, token string) (principal.Principal, error)
	Delete(ctx context.Context, token string) error
}
