package services

import (
	"context"
	"time"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
)

// TokenSvcFacade issues the JWT access tokens the transport layer hands out
// at login. The core never parses tokens; it only ever receives the resolved
// actor id from the auth middleware.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed access token for the user and
	// returns it with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
