package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/tooff-app/tooff-backend/internal/core/domain"
	portssvc "github.com/tooff-app/tooff-backend/internal/core/ports/services"
	"github.com/tooff-app/tooff-backend/internal/platform/config"
	"github.com/tooff-app/tooff-backend/internal/utils"
)

// tokenService implements the TokenSvcFacade interface.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new token service with the provided config.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// Ensure tokenService implements the TokenSvcFacade interface
var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a signed access token for the user and returns
// it with its expiry time.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)

	token, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign access token", slog.String("subject_user_id", user.UserID))
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}
