package services

import (
	"context"
	"fmt"

	"github.com/SscSPs/portfel_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/portfel_tracker/internal/core/ports/services"
	"github.com/SscSPs/portfel_tracker/internal/dto"
	"github.com/SscSPs/portfel_tracker/internal/platform/config"
	"github.com/SscSPs/portfel_tracker/internal/utils"
)

// tokenService issues JWT access tokens signed with the configured secret.
type tokenService struct {
	BaseService
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvc {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given user.
func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (*dto.LoginResponse, error) {
	token, expiresAt, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token")
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	}, nil
}
