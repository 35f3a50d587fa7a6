package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tracker-config/internal/config"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/MKhiriev/go-tracker-config/internal/utils"
	"github.com/MKhiriev/go-tracker-config/models"
)

// authService issues and verifies write tokens. Reads never need one.
type authService struct {
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewAuthService(cfg config.Auth, logger *logger.Logger) AuthService {
	if cfg.TokenSignKey == "" {
		logger.Warn().Msg("no token sign key configured, write endpoints are disabled")
	}
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func (a *authService) Enabled() bool {
	return a.tokenSignKey != ""
}

func (a *authService) CreateToken(ctx context.Context, operator string) (models.Token, error) {
	if !a.Enabled() {
		return models.Token{}, ErrWritesDisabled
	}
	token, err := utils.GenerateJWTToken(a.tokenIssuer, operator, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken normalises every validation failure to
// ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if !a.Enabled() {
		return models.Token{}, ErrWritesDisabled
	}
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*authService.ParseToken").Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
