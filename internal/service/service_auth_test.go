package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-tracker-config/internal/config"
	"github.com/MKhiriev/go-tracker-config/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() config.Auth {
	return config.Auth{TokenSignKey: "sign", TokenIssuer: "go-tracker-config", TokenDuration: time.Hour}
}

func TestAuthService_RoundTrip(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), logger.Nop())
	require.True(t, svc.Enabled())

	token, err := svc.CreateToken(context.Background(), "ops")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(context.Background(), token.String())
	require.NoError(t, err)
	assert.Equal(t, "ops", parsed.Operator())
}

func TestAuthService_InvalidToken(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), logger.Nop())

	_, err := svc.ParseToken(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	other := NewAuthService(config.Auth{TokenSignKey: "other", TokenIssuer: "go-tracker-config", TokenDuration: time.Hour}, logger.Nop())
	token, err := other.CreateToken(context.Background(), "ops")
	require.NoError(t, err)
	_, err = svc.ParseToken(context.Background(), token.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_EmptyOperator(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), logger.Nop())

	_, err := svc.CreateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_Disabled(t *testing.T) {
	svc := NewAuthService(config.Auth{}, logger.Nop())
	assert.False(t, svc.Enabled())

	_, err := svc.CreateToken(context.Background(), "ops")
	assert.ErrorIs(t, err, ErrWritesDisabled)

	_, err = svc.ParseToken(context.Background(), "x")
	assert.ErrorIs(t, err, ErrWritesDisabled)
}
