package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/models"
)

func newTestTokenService(t *testing.T, cfg config.Auth) *tokenService {
	t.Helper()

	svc, err := NewTokenService(cfg, logger.Nop())
	require.NoError(t, err)

	ts := svc.(*tokenService)
	ts.now = func() time.Time { return fixedNow }
	return ts
}

func testAuthConfig() config.Auth {
	return config.Auth{TokenIssuer: "guard", TokenSignKey: "0123456789abcdef", TokenDuration: time.Hour}
}

func TestTokenService_IssueAndParse(t *testing.T) {
	ctx := context.Background()
	svc := newTestTokenService(t, testAuthConfig())
	account := models.Account{ID: uuid.MustParse("0192b3c4-5d6e-7f80-9a1b-2c3d4e5f6a7b"), Login: "alice"}

	token, err := svc.Issue(ctx, account)
	require.NoError(t, err)
	assert.Equal(t, fixedNow.Add(time.Hour), token.ExpiresAt)
	assert.Len(t, strings.Split(token.SignedString, "."), 3)

	claims, err := svc.Parse(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Login)
	assert.Equal(t, "guard", claims.Issuer)

	id, err := claims.AccountID()
	require.NoError(t, err)
	assert.Equal(t, account.ID, id)
}

func TestTokenService_ParseRejects(t *testing.T) {
	ctx := context.Background()
	account := models.Account{ID: uuid.MustParse("0192b3c4-5d6e-7f80-9a1b-2c3d4e5f6a7b"), Login: "alice"}

	issuer := newTestTokenService(t, testAuthConfig())
	token, err := issuer.Issue(ctx, account)
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		later := newTestTokenService(t, testAuthConfig())
		later.now = func() time.Time { return fixedNow.Add(2 * time.Hour) }

		_, err := later.Parse(ctx, token.SignedString)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("other sign key", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.TokenSignKey = "fedcba9876543210"

		_, err := newTestTokenService(t, cfg).Parse(ctx, token.SignedString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other issuer", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.TokenIssuer = "someone-else"

		_, err := newTestTokenService(t, cfg).Parse(ctx, token.SignedString)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Parse(ctx, "not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("subject is not an account ID", func(t *testing.T) {
		_, err := issuer.Parse(ctx, signClaims(t, issuer, models.TokenClaims{
			Login: "alice",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "guard",
				Subject:   "42",
				ExpiresAt: jwt.NewNumericDate(fixedNow.Add(time.Minute)),
			},
		}))
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenService_GeneratedSignKey(t *testing.T) {
	cfg := testAuthConfig()
	cfg.TokenSignKey = ""

	first := newTestTokenService(t, cfg)
	second := newTestTokenService(t, cfg)

	assert.Len(t, first.signKey, generatedSignKeyLength)
	assert.NotEqual(t, first.signKey, second.signKey)

	token, err := first.Issue(context.Background(), models.Account{ID: uuid.New(), Login: "alice"})
	require.NoError(t, err)
	_, err = second.Parse(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func signClaims(t *testing.T, svc *tokenService, claims models.TokenClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.signKey)
	require.NoError(t, err)
	return signed
}
