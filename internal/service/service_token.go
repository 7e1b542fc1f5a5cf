package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-contract-guard/internal/config"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/models"
)

const generatedSignKeyLength = 32

// tokenService signs HMAC-SHA256 session tokens.
type tokenService struct {
	issuer   string
	duration time.Duration
	signKey  []byte
	now      func() time.Time

	logger *logger.Logger
}

// NewTokenService creates a [TokenService]. When cfg carries no sign key a
// random one is generated, so tokens do not survive a restart.
func NewTokenService(cfg config.Auth, logger *logger.Logger) (TokenService, error) {
	signKey := []byte(cfg.TokenSignKey.Reveal())
	if len(signKey) == 0 {
		signKey = make([]byte, generatedSignKeyLength)
		if _, err := rand.Read(signKey); err != nil {
			return nil, fmt.Errorf("error generating token sign key: %w", err)
		}
		logger.Warn().Msg("token sign key is not configured, tokens are signed with a random key")
	}

	return &tokenService{
		issuer:   cfg.TokenIssuer,
		duration: cfg.TokenDuration,
		signKey:  signKey,
		now:      time.Now,
		logger:   logger,
	}, nil
}

func (s *tokenService) Issue(ctx context.Context, account models.Account) (models.Token, error) {
	now := s.now()
	claims := models.TokenClaims{
		Login: account.Login,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   account.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrSigningToken, err)
	}

	logger.FromContext(ctx).Debug().Str("account_id", claims.Subject).Msg("session token issued")
	return models.Token{SignedString: signed, ExpiresAt: claims.ExpiresAt.UTC()}, nil
}

func (s *tokenService) Parse(_ context.Context, signed string) (models.TokenClaims, error) {
	var claims models.TokenClaims
	_, err := jwt.ParseWithClaims(signed, &claims,
		func(*jwt.Token) (any, error) {
			return s.signKey, nil
		},
		jwt.WithIssuer(s.issuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if _, err = claims.AccountID(); err != nil {
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	return claims, nil
}
