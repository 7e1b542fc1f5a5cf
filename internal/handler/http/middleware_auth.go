package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-contract-guard/internal/service"
	"github.com/MKhiriev/go-contract-guard/models"
)

type contextKey string

const claimsCtxKey contextKey = "tokenClaims"

var errInvalidAuthorizationHeader = errors.New("invalid authorization header")

// withAuthentication requires a valid bearer session token and stores its
// claims in the request context.
func (h *Handler) withAuthentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signed, err := parseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			h.writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidToken, err))
			return
		}

		claims, err := h.services.TokenService.Parse(r.Context(), signed)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsCtxKey, claims)))
	})
}

func claimsFromContext(ctx context.Context) (models.TokenClaims, bool) {
	claims, ok := ctx.Value(claimsCtxKey).(models.TokenClaims)
	return claims, ok
}

func parseBearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return "", errInvalidAuthorizationHeader
	}
	return strings.TrimSpace(token), nil
}
