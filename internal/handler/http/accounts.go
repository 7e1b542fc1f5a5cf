package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-contract-guard/internal/app"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/internal/service"
	"github.com/MKhiriev/go-contract-guard/models"
)

func (h *Handler) registerAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.Register(r.Context(), request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("account_id", account.ID.String()).Msg("account registered")
	writeJSON(w, r, account, http.StatusCreated)
}

func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	account, err := h.services.AccountService.Authenticate(r.Context(), credentials)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.TokenService.Issue(r.Context(), account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.Session{Account: account, Token: token}, http.StatusOK)
}

func (h *Handler) findAccount(w http.ResponseWriter, r *http.Request) {
	account, err := h.services.AccountService.Find(r.Context(), chi.URLParam(r, "login"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, r, account, http.StatusOK)
}

func (h *Handler) currentAccount(w http.ResponseWriter, r *http.Request) {
	claims, ok := claimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrInvalidToken)
		return
	}

	account, err := h.services.AccountService.Find(r.Context(), claims.Login)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// the login may have been re-registered since the token was issued
	if id, _ := claims.AccountID(); id != account.ID {
		h.writeError(w, r, service.ErrInvalidToken)
		return
	}

	writeJSON(w, r, account, http.StatusOK)
}
