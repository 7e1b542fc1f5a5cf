package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-contract-guard/internal/app"
	"github.com/MKhiriev/go-contract-guard/internal/logger"
	"github.com/MKhiriev/go-contract-guard/internal/service"
	"github.com/MKhiriev/go-contract-guard/internal/validation"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = map[error]errorResponse{
	service.ErrInvalidDataProvided: {http.StatusBadRequest, app.MsgInvalidDataProvided},
	service.ErrUnderage:            {http.StatusUnprocessableEntity, app.MsgUnderage},
	service.ErrWrongPassword:       {http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	service.ErrInvalidToken:        {http.StatusUnauthorized, app.MsgInvalidToken},
	service.ErrLoginTaken:          {http.StatusConflict, app.MsgLoginTaken},
	service.ErrAccountNotFound:     {http.StatusNotFound, app.MsgAccountNotFound},

	validation.ErrDynamicValidationUnsupported: {http.StatusServiceUnavailable, app.MsgValidationUnavailable},
}

func responseFromError(err error) errorResponse {
	for target, response := range errorResponses {
		if errors.Is(err, target) {
			return response
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// writeError renders err. A failed argument check becomes a 422 listing
// every violation; a failed result check is a server fault and is only
// logged.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if failure, ok := validation.AsFailure(err); ok {
		if failure.AfterExecution() {
			log.Error().Err(err).Str("failure_id", failure.ID().String()).Msg("service returned an invalid result")
			http.Error(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}

		log.Info().Str("failure_id", failure.ID().String()).Int("violations", failure.Len()).Msg("request failed validation")
		writeJSON(w, r, failure.Response(), http.StatusUnprocessableEntity)
		return
	}

	response := responseFromError(err)
	if response.status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("unexpected error occurred")
	} else {
		log.Debug().Err(err).Int("status", response.status).Msg("request failed")
	}
	http.Error(w, response.message, response.status)
}
