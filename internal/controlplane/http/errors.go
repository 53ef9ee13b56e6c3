package http

import (
	"errors"
	"net/http"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/pkg/cpsdk"
	"github.com/rhythmiq/controlplane/pkg/httpx"
	"github.com/rhythmiq/controlplane/pkg/slogx"
)

func writeErrorCode(w http.ResponseWriter, status int, code, description string) {
	httpx.WriteJSON(w, status, cpsdk.ErrorResponse{
		Error:            code,
		ErrorDescription: description,
	})
}

// writeError maps service and domain errors onto HTTP responses. Unknown
// errors are logged and reported as a 500 without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := slogx.FromContext(r.Context())

	var derr *domain.Error
	if errors.As(err, &derr) {
		switch derr.Kind {
		case domain.KindReplayRejected:
			writeErrorCode(w, http.StatusBadRequest, cpsdk.ErrorCodeReplayRejected, derr.Message)
		case domain.KindMissingConfiguration:
			log.Error("spotify client configuration unavailable", "error", err)
			writeErrorCode(w, http.StatusInternalServerError, cpsdk.ErrorCodeMissingConfiguration, derr.Message)
		case domain.KindUpstreamRejected:
			log.Warn("spotify rejected request", "upstream_status", derr.UpstreamStatus)
			httpx.WriteJSON(w, http.StatusBadGateway, cpsdk.ErrorResponse{
				Error:            cpsdk.ErrorCodeUpstreamRejected,
				ErrorDescription: derr.Message,
				UpstreamStatus:   derr.UpstreamStatus,
				UpstreamBody:     derr.UpstreamBody,
			})
		case domain.KindTransportError:
			log.Warn("spotify unreachable", "error", err)
			writeErrorCode(w, http.StatusBadGateway, cpsdk.ErrorCodeTransportError, derr.Message)
		case domain.KindSessionNotFound:
			writeErrorCode(w, http.StatusUnauthorized, cpsdk.ErrorCodeSessionNotFound, derr.Message)
		default:
			log.Error("unhandled domain error", "error", err)
			writeErrorCode(w, http.StatusInternalServerError, cpsdk.ErrorCodeServerError, "internal server error")
		}
		return
	}

	switch {
	case errors.Is(err, service.ErrMissingSessionID):
		writeErrorCode(w, http.StatusBadRequest, cpsdk.ErrorCodeInvalidRequest, "missing session id")
	case errors.Is(err, service.ErrInvalidState):
		writeErrorCode(w, http.StatusBadRequest, cpsdk.ErrorCodeInvalidState, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		writeErrorCode(w, http.StatusBadRequest, cpsdk.ErrorCodeInvalidRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		writeErrorCode(w, http.StatusNotFound, cpsdk.ErrorCodeNotFound, "resource not found")
	case errors.Is(err, service.ErrConflict):
		writeErrorCode(w, http.StatusConflict, cpsdk.ErrorCodeConflict, "resource already exists")
	case errors.Is(err, service.ErrNoPreferences):
		writeErrorCode(w, http.StatusUnprocessableEntity, cpsdk.ErrorCodeNoPreferences, err.Error())
	default:
		log.Error("request failed", "error", err)
		writeErrorCode(w, http.StatusInternalServerError, cpsdk.ErrorCodeServerError, "internal server error")
	}
}
