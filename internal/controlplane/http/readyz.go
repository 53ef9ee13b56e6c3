package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/internal/controlplane/store"
	"github.com/rhythmiq/controlplane/pkg/cpsdk"
	"github.com/rhythmiq/controlplane/pkg/httpx"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, database connectivity and whether the Spotify credentials resolve
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	cpsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	cpsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(
	startTime time.Time,
	version string,
	st store.Store,
	creds service.CredentialSource,
	sessions *service.SessionStore,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &cpsdk.HealthChecks{
			Database:    "ok",
			Credentials: "ok",
			Sessions:    sessions.Len(),
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// The callback cannot succeed without all three credential values
		c, err := creds.Credentials(r.Context())
		switch {
		case err != nil:
			checks.Credentials = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		case len(c.Missing()) > 0:
			checks.Credentials = "error: missing " + strings.Join(c.Missing(), ", ")
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := cpsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
