package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/internal/controlplane/store"
	"github.com/rhythmiq/controlplane/pkg/cryptox"
	"github.com/rhythmiq/controlplane/pkg/httpx"
	"github.com/rhythmiq/controlplane/pkg/slogx"

	_ "github.com/rhythmiq/controlplane/api/controlplane" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	limits       httpx.RateLimits

	store       store.Store
	Credentials service.CredentialSource
	Sessions    *service.SessionStore

	LoginService          *service.LoginService
	Exchanger             *service.Exchanger
	ProxyService          *service.ProxyService
	RecommendationService *service.RecommendationService
	ProfileService        *service.ProfileService
	PreferenceService     *service.PreferenceService
	AiRuleService         *service.AiRuleService
	InteractionService    *service.InteractionService

	StateTTL          time.Duration
	SessionWindow     time.Duration
	PostLoginRedirect string
}

func NewRouter(
	buildVersion string,
	st store.Store,
	limits httpx.RateLimits,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		limits:       limits,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSpotifyAuth()
	r.registerSpotifyAPI()
	r.registerProfiles()
	r.registerPreferences()
	r.registerInteractions()
	r.registerAiRules()
	r.registerSystem()

	r.Mux.Handle("GET /swagger/", httpx.Chain(httpSwagger.Handler(),
		httpx.RateLimitByIP(r.limits.Public),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			RhythmIQ Control Plane API
//	@version		0.1.0
//	@description	Spotify authorization, listening-data proxy and music preference management for RhythmIQ.
//	@description
//	@description	Session-scoped endpoints take the session id from the sessionId query parameter or the rhythmiq_session cookie.
//
//	@contact.name	RhythmIQ Team
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSpotifyAuth() {
	h := &SpotifyAuthHandler{
		LoginService:      r.LoginService,
		Exchanger:         r.Exchanger,
		Sessions:          r.Sessions,
		StateTTL:          r.StateTTL,
		SessionWindow:     r.SessionWindow,
		PostLoginRedirect: r.PostLoginRedirect,
	}

	// Login and callback are where state and code guessing would happen
	r.Mux.Handle("GET /v1/spotify/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
	r.Mux.Handle("GET /v1/spotify/callback",
		httpx.Chain(http.HandlerFunc(h.HandleCallback),
			httpx.RateLimitByIP(r.limits.Strict),
		),
	)
	r.Mux.Handle("POST /v1/spotify/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			httpx.RateLimitByIP(r.limits.Moderate),
		),
	)
}

func (r *Router) registerSpotifyAPI() {
	h := &SpotifyAPIHandler{
		Proxy:           r.ProxyService,
		Recommendations: r.RecommendationService,
	}

	// Session-scoped reads are limited per session, falling back to IP
	perSession := httpx.RateLimitBySession(r.limits.Lenient)

	r.Mux.Handle("GET /v1/spotify/liked-songs", httpx.Chain(http.HandlerFunc(h.HandleLikedSongs), withSession, perSession))
	r.Mux.Handle("GET /v1/spotify/playlists", httpx.Chain(http.HandlerFunc(h.HandlePlaylists), withSession, perSession))
	r.Mux.Handle("GET /v1/spotify/me", httpx.Chain(http.HandlerFunc(h.HandleMe), withSession, perSession))
	r.Mux.Handle("GET /v1/profiles/{id}/recommendations",
		httpx.Chain(http.HandlerFunc(h.HandleRecommendations), withSession, perSession),
	)

	// Search spends the shared application token
	r.Mux.Handle("GET /v1/spotify/search",
		httpx.Chain(http.HandlerFunc(h.HandleSearch),
			httpx.RateLimitByIP(r.limits.Moderate),
		),
	)
}

func (r *Router) registerProfiles() {
	h := &ProfilesHandler{ProfileService: r.ProfileService}

	writes := httpx.RateLimitByIP(r.limits.Moderate)
	reads := httpx.RateLimitByIP(r.limits.Lenient)

	r.Mux.Handle("POST /v1/profiles", httpx.Chain(http.HandlerFunc(h.HandleCreate), writes))
	r.Mux.Handle("GET /v1/profiles", httpx.Chain(http.HandlerFunc(h.HandleList), reads))
	r.Mux.Handle("GET /v1/profiles/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), reads))
	r.Mux.Handle("PUT /v1/profiles/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), writes))
	r.Mux.Handle("DELETE /v1/profiles/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), writes))
}

func (r *Router) registerPreferences() {
	h := &PreferencesHandler{PreferenceService: r.PreferenceService}

	writes := httpx.RateLimitByIP(r.limits.Moderate)
	reads := httpx.RateLimitByIP(r.limits.Lenient)

	r.Mux.Handle("POST /v1/profiles/{id}/preferences", httpx.Chain(http.HandlerFunc(h.HandleCreate), writes))
	r.Mux.Handle("GET /v1/profiles/{id}/preferences", httpx.Chain(http.HandlerFunc(h.HandleList), reads))
	r.Mux.Handle("GET /v1/profiles/{id}/preferences/{pid}", httpx.Chain(http.HandlerFunc(h.HandleGet), reads))
	r.Mux.Handle("PUT /v1/profiles/{id}/preferences/{pid}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), writes))
	r.Mux.Handle("DELETE /v1/profiles/{id}/preferences/{pid}", httpx.Chain(http.HandlerFunc(h.HandleDelete), writes))
}

func (r *Router) registerInteractions() {
	h := &InteractionsHandler{InteractionService: r.InteractionService}

	writes := httpx.RateLimitByIP(r.limits.Moderate)
	reads := httpx.RateLimitByIP(r.limits.Lenient)

	r.Mux.Handle("POST /v1/profiles/{id}/interactions", httpx.Chain(http.HandlerFunc(h.HandleCreate), writes))
	r.Mux.Handle("GET /v1/profiles/{id}/interactions", httpx.Chain(http.HandlerFunc(h.HandleList), reads))
	r.Mux.Handle("GET /v1/profiles/{id}/interactions/{iid}", httpx.Chain(http.HandlerFunc(h.HandleGet), reads))
	r.Mux.Handle("DELETE /v1/profiles/{id}/interactions/{iid}", httpx.Chain(http.HandlerFunc(h.HandleDelete), writes))
}

func (r *Router) registerAiRules() {
	h := &AiRulesHandler{AiRuleService: r.AiRuleService}

	writes := httpx.RateLimitByIP(r.limits.Moderate)
	reads := httpx.RateLimitByIP(r.limits.Lenient)

	r.Mux.Handle("POST /v1/ai-rules", httpx.Chain(http.HandlerFunc(h.HandleCreate), writes))
	r.Mux.Handle("GET /v1/ai-rules", httpx.Chain(http.HandlerFunc(h.HandleList), reads))
	r.Mux.Handle("GET /v1/ai-rules/{id}", httpx.Chain(http.HandlerFunc(h.HandleGet), reads))
	r.Mux.Handle("PUT /v1/ai-rules/{id}", httpx.Chain(http.HandlerFunc(h.HandleUpdate), writes))
	r.Mux.Handle("DELETE /v1/ai-rules/{id}", httpx.Chain(http.HandlerFunc(h.HandleDelete), writes))
}

func (r *Router) registerSystem() {
	// Health check endpoints - monitoring systems may poll frequently
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store, r.Credentials, r.Sessions),
			httpx.RateLimitByIP(r.limits.Public),
		),
	)
}

// withSession resolves the session id once and tags the request logger with
// its fingerprint, never the id itself.
func withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sid := httpx.SessionIDFromRequest(req)
		if sid == "" {
			next.ServeHTTP(w, req)
			return
		}

		ctx := httpx.WithSessionID(req.Context(), sid)
		ctx = slogx.With(ctx, "session", cryptox.Fingerprint(sid))
		next.ServeHTTP(w, req.WithContext(ctx))
	})
}
