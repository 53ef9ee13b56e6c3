package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/rhythmiq/controlplane/internal/controlplane/http"
	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/internal/controlplane/spotify"
	"github.com/rhythmiq/controlplane/internal/controlplane/store/drivers/sqlite"
	"github.com/rhythmiq/controlplane/pkg/cryptox"
	"github.com/rhythmiq/controlplane/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"

	serviceName = "rhythmiq-controlplane"
	secretSize  = 32
)

// Application wires the control plane together and owns its lifecycle. Every
// stateful component is built here; nothing lives in package globals.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db         *sqlite.Store
	sealer     *cryptox.Sealer
	httpClient *http.Client
	tokens     *spotify.TokenClient
	api        *spotify.APIClient

	// In-memory authorization state
	replay   *service.ReplayGuard
	sessions *service.SessionStore
	states   *service.StateStore

	// Services
	credentials           service.CredentialSource
	parameterService      *service.ParameterService
	loginService          *service.LoginService
	exchanger             *service.Exchanger
	proxyService          *service.ProxyService
	recommendationService *service.RecommendationService
	profileService        *service.ProfileService
	preferenceService     *service.PreferenceService
	aiRuleService         *service.AiRuleService
	interactionService    *service.InteractionService
	housekeepingService   *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg:    cfg,
		logger: newLogger(cfg),
	}

	db, err := OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	app.db = db
	app.logger.Info("database migrations applied successfully", "file", cfg.DatabaseFile)

	if app.sealer, err = loadSealer(cfg); err != nil {
		_ = db.Close()
		return nil, err
	}
	if app.sealer == nil {
		app.logger.Warn("no master key configured, secure parameters are unavailable")
	}

	pepper, err := cryptox.LoadOrCreateSecret(cfg.PepperFile, secretSize)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load pepper: %w", err)
	}

	app.initSpotify()
	app.initServices(pepper)
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("control plane starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"credential_source", app.cfg.CredentialSource,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		app.housekeepingService.Stop()
		_ = app.db.Close()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down control plane...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("control plane stopped", "sessions_dropped", app.sessions.Len())
	return nil
}

func newLogger(cfg Config) *slog.Logger {
	return slogx.New(slogx.Config{
		Service: serviceName,
		Version: BuildVersion,
		Env:     cfg.Env,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})
}

// OpenStore opens the configured database and applies pending migrations.
func OpenStore(cfg Config) (*sqlite.Store, error) {
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", cfg.DatabaseFile)
	db, err := sqlite.NewStore(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to apply database migrations: %w", err)
	}
	return db, nil
}

// OpenParameters opens the store and returns a parameter service over it,
// for the params CLI. The caller closes the returned store.
func OpenParameters(cfg Config) (*service.ParameterService, *sqlite.Store, error) {
	db, err := OpenStore(cfg)
	if err != nil {
		return nil, nil, err
	}
	sealer, err := loadSealer(cfg)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return &service.ParameterService{Store: db, Sealer: sealer}, db, nil
}

// loadSealer prefers MASTER_KEY over MASTER_KEY_PATH. With neither set it
// returns nil and secure parameters are refused.
func loadSealer(cfg Config) (*cryptox.Sealer, error) {
	material := cfg.MasterKey
	if material == "" && cfg.MasterKeyPath != "" {
		secret, err := cryptox.LoadOrCreateSecret(cfg.MasterKeyPath, secretSize)
		if err != nil {
			return nil, fmt.Errorf("failed to load master key: %w", err)
		}
		material = secret
	}
	if material == "" {
		return nil, nil
	}

	sealer, err := cryptox.NewSealer([]byte(material))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sealer: %w", err)
	}
	return sealer, nil
}

func (app *Application) initSpotify() {
	app.httpClient = &http.Client{Timeout: app.cfg.UpstreamTimeout}

	endpoints := spotify.Endpoints{
		AccountsURL: app.cfg.SpotifyAccountsURL,
		APIURL:      app.cfg.SpotifyAPIURL,
	}
	app.tokens = spotify.NewTokenClient(endpoints, app.httpClient)
	app.api = spotify.NewAPIClient(endpoints, app.httpClient)
}

// initServices initializes all business logic services
func (app *Application) initServices(pepper string) {
	app.replay = service.NewReplayGuard(app.cfg.ReplayWindow, nil)
	app.sessions = service.NewSessionStore(nil)
	app.states = service.NewStateStore(app.cfg.StateTTL, nil)

	app.parameterService = &service.ParameterService{Store: app.db, Sealer: app.sealer}

	switch app.cfg.CredentialSource {
	case CredentialSourceFile:
		app.credentials = &service.FileCredentialSource{Path: app.cfg.SpotifyCredentialsFile}
	default:
		app.credentials = &service.ParamCredentialSource{Params: app.parameterService}
	}

	app.loginService = &service.LoginService{
		Credentials: app.credentials,
		URLs:        app.tokens,
		States:      app.states,
		Scopes:      app.cfg.SpotifyScopes,
	}
	app.exchanger = &service.Exchanger{
		Credentials:             app.credentials,
		Tokens:                  app.tokens,
		Replay:                  app.replay,
		Sessions:                app.sessions,
		ReleaseOnTransportError: app.cfg.ExchangeReleaseOnTransportError,
	}
	app.proxyService = &service.ProxyService{
		Sessions:     app.sessions,
		API:          app.api,
		ClientTokens: app.tokens,
		Credentials:  app.credentials,
	}
	app.recommendationService = &service.RecommendationService{Store: app.db, Proxy: app.proxyService}
	app.profileService = &service.ProfileService{Store: app.db, Hasher: cryptox.NewPasswordHasher(pepper)}
	app.preferenceService = &service.PreferenceService{Store: app.db}
	app.aiRuleService = &service.AiRuleService{Store: app.db}
	app.interactionService = &service.InteractionService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.replay,
		app.sessions,
		app.states,
		app.cfg.SessionWindow,
		app.cfg.SweepInterval,
		app.logger,
		nil,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(BuildVersion, app.db, app.cfg.RateLimits, app.logger)

	router.Credentials = app.credentials
	router.Sessions = app.sessions
	router.LoginService = app.loginService
	router.Exchanger = app.exchanger
	router.ProxyService = app.proxyService
	router.RecommendationService = app.recommendationService
	router.ProfileService = app.profileService
	router.PreferenceService = app.preferenceService
	router.AiRuleService = app.aiRuleService
	router.InteractionService = app.interactionService
	router.StateTTL = app.cfg.StateTTL
	router.SessionWindow = app.cfg.SessionWindow
	router.PostLoginRedirect = app.cfg.PostLoginRedirectURL
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
