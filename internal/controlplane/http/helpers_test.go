package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	cphttp "github.com/rhythmiq/controlplane/internal/controlplane/http"
	"github.com/rhythmiq/controlplane/internal/controlplane/service"
	"github.com/rhythmiq/controlplane/internal/controlplane/spotify"
	"github.com/rhythmiq/controlplane/internal/controlplane/store/drivers/sqlite"
	"github.com/rhythmiq/controlplane/pkg/cpsdk"
	"github.com/rhythmiq/controlplane/pkg/cryptox"
	"github.com/rhythmiq/controlplane/pkg/httpx"
	"github.com/stretchr/testify/require"
)

const testRedirectURI = "https://app.example.com/v1/spotify/callback"

// fakeSpotify serves the accounts token endpoint under /api/token and the
// Web API under /v1.
type fakeSpotify struct {
	srv        *httptest.Server
	tokenCalls atomic.Int32
}

func newFakeSpotify(t *testing.T) *fakeSpotify {
	t.Helper()

	f := &fakeSpotify{}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeSpotify) serve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.URL.Path == "/api/token" {
		f.tokenCalls.Add(1)
		_ = r.ParseForm()
		switch {
		case r.Form.Get("grant_type") == "client_credentials":
			_, _ = io.WriteString(w, `{"access_token":"app-token","token_type":"Bearer","expires_in":3600}`)
		case r.Form.Get("code") == "no-expiry":
			_, _ = io.WriteString(w, `{"access_token":"user-no-expiry","token_type":"Bearer"}`)
		case r.Form.Get("code") == "rejected":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"invalid_grant","error_description":"Invalid authorization code"}`)
		default:
			code := r.Form.Get("code")
			_, _ = io.WriteString(w, `{"access_token":"user-`+code+`","refresh_token":"refresh-`+code+`","token_type":"Bearer","expires_in":3600,"scope":"user-library-read"}`)
		}
		return
	}

	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"error":{"status":401,"message":"No token provided"}}`)
		return
	}

	switch r.URL.Path {
	case "/v1/me":
		_, _ = io.WriteString(w, `{"id":"listener","token":"`+strings.TrimPrefix(auth, "Bearer ")+`"}`)
	case "/v1/me/tracks", "/v1/me/playlists":
		_, _ = io.WriteString(w, `{"items":[],"total":0}`)
	case "/v1/search":
		_, _ = io.WriteString(w, `{"tracks":{"items":[{"name":"One More Time"}]}}`)
	case "/v1/recommendations":
		_, _ = io.WriteString(w, `{"seeds":[],"tracks":[],"query":"`+r.URL.RawQuery+`"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"error":{"status":404}}`)
	}
}

type testServer struct {
	router   *cphttp.Router
	spotify  *fakeSpotify
	sessions *service.SessionStore
	params   *service.ParameterService
}

type testOptions struct {
	postLoginRedirect string
	skipCredentials   bool
}

func newTestServer(t *testing.T, opts testOptions) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	sealer, err := cryptox.NewSealer([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	params := &service.ParameterService{Store: st, Sealer: sealer}

	ctx := context.Background()
	if !opts.skipCredentials {
		require.NoError(t, params.Put(ctx, domain.ParamSpotifyClientID, "client", false))
		require.NoError(t, params.Put(ctx, domain.ParamSpotifyClientSecret, "secret", true))
		require.NoError(t, params.Put(ctx, domain.ParamSpotifyRedirectURI, testRedirectURI, false))
	}

	fake := newFakeSpotify(t)
	endpoints := spotify.Endpoints{AccountsURL: fake.srv.URL, APIURL: fake.srv.URL + "/v1"}
	tokens := spotify.NewTokenClient(endpoints, fake.srv.Client())
	api := spotify.NewAPIClient(endpoints, fake.srv.Client())

	creds := &service.ParamCredentialSource{Params: params}
	sessions := service.NewSessionStore(nil)
	proxy := &service.ProxyService{
		Sessions:     sessions,
		API:          api,
		ClientTokens: tokens,
		Credentials:  creds,
	}

	limit := httpx.RateLimitConfig{RequestsPerWindow: 10000, Window: time.Minute, Burst: 10000}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := cphttp.NewRouter("test", st, httpx.RateLimits{Strict: limit, Moderate: limit, Lenient: limit, Public: limit}, logger)
	r.Credentials = creds
	r.Sessions = sessions
	r.LoginService = &service.LoginService{
		Credentials: creds,
		URLs:        tokens,
		States:      service.NewStateStore(10*time.Minute, nil),
	}
	r.Exchanger = &service.Exchanger{
		Credentials: creds,
		Tokens:      tokens,
		Replay:      service.NewReplayGuard(time.Minute, nil),
		Sessions:    sessions,
	}
	r.ProxyService = proxy
	r.RecommendationService = &service.RecommendationService{Store: st, Proxy: proxy}
	r.ProfileService = &service.ProfileService{Store: st, Hasher: cryptox.NewPasswordHasher("pepper")}
	r.PreferenceService = &service.PreferenceService{Store: st}
	r.AiRuleService = &service.AiRuleService{Store: st}
	r.InteractionService = &service.InteractionService{Store: st}
	r.StateTTL = 10 * time.Minute
	r.SessionWindow = time.Hour
	r.PostLoginRedirect = opts.postLoginRedirect
	r.ApplyRoutes()

	return &testServer{router: r, spotify: fake, sessions: sessions, params: params}
}

func (s *testServer) do(t *testing.T, method, target string, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

// login runs the JSON login leg and returns the state and its cookie.
func (s *testServer) login(t *testing.T) (string, *http.Cookie) {
	t.Helper()

	rec := s.do(t, http.MethodGet, "/v1/spotify/login?format=json", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp cpsdk.LoginResponse
	decode(t, rec, &resp)

	c := findCookie(rec.Result().Cookies(), cphttp.StateCookie)
	require.NotNil(t, c)
	require.Equal(t, resp.State, c.Value)
	return resp.State, c
}

// callback completes a login with code and returns the recorder.
func (s *testServer) callback(t *testing.T, code string) *httptest.ResponseRecorder {
	t.Helper()

	state, cookie := s.login(t)
	q := url.Values{"code": {code}, "state": {state}}
	return s.do(t, http.MethodGet, "/v1/spotify/callback?"+q.Encode(), "", cookie)
}

// newSession logs in and returns the new session id.
func (s *testServer) newSession(t *testing.T, code string) string {
	t.Helper()

	rec := s.callback(t, code)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp cpsdk.CallbackResponse
	decode(t, rec, &resp)
	return resp.SessionID
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) cpsdk.ErrorResponse {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	var resp cpsdk.ErrorResponse
	decode(t, rec, &resp)
	require.Equal(t, code, resp.Error)
	return resp
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
