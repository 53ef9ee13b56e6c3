package spotify

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// clientTokenSkew refreshes the cached client-credentials token this long
// before it actually expires.
const clientTokenSkew = 30 * time.Second

// TokenClient talks to the Spotify accounts service token endpoint. It never
// retries a grant.
type TokenClient struct {
	endpoints  Endpoints
	httpClient *http.Client
	now        func() time.Time

	clientToken atomic.Pointer[cachedClientToken]
}

type cachedClientToken struct {
	clientID string
	pair     domain.TokenPair
}

type TokenClientOption func(*TokenClient)

func WithClock(now func() time.Time) TokenClientOption {
	return func(c *TokenClient) { c.now = now }
}

func NewTokenClient(endpoints Endpoints, httpClient *http.Client, opts ...TokenClientOption) *TokenClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	c := &TokenClient{
		endpoints:  endpoints,
		httpClient: httpClient,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *TokenClient) oauthConfig(creds domain.ClientCredentials, scopes []string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		RedirectURL:  creds.RedirectURI,
		Scopes:       scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   c.endpoints.AuthorizeURL(),
			TokenURL:  c.endpoints.TokenURL(),
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}

// AuthCodeURL builds the URL the browser is sent to for user consent.
func (c *TokenClient) AuthCodeURL(creds domain.ClientCredentials, state string, scopes []string) string {
	return c.oauthConfig(creds, scopes).AuthCodeURL(state)
}

// ExchangeAuthorizationCode redeems code with a single POST to the token
// endpoint using HTTP Basic client authentication.
func (c *TokenClient) ExchangeAuthorizationCode(ctx context.Context, code string, creds domain.ClientCredentials) (domain.TokenPair, error) {
	ctx, rec := c.recordingContext(ctx)

	tok, err := c.oauthConfig(creds, nil).Exchange(ctx, code)
	if err != nil {
		return domain.TokenPair{}, mapTokenError(err, rec)
	}
	return c.tokenPair(tok), nil
}

// ExchangeClientCredentials fetches an application token. The result is not
// cached; see ClientToken.
func (c *TokenClient) ExchangeClientCredentials(ctx context.Context, creds domain.ClientCredentials) (domain.TokenPair, error) {
	ctx, rec := c.recordingContext(ctx)

	cfg := &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     c.endpoints.TokenURL(),
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	tok, err := cfg.Token(ctx)
	if err != nil {
		return domain.TokenPair{}, mapTokenError(err, rec)
	}
	return c.tokenPair(tok), nil
}

// ClientToken returns a cached client-credentials access token, fetching a
// fresh one when the cache is empty, belongs to other credentials or is close
// to expiry. Concurrent callers may both refresh; the last one wins.
func (c *TokenClient) ClientToken(ctx context.Context, creds domain.ClientCredentials) (string, error) {
	if cached := c.clientToken.Load(); cached != nil &&
		cached.clientID == creds.ClientID &&
		c.now().Add(clientTokenSkew).Before(cached.pair.ExpiresAt()) {
		return cached.pair.AccessToken, nil
	}

	pair, err := c.ExchangeClientCredentials(ctx, creds)
	if err != nil {
		return "", err
	}

	c.clientToken.Store(&cachedClientToken{clientID: creds.ClientID, pair: pair})
	return pair.AccessToken, nil
}

// InvalidateClientToken drops the cached token if it is still stale. A token
// that another caller already replaced is left alone.
func (c *TokenClient) InvalidateClientToken(stale string) {
	cached := c.clientToken.Load()
	if cached == nil || cached.pair.AccessToken != stale {
		return
	}
	c.clientToken.CompareAndSwap(cached, nil)
}

func (c *TokenClient) tokenPair(tok *oauth2.Token) domain.TokenPair {
	now := c.now()

	expiresIn := time.Duration(tok.ExpiresIn) * time.Second
	if expiresIn == 0 {
		expiresIn = extraSeconds(tok.Extra("expires_in"))
	}
	// Expiry is stamped with the wall clock, not c.now
	if expiresIn == 0 && !tok.Expiry.IsZero() {
		expiresIn = time.Until(tok.Expiry).Round(time.Second)
	}

	scope, _ := tok.Extra("scope").(string)

	return domain.TokenPair{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Scope:        scope,
		ExpiresIn:    expiresIn,
		IssuedAt:     now,
	}
}

// extraSeconds reads a raw expires_in value. JSON bodies decode it as
// float64, form bodies are already parsed to a number by oauth2.
func extraSeconds(v any) time.Duration {
	switch n := v.(type) {
	case float64:
		return time.Duration(n) * time.Second
	case int64:
		return time.Duration(n) * time.Second
	case int:
		return time.Duration(n) * time.Second
	}
	return 0
}

// recordingContext hands oauth2 an HTTP client that remembers the status of
// the token endpoint response, so an answered-but-unusable 2xx can be told
// apart from a network failure.
func (c *TokenClient) recordingContext(ctx context.Context) (context.Context, *statusRecorder) {
	hc := *c.httpClient
	rec := &statusRecorder{next: hc.Transport}
	if rec.next == nil {
		rec.next = http.DefaultTransport
	}
	hc.Transport = rec
	return context.WithValue(ctx, oauth2.HTTPClient, &hc), rec
}

func mapTokenError(err error, rec *statusRecorder) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		return domain.UpstreamRejected(re.Response.StatusCode, truncate(string(re.Body)))
	}
	if status := rec.status.Load(); status != 0 {
		// the endpoint answered 2xx but without a usable access_token
		upstream := domain.UpstreamRejected(int(status), "")
		upstream.Err = err
		return upstream
	}
	return domain.TransportError(err)
}

type statusRecorder struct {
	next   http.RoundTripper
	status atomic.Int32
}

func (r *statusRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.next.RoundTrip(req)
	if err == nil {
		r.status.Store(int32(resp.StatusCode))
	}
	return resp, err
}
