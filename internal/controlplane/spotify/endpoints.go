package spotify

import "strings"

const (
	DefaultAccountsURL = "https://accounts.spotify.com"
	DefaultAPIURL      = "https://api.spotify.com/v1"
)

// maxErrorBody caps how much of an upstream error body is kept for callers.
const maxErrorBody = 1 << 10

// Endpoints locates the Spotify accounts service and Web API. Tests point
// these at httptest servers.
type Endpoints struct {
	AccountsURL string
	APIURL      string
}

func DefaultEndpoints() Endpoints {
	return Endpoints{AccountsURL: DefaultAccountsURL, APIURL: DefaultAPIURL}
}

func (e Endpoints) AuthorizeURL() string {
	return strings.TrimRight(e.AccountsURL, "/") + "/authorize"
}

func (e Endpoints) TokenURL() string {
	return strings.TrimRight(e.AccountsURL, "/") + "/api/token"
}

func truncate(body string) string {
	if len(body) > maxErrorBody {
		return body[:maxErrorBody]
	}
	return body
}
