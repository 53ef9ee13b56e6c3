package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
)

// CredentialSource supplies the Spotify application credentials. It may do
// I/O, so callers pass a bounded context.
type CredentialSource interface {
	Credentials(ctx context.Context) (domain.ClientCredentials, error)
}

// ParamCredentialSource resolves credentials from the parameter store using
// the fixed /rhythmiq/spotify/* names. A missing parameter is reported as a
// MissingConfiguration error naming it.
type ParamCredentialSource struct {
	Params *ParameterService
}

func (s *ParamCredentialSource) Credentials(ctx context.Context) (domain.ClientCredentials, error) {
	var creds domain.ClientCredentials

	for _, f := range []struct {
		name string
		dst  *string
	}{
		{domain.ParamSpotifyClientID, &creds.ClientID},
		{domain.ParamSpotifyClientSecret, &creds.ClientSecret},
		{domain.ParamSpotifyRedirectURI, &creds.RedirectURI},
	} {
		p, err := s.Params.Get(ctx, f.name)
		if errors.Is(err, ErrNotFound) {
			return domain.ClientCredentials{}, domain.MissingConfiguration("parameter "+f.name+" is not set", nil)
		}
		if err != nil {
			return domain.ClientCredentials{}, domain.MissingConfiguration("parameter "+f.name+" could not be resolved", err)
		}
		*f.dst = p.Value
	}

	return creds, nil
}

// FileCredentialSource reads credentials from a TOML file on every call so
// rotated secrets are picked up without a restart:
//
//	[credentials.spotify]
//	client_id = "..."
//	client_secret = "..."
//	redirect_uri = "https://.../v1/spotify/callback"
type FileCredentialSource struct {
	Path string
}

type credentialsFile struct {
	Credentials struct {
		Spotify struct {
			ClientID     string `toml:"client_id"`
			ClientSecret string `toml:"client_secret"`
			RedirectURI  string `toml:"redirect_uri"`
		} `toml:"spotify"`
	} `toml:"credentials"`
}

func (s *FileCredentialSource) Credentials(ctx context.Context) (domain.ClientCredentials, error) {
	if err := ctx.Err(); err != nil {
		return domain.ClientCredentials{}, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return domain.ClientCredentials{}, domain.MissingConfiguration("credentials file unreadable", err)
	}

	var f credentialsFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return domain.ClientCredentials{}, domain.MissingConfiguration("credentials file malformed", err)
	}

	sp := f.Credentials.Spotify
	return domain.ClientCredentials{
		ClientID:     strings.TrimSpace(sp.ClientID),
		ClientSecret: strings.TrimSpace(sp.ClientSecret),
		RedirectURI:  strings.TrimSpace(sp.RedirectURI),
	}, nil
}

// resolveCredentials fetches credentials and insists every field is set.
func resolveCredentials(ctx context.Context, src CredentialSource) (domain.ClientCredentials, error) {
	if src == nil {
		return domain.ClientCredentials{}, domain.MissingConfiguration("no credential source configured", nil)
	}

	creds, err := src.Credentials(ctx)
	if err != nil {
		var de *domain.Error
		if errors.As(err, &de) {
			return domain.ClientCredentials{}, err
		}
		return domain.ClientCredentials{}, domain.MissingConfiguration("credentials could not be resolved", err)
	}

	if missing := creds.Missing(); len(missing) > 0 {
		return domain.ClientCredentials{}, domain.MissingConfiguration(
			fmt.Sprintf("missing %s", strings.Join(missing, ", ")), nil)
	}
	return creds, nil
}
