package service

import (
	"cmp"
	"context"
	"encoding/json"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/store"
	"github.com/rhythmiq/controlplane/pkg/slogx"
)

// maxSeeds is the Web API limit on artist, genre and track seeds combined.
const maxSeeds = 5

// named tempos map to a target BPM
var tempoNames = map[string]int{
	"slow":   80,
	"medium": 110,
	"fast":   140,
}

// RecommendationService turns a profile's stored preferences into Spotify
// recommendation seeds and fetches tracks with the caller's session.
type RecommendationService struct {
	Store store.Store
	Proxy *ProxyService
}

// Recommendations returns ErrNoPreferences when the profile has none stored.
func (s *RecommendationService) Recommendations(ctx context.Context, sessionID, profileID string, limit int) (json.RawMessage, error) {
	token, err := s.Proxy.accessToken(sessionID)
	if err != nil {
		return nil, err
	}

	if _, err := s.Store.Profiles().GetProfile(ctx, profileID); err != nil {
		return nil, mapStoreErr(err)
	}
	prefs, err := s.Store.Preferences().ListPreferences(ctx, profileID)
	if err != nil {
		return nil, mapStoreErr(err)
	}
	if len(prefs) == 0 {
		return nil, ErrNoPreferences
	}

	interactions, err := s.Store.Interactions().ListInteractions(ctx, profileID, "")
	if err != nil {
		return nil, mapStoreErr(err)
	}

	seeds := BuildSeeds(prefs)
	AddTrackSeeds(seeds, LikedTracks(interactions))
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	seeds.Set("limit", strconv.Itoa(limit))

	slogx.FromContext(ctx).Debug("requesting recommendations", "profile_id", profileID, "seeds", seeds.Encode())
	return s.Proxy.API.Recommendations(ctx, token, seeds)
}

// BuildSeeds groups preferences by type. Heavier and lower-indexed
// preferences win the limited seed slots; artists are placed before genres.
// Instruments have no dedicated seed and are offered as genres.
func BuildSeeds(prefs []domain.Preference) url.Values {
	sorted := slices.Clone(prefs)
	slices.SortStableFunc(sorted, func(a, b domain.Preference) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})

	var artists, genres []string
	tempo := 0
	for _, p := range sorted {
		v := strings.TrimSpace(p.Value)
		if v == "" {
			continue
		}
		switch p.Type {
		case domain.PreferenceArtist:
			artists = appendUnique(artists, v)
		case domain.PreferenceGenre, domain.PreferenceInstrument:
			genres = appendUnique(genres, strings.ToLower(v))
		case domain.PreferenceTempo:
			if tempo != 0 {
				continue
			}
			if bpm, err := strconv.Atoi(v); err == nil && bpm > 0 {
				tempo = bpm
			} else if bpm, ok := tempoNames[strings.ToLower(v)]; ok {
				tempo = bpm
			}
		}
	}

	if len(artists) > maxSeeds {
		artists = artists[:maxSeeds]
	}
	if room := maxSeeds - len(artists); len(genres) > room {
		genres = genres[:room]
	}

	seeds := url.Values{}
	if len(artists) > 0 {
		seeds.Set("seed_artists", strings.Join(artists, ","))
	}
	if len(genres) > 0 {
		seeds.Set("seed_genres", strings.Join(genres, ","))
	}
	if tempo > 0 {
		seeds.Set("target_tempo", strconv.Itoa(tempo))
	}
	return seeds
}

// LikedTracks returns the songs whose most recent interaction is a LIKE,
// newest first. interactions must be ordered newest first.
func LikedTracks(interactions []domain.Interaction) []string {
	seen := map[string]bool{}
	var liked []string
	for _, i := range interactions {
		if seen[i.SongID] {
			continue
		}
		seen[i.SongID] = true
		if i.Type == domain.InteractionLike {
			liked = append(liked, i.SongID)
		}
	}
	return liked
}

// AddTrackSeeds fills whatever seed slots BuildSeeds left free with tracks.
func AddTrackSeeds(seeds url.Values, tracks []string) {
	used := 0
	for _, k := range []string{"seed_artists", "seed_genres"} {
		if v := seeds.Get(k); v != "" {
			used += strings.Count(v, ",") + 1
		}
	}
	room := maxSeeds - used
	if room <= 0 || len(tracks) == 0 {
		return
	}
	if len(tracks) > room {
		tracks = tracks[:room]
	}
	seeds.Set("seed_tracks", strings.Join(tracks, ","))
}

func appendUnique(list []string, v string) []string {
	if slices.Contains(list, v) {
		return list
	}
	return append(list, v)
}
