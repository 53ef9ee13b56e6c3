package service

import (
	"testing"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/stretchr/testify/require"
)

func TestBuildSeeds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		prefs []domain.Preference
		want  map[string]string
	}{
		{
			name: "groups by type",
			prefs: []domain.Preference{
				{Type: domain.PreferenceGenre, Value: "Jazz", Weight: 1},
				{Type: domain.PreferenceArtist, Value: "4tZwfgrHOc3mvqYlEYSvVi", Weight: 1},
				{Type: domain.PreferenceTempo, Value: "120", Weight: 1},
				{Type: domain.PreferenceInstrument, Value: "piano", Weight: 0.5},
			},
			want: map[string]string{
				"seed_artists": "4tZwfgrHOc3mvqYlEYSvVi",
				"seed_genres":  "jazz,piano",
				"target_tempo": "120",
			},
		},
		{
			name: "weight then index orders seeds",
			prefs: []domain.Preference{
				{Type: domain.PreferenceGenre, Value: "rock", Index: 1, Weight: 0.5},
				{Type: domain.PreferenceGenre, Value: "pop", Index: 0, Weight: 0.5},
				{Type: domain.PreferenceGenre, Value: "house", Index: 9, Weight: 0.9},
			},
			want: map[string]string{"seed_genres": "house,pop,rock"},
		},
		{
			name: "seed slots are capped with artists first",
			prefs: []domain.Preference{
				{Type: domain.PreferenceArtist, Value: "a1", Weight: 1},
				{Type: domain.PreferenceArtist, Value: "a2", Weight: 1},
				{Type: domain.PreferenceArtist, Value: "a3", Weight: 1},
				{Type: domain.PreferenceGenre, Value: "g1", Weight: 1},
				{Type: domain.PreferenceGenre, Value: "g2", Weight: 1},
				{Type: domain.PreferenceGenre, Value: "g3", Weight: 1},
			},
			want: map[string]string{
				"seed_artists": "a1,a2,a3",
				"seed_genres":  "g1,g2",
			},
		},
		{
			name: "named tempo and duplicates",
			prefs: []domain.Preference{
				{Type: domain.PreferenceTempo, Value: "Fast", Weight: 1},
				{Type: domain.PreferenceTempo, Value: "60", Weight: 0.1},
				{Type: domain.PreferenceGenre, Value: "Jazz", Weight: 1},
				{Type: domain.PreferenceGenre, Value: "jazz", Weight: 1},
			},
			want: map[string]string{
				"seed_genres":  "jazz",
				"target_tempo": "140",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seeds := BuildSeeds(tt.prefs)
			got := map[string]string{}
			for k := range seeds {
				got[k] = seeds.Get(k)
			}
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTrackSeeds(t *testing.T) {
	t.Parallel()

	// newest first, as the store lists them
	interactions := []domain.Interaction{
		{SongID: "t1", Type: domain.InteractionLike},
		{SongID: "t2", Type: domain.InteractionDislike},
		{SongID: "t3", Type: domain.InteractionLike},
		{SongID: "t2", Type: domain.InteractionLike},
		{SongID: "t1", Type: domain.InteractionSkip},
		{SongID: "t4", Type: domain.InteractionSkip},
	}
	liked := LikedTracks(interactions)
	require.Equal(t, []string{"t1", "t3"}, liked)

	t.Run("fills free slots", func(t *testing.T) {
		t.Parallel()

		seeds := BuildSeeds([]domain.Preference{
			{Type: domain.PreferenceGenre, Value: "jazz", Weight: 1},
		})
		AddTrackSeeds(seeds, liked)
		require.Equal(t, "t1,t3", seeds.Get("seed_tracks"))
	})

	t.Run("respects the seed cap", func(t *testing.T) {
		t.Parallel()

		seeds := BuildSeeds([]domain.Preference{
			{Type: domain.PreferenceArtist, Value: "a1", Weight: 1},
			{Type: domain.PreferenceArtist, Value: "a2", Weight: 1},
			{Type: domain.PreferenceGenre, Value: "g1", Weight: 1},
			{Type: domain.PreferenceGenre, Value: "g2", Weight: 1},
		})
		AddTrackSeeds(seeds, liked)
		require.Equal(t, "t1", seeds.Get("seed_tracks"))
	})

	t.Run("no room", func(t *testing.T) {
		t.Parallel()

		seeds := BuildSeeds([]domain.Preference{
			{Type: domain.PreferenceGenre, Value: "g1", Weight: 1},
			{Type: domain.PreferenceGenre, Value: "g2", Weight: 1},
			{Type: domain.PreferenceGenre, Value: "g3", Weight: 1},
			{Type: domain.PreferenceGenre, Value: "g4", Weight: 1},
			{Type: domain.PreferenceGenre, Value: "g5", Weight: 1},
		})
		AddTrackSeeds(seeds, liked)
		require.Empty(t, seeds.Get("seed_tracks"))
	})
}
