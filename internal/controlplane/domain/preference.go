package domain

import (
	"slices"
	"time"
)

// PreferenceType groups a preference into one of the recommendation seeds.
type PreferenceType string

const (
	PreferenceGenre      PreferenceType = "GENRE"
	PreferenceTempo      PreferenceType = "TEMPO"
	PreferenceInstrument PreferenceType = "INSTRUMENT"
	PreferenceArtist     PreferenceType = "ARTIST"
)

var preferenceTypes = []PreferenceType{
	PreferenceGenre,
	PreferenceTempo,
	PreferenceInstrument,
	PreferenceArtist,
}

// Valid reports whether t is a known preference type.
func (t PreferenceType) Valid() bool {
	return slices.Contains(preferenceTypes, t)
}

type Preference struct {
	ID        string
	ProfileID string
	Type      PreferenceType
	Value     string
	Index     int     // ordering within the type, lower first
	Weight    float64 // 0..1
	IsUserSet bool    // false when inferred from listening history
	CreatedAt time.Time
	UpdatedAt time.Time
}
