package domain

import (
	"slices"
	"time"
)

// InteractionType is how a listener reacted to a track.
type InteractionType string

const (
	InteractionLike    InteractionType = "LIKE"
	InteractionDislike InteractionType = "DISLIKE"
	InteractionSkip    InteractionType = "SKIP"
)

var interactionTypes = []InteractionType{
	InteractionLike,
	InteractionDislike,
	InteractionSkip,
}

func (t InteractionType) Valid() bool {
	return slices.Contains(interactionTypes, t)
}

// Interaction records a profile's reaction to one Spotify track. Liked
// tracks feed recommendation seeds.
type Interaction struct {
	ID        string
	ProfileID string
	SongID    string // Spotify track id
	Type      InteractionType
	Rating    *float64 // optional, 0..5
	Feedback  string
	CreatedAt time.Time
}
