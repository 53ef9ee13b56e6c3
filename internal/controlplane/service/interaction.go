package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/store"
	"github.com/rhythmiq/controlplane/pkg/idx"
	"github.com/rhythmiq/controlplane/pkg/slogx"
)

// MaxInteractionRating is the top of the rating scale; zero is the bottom.
const MaxInteractionRating = 5.0

// InteractionService records how a profile reacted to individual songs.
type InteractionService struct {
	Store store.Store
}

type CreateInteractionInput struct {
	SongID   string
	Type     domain.InteractionType
	Rating   *float64
	Feedback string
}

// CreateInteraction records a reaction for profileID. An unknown profile yields ErrNotFound.
func (s *InteractionService) CreateInteraction(ctx context.Context, profileID string, in CreateInteractionInput) (domain.Interaction, error) {
	l := slogx.FromContext(ctx)

	i := domain.Interaction{
		ID:        idx.New().String(),
		ProfileID: profileID,
		SongID:    strings.TrimSpace(in.SongID),
		Type:      domain.InteractionType(strings.ToUpper(string(in.Type))),
		Rating:    in.Rating,
		Feedback:  strings.TrimSpace(in.Feedback),
	}
	if !i.Type.Valid() {
		return domain.Interaction{}, fmt.Errorf("%w: type must be one of LIKE, DISLIKE, SKIP", ErrInvalidInput)
	}
	if i.SongID == "" {
		return domain.Interaction{}, fmt.Errorf("%w: song_id is required", ErrInvalidInput)
	}
	if i.Rating != nil && (*i.Rating < 0 || *i.Rating > MaxInteractionRating) {
		return domain.Interaction{}, fmt.Errorf("%w: rating must be between 0 and 5", ErrInvalidInput)
	}

	if err := s.Store.Interactions().CreateInteraction(ctx, i); err != nil {
		l.Warn("failed to create interaction", "profile_id", profileID, "error", err)
		return domain.Interaction{}, mapStoreErr(err)
	}

	created, err := s.Store.Interactions().GetInteraction(ctx, profileID, i.ID)
	if err != nil {
		return domain.Interaction{}, mapStoreErr(err)
	}

	l.Info("interaction recorded", "profile_id", profileID, "interaction_id", i.ID, "type", i.Type)
	return created, nil
}

func (s *InteractionService) GetInteraction(ctx context.Context, profileID, id string) (domain.Interaction, error) {
	i, err := s.Store.Interactions().GetInteraction(ctx, profileID, id)
	return i, mapStoreErr(err)
}

// ListInteractions returns the profile's interactions, newest first. A
// non-empty songID narrows the list to that song. An unknown profile yields
// ErrNotFound rather than an empty list.
func (s *InteractionService) ListInteractions(ctx context.Context, profileID, songID string) ([]domain.Interaction, error) {
	if _, err := s.Store.Profiles().GetProfile(ctx, profileID); err != nil {
		return nil, mapStoreErr(err)
	}
	out, err := s.Store.Interactions().ListInteractions(ctx, profileID, strings.TrimSpace(songID))
	return out, mapStoreErr(err)
}

func (s *InteractionService) DeleteInteraction(ctx context.Context, profileID, id string) error {
	if err := s.Store.Interactions().DeleteInteraction(ctx, profileID, id); err != nil {
		return mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("interaction deleted", "profile_id", profileID, "interaction_id", id)
	return nil
}
