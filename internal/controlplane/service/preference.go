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

// DefaultPreferenceWeight applies when a preference is created without one.
const DefaultPreferenceWeight = 1.0

type PreferenceService struct {
	Store store.Store
}

type CreatePreferenceInput struct {
	Type      domain.PreferenceType
	Value     string
	Index     int
	Weight    *float64
	IsUserSet *bool // defaults to true
}

// UpdatePreferenceInput is a partial update; nil fields are left unchanged.
type UpdatePreferenceInput struct {
	Type      *domain.PreferenceType
	Value     *string
	Index     *int
	Weight    *float64
	IsUserSet *bool
}

func validatePreference(p domain.Preference) error {
	if !p.Type.Valid() {
		return fmt.Errorf("%w: type must be one of GENRE, TEMPO, INSTRUMENT, ARTIST", ErrInvalidInput)
	}
	if strings.TrimSpace(p.Value) == "" {
		return fmt.Errorf("%w: value is required", ErrInvalidInput)
	}
	if p.Index < 0 {
		return fmt.Errorf("%w: index must not be negative", ErrInvalidInput)
	}
	if p.Weight < 0 || p.Weight > 1 {
		return fmt.Errorf("%w: weight must be between 0 and 1", ErrInvalidInput)
	}
	return nil
}

// CreatePreference adds a preference to profileID. An unknown profile yields ErrNotFound.
func (s *PreferenceService) CreatePreference(ctx context.Context, profileID string, in CreatePreferenceInput) (domain.Preference, error) {
	l := slogx.FromContext(ctx)

	p := domain.Preference{
		ID:        idx.New().String(),
		ProfileID: profileID,
		Type:      domain.PreferenceType(strings.ToUpper(string(in.Type))),
		Value:     strings.TrimSpace(in.Value),
		Index:     in.Index,
		Weight:    DefaultPreferenceWeight,
		IsUserSet: true,
	}
	if in.Weight != nil {
		p.Weight = *in.Weight
	}
	if in.IsUserSet != nil {
		p.IsUserSet = *in.IsUserSet
	}
	if err := validatePreference(p); err != nil {
		return domain.Preference{}, err
	}

	if err := s.Store.Preferences().CreatePreference(ctx, p); err != nil {
		l.Warn("failed to create preference", "profile_id", profileID, "error", err)
		return domain.Preference{}, mapStoreErr(err)
	}

	created, err := s.Store.Preferences().GetPreference(ctx, profileID, p.ID)
	if err != nil {
		return domain.Preference{}, mapStoreErr(err)
	}

	l.Info("preference created", "profile_id", profileID, "preference_id", p.ID, "type", p.Type)
	return created, nil
}

func (s *PreferenceService) GetPreference(ctx context.Context, profileID, id string) (domain.Preference, error) {
	p, err := s.Store.Preferences().GetPreference(ctx, profileID, id)
	return p, mapStoreErr(err)
}

// ListPreferences returns ErrNotFound when the profile itself does not exist.
func (s *PreferenceService) ListPreferences(ctx context.Context, profileID string) ([]domain.Preference, error) {
	if _, err := s.Store.Profiles().GetProfile(ctx, profileID); err != nil {
		return nil, mapStoreErr(err)
	}
	prefs, err := s.Store.Preferences().ListPreferences(ctx, profileID)
	return prefs, mapStoreErr(err)
}

func (s *PreferenceService) UpdatePreference(ctx context.Context, profileID, id string, in UpdatePreferenceInput) (domain.Preference, error) {
	var updated domain.Preference
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Preferences().GetPreference(ctx, profileID, id)
		if err != nil {
			return err
		}

		if in.Type != nil {
			p.Type = domain.PreferenceType(strings.ToUpper(string(*in.Type)))
		}
		if in.Value != nil {
			p.Value = strings.TrimSpace(*in.Value)
		}
		if in.Index != nil {
			p.Index = *in.Index
		}
		if in.Weight != nil {
			p.Weight = *in.Weight
		}
		if in.IsUserSet != nil {
			p.IsUserSet = *in.IsUserSet
		}
		if err := validatePreference(p); err != nil {
			return err
		}

		if err := tx.Preferences().UpdatePreference(ctx, p); err != nil {
			return err
		}
		updated, err = tx.Preferences().GetPreference(ctx, profileID, id)
		return err
	})
	if err != nil {
		return domain.Preference{}, mapStoreErr(err)
	}

	slogx.FromContext(ctx).Info("preference updated", "profile_id", profileID, "preference_id", id)
	return updated, nil
}

func (s *PreferenceService) DeletePreference(ctx context.Context, profileID, id string) error {
	if err := s.Store.Preferences().DeletePreference(ctx, profileID, id); err != nil {
		return mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("preference deleted", "profile_id", profileID, "preference_id", id)
	return nil
}
