package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/store"
	"github.com/rhythmiq/controlplane/pkg/cryptox"
	"github.com/rhythmiq/controlplane/pkg/idx"
	"github.com/rhythmiq/controlplane/pkg/slogx"
)

const maxListLimit = 100

type ProfileService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
}

// CreateProfileInput carries the fields of a new profile. Password is optional.
type CreateProfileInput struct {
	Email       string
	Username    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Password    string
}

// UpdateProfileInput is a partial update; nil fields are left unchanged.
type UpdateProfileInput struct {
	Email       *string
	Username    *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
	Password    *string
}

// CreateProfile stores a new profile. A duplicate email or username yields ErrConflict.
func (s *ProfileService) CreateProfile(ctx context.Context, in CreateProfileInput) (domain.Profile, error) {
	l := slogx.FromContext(ctx)

	p := domain.Profile{
		ID:          idx.New().String(),
		Email:       strings.ToLower(strings.TrimSpace(in.Email)),
		Username:    strings.TrimSpace(in.Username),
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		PhoneNumber: strings.TrimSpace(in.PhoneNumber),
	}
	if p.Email == "" || p.Username == "" {
		return domain.Profile{}, fmt.Errorf("%w: email and username are required", ErrInvalidInput)
	}

	if in.Password != "" {
		hash, err := s.Hasher.Hash(in.Password)
		if err != nil {
			l.Error("failed to hash profile password", "error", err)
			return domain.Profile{}, err
		}
		p.PasswordHash = hash
	}

	if err := s.Store.Profiles().CreateProfile(ctx, p); err != nil {
		l.Warn("failed to create profile", "error", err)
		return domain.Profile{}, mapStoreErr(err)
	}

	created, err := s.Store.Profiles().GetProfile(ctx, p.ID)
	if err != nil {
		return domain.Profile{}, mapStoreErr(err)
	}

	l.Info("profile created", "profile_id", p.ID)
	return created, nil
}

func (s *ProfileService) GetProfile(ctx context.Context, id string) (domain.Profile, error) {
	p, err := s.Store.Profiles().GetProfile(ctx, id)
	return p, mapStoreErr(err)
}

// ListProfiles pages through profiles; limit defaults to 20 and is capped at 100.
func (s *ProfileService) ListProfiles(ctx context.Context, limit, offset int) ([]domain.Profile, error) {
	page, err := normalisePage(limit, offset)
	if err != nil {
		return nil, err
	}
	profiles, err := s.Store.Profiles().ListProfiles(ctx, page)
	return profiles, mapStoreErr(err)
}

// UpdateProfile applies the non-nil fields of in.
func (s *ProfileService) UpdateProfile(ctx context.Context, id string, in UpdateProfileInput) (domain.Profile, error) {
	l := slogx.FromContext(ctx)

	var updated domain.Profile
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		p, err := tx.Profiles().GetProfile(ctx, id)
		if err != nil {
			return err
		}

		setTrimmed(&p.Email, in.Email)
		if in.Email != nil {
			p.Email = strings.ToLower(p.Email)
		}
		setTrimmed(&p.Username, in.Username)
		setTrimmed(&p.FirstName, in.FirstName)
		setTrimmed(&p.LastName, in.LastName)
		setTrimmed(&p.PhoneNumber, in.PhoneNumber)

		if p.Email == "" || p.Username == "" {
			return fmt.Errorf("%w: email and username must not be blank", ErrInvalidInput)
		}

		if in.Password != nil {
			if *in.Password == "" {
				p.PasswordHash = ""
			} else {
				hash, err := s.Hasher.Hash(*in.Password)
				if err != nil {
					return err
				}
				p.PasswordHash = hash
			}
		}

		if err := tx.Profiles().UpdateProfile(ctx, p); err != nil {
			return err
		}

		updated, err = tx.Profiles().GetProfile(ctx, id)
		return err
	})
	if err != nil {
		l.Warn("failed to update profile", "profile_id", id, "error", err)
		return domain.Profile{}, mapStoreErr(err)
	}

	l.Info("profile updated", "profile_id", id)
	return updated, nil
}

// DeleteProfile removes the profile and, through the schema, its preferences.
func (s *ProfileService) DeleteProfile(ctx context.Context, id string) error {
	if err := s.Store.Profiles().DeleteProfile(ctx, id); err != nil {
		return mapStoreErr(err)
	}
	slogx.FromContext(ctx).Info("profile deleted", "profile_id", id)
	return nil
}

// VerifyPassword checks password against the profile's stored hash.
func (s *ProfileService) VerifyPassword(ctx context.Context, id, password string) error {
	p, err := s.GetProfile(ctx, id)
	if err != nil {
		return err
	}
	if p.PasswordHash == "" {
		return cryptox.ErrPasswordMismatch
	}
	return s.Hasher.Verify(password, p.PasswordHash)
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func normalisePage(limit, offset int) (store.Page, error) {
	if offset < 0 {
		return store.Page{}, fmt.Errorf("%w: offset must not be negative", ErrInvalidInput)
	}
	switch {
	case limit <= 0:
		limit = defaultPageLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}
	return store.Page{Limit: limit, Offset: offset}, nil
}
