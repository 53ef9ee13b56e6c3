package store

import (
	"context"
	"errors"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers implement it and
// expose sub-repositories per record type so transactions stay explicit.
type Store interface {
	Profiles() Profiles
	Preferences() Preferences
	AiRules() AiRules
	Interactions() Interactions
	Parameters() Parameters

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn inside a transaction, committing when fn returns nil
	// and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Page bounds a list query.
type Page struct {
	Limit  int
	Offset int
}

type Profiles interface {
	CreateProfile(ctx context.Context, p domain.Profile) error
	GetProfile(ctx context.Context, id string) (domain.Profile, error)

	// ListProfiles returns profiles oldest first.
	ListProfiles(ctx context.Context, page Page) ([]domain.Profile, error)

	// UpdateProfile overwrites the mutable fields and bumps updated_at.
	UpdateProfile(ctx context.Context, p domain.Profile) error

	// DeleteProfile cascades to the profile's preferences and interactions (per schema).
	DeleteProfile(ctx context.Context, id string) error
}

type Preferences interface {
	// CreatePreference returns ErrNotFound when the profile does not exist.
	CreatePreference(ctx context.Context, p domain.Preference) error
	GetPreference(ctx context.Context, profileID, id string) (domain.Preference, error)

	// ListPreferences orders by type, then index.
	ListPreferences(ctx context.Context, profileID string) ([]domain.Preference, error)
	UpdatePreference(ctx context.Context, p domain.Preference) error
	DeletePreference(ctx context.Context, profileID, id string) error
}

type AiRules interface {
	CreateAiRule(ctx context.Context, r domain.AiRule) error
	GetAiRule(ctx context.Context, id string) (domain.AiRule, error)

	// ListAiRules returns rules oldest first, optionally only the active ones.
	ListAiRules(ctx context.Context, activeOnly bool) ([]domain.AiRule, error)
	UpdateAiRule(ctx context.Context, r domain.AiRule) error
	DeleteAiRule(ctx context.Context, id string) error
}

type Interactions interface {
	// CreateInteraction returns ErrNotFound when the profile does not exist.
	CreateInteraction(ctx context.Context, i domain.Interaction) error
	GetInteraction(ctx context.Context, profileID, id string) (domain.Interaction, error)

	// ListInteractions returns a profile's interactions newest first. A
	// non-empty songID narrows the list to that track.
	ListInteractions(ctx context.Context, profileID, songID string) ([]domain.Interaction, error)
	DeleteInteraction(ctx context.Context, profileID, id string) error
}

type Parameters interface {
	// PutParameter inserts or replaces a parameter. Value is stored as given;
	// sealing secure values is the caller's job.
	PutParameter(ctx context.Context, p domain.Parameter) error
	GetParameter(ctx context.Context, name string) (domain.Parameter, error)
	ListParameters(ctx context.Context) ([]domain.Parameter, error)
	DeleteParameter(ctx context.Context, name string) error
}
