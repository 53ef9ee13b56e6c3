package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rhythmiq/controlplane/internal/controlplane/domain"
	"github.com/rhythmiq/controlplane/internal/controlplane/store"
	"github.com/rhythmiq/controlplane/pkg/cryptox"
	"github.com/rhythmiq/controlplane/pkg/slogx"
)

// ParameterService reads and writes named configuration parameters. Secure
// values are sealed with the master key before they reach the store.
type ParameterService struct {
	Store  store.Store
	Sealer *cryptox.Sealer
}

// Put stores value under name, sealing it when secure is set.
func (s *ParameterService) Put(ctx context.Context, name, value string, secure bool) error {
	l := slogx.FromContext(ctx)

	name = strings.TrimSpace(name)
	if !strings.HasPrefix(name, "/") || value == "" {
		return fmt.Errorf("%w: parameter names start with / and values are non-empty", ErrInvalidInput)
	}

	stored := value
	if secure {
		if s.Sealer == nil {
			return fmt.Errorf("%w: no master key configured for secure parameters", ErrInvalidInput)
		}
		sealed, err := s.Sealer.SealString(value)
		if err != nil {
			l.Error("failed to seal parameter", "name", name, "error", err)
			return err
		}
		stored = sealed
	}

	if err := s.Store.Parameters().PutParameter(ctx, domain.Parameter{
		Name:   name,
		Value:  stored,
		Secure: secure,
	}); err != nil {
		l.Error("failed to store parameter", "name", name, "error", err)
		return err
	}

	l.Info("parameter stored", "name", name, "secure", secure)
	return nil
}

// Get returns the parameter with its value opened. Missing names yield ErrNotFound.
func (s *ParameterService) Get(ctx context.Context, name string) (domain.Parameter, error) {
	p, err := s.Store.Parameters().GetParameter(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Parameter{}, ErrNotFound
	}
	if err != nil {
		return domain.Parameter{}, err
	}

	if p.Secure {
		if s.Sealer == nil {
			return domain.Parameter{}, fmt.Errorf("parameter %s is sealed and no master key is configured", name)
		}
		plain, err := s.Sealer.OpenString(p.Value)
		if err != nil {
			return domain.Parameter{}, fmt.Errorf("open parameter %s: %w", name, err)
		}
		p.Value = plain
	}
	return p, nil
}
