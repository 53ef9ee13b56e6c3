package service

import (
	"errors"

	"github.com/rhythmiq/controlplane/internal/controlplane/store"
)

// mapStoreErr translates store sentinels into service ones.
func mapStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrAlreadyExists):
		return ErrConflict
	default:
		return err
	}
}
