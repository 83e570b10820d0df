// Package patient keeps the patient identifier on the local device.
package patient

import (
	"context"
	"errors"
	"strings"
)

var ErrNotFound = errors.New("patient id not found")

type Store interface {
	// PatientID returns ErrNotFound when nothing is stored.
	PatientID(ctx context.Context) (string, error)
}

type Writer interface {
	SetPatientID(ctx context.Context, id string) error
	Clear(ctx context.Context) error
}

type ReadWriter interface {
	Store
	Writer
}

// Resolve returns the identifier the home screen binds to for its lifetime.
// A non-empty override wins over the store. A missing id is not an error:
// it resolves to "" and the screen runs without fetching.
func Resolve(ctx context.Context, store Store, override string) (string, error) {
	if id := strings.TrimSpace(override); id != "" {
		return id, nil
	}
	if store == nil {
		return "", nil
	}
	id, err := store.PatientID(ctx)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}
