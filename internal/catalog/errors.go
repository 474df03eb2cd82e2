package catalog

import (
	"errors"
	"strings"
)

// ErrIntegrity is matched by every *ErrCatalogIntegrity via errors.Is.
var ErrIntegrity = errors.New("catalog integrity")

// ErrCatalogIntegrity reports a malformed course document. It is a data
// authoring bug, not a user error, and loading never recovers from it.
type ErrCatalogIntegrity struct {
	Problems []string
	Err      error
}

func (e *ErrCatalogIntegrity) Error() string {
	msg := "catalog integrity check failed"
	if len(e.Problems) > 0 {
		msg += ":\n  " + strings.Join(e.Problems, "\n  ")
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ErrCatalogIntegrity) Is(target error) bool { return target == ErrIntegrity }

func (e *ErrCatalogIntegrity) Unwrap() error { return e.Err }
