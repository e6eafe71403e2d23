package nutridex

import (
	"errors"
	"fmt"

	"github.com/hupe1980/nutridex/bptree"
	"github.com/hupe1980/nutridex/metadata"
)

var (
	// ErrInvalidConfiguration is returned by New for unusable options.
	ErrInvalidConfiguration = bptree.ErrInvalidConfiguration
	// ErrUnknownAttribute is returned when a record or rule names an
	// attribute the store does not index.
	ErrUnknownAttribute = metadata.ErrUnknownAttribute
	// ErrMalformedRule is returned when rule text cannot be parsed.
	ErrMalformedRule = metadata.ErrMalformedRule
	// ErrDuplicateID is returned when a record ID is already stored.
	ErrDuplicateID = errors.New("duplicate record id")
	// ErrNilRecord is returned when a nil record is added.
	ErrNilRecord = errors.New("nil record")
	// ErrInvalidRecord is returned for records the store cannot index.
	ErrInvalidRecord = errors.New("invalid record")
)

// DuplicateIDError reports a record whose ID is already stored.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate record id %q", e.ID)
}

func (e *DuplicateIDError) Unwrap() error { return ErrDuplicateID }

// translateError maps errors from sub-packages onto the store's error
// taxonomy.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, metadata.ErrInvalidSchema) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return err
}
