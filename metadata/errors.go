package metadata

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRule is returned when a rule's text cannot be parsed.
	ErrMalformedRule = errors.New("malformed rule")
	// ErrUnknownAttribute is returned when an attribute is not part of the schema.
	ErrUnknownAttribute = errors.New("unknown attribute")
	// ErrInvalidSchema is returned when a schema declaration is unusable.
	ErrInvalidSchema = errors.New("invalid schema")
)

// RuleSyntaxError describes a rule that could not be parsed.
//
// The underlying parse error (if any) can be accessed via errors.Unwrap.
type RuleSyntaxError struct {
	Rule   string
	Reason string
	cause  error
}

func (e *RuleSyntaxError) Error() string {
	return fmt.Sprintf("malformed rule %q: %s", e.Rule, e.Reason)
}

func (e *RuleSyntaxError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrMalformedRule}
	}
	return []error{ErrMalformedRule, e.cause}
}

// UnknownAttributeError reports an attribute outside the schema.
type UnknownAttributeError struct {
	Attribute string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("unknown attribute %q", e.Attribute)
}

func (e *UnknownAttributeError) Unwrap() error { return ErrUnknownAttribute }
