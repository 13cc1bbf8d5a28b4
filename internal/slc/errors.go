// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slc

import (
	"errors"
	"fmt"
)

// Sentinels matched by the typed errors below through errors.Is.
var (
	ErrNotFound  = errors.New("level not found")
	ErrAmbiguous = errors.New("ambiguous level id")
	ErrMissingID = errors.New("level without id")
)

// ParseError reports a file that could not be read or is not well-formed XML.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parsing document: %v", e.Err)
	}
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// NotFoundError reports an Id that matches no level.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("the ID %q does not match any level", e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// AmbiguousMatchError reports an Id carried by more than one level.
type AmbiguousMatchError struct {
	ID    string
	Count int
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("the ID %q matches multiple levels (%d)", e.ID, e.Count)
}

func (e *AmbiguousMatchError) Unwrap() error { return ErrAmbiguous }

// MissingIDError reports a Level element without an Id attribute.
// Index is the 1-based position of the level in document order.
type MissingIDError struct {
	Index int
}

func (e *MissingIDError) Error() string {
	return fmt.Sprintf("level #%d has no %s attribute", e.Index, IDAttr)
}

func (e *MissingIDError) Unwrap() error { return ErrMissingID }
