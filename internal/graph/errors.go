package graph

import (
	"errors"
	"regexp"
)

var (
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("already exists")
	ErrWriteFailed         = errors.New("write returned no rows")
	ErrInvalidRelationType = errors.New("invalid relation type")
)

// Relation types are spliced into Cypher text (they cannot be bound as
// parameters), so they are restricted to a plain identifier token.
var relTypePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{0,63}$`)

func ValidRelationType(s string) bool {
	return relTypePattern.MatchString(s)
}
