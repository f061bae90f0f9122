package constraint

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/tidwall/match"
)

type Number interface {
	uint | uint8 | uint16 | uint32 | uint64 | int | int8 | int16 | int32 | int64 | float32 | float64
}

// JSONType is a constraint for the scalar Go types a roster document may carry.
type JSONType interface {
	Number | string | bool
}

type Validator[T JSONType] func(v T) error
type ValidateFunc[T JSONType] func() (string, Validator[T])

var (
	ErrRequired      = errors.New("is required but not found")
	ErrTypeMismatch  = errors.New("type mismatch")
	ErrNotOneOf      = errors.New("value must be one of")
	ErrNotMatch      = errors.New("not match pattern")
	ErrFixedAppetite = errors.New("appetite is fixed for kind")
)

// Match validates that a string matches a given pattern.
// The pattern can include wildcards:
//   - `*`: matches any sequence of characters.
//   - `?`: matches any single character.
//
// Example: Match("Tom*") will match "Tom", "Tommy", etc.
func Match(pattern string) ValidateFunc[string] {
	return func() (string, Validator[string]) {
		return "match", func(str string) error {
			return lo.Ternary(!match.Match(str, pattern), fmt.Errorf("%w %s", ErrNotMatch, pattern), nil)
		}
	}
}

// OneOf validates that a value is one of the allowed values.
func OneOf[T JSONType](allowed ...T) ValidateFunc[T] {
	return func() (string, Validator[T]) {
		return "one_of", func(val T) error {
			return lo.Ternary(!lo.Contains(allowed, val), fmt.Errorf("%w:%v", ErrNotOneOf, allowed), nil)
		}
	}
}

// Check runs the validators in order and returns the first failure, prefixed
// with the validator name.
func Check[T JSONType](val T, vfs ...ValidateFunc[T]) error {
	for _, vf := range vfs {
		name, v := vf()
		if err := v(val); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
