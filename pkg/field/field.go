// Package field defines the value object rendered by a protocol diagram.
//
// A [Field] is a named run of bits. Two fields are the same field only when
// they share an identity; equal names and lengths are not enough. This is what
// lets the renderer tell a field that genuinely continues onto the next row
// apart from two different fields that happen to line up.
//
// Fields are values. The render pipeline never mutates a caller's field; it
// tracks remaining bits in its own scratch state.
package field

import (
	"unicode"

	"github.com/google/uuid"

	"github.com/matzehuels/protodiagram/pkg/errors"
)

// MaxNameLength bounds field names accepted by [Validate].
const MaxNameLength = 256

// Field is a named, fixed-length run of bits with a stable identity.
type Field struct {
	ID     uuid.UUID // Stable identity used by Equals
	Name   string    // Display name
	Length int       // Width in bits (non-negative)
}

// New creates a field with a fresh identity.
func New(name string, length int) Field {
	return Field{ID: uuid.New(), Name: name, Length: length}
}

// Equals reports whether f and other are the same field instance.
// Name and length are ignored.
func (f Field) Equals(other Field) bool {
	return f.ID == other.ID
}

// WithName returns a copy of f with a new name and the same identity.
func (f Field) WithName(name string) Field {
	f.Name = name
	return f
}

// WithLength returns a copy of f with a new length and the same identity.
func (f Field) WithLength(length int) Field {
	f.Length = length
	return f
}

// Validate checks that name and length are acceptable for a diagram field.
func Validate(name string, length int) error {
	if length < 0 {
		return errors.New(errors.ErrCodeInvalidField, "field %q: length must be non-negative, got %d", name, length)
	}
	if len(name) > MaxNameLength {
		return errors.New(errors.ErrCodeInvalidField, "field name too long (max %d characters)", MaxNameLength)
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return errors.New(errors.ErrCodeInvalidField, "field name contains control characters")
		}
	}
	return nil
}

// TotalLength returns the sum of all field lengths.
func TotalLength(fields []Field) int {
	n := 0
	for _, f := range fields {
		n += f.Length
	}
	return n
}

// Clone returns a copy of fields that shares identities but not storage.
func Clone(fields []Field) []Field {
	if fields == nil {
		return nil
	}
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}
