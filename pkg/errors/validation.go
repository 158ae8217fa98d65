package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// MaxIDLength bounds stored diagram identifiers.
const MaxIDLength = 128

// idRegex matches identifiers accepted for stored diagrams.
var idRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// ValidateID validates a stored diagram identifier for safety.
// Identifiers end up in cache keys, URLs and database keys, so the rules are
// conservative:
//   - No empty identifiers
//   - Maximum length of 128 characters
//   - No control characters
//   - No path traversal sequences
//   - Letters, digits, dot, dash and underscore only
func ValidateID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "diagram id cannot be empty")
	}
	if len(id) > MaxIDLength {
		return New(ErrCodeInvalidID, "diagram id too long (max %d characters)", MaxIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidID, "diagram id contains invalid control characters")
		}
	}
	if strings.Contains(id, "..") {
		return New(ErrCodeInvalidID, "diagram id cannot contain path traversal sequences (..)")
	}
	if !idRegex.MatchString(id) {
		return New(ErrCodeInvalidID, "invalid diagram id: %q", id)
	}
	return nil
}

// ValidatePath validates an output path given to the CLI.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}
	return nil
}
