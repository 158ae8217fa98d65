// Package pipeline renders diagrams through a shared cache.
//
// The CLI and the HTTP service both go through a Runner so that validation,
// cache keys and logging behave the same at every entry point.
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Render(ctx, d, pipeline.FormatSVG)
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(res.Output)
//
// Cache keys are derived from the diagram's serialised document and the
// output format, so field identities do not affect caching.
package pipeline

import (
	"time"

	"github.com/matzehuels/protodiagram/pkg/errors"
)

// Output formats.
const (
	FormatText = "text"
	FormatSVG  = "svg"
)

// DefaultFormat is used when no format is given.
const DefaultFormat = FormatText

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatText: true,
	FormatSVG:  true,
}

// Formats returns the supported output formats in display order.
func Formats() []string {
	return []string{FormatText, FormatSVG}
}

// ValidateFormat checks that format is supported. Formats are case-sensitive.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be text or svg)", format)
	}
	return nil
}

// ContentType returns the MIME type of a rendered format.
func ContentType(format string) string {
	if format == FormatSVG {
		return "image/svg+xml"
	}
	return "text/plain; charset=utf-8"
}

// Result holds one rendered output.
type Result struct {
	Format   string
	Output   []byte
	Hash     string        // content hash of the rendered document
	Hit      bool          // served from cache
	Duration time.Duration // wall time, including cache lookups
}
