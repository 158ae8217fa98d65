package render

import (
	"strings"

	"github.com/matzehuels/protodiagram/pkg/errors"
	"github.com/matzehuels/protodiagram/pkg/render/styles"
)

// HeaderMode controls the bit-number ruler drawn above the diagram.
type HeaderMode string

const (
	HeaderNone HeaderMode = "none" // no ruler
	HeaderTrim HeaderMode = "trim" // one ruler above the diagram
	HeaderFull HeaderMode = "full" // a ruler above every row
)

const (
	// DefaultBit is the default row width in bits.
	DefaultBit = 32

	// MaxBit bounds the row width accepted by Validate.
	MaxBit = 1024

	// DefaultHeader is the default header mode.
	DefaultHeader = HeaderTrim
)

// ParseHeaderMode resolves a header mode name.
func ParseHeaderMode(s string) (HeaderMode, error) {
	switch h := HeaderMode(strings.ToLower(strings.TrimSpace(s))); h {
	case HeaderNone, HeaderTrim, HeaderFull:
		return h, nil
	}
	return "", errors.New(errors.ErrCodeInvalidHeader, "unknown header mode %q (valid: none, trim, full)", s)
}

// Config controls how a diagram is drawn.
type Config struct {
	Bit                 int            `json:"bit,omitempty" toml:"bit,omitempty" yaml:"bit,omitempty" bson:"bit,omitempty"`
	Style               styles.Variant `json:"style,omitempty" toml:"style,omitempty" yaml:"style,omitempty" bson:"style,omitempty"`
	Header              HeaderMode     `json:"header,omitempty" toml:"header,omitempty" yaml:"header,omitempty" bson:"header,omitempty"`
	ShowReservedPadding bool           `json:"reserved,omitempty" toml:"reserved,omitempty" yaml:"reserved,omitempty" bson:"reserved,omitempty"`
}

// DefaultConfig returns a Config with every default applied.
func DefaultConfig() Config {
	var c Config
	c.SetDefaults()
	return c
}

// SetDefaults fills unset values.
func (c *Config) SetDefaults() {
	if c.Bit == 0 {
		c.Bit = DefaultBit
	}
	if c.Style == "" {
		c.Style = styles.DefaultVariant
	}
	if c.Header == "" {
		c.Header = DefaultHeader
	}
}

// Validate applies defaults and checks every value.
func (c *Config) Validate() error {
	c.SetDefaults()
	if c.Bit < 1 || c.Bit > MaxBit {
		return errors.New(errors.ErrCodeInvalidConfig, "bit must be between 1 and %d, got %d", MaxBit, c.Bit)
	}
	v, err := styles.ParseVariant(string(c.Style))
	if err != nil {
		return err
	}
	c.Style = v
	h, err := ParseHeaderMode(string(c.Header))
	if err != nil {
		return err
	}
	c.Header = h
	return nil
}

// Set assigns a configuration value by key. Keys are bit, style, header and
// reserved.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "bit", "bits", "width":
		n, err := parseInt(value)
		if err != nil || n < 1 || n > MaxBit {
			return errors.New(errors.ErrCodeInvalidConfig, "bit must be an integer between 1 and %d, got %q", MaxBit, value)
		}
		c.Bit = n
	case "style":
		v, err := styles.ParseVariant(value)
		if err != nil {
			return err
		}
		c.Style = v
	case "header":
		h, err := ParseHeaderMode(value)
		if err != nil {
			return err
		}
		c.Header = h
	case "reserved", "padding":
		b, err := parseBool(value)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidConfig, "reserved must be true or false, got %q", value)
		}
		c.ShowReservedPadding = b
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown setting %q (valid: bit, style, header, reserved)", key)
	}
	return nil
}
