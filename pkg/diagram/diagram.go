package diagram

import (
	"github.com/matzehuels/protodiagram/pkg/errors"
	"github.com/matzehuels/protodiagram/pkg/field"
	"github.com/matzehuels/protodiagram/pkg/render"
)

const (
	// MaxFields bounds the number of fields in one diagram.
	MaxFields = 1024

	// MaxFieldBits bounds the width of a single field.
	MaxFieldBits = 1 << 16

	// MaxTotalBits bounds the combined width of all fields.
	MaxTotalBits = 1 << 18

	// MaxRows bounds the number of rows a diagram packs into.
	MaxRows = 4096
)

// Diagram is an ordered list of fields and the configuration they are drawn
// with.
type Diagram struct {
	Fields []field.Field
	Config render.Config
}

// New returns an empty diagram.
func New(cfg render.Config) *Diagram {
	cfg.SetDefaults()
	return &Diagram{Config: cfg}
}

// Clone returns a deep copy. Field identities are preserved.
func (d *Diagram) Clone() *Diagram {
	return &Diagram{Fields: field.Clone(d.Fields), Config: d.Config}
}

// Len returns the number of fields.
func (d *Diagram) Len() int { return len(d.Fields) }

// Bits returns the total width of all fields.
func (d *Diagram) Bits() int { return field.TotalLength(d.Fields) }

// Add appends a field.
func (d *Diagram) Add(name string, bits int) error {
	return d.Insert(len(d.Fields), name, bits)
}

// Insert places a new field at index, shifting later fields down.
// index may equal Len to append.
func (d *Diagram) Insert(index int, name string, bits int) error {
	if index < 0 || index > len(d.Fields) {
		return indexError(index, len(d.Fields)+1)
	}
	if len(d.Fields) >= MaxFields {
		return errors.New(errors.ErrCodeInvalidInput, "diagram is full (max %d fields)", MaxFields)
	}
	if err := validateField(name, bits); err != nil {
		return err
	}
	if err := checkSize(d.Bits()+bits, d.Config.Bit); err != nil {
		return err
	}
	d.Fields = append(d.Fields, field.Field{})
	copy(d.Fields[index+1:], d.Fields[index:])
	d.Fields[index] = field.New(name, bits)
	return nil
}

// Remove deletes the field at index.
func (d *Diagram) Remove(index int) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	d.Fields = append(d.Fields[:index], d.Fields[index+1:]...)
	return nil
}

// Move moves the field at from so that it ends up at index to.
func (d *Diagram) Move(from, to int) error {
	if err := d.checkIndex(from); err != nil {
		return err
	}
	if err := d.checkIndex(to); err != nil {
		return err
	}
	f := d.Fields[from]
	if from < to {
		copy(d.Fields[from:to], d.Fields[from+1:to+1])
	} else {
		copy(d.Fields[to+1:from+1], d.Fields[to:from])
	}
	d.Fields[to] = f
	return nil
}

// Rename changes the name of the field at index. Its identity is kept.
func (d *Diagram) Rename(index int, name string) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	if err := validateField(name, d.Fields[index].Length); err != nil {
		return err
	}
	d.Fields[index] = d.Fields[index].WithName(name)
	return nil
}

// Resize changes the width of the field at index. Its identity is kept.
func (d *Diagram) Resize(index, bits int) error {
	if err := d.checkIndex(index); err != nil {
		return err
	}
	if err := validateField(d.Fields[index].Name, bits); err != nil {
		return err
	}
	if err := checkSize(d.Bits()-d.Fields[index].Length+bits, d.Config.Bit); err != nil {
		return err
	}
	d.Fields[index] = d.Fields[index].WithLength(bits)
	return nil
}

// Set changes a configuration value; see [render.Config.Set]. A row width
// that would pack the fields into more than MaxRows rows is rejected.
func (d *Diagram) Set(key, value string) error {
	cfg := d.Config
	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := checkSize(d.Bits(), cfg.Bit); err != nil {
		return err
	}
	d.Config = cfg
	return nil
}

// Clear removes every field. The configuration is kept.
func (d *Diagram) Clear() {
	d.Fields = nil
}

// Validate checks the configuration and every field.
func (d *Diagram) Validate() error {
	if err := d.Config.Validate(); err != nil {
		return err
	}
	if len(d.Fields) > MaxFields {
		return errors.New(errors.ErrCodeInvalidInput, "too many fields: %d (max %d)", len(d.Fields), MaxFields)
	}
	for i, f := range d.Fields {
		if err := validateField(f.Name, f.Length); err != nil {
			return errors.New(errors.GetCode(err), "field %d: %s", i, errors.UserMessage(err))
		}
	}
	return checkSize(d.Bits(), d.Config.Bit)
}

// Text renders the diagram with its configuration.
func (d *Diagram) Text() string {
	return render.Text(d.Fields, d.Config)
}

// SVG renders the diagram as an SVG document.
func (d *Diagram) SVG() []byte {
	return render.SVG(d.Fields, d.Config)
}

func (d *Diagram) checkIndex(index int) error {
	if index < 0 || index >= len(d.Fields) {
		return indexError(index, len(d.Fields))
	}
	return nil
}

func indexError(index, n int) error {
	if n == 0 {
		return errors.New(errors.ErrCodeInvalidIndex, "index %d out of range (diagram is empty)", index)
	}
	return errors.New(errors.ErrCodeInvalidIndex, "index %d out of range [0, %d]", index, n-1)
}

func validateField(name string, bits int) error {
	if err := field.Validate(name, bits); err != nil {
		return err
	}
	if bits > MaxFieldBits {
		return errors.New(errors.ErrCodeInvalidField, "field %q: length %d exceeds %d bits", name, bits, MaxFieldBits)
	}
	return nil
}

// checkSize bounds the rendered size of total bits packed bit to a row.
func checkSize(total, bit int) error {
	if total > MaxTotalBits {
		return errors.New(errors.ErrCodeInvalidInput, "diagram is %d bits wide (max %d)", total, MaxTotalBits)
	}
	if bit < 1 {
		return nil
	}
	if rows := (total + bit - 1) / bit; rows > MaxRows {
		return errors.New(errors.ErrCodeInvalidInput, "diagram needs %d rows at %d bits per row (max %d)", rows, bit, MaxRows)
	}
	return nil
}
