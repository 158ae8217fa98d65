package diagram

import (
	"github.com/matzehuels/protodiagram/pkg/field"
	"github.com/matzehuels/protodiagram/pkg/render"
)

// Document is the serialisable form of a diagram.
type Document struct {
	Config render.Config `json:"config" toml:"config" yaml:"config" bson:"config"`
	Fields []FieldSpec   `json:"fields" toml:"fields" yaml:"fields" bson:"fields"`
}

// FieldSpec is one field of a Document.
type FieldSpec struct {
	Name string `json:"name" toml:"name" yaml:"name" bson:"name"`
	Bits int    `json:"bits" toml:"bits" yaml:"bits" bson:"bits"`
}

// Document returns the serialisable form of d.
func (d *Diagram) Document() Document {
	doc := Document{Config: d.Config, Fields: make([]FieldSpec, len(d.Fields))}
	for i, f := range d.Fields {
		doc.Fields[i] = FieldSpec{Name: f.Name, Bits: f.Length}
	}
	return doc
}

// FromDocument builds and validates a diagram. Every field gets a fresh
// identity.
func FromDocument(doc Document) (*Diagram, error) {
	d := &Diagram{Config: doc.Config, Fields: make([]field.Field, len(doc.Fields))}
	for i, f := range doc.Fields {
		d.Fields[i] = field.New(f.Name, f.Bits)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
