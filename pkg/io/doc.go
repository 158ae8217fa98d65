// Package io reads and writes diagram files.
//
// # Formats
//
// Diagrams are stored as a [diagram.Document] in JSON, TOML or YAML. All three
// share one schema:
//
//	{
//	  "config": {"bit": 32, "style": "utf8", "header": "trim", "reserved": false},
//	  "fields": [
//	    {"name": "Source Port", "bits": 16},
//	    {"name": "Destination Port", "bits": 16}
//	  ]
//	}
//
// The same diagram in TOML:
//
//	[config]
//	bit = 32
//	style = "ascii"
//
//	[[fields]]
//	name = "Source Port"
//	bits = 16
//
// Every config key is optional and defaults as described in
// [render.Config.SetDefaults]. Unknown keys are rejected so that typos do not
// silently fall back to defaults.
//
// # Import and Export
//
// [Import] and [Export] pick the format from the file extension (.json,
// .toml, .yaml, .yml). [Read] and [Write] work on any reader or writer with an
// explicit [Format].
//
// Decoded diagrams are validated with [diagram.FromDocument]; decode and
// validation failures carry coded errors from pkg/errors.
//
// [diagram.Document]: github.com/matzehuels/protodiagram/pkg/diagram.Document
// [diagram.FromDocument]: github.com/matzehuels/protodiagram/pkg/diagram.FromDocument
// [render.Config.SetDefaults]: github.com/matzehuels/protodiagram/pkg/render.Config.SetDefaults
package io
