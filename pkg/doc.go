// Package pkg holds the protodiagram libraries.
//
// # Overview
//
// protodiagram draws protocol headers: an ordered list of named, fixed-width
// fields packed into rows of a configurable bit width. The packages split
// into three layers:
//
//  1. Drawing: [field], [render], [render/layout] and [render/styles]
//     turn fields into a character matrix and format it as text or SVG.
//  2. Editing and files: [diagram] adds mutation, undo/redo and a small
//     command language; [io] reads and writes JSON, TOML and YAML.
//  3. Serving: [pipeline] renders through a [cache]; [store] persists
//     diagrams by ID; [observability] exposes hooks for both.
//
// # Data flow
//
//	[]field.Field + render.Config
//	         ↓
//	    layout.PackRows       rows of segments, tail padding
//	         ↓
//	    layout.BuildDividers  boundaries between rows
//	         ↓
//	    layout.Sequence       interleaved groups, labels placed
//	         ↓
//	    layout.BuildMatrix    elements and connectors
//	         ↓
//	    styles.Style          text or SVG
//
// # Quick Start
//
//	d := diagram.New(render.Config{Bit: 32, Style: styles.ASCII})
//	_ = d.Add("Source Port", 16)
//	_ = d.Add("Destination Port", 16)
//	_ = d.Add("Sequence Number", 32)
//	fmt.Println(d.Text())
//
// [field]: https://pkg.go.dev/github.com/matzehuels/protodiagram/pkg/field
// [render]: https://pkg.go.dev/github.com/matzehuels/protodiagram/pkg/render
// [render/layout]: https://pkg.go.dev/github.com/matzehuels/protodiagram/pkg/render/layout
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/protodiagram/pkg/render/styles
// [diagram]: https://pkg.go.dev/github.com/matzehuels/protodiagram/pkg/diagram
// [io]: https://pkg.go.dev/github.com/matzehuels/protodiagram/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/protodiagram/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/protodiagram/pkg/cache
// [store]: https://pkg.go.dev/github.com/matzehuels/protodiagram/pkg/store
// [observability]: https://pkg.go.dev/github.com/matzehuels/protodiagram/pkg/observability
package pkg
