// Package diagram holds an editable protocol diagram.
//
// A [Diagram] is an ordered list of fields plus the render configuration.
// Its edit operations validate their input and return coded errors from
// [errors], so the render core only ever sees well-formed diagrams.
//
// A [Session] wraps a diagram for interactive use: it serialises edits,
// keeps an undo/redo timeline and executes the line-oriented command
// language parsed by [ParseCommand]:
//
//	s := diagram.NewSession(diagram.New(render.DefaultConfig()))
//	_ = s.Exec(`add "Source Port" 16`)
//	_ = s.Exec("add 'Destination Port' 16")
//	_ = s.Exec("set style ascii")
//	fmt.Println(s.Render())
//
// [Document] is the serialisable form used by files, the HTTP API and the
// diagram stores. Field identities are not persisted; they are assigned
// afresh when a document is loaded.
//
// [errors]: github.com/matzehuels/protodiagram/pkg/errors
package diagram
