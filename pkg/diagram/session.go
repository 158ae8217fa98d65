package diagram

import (
	"sync"

	"github.com/matzehuels/protodiagram/pkg/errors"
	"github.com/matzehuels/protodiagram/pkg/render"
)

// DefaultHistory is the number of undo steps a session keeps.
const DefaultHistory = 100

// Session serialises edits to a diagram and records an undo/redo timeline.
// It is safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	current *Diagram
	undo    []*Diagram
	redo    []*Diagram
	limit   int
	dirty   bool
}

// NewSession starts a session on a copy of d.
func NewSession(d *Diagram) *Session {
	return NewSessionWithHistory(d, DefaultHistory)
}

// NewSessionWithHistory starts a session that keeps at most limit undo steps.
func NewSessionWithHistory(d *Diagram, limit int) *Session {
	if d == nil {
		d = New(render.DefaultConfig())
	}
	if limit < 1 {
		limit = 1
	}
	return &Session{current: d.Clone(), limit: limit}
}

// Snapshot returns a copy of the current diagram.
func (s *Session) Snapshot() *Diagram {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Render draws the current diagram as text.
func (s *Session) Render() string {
	return s.Snapshot().Text()
}

// Update applies fn to a working copy of the diagram. The copy replaces the
// current diagram only when fn succeeds; the previous diagram becomes an undo
// step and the redo timeline is discarded.
func (s *Session) Update(fn func(d *Diagram) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clone()
	if err := fn(next); err != nil {
		return err
	}
	s.undo = append(s.undo, s.current)
	if len(s.undo) > s.limit {
		s.undo = s.undo[len(s.undo)-s.limit:]
	}
	s.redo = nil
	s.current = next
	s.dirty = true
	return nil
}

// Undo restores the diagram before the last edit.
func (s *Session) Undo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.undo) == 0 {
		return errors.New(errors.ErrCodeInvalidCommand, "nothing to undo")
	}
	s.redo = append(s.redo, s.current)
	s.current = s.undo[len(s.undo)-1]
	s.undo = s.undo[:len(s.undo)-1]
	s.dirty = true
	return nil
}

// Redo re-applies the last undone edit.
func (s *Session) Redo() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.redo) == 0 {
		return errors.New(errors.ErrCodeInvalidCommand, "nothing to redo")
	}
	s.undo = append(s.undo, s.current)
	s.current = s.redo[len(s.redo)-1]
	s.redo = s.redo[:len(s.redo)-1]
	s.dirty = true
	return nil
}

// History returns the number of available undo and redo steps.
func (s *Session) History() (undo, redo int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.undo), len(s.redo)
}

// Dirty reports whether the diagram changed since the last MarkSaved.
func (s *Session) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// MarkSaved clears the dirty flag.
func (s *Session) MarkSaved() {
	s.mu.Lock()
	s.dirty = false
	s.mu.Unlock()
}

// Exec parses and applies one command line.
func (s *Session) Exec(line string) error {
	cmd, err := ParseCommand(line)
	if err != nil {
		return err
	}
	return s.Apply(cmd)
}

// Apply executes a parsed command.
func (s *Session) Apply(cmd Command) error {
	switch cmd.Op {
	case OpUndo:
		return s.Undo()
	case OpRedo:
		return s.Redo()
	}
	return s.Update(cmd.apply)
}
