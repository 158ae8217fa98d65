package diagram

import (
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/protodiagram/pkg/errors"
	"github.com/matzehuels/protodiagram/pkg/render"
)

func exec(t *testing.T, s *Session, lines ...string) {
	t.Helper()
	for _, l := range lines {
		if err := s.Exec(l); err != nil {
			t.Fatalf("Exec(%q) error = %v", l, err)
		}
	}
}

func TestSessionUndoRedo(t *testing.T) {
	s := NewSession(New(render.Config{}))
	exec(t, s, "add a 8", "add b 8", "rename 1 c")

	if diff := cmp.Diff([]string{"a", "c"}, names(s.Snapshot())); diff != "" {
		t.Fatalf("fields mismatch (-want +got):\n%s", diff)
	}

	exec(t, s, "undo")
	if diff := cmp.Diff([]string{"a", "b"}, names(s.Snapshot())); diff != "" {
		t.Errorf("after undo (-want +got):\n%s", diff)
	}

	exec(t, s, "undo", "redo")
	if diff := cmp.Diff([]string{"a", "b"}, names(s.Snapshot())); diff != "" {
		t.Errorf("after undo+redo (-want +got):\n%s", diff)
	}

	if u, r := s.History(); u != 2 || r != 1 {
		t.Errorf("History() = %d, %d, want 2, 1", u, r)
	}
}

func TestSessionEditClearsRedo(t *testing.T) {
	s := NewSession(nil)
	exec(t, s, "add a 8", "undo", "add b 4")

	if err := s.Redo(); !errors.Is(err, errors.ErrCodeInvalidCommand) {
		t.Errorf("Redo() error = %v, want INVALID_COMMAND", err)
	}
}

func TestSessionNothingToUndo(t *testing.T) {
	s := NewSession(nil)
	if err := s.Undo(); !errors.Is(err, errors.ErrCodeInvalidCommand) {
		t.Errorf("Undo() error = %v, want INVALID_COMMAND", err)
	}
}

func TestSessionFailedEditIsNotRecorded(t *testing.T) {
	s := NewSession(nil)
	exec(t, s, "add a 8")

	if err := s.Exec("remove 5"); !errors.Is(err, errors.ErrCodeInvalidIndex) {
		t.Fatalf("Exec(remove 5) error = %v, want INVALID_INDEX", err)
	}
	if u, _ := s.History(); u != 1 {
		t.Errorf("undo steps = %d, want 1", u)
	}
}

func TestSessionHistoryLimit(t *testing.T) {
	s := NewSessionWithHistory(nil, 3)
	for i := 0; i < 10; i++ {
		exec(t, s, fmt.Sprintf("add f%d 1", i))
	}

	if u, _ := s.History(); u != 3 {
		t.Fatalf("undo steps = %d, want 3", u)
	}
	exec(t, s, "undo", "undo", "undo")
	if got := s.Snapshot().Len(); got != 7 {
		t.Errorf("Len() after undoing everything = %d, want 7", got)
	}
}

func TestSessionDoesNotShareCallerDiagram(t *testing.T) {
	d := New(render.Config{})
	s := NewSession(d)
	exec(t, s, "add a 8")

	if d.Len() != 0 {
		t.Error("session edits leaked into the caller's diagram")
	}
	snap := s.Snapshot()
	_ = snap.Add("b", 8)
	if s.Snapshot().Len() != 1 {
		t.Error("editing a snapshot changed the session")
	}
}

func TestSessionDirty(t *testing.T) {
	s := NewSession(nil)
	if s.Dirty() {
		t.Error("new session should be clean")
	}
	exec(t, s, "add a 1")
	if !s.Dirty() {
		t.Error("session should be dirty after an edit")
	}
	s.MarkSaved()
	if s.Dirty() {
		t.Error("MarkSaved should clear the dirty flag")
	}
}

func TestSessionRender(t *testing.T) {
	s := NewSession(nil)
	exec(t, s, "set header none", "set style ascii", "add t 1")

	if got, want := s.Render(), "+-+\n|t|\n+-+"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestSessionConcurrentEdits(t *testing.T) {
	s := NewSession(nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = s.Exec(fmt.Sprintf("add f%d 2", i))
			_ = s.Render()
		}(i)
	}
	wg.Wait()

	if got := s.Snapshot().Len(); got != 50 {
		t.Errorf("Len() = %d, want 50", got)
	}
}
