package diagram

import (
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/matzehuels/protodiagram/pkg/errors"
)

// Op names an editing command.
type Op string

const (
	OpAdd    Op = "add"
	OpInsert Op = "insert"
	OpRemove Op = "remove"
	OpMove   Op = "move"
	OpRename Op = "rename"
	OpResize Op = "resize"
	OpSet    Op = "set"
	OpUndo   Op = "undo"
	OpRedo   Op = "redo"
	OpClear  Op = "clear"
)

var aliases = map[string]Op{
	"rm":     OpRemove,
	"del":    OpRemove,
	"delete": OpRemove,
	"mv":     OpMove,
}

// usage lists the argument shape of every command. Indices are 0-based.
var usage = map[Op]string{
	OpAdd:    "add <name> <bits>",
	OpInsert: "insert <index> <name> <bits>",
	OpRemove: "remove <index>",
	OpMove:   "move <from> <to>",
	OpRename: "rename <index> <name>",
	OpResize: "resize <index> <bits>",
	OpSet:    "set <bit|style|header|reserved> <value>",
	OpUndo:   "undo",
	OpRedo:   "redo",
	OpClear:  "clear",
}

// Usage returns a one-line synopsis per command, in a stable order.
func Usage() []string {
	ops := []Op{OpAdd, OpInsert, OpRemove, OpMove, OpRename, OpResize, OpSet, OpUndo, OpRedo, OpClear}
	out := make([]string, len(ops))
	for i, op := range ops {
		out[i] = usage[op]
	}
	return out
}

// Command is one parsed editing command.
type Command struct {
	Op    Op
	Index int // insert, remove, rename, resize; source of move
	To    int // target of move
	Name  string
	Bits  int
	Key   string
	Value string
}

// ParseCommand parses a command line such as `add "Source Port" 16`.
func ParseCommand(line string) (Command, error) {
	args, err := Tokenize(line)
	if err != nil {
		return Command{}, err
	}
	if len(args) == 0 {
		return Command{}, errors.New(errors.ErrCodeInvalidCommand, "empty command")
	}

	name := strings.ToLower(args[0])
	op := Op(name)
	if a, ok := aliases[name]; ok {
		op = a
	}
	shape, ok := usage[op]
	if !ok {
		return Command{}, errors.New(errors.ErrCodeInvalidCommand, "unknown command %q", args[0])
	}
	args = args[1:]
	if want := len(strings.Fields(shape)) - 1; len(args) != want {
		return Command{}, errors.New(errors.ErrCodeInvalidCommand, "usage: %s", shape)
	}

	cmd := Command{Op: op}
	switch op {
	case OpAdd:
		cmd.Name = args[0]
		cmd.Bits, err = parseNumber("bits", args[1])
	case OpInsert:
		if cmd.Index, err = parseNumber("index", args[0]); err == nil {
			cmd.Name = args[1]
			cmd.Bits, err = parseNumber("bits", args[2])
		}
	case OpRemove:
		cmd.Index, err = parseNumber("index", args[0])
	case OpMove:
		if cmd.Index, err = parseNumber("from", args[0]); err == nil {
			cmd.To, err = parseNumber("to", args[1])
		}
	case OpRename:
		cmd.Index, err = parseNumber("index", args[0])
		cmd.Name = args[1]
	case OpResize:
		if cmd.Index, err = parseNumber("index", args[0]); err == nil {
			cmd.Bits, err = parseNumber("bits", args[1])
		}
	case OpSet:
		cmd.Key, cmd.Value = args[0], args[1]
	}
	if err != nil {
		return Command{}, err
	}
	return cmd, nil
}

func parseNumber(what, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidCommand, "%s must be an integer, got %q", what, s)
	}
	return n, nil
}

func (c Command) apply(d *Diagram) error {
	switch c.Op {
	case OpAdd:
		return d.Add(c.Name, c.Bits)
	case OpInsert:
		return d.Insert(c.Index, c.Name, c.Bits)
	case OpRemove:
		return d.Remove(c.Index)
	case OpMove:
		return d.Move(c.Index, c.To)
	case OpRename:
		return d.Rename(c.Index, c.Name)
	case OpResize:
		return d.Resize(c.Index, c.Bits)
	case OpSet:
		return d.Set(c.Key, c.Value)
	case OpClear:
		d.Clear()
		return nil
	}
	return errors.New(errors.ErrCodeInvalidCommand, "%s cannot be applied to a diagram", c.Op)
}

// String formats c as a command line that ParseCommand accepts.
func (c Command) String() string {
	itoa := strconv.Itoa
	switch c.Op {
	case OpAdd:
		return join(string(c.Op), quote(c.Name), itoa(c.Bits))
	case OpInsert:
		return join(string(c.Op), itoa(c.Index), quote(c.Name), itoa(c.Bits))
	case OpRemove:
		return join(string(c.Op), itoa(c.Index))
	case OpMove:
		return join(string(c.Op), itoa(c.Index), itoa(c.To))
	case OpRename:
		return join(string(c.Op), itoa(c.Index), quote(c.Name))
	case OpResize:
		return join(string(c.Op), itoa(c.Index), itoa(c.Bits))
	case OpSet:
		return join(string(c.Op), quote(c.Key), quote(c.Value))
	}
	return string(c.Op)
}

func join(parts ...string) string { return strings.Join(parts, " ") }

func quote(s string) string {
	if s != "" && !strings.HasPrefix(s, "#") && !strings.ContainsAny(s, " \t\"'\\") {
		return s
	}
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}

// Tokenize splits a command line into arguments using shell quoting rules.
// A word starting with # begins a comment.
func Tokenize(line string) ([]string, error) {
	args, err := shlex.Split(line)
	if err != nil {
		return nil, errors.New(errors.ErrCodeInvalidCommand, "malformed command line: %v", err)
	}
	if len(args) == 0 {
		return nil, nil
	}
	return args, nil
}
