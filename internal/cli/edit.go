package cli

import (
	"context"
	goerrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/protodiagram/pkg/diagram"
	"github.com/matzehuels/protodiagram/pkg/errors"
	diagramio "github.com/matzehuels/protodiagram/pkg/io"
	"github.com/matzehuels/protodiagram/pkg/render"
)

func (c *CLI) editCommand() *cobra.Command {
	var history int

	cmd := &cobra.Command{
		Use:   "edit [file]",
		Short: "Edit a diagram interactively",
		Long: `Open an interactive editor with a live preview.

Type commands such as 'add "Source Port" 16', 'resize 0 8' or 'set style ascii'
and press enter. Type 'help' for the full list. ctrl+s writes the diagram back
to the file (created if missing); esc or ctrl+c quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			return c.runEdit(cmd.Context(), cmd, path, history)
		},
	}
	cmd.Flags().IntVar(&history, "history", diagram.DefaultHistory, "number of undo steps to keep")
	return cmd
}

func (c *CLI) runEdit(ctx context.Context, cmd *cobra.Command, path string, history int) error {
	d, err := openForEdit(path)
	if err != nil {
		return err
	}

	m := newEditModel(diagram.NewSessionWithHistory(d, history), path)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(editModel); ok && fm.session.Dirty() {
		printWarning(cmd.ErrOrStderr(), "Quit with unsaved changes")
	}
	return nil
}

// openForEdit imports path, or returns an empty diagram when path is empty
// or does not exist yet. A new path must still have a known extension.
func openForEdit(path string) (*diagram.Diagram, error) {
	if path == "" {
		return diagram.New(render.Config{}), nil
	}
	if err := editable(path); err != nil {
		return nil, err
	}
	if _, err := diagramio.DetectFormat(path); err != nil {
		return nil, err
	}
	d, err := diagramio.Import(path)
	if goerrors.Is(err, fs.ErrNotExist) {
		return diagram.New(render.Config{}), nil
	}
	return d, err
}

// editModel is the bubbletea model of the interactive editor.
type editModel struct {
	session *diagram.Session
	input   textinput.Model
	path    string
	status  string
	failed  bool // status is an error
	width   int
	save    func(path string, d *diagram.Diagram) error
}

func newEditModel(s *diagram.Session, path string) editModel {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.Placeholder = `add "Source Port" 16`
	ti.CharLimit = 512
	ti.Focus()

	return editModel{
		session: s,
		input:   ti,
		path:    path,
		status:  "type 'help' for commands",
		save:    diagramio.Export,
	}
}

func (m editModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			m.write()
			return m, nil
		case tea.KeyEnter:
			m.exec(m.input.Value())
			m.input.Reset()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-4, 10)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *editModel) exec(line string) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return
	case "help", "?":
		m.setStatus(strings.Join(diagram.Usage(), " · "), nil)
		return
	}
	if err := m.session.Exec(line); err != nil {
		m.setStatus("", err)
		return
	}
	undo, redo := m.session.History()
	m.setStatus(fmt.Sprintf("%s  (undo %d, redo %d)", line, undo, redo), nil)
}

func (m *editModel) write() {
	if m.path == "" {
		m.setStatus("", errors.New(errors.ErrCodeInvalidInput, "no file to save to; start the editor with a path"))
		return
	}
	if err := m.save(m.path, m.session.Snapshot()); err != nil {
		m.setStatus("", err)
		return
	}
	m.session.MarkSaved()
	m.setStatus("saved "+m.path, nil)
}

func (m *editModel) setStatus(msg string, err error) {
	m.failed = err != nil
	if err != nil {
		msg = errors.UserMessage(err)
	}
	m.status = msg
}

func (m editModel) View() string {
	var b strings.Builder

	title := "protodiagram"
	if m.path != "" {
		title += " " + m.path
	}
	if m.session.Dirty() {
		title += " *"
	}
	b.WriteString(StyleTitle.Render(title))
	b.WriteString("\n")

	d := m.session.Snapshot()
	preview := m.session.Render()
	if preview == "" {
		preview = StyleDim.Render("(no fields)")
	}
	b.WriteString(stylePreview.Render(preview))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%d fields · %d bits · %d per row · %s",
		d.Len(), d.Bits(), d.Config.Bit, d.Config.Style)))
	b.WriteString("\n\n")

	if m.failed {
		b.WriteString(StyleError.Render(iconError + " " + m.status))
	} else {
		b.WriteString(StyleDim.Render(m.status))
	}
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("enter run · ctrl+s save · esc quit"))

	if m.width > 0 {
		return lipgloss.NewStyle().MaxWidth(m.width).Render(b.String())
	}
	return b.String()
}

var _ tea.Model = editModel{}

// editable reports whether path can be written by the editor.
func editable(path string) error {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return nil
	}
	return errors.New(errors.ErrCodeInvalidInput, "%s is a directory", path)
}
