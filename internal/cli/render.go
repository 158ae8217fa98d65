package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/matzehuels/protodiagram/pkg/diagram"
	"github.com/matzehuels/protodiagram/pkg/errors"
	diagramio "github.com/matzehuels/protodiagram/pkg/io"
	"github.com/matzehuels/protodiagram/pkg/pipeline"
	"github.com/matzehuels/protodiagram/pkg/render"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output  string   // output path; stdout when empty
	format  string   // text or svg; inferred from output when empty
	fields  []string // extra fields as name:bits
	noCache bool

	// Config overrides, applied only when the flag is set.
	bit      int
	style    string
	header   string
	reserved bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a diagram as text or SVG",
		Long: `Render a diagram file (json, toml or yaml) or fields given with --field.

Fields from --field are appended after the fields of the file. Configuration
flags override the values stored in the file.`,
		Example: `  protodiagram render tcp.yaml
  protodiagram render --field "Source Port:16" --field "Destination Port:16" --style ascii
  protodiagram render ipv4.toml -o ipv4.svg`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			return c.runRender(cmd.Context(), cmd, file, &opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	flags.StringVarP(&opts.format, "format", "f", "", "output format: text (default), svg")
	flags.StringArrayVar(&opts.fields, "field", nil, "add a field as name:bits (repeatable)")
	flags.BoolVar(&opts.noCache, "no-cache", false, "disable the render cache")
	addConfigFlags(flags, &opts)

	return cmd
}

// addConfigFlags registers the diagram configuration overrides.
func addConfigFlags(flags *pflag.FlagSet, opts *renderOpts) {
	flags.IntVar(&opts.bit, "bit", render.DefaultBit, "bits per row")
	flags.StringVar(&opts.style, "style", "", "text style: ascii, ascii-verbose, utf8, utf8-header, utf8-corner")
	flags.StringVar(&opts.header, "header", "", "bit ruler: none, trim, full")
	flags.BoolVar(&opts.reserved, "reserved", false, "label the padding after the last field as Reserved")
}

// applyOverrides copies every changed config flag into d.
func applyOverrides(flags *pflag.FlagSet, d *diagram.Diagram, opts *renderOpts) error {
	set := []struct {
		flag, value string
	}{
		{"bit", strconv.Itoa(opts.bit)},
		{"style", opts.style},
		{"header", opts.header},
		{"reserved", strconv.FormatBool(opts.reserved)},
	}
	for _, s := range set {
		if !flags.Changed(s.flag) {
			continue
		}
		if err := d.Set(s.flag, s.value); err != nil {
			return err
		}
	}
	return nil
}

func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, file string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	d, err := loadDiagram(file, opts.fields)
	if err != nil {
		return err
	}
	if err := applyOverrides(cmd.Flags(), d, opts); err != nil {
		return err
	}

	format := opts.format
	if format == "" {
		format = formatFromPath(opts.output)
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(logger)
	res, err := runner.Render(ctx, d, format)
	if err != nil {
		return err
	}
	logger.Debug("render", "fields", d.Len(), "bits", d.Bits(), "hash", res.Hash[:12], "cached", res.Hit)

	if opts.output == "" {
		out := cmd.OutOrStdout()
		if _, err := out.Write(res.Output); err != nil {
			return err
		}
		if res.Format == pipeline.FormatText && len(res.Output) > 0 {
			fmt.Fprintln(out)
		}
		return nil
	}

	if err := os.WriteFile(opts.output, res.Output, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done("Rendered " + res.Format)
	printSuccess(cmd.OutOrStdout(), "Rendered %d fields %s", d.Len(), cacheStatus(res.Hit))
	printFile(cmd.OutOrStdout(), opts.output)
	return nil
}

// loadDiagram reads file (if any) and appends the --field specs.
func loadDiagram(file string, fields []string) (*diagram.Diagram, error) {
	if file == "" && len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "nothing to render: pass a diagram file or --field name:bits")
	}

	d := diagram.New(render.Config{})
	if file != "" {
		if err := errors.ValidatePath(file); err != nil {
			return nil, err
		}
		var err error
		if d, err = diagramio.Import(file); err != nil {
			return nil, err
		}
	}
	for _, arg := range fields {
		name, bits, err := parseFieldFlag(arg)
		if err != nil {
			return nil, err
		}
		if err := d.Add(name, bits); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// parseFieldFlag splits "name:bits". The name may itself contain colons.
func parseFieldFlag(s string) (string, int, error) {
	i := strings.LastIndex(s, ":")
	if i < 0 {
		return "", 0, errors.New(errors.ErrCodeInvalidField, "field %q: want name:bits", s)
	}
	bits, err := strconv.Atoi(strings.TrimSpace(s[i+1:]))
	if err != nil {
		return "", 0, errors.New(errors.ErrCodeInvalidField, "field %q: bits must be an integer", s)
	}
	return s[:i], bits, nil
}

// formatFromPath picks svg for *.svg outputs and text otherwise.
func formatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return pipeline.FormatSVG
	}
	return pipeline.FormatText
}
