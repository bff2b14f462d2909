package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	goyaml "github.com/itchyny/go-yaml"
	"github.com/spf13/cobra"

	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/pkg/playground"
	"github.com/speakeasy-api/edi/pkg/segfmt"
)

var (
	state     string
	strict    bool
	noFollow  bool
	output    string
	elemDelim string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve GRAMMAR [SEGMENTS]",
	Short: "Resolve every segment of an interchange",
	Long: `Reads delimited segments from SEGMENTS (or stdin) and prints, per
segment, the instructions that can take it.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&state, "state", "", "state to start in (default: first state of the grammar)")
	resolveCmd.Flags().BoolVar(&strict, "strict", false, "fail on values no candidate allows")
	resolveCmd.Flags().BoolVar(&noFollow, "no-follow", false, "stay in the starting state")
	resolveCmd.Flags().StringVarP(&output, "output", "o", "text", "output format (text, json, yaml)")
	resolveCmd.Flags().StringVar(&elemDelim, "element-separator", "*", "element separator")
}

func runResolve(cmd *cobra.Command, args []string) error {
	mode, err := edi.ParseMode(modeName)
	if err != nil {
		return err
	}
	grammar, err := readInput(args[0])
	if err != nil {
		return err
	}
	var segPath string
	if len(args) == 2 {
		segPath = args[1]
	}
	segments, err := readInput(segPath)
	if err != nil {
		return err
	}
	lists, err := loadCodeLists(cmd.Context())
	if err != nil {
		return err
	}

	opts := playground.DefaultRunOptions()
	opts.State = state
	opts.Strict = strict
	opts.Mode = mode
	opts.Follow = !noFollow
	opts.CodeLists = lists
	opts.Resolve = resolveOptions()
	sep := []rune(elemDelim)
	if len(sep) != 1 {
		return fmt.Errorf("element separator must be a single character, got %q", elemDelim)
	}
	opts.Delimiters = segfmt.Delimiters{Element: sep[0]}

	result, err := playground.Run(grammar, segments, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if output != "text" {
		return encode(out, output, result)
	}
	writeText(out, result, colorEnabled(out))
	for _, w := range result.Warnings {
		fmt.Fprintln(cmd.ErrOrStderr(), paint(colorEnabled(cmd.ErrOrStderr()), colorYellow, "warning: "+w))
	}
	return nil
}

// encode writes v as json or yaml.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := goyaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func writeText(w io.Writer, result *playground.RunResult, color bool) {
	for _, o := range result.Outcomes {
		var matched string
		switch len(o.Matches) {
		case 0:
			matched = paint(color, colorRed, "no match")
		case 1:
			matched = paint(color, colorGreen, o.Matches[0])
		default:
			matched = paint(color, colorYellow, strings.Join(o.Matches, ", "))
		}
		strategy := o.Strategy
		if strategy == "" {
			strategy = "-"
		}
		fmt.Fprintf(w, "%s %s %s\n    %s\n", o.Text, paint(color, colorFaint, "["+o.State+"]"), strategy, matched)
	}
}
