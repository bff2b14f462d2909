// Command edires resolves EDI segments against a grammar file and inspects
// the analyses behind each resolution.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/domain"
	"github.com/speakeasy-api/edi/resolve"
)

var (
	// Global flags
	logLevel      string
	codeListsPath string
	modeName      string
	noColor       bool
)

var rootCmd = &cobra.Command{
	Use:   "edires",
	Short: "Resolve EDI segments against a grammar",
	Long: `edires picks, for every segment of an interchange, the grammar
instructions that can take it. Ambiguous candidates are narrowed by the
element values the segment carries.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "resolver log level (error, warn, info, debug)")
	rootCmd.PersistentFlags().StringVar(&codeListsPath, "code-lists", "", "OpenAPI document declaring x-edi-code-list schemas")
	rootCmd.PersistentFlags().StringVar(&modeName, "mode", "insert", "resolution mode (insert, read)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(resolveCmd, basisCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func resolveOptions() resolve.Options {
	opts := resolve.DefaultOptions()
	opts.LogLevel = logLevel
	return opts
}

func loadCodeLists(ctx context.Context) (map[string]domain.Domain, error) {
	if codeListsPath == "" {
		return nil, nil
	}
	f, err := os.Open(codeListsPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return edi.LoadCodeLists(ctx, f)
}

func colorEnabled(w io.Writer) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

const (
	colorReset  = "\x1b[0m"
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorFaint  = "\x1b[2m"
)

func paint(enabled bool, color, s string) string {
	if !enabled {
		return s
	}
	return color + s + colorReset
}

func readInput(path string) (string, error) {
	var data []byte
	var err error
	if path == "" || path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", displayName(path), err)
	}
	return string(data), nil
}

func displayName(path string) string {
	if path == "" || path == "-" {
		return "<stdin>"
	}
	return path
}
