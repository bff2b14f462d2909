package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/speakeasy-api/edi"
	"github.com/speakeasy-api/edi/pkg/segfmt"
	"github.com/speakeasy-api/edi/resolve"
)

var (
	basisState   string
	basisSegment string
	maxValues    int
	basisOutput  string
)

var basisCmd = &cobra.Command{
	Use:   "basis GRAMMAR",
	Short: "Show how the candidates of a segment are told apart",
	Long: `Prints the resolution strategy chosen for a segment in a state and, for
value-based resolution, the element positions that distinguish the
candidates.`,
	Args: cobra.ExactArgs(1),
	RunE: runBasis,
}

func init() {
	basisCmd.Flags().StringVar(&basisState, "state", "", "grammar state (required)")
	basisCmd.Flags().StringVar(&basisSegment, "segment", "", "segment identifier (required)")
	basisCmd.Flags().IntVar(&maxValues, "max-values", 5, "values shown per domain (0 shows all)")
	basisCmd.Flags().StringVarP(&basisOutput, "output", "o", "text", "output format (text, json, yaml)")
	_ = basisCmd.MarkFlagRequired("state")
	_ = basisCmd.MarkFlagRequired("segment")
}

func runBasis(cmd *cobra.Command, args []string) error {
	mode, err := edi.ParseMode(modeName)
	if err != nil {
		return err
	}
	text, err := readInput(args[0])
	if err != nil {
		return err
	}
	lists, err := loadCodeLists(cmd.Context())
	if err != nil {
		return err
	}
	g, err := edi.LoadGrammar(strings.NewReader(text), edi.WithCodeLists(lists))
	if err != nil {
		return err
	}

	instrs := g.Instructions(basisState, basisSegment)
	r, err := resolve.Build(instrs, resolveOptions())
	if err != nil {
		return fmt.Errorf("%s in state %s: %w", basisSegment, basisState, err)
	}

	out := cmd.OutOrStdout()
	v, ok := r.(*resolve.ValueBased)
	var basis *resolve.Basis
	if ok {
		if basis, err = v.Basis(mode); err != nil {
			return err
		}
	}

	if basisOutput != "text" {
		if basis == nil {
			return fmt.Errorf("%s in state %s uses the %s strategy, which has no basis", basisSegment, basisState, resolve.StrategyOf(r))
		}
		return encode(out, basisOutput, segfmt.Report(basisSegment, mode, basis))
	}

	fmt.Fprintf(out, "strategy: %s\n", resolve.StrategyOf(r))
	for _, in := range r.Instructions() {
		fmt.Fprintf(out, "  %s\n", in)
	}
	if basis != nil {
		fmt.Fprintf(out, "\n%s basis:\n%s", mode, segfmt.FormatBasis(basisSegment, basis, maxValues))
	}
	return nil
}
