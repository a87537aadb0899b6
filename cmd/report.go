package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/0d0b3nus/chorale-writer/corpus"
	"github.com/0d0b3nus/chorale-writer/util"
	"github.com/spf13/cobra"
)

var (
	reportOpts CorpusOptions
	reportTop  int
)

func init() {
	rootCmd.AddCommand(reportCmd)
	addCorpusFlags(reportCmd, &reportOpts)
	reportCmd.Flags().BoolVar(&reportOpts.JSON, "json", false, "print JSON instead of text")
	reportCmd.Flags().IntVar(&reportTop, "top", 10, "chords listed per mode")
}

var reportCmd = &cobra.Command{
	Use:   "report [dir]",
	Short: "Creates a report",
	Long:  `Analyzes a corpus and reports chord frequencies and progression lengths per mode.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Report(cmd.Context(), cmd.OutOrStdout(), corpusDir(args), reportOpts, reportTop)
	},
}

func Report(ctx context.Context, w io.Writer, dir string, opts CorpusOptions, top int) error {
	results, err := runCorpus(ctx, dir, opts)
	if err != nil {
		return err
	}
	summary := corpus.Summarize(results)

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	fmt.Fprintf(w, "run %v: %v files, %v failed\n", summary.RunID, summary.Files, summary.Failed)
	for _, mode := range util.GetSortedKeys(summary.ByMode) {
		ms := summary.ByMode[mode]
		fmt.Fprintf(w, "%v: %v files, %.1f ± %.1f chords per file\n", mode, ms.Files, ms.MeanLength, ms.StdDevLength)
		for _, c := range ms.Top(top) {
			fmt.Fprintf(w, "  %-10v %v\n", c.Chord, c.Count)
		}
	}
	return nil
}
