package cmd

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/0d0b3nus/chorale-writer/bucket"
	"github.com/0d0b3nus/chorale-writer/chord"
	"github.com/0d0b3nus/chorale-writer/theory"
	"github.com/spf13/cobra"
)

var inspectOpts AnalyzeOptions

func init() {
	rootCmd.AddCommand(inspectCmd)
	addScoreFlags(inspectCmd, &inspectOpts)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Shows how every beat was classified",
	Long: `Shows the pitch classes of every beat, the chord chosen for it, its
Jaccard similarity and whether the chord holds every pitch class.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Inspect(cmd.OutOrStdout(), args[0], inspectOpts)
	},
}

func Inspect(w io.Writer, path string, opts AnalyzeOptions) error {
	score, err := loadScore(path, opts)
	if err != nil {
		return err
	}
	key, err := theory.ParseKey(score.Key)
	if err != nil {
		return err
	}
	buckets, err := bucket.Quantize(score.Voices, score.TicksPerBeat)
	if err != nil {
		return err
	}
	cl, err := chord.NewClassifier(key)
	if err != nil {
		return err
	}
	matches, err := cl.Matches(buckets)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "key: %v, ticks per beat: %v\n", key, score.TicksPerBeat)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "beat\tclasses\tchord\tsimilarity\texact")
	for i, m := range matches {
		fmt.Fprintf(tw, "%d\t%v\t%v\t%.2f\t%v\n", opts.From+i, buckets[i].Key(), m.Chord, m.Similarity, m.Exact)
	}
	return tw.Flush()
}
