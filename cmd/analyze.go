package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/0d0b3nus/chorale-writer/chord"
	"github.com/0d0b3nus/chorale-writer/midi"
	"github.com/0d0b3nus/chorale-writer/model"
	"github.com/0d0b3nus/chorale-writer/sample"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type AnalyzeOptions struct {
	// Key overrides the file's key signature when set.
	Key  string
	JSON bool
	// From and Beats pick an excerpt; zero Beats runs to the end.
	From  int
	Beats int
}

var analyzeOpts AnalyzeOptions

func init() {
	rootCmd.AddCommand(analyzeCmd)
	addScoreFlags(analyzeCmd, &analyzeOpts)
	analyzeCmd.Flags().BoolVar(&analyzeOpts.JSON, "json", false, "print JSON instead of text")
}

func addScoreFlags(c *cobra.Command, opts *AnalyzeOptions) {
	c.Flags().StringVar(&opts.Key, "key", "", `analyze in this key instead of the file's ("Am", "Eb", "c minor")`)
	c.Flags().IntVar(&opts.From, "from", 0, "first beat to analyze")
	c.Flags().IntVar(&opts.Beats, "beats", 0, "number of beats to analyze (0 for all)")
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file.mid>",
	Short: "Prints the chord progression of a chorale",
	Long:  `Prints the chord progression of a chorale, one Roman numeral per beat.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Analyze(cmd.OutOrStdout(), args[0], analyzeOpts)
	},
}

func loadScore(path string, opts AnalyzeOptions) (model.Score, error) {
	score, err := midi.ReadScore(path)
	if err != nil {
		return model.Score{}, err
	}
	if opts.Key != "" {
		score.Key = opts.Key
	}
	if opts.From > 0 || opts.Beats > 0 {
		return sample.Excerpt(score, opts.From, opts.Beats)
	}
	return score, nil
}

func Analyze(w io.Writer, path string, opts AnalyzeOptions) error {
	score, err := loadScore(path, opts)
	if err != nil {
		return err
	}
	key, progression, err := chord.AnalyzeScore(score)
	if err != nil {
		return err
	}

	if opts.JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(model.AnalyzeResponse{
			ID:          uuid.NewString(),
			Key:         key.String(),
			Buckets:     progression.Len(),
			Progression: progression.Names(),
		})
	}
	_, err = fmt.Fprintf(w, "%v: %v\n", key, progression)
	return err
}
