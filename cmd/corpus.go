package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/0d0b3nus/chorale-writer/constants"
	"github.com/0d0b3nus/chorale-writer/corpus"
	"github.com/0d0b3nus/chorale-writer/db"
	"github.com/0d0b3nus/chorale-writer/model"
	"github.com/0d0b3nus/chorale-writer/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type CorpusOptions struct {
	Max      int
	Workers  int
	JSON     bool
	Metadata bool
}

var corpusOpts CorpusOptions

func init() {
	rootCmd.AddCommand(corpusCmd)
	addCorpusFlags(corpusCmd, &corpusOpts)
	corpusCmd.Flags().BoolVar(&corpusOpts.JSON, "json", false, "print JSON instead of text")
}

func addCorpusFlags(c *cobra.Command, opts *CorpusOptions) {
	c.Flags().IntVar(&opts.Max, "max", 0, "analyze at most this many files (0 for all)")
	c.Flags().IntVar(&opts.Workers, "workers", 0, "files analyzed at once (default $WORKERS or the number of CPUs)")
	c.Flags().BoolVar(&opts.Metadata, "metadata", false, "look up titles in the metadata table (also on when $METADATA_TABLE is set)")
}

var corpusCmd = &cobra.Command{
	Use:   "corpus [dir]",
	Short: "Analyzes every chorale in a directory",
	Long:  `Analyzes every .mid file under a directory (default $CORPUS_PATH) in parallel.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return Corpus(cmd.Context(), cmd.OutOrStdout(), corpusDir(args), corpusOpts)
	},
}

func corpusDir(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return constants.GetCorpusDir()
}

func runCorpus(ctx context.Context, dir string, opts CorpusOptions) ([]corpus.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	paths, err := util.GatherAllMidiPaths(dir, opts.Max)
	if err != nil {
		return nil, err
	}

	runOpts := corpus.Options{Workers: opts.Workers}
	if runOpts.Workers == 0 {
		runOpts.Workers = constants.GetWorkers()
	}
	if opts.Metadata || constants.MetadataEnabled() {
		source, err := db.NewDynamoSourceFromEnv()
		if err != nil {
			return nil, err
		}
		runOpts.Metadata = source
	}

	log.WithFields(log.Fields{"dir": dir, "files": len(paths), "workers": runOpts.Workers}).Info("analyzing corpus")
	return corpus.Run(ctx, paths, runOpts)
}

type corpusEntry struct {
	FileNum     model.FileNum       `json:"file_num"`
	Path        string              `json:"path"`
	Key         string              `json:"key,omitempty"`
	Progression []string            `json:"progression,omitempty"`
	Metadata    *model.MidiMetadata `json:"metadata,omitempty"`
	Error       string              `json:"error,omitempty"`
}

func Corpus(ctx context.Context, w io.Writer, dir string, opts CorpusOptions) error {
	results, err := runCorpus(ctx, dir, opts)
	if err != nil {
		return err
	}

	if opts.JSON {
		entries := make([]corpusEntry, len(results))
		for i, r := range results {
			entries[i] = corpusEntry{FileNum: r.FileNum, Path: r.Path, Metadata: r.Metadata}
			if r.Err != nil {
				entries[i].Error = r.Err.Error()
				continue
			}
			entries[i].Key = r.Key.String()
			entries[i].Progression = r.Progression.Names()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%d %v: error: %v\n", r.FileNum, r.Path, r.Err)
			continue
		}
		title := ""
		if r.Metadata != nil && r.Metadata.Title != "" {
			title = fmt.Sprintf(" (%v)", r.Metadata.Title)
		}
		fmt.Fprintf(w, "%d %v%v [%v]: %v\n", r.FileNum, r.Path, title, r.Key, r.Progression)
	}
	return nil
}
