package corpus

import (
	"context"

	"github.com/0d0b3nus/chorale-writer/bucket"
	"github.com/0d0b3nus/chorale-writer/chord"
	"github.com/0d0b3nus/chorale-writer/db"
	"github.com/0d0b3nus/chorale-writer/file"
	"github.com/0d0b3nus/chorale-writer/midi"
	"github.com/0d0b3nus/chorale-writer/model"
	"github.com/0d0b3nus/chorale-writer/theory"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// Workers bounds how many files are analyzed at once; 0 means one.
	Workers int
	// Metadata is optional.
	Metadata db.MetadataSource
}

// Result is the outcome for one file. Files that could not be analyzed
// carry Err and nothing else but their number and path.
type Result struct {
	FileNum     model.FileNum
	Path        string
	Key         theory.Key
	Buckets     int
	Progression chord.Progression
	Metadata    *model.MidiMetadata
	Err         error
}

func analyzeFile(num model.FileNum, path string) Result {
	res := Result{FileNum: num, Path: path}
	score, err := midi.ReadScore(path)
	if err != nil {
		res.Err = err
		return res
	}
	key, err := theory.ParseKey(score.Key)
	if err != nil {
		res.Err = errors.Wrapf(err, "%v: key %q", path, score.Key)
		return res
	}
	res.Key = key
	matches, err := analyzeVoices(score, key)
	if err != nil {
		res.Err = errors.Wrap(err, path)
		return res
	}
	res.Buckets = len(matches)
	for _, m := range matches {
		res.Progression.Append(m.Chord)
	}
	return res
}

func analyzeVoices(score model.Score, key theory.Key) ([]chord.Match, error) {
	buckets, err := bucket.Quantize(score.Voices, score.TicksPerBeat)
	if err != nil {
		return nil, err
	}
	cl, err := chord.NewClassifier(key)
	if err != nil {
		return nil, err
	}
	return cl.Matches(buckets)
}

// Run analyzes every path, at most opts.Workers at a time. A file that
// fails is logged and reported in its Result; only cancellation stops the
// run. Results come back in the order of paths.
func Run(ctx context.Context, paths []string, opts Options) ([]Result, error) {
	fileNums := file.CreateFileNumMap(paths)
	results := make([]Result, len(paths))

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for num, path := range fileNums {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := analyzeFile(num, path)
			if res.Err != nil {
				log.WithFields(log.Fields{"file": path}).Warnf("skipping: %v", res.Err)
			}
			results[num] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Metadata != nil {
		attachMetadata(ctx, opts.Metadata, fileNums, results)
	}
	return results, nil
}

func attachMetadata(ctx context.Context, source db.MetadataSource, fileNums model.FileNumToMidiPath, results []Result) {
	names := file.BaseNames(fileNums)
	metadatas, err := source.GetMidiMetadatas(ctx, names)
	if err != nil {
		log.Warnf("continuing without metadata: %v", err)
		return
	}
	for i, name := range names {
		if m, ok := metadatas[name]; ok {
			m := m
			results[i].Metadata = &m
		}
	}
	log.WithField("found", len(metadatas)).Debug("attached metadata")
}
