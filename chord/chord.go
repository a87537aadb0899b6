package chord

import (
	"math/bits"

	"github.com/0d0b3nus/chorale-writer/bucket"
	"github.com/0d0b3nus/chorale-writer/model"
	"github.com/0d0b3nus/chorale-writer/theory"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrNoCandidates means the classifier has no chords to match against.
var ErrNoCandidates = errors.New("no common chord can be spelled in key")

// Match is the classification of a single bucket.
type Match struct {
	Chord theory.Chord
	// Jaccard similarity between the bucket and the chord's classes
	Similarity float64
	// Exact is set when the chord contains every class of the bucket.
	Exact bool
}

type candidate struct {
	chord   theory.Chord
	classes []int
	set     uint16
}

// Classifier matches buckets against the common chords of one key. It is
// immutable once built and safe for concurrent use.
type Classifier struct {
	key        theory.Key
	candidates []candidate
}

func classSet(classes []int) uint16 {
	var set uint16
	for _, c := range classes {
		set |= 1 << uint(c%12)
	}
	return set
}

// NewClassifier spells every common chord of key. A key whose vocabulary
// needs a spelling beyond double accidentals is rejected with
// theory.ErrNoSpelling.
func NewClassifier(key theory.Key) (*Classifier, error) {
	cl := &Classifier{key: key}
	for _, c := range key.CommonChords() {
		classes, err := c.EquivalenceClasses(key)
		if err != nil {
			return nil, errors.Wrapf(err, "%v in %v", c, key)
		}
		cl.candidates = append(cl.candidates, candidate{chord: c, classes: classes, set: classSet(classes)})
	}
	log.WithFields(log.Fields{"key": key, "candidates": len(cl.candidates)}).Debug("built classifier")
	return cl, nil
}

func (cl *Classifier) Key() theory.Key {
	return cl.key
}

func indexOf(classes []int, class int) int {
	for i, c := range classes {
		if c == class {
			return i
		}
	}
	return -1
}

// Match picks the first common chord containing the whole bucket, falling
// back to the best Jaccard similarity (earliest wins ties). The inversion is
// the position of the bucket's first class in the chord.
func (cl *Classifier) Match(b bucket.Bucket) (Match, error) {
	if len(b) == 0 {
		return Match{}, bucket.ErrEmptyBucket
	}
	if len(cl.candidates) == 0 {
		return Match{}, errors.Wrapf(ErrNoCandidates, "%v", cl.key)
	}

	want := classSet(b)
	best, bestRate, exact := 0, -1.0, false
	for i, c := range cl.candidates {
		if want&^c.set == 0 {
			best, exact = i, true
			break
		}
		rate := jaccard(want, c.set)
		if rate > bestRate {
			best, bestRate = i, rate
		}
	}

	winner := cl.candidates[best]
	inversion := indexOf(winner.classes, b[0])
	if inversion < 0 {
		log.WithFields(log.Fields{"bucket": b.Key(), "chord": winner.chord}).Debug("bass is not a chord tone, assuming root position")
		inversion = 0
	}
	chord, err := winner.chord.WithInversion(inversion)
	if err != nil {
		return Match{}, err
	}
	return Match{Chord: chord, Similarity: jaccard(want, winner.set), Exact: exact}, nil
}

func jaccard(a, b uint16) float64 {
	union := bits.OnesCount16(a | b)
	if union == 0 {
		return 0
	}
	return float64(bits.OnesCount16(a&b)) / float64(union)
}

// Matches classifies every bucket in order.
func (cl *Classifier) Matches(buckets []bucket.Bucket) ([]Match, error) {
	res := make([]Match, 0, len(buckets))
	for i, b := range buckets {
		m, err := cl.Match(b)
		if err != nil {
			return nil, errors.Wrapf(err, "bucket %d", i)
		}
		res = append(res, m)
	}
	return res, nil
}

// Classify turns buckets into a progression of the same length.
func Classify(key theory.Key, buckets []bucket.Bucket) (Progression, error) {
	cl, err := NewClassifier(key)
	if err != nil {
		return Progression{}, err
	}
	matches, err := cl.Matches(buckets)
	if err != nil {
		return Progression{}, err
	}
	var p Progression
	for _, m := range matches {
		p.Append(m.Chord)
	}
	return p, nil
}

// Analyze quantizes the voices and classifies the buckets against key.
func Analyze(voices model.Voices, ticksPerBeat int, key theory.Key) (Progression, error) {
	buckets, err := bucket.Quantize(voices, ticksPerBeat)
	if err != nil {
		return Progression{}, err
	}
	return Classify(key, buckets)
}

// AnalyzeScore is Analyze with the key read from the score's key string.
func AnalyzeScore(score model.Score) (theory.Key, Progression, error) {
	key, err := theory.ParseKey(score.Key)
	if err != nil {
		return theory.Key{}, Progression{}, errors.Wrapf(err, "key %q", score.Key)
	}
	p, err := Analyze(score.Voices, score.TicksPerBeat, key)
	if err != nil {
		return theory.Key{}, Progression{}, err
	}
	return key, p, nil
}
