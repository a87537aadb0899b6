package bucket

import (
	"fmt"
	"strings"

	"github.com/0d0b3nus/chorale-writer/constants"
	"github.com/0d0b3nus/chorale-writer/model"
	"github.com/0d0b3nus/chorale-writer/theory"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// ErrEmptyBucket means a beat slot ended up with no pitch classes at all.
var ErrEmptyBucket = errors.New("empty bucket")

// Bucket holds the distinct pitch classes (0-11) heard during one beat, in
// the order they were first seen. Index 0 is normally the bass.
type Bucket []int

func (b Bucket) Key() string {
	parts := make([]string, len(b))
	for i, class := range b {
		parts[i] = fmt.Sprintf("%v", class)
	}
	return strings.Join(parts, "-")
}

func insertOnce(b Bucket, class int) Bucket {
	for _, c := range b {
		if c == class {
			return b
		}
	}
	return append(b, class)
}

// beats is how many buckets a voice touches.
func beats(events []model.NoteOff, ticksPerBeat int) uint64 {
	var total uint64
	for _, evt := range events {
		total += uint64(evt.Delta)
	}
	return (total + uint64(ticksPerBeat) - 1) / uint64(ticksPerBeat)
}

// spend walks one voice through the shared buckets. The voice keeps its own
// cursor and remaining capacity; every bucket a note touches records its
// class.
func spend(buckets []Bucket, events []model.NoteOff, ticksPerBeat int) {
	index := 0
	remaining := ticksPerBeat
	for _, evt := range events {
		class := int(evt.Note) % 12
		time := int(evt.Delta)
		for time > 0 {
			if time <= remaining {
				remaining -= time
				time = 0
			} else {
				time -= remaining
				remaining = 0
			}
			buckets[index] = insertOnce(buckets[index], class)
			if remaining == 0 {
				index++
				remaining = ticksPerBeat
			}
		}
	}
}

// Quantize slices the four voices into beat-long buckets. Voices are spent
// bass first, so the bass class leads any bucket it sounds in. Scores longer
// than constants.MaxBeats are rejected.
func Quantize(voices model.Voices, ticksPerBeat int) ([]Bucket, error) {
	if ticksPerBeat <= 0 {
		return nil, &theory.ValidationError{Field: "ticks per beat", Value: ticksPerBeat, Reason: "must be positive"}
	}

	var longest uint64
	for v := model.Bass; v < model.NumVoices; v++ {
		if n := beats(voices[v], ticksPerBeat); n > longest {
			longest = n
		}
	}
	if longest > constants.MaxBeats {
		return nil, &theory.ValidationError{
			Field:  "score length",
			Value:  fmt.Sprintf("%d beats", longest),
			Reason: fmt.Sprintf("must be at most %d beats", constants.MaxBeats),
		}
	}

	res := make([]Bucket, longest)
	for v := model.Bass; v < model.NumVoices; v++ {
		spend(res, voices[v], ticksPerBeat)
	}
	for index, b := range res {
		if len(b) == 0 {
			return nil, errors.Wrapf(ErrEmptyBucket, "bucket %d of %d", index, len(res))
		}
	}

	log.WithFields(log.Fields{
		"buckets":        len(res),
		"ticks_per_beat": ticksPerBeat,
	}).Debug("quantized voices")
	return res, nil
}
