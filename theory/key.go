package theory

import (
	"strings"

	"github.com/pkg/errors"
)

type Mode int

const (
	ModeMajor Mode = iota
	ModeMinor
)

func (m Mode) String() string {
	if m == ModeMinor {
		return "minor"
	}
	return "major"
}

// steps between successive scale degrees; the seventh step closes the octave
var stepPatterns = map[Mode][7]Interval{
	ModeMajor: {MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond, MajorSecond, MinorSecond},
	ModeMinor: {MajorSecond, MinorSecond, MajorSecond, MajorSecond, MinorSecond, MajorSecond, MajorSecond},
}

// Key is a tonic and a mode together with the seven scale degrees they
// generate. Keys are comparable values.
type Key struct {
	tonic   PitchClass
	mode    Mode
	degrees [7]PitchClass
}

func NewKey(tonic PitchClass, mode Mode) (Key, error) {
	pattern, ok := stepPatterns[mode]
	if !ok {
		return Key{}, invalid("mode", int(mode), "must be major or minor")
	}
	k := Key{tonic: tonic, mode: mode}
	k.degrees[0] = tonic
	for i := 1; i < len(k.degrees); i++ {
		next, err := k.degrees[i-1].Add(pattern[i-1])
		if err != nil {
			return Key{}, errors.Wrapf(err, "degree %d of %v %v", i+1, tonic, mode)
		}
		k.degrees[i] = next
	}
	return k, nil
}

func MustKey(tonic PitchClass, mode Mode) Key {
	k, err := NewKey(tonic, mode)
	if err != nil {
		panic(err)
	}
	return k
}

// ParseKey reads key names as they appear in key signature events: a tonic
// with an optional trailing "m" for minor ("C", "Am", "Bb", "F#m"). The long
// forms "C major" and "c# minor" are accepted too.
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	mode := ModeMajor
	if fields := strings.Fields(s); len(fields) == 2 {
		switch strings.ToLower(fields[1]) {
		case "major":
		case "minor":
			mode = ModeMinor
		default:
			return Key{}, invalid("key", s, "mode must be major or minor")
		}
		s = fields[0]
	} else if len(s) > 1 && strings.HasSuffix(s, "m") {
		mode = ModeMinor
		s = strings.TrimSuffix(s, "m")
	}
	tonic, err := ParsePitchClass(s)
	if err != nil {
		return Key{}, err
	}
	return NewKey(tonic, mode)
}

func (k Key) Tonic() PitchClass {
	return k.tonic
}

func (k Key) Mode() Mode {
	return k.mode
}

// Degree returns scale degree n, 1 through 7.
func (k Key) Degree(n int) (PitchClass, error) {
	if n < 1 || n > len(k.degrees) {
		return PitchClass{}, invalid("scale degree", n, "must be between 1 and 7")
	}
	return k.degrees[n-1], nil
}

// Degrees returns the scale; index 0 holds degree 1.
func (k Key) Degrees() [7]PitchClass {
	return k.degrees
}

// CommonChords is the fixed classification vocabulary of the key's mode.
func (k Key) CommonChords() []Chord {
	vocabulary := majorVocabulary
	if k.mode == ModeMinor {
		vocabulary = minorVocabulary
	}
	res := make([]Chord, len(vocabulary))
	copy(res, vocabulary)
	return res
}

func (k Key) String() string {
	return k.tonic.String() + " " + k.mode.String()
}

// Short renders the key the way ParseKey reads it, "C" or "Am".
func (k Key) Short() string {
	if k.mode == ModeMinor {
		return k.tonic.String() + "m"
	}
	return k.tonic.String()
}
