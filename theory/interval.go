package theory

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Quality byte

const (
	Diminished Quality = 'd'
	Minor      Quality = 'm'
	Perfect    Quality = 'P'
	Major      Quality = 'M'
	Augmented  Quality = 'A'
)

func (q Quality) String() string {
	return string(q)
}

var (
	perfectQualities   = []Quality{Diminished, Perfect, Augmented}
	imperfectQualities = []Quality{Diminished, Minor, Major, Augmented}

	invertedQualities = map[Quality]Quality{
		Diminished: Augmented,
		Minor:      Major,
		Perfect:    Perfect,
		Major:      Minor,
		Augmented:  Diminished,
	}
)

// semitones of the major or perfect interval, indexed by simple number
var baseSemitones = [...]int{0, 0, 2, 4, 5, 7, 9, 11, 12}

// Interval is a diatonic number (1 is a unison) with a quality.
type Interval struct {
	quality Quality
	number  int
}

// reduce maps a diatonic number onto 1..7.
func reduce(number int) int {
	return (number-1)%7 + 1
}

func perfectCapable(number int) bool {
	switch reduce(number) {
	case 1, 4, 5:
		return true
	}
	return false
}

func NewInterval(q Quality, number int) (Interval, error) {
	if number < 1 {
		return Interval{}, invalid("interval number", number, "must be at least 1")
	}
	switch q {
	case Perfect:
		if !perfectCapable(number) {
			return Interval{}, invalid("interval", fmt.Sprintf("%v%d", q, number), "only unisons, fourths, fifths and octaves are perfect")
		}
	case Major, Minor:
		if perfectCapable(number) {
			return Interval{}, invalid("interval", fmt.Sprintf("%v%d", q, number), "unisons, fourths, fifths and octaves cannot be major or minor")
		}
	case Diminished, Augmented:
	default:
		return Interval{}, invalid("interval quality", string(q), "must be one of d, m, P, M, A")
	}
	return Interval{quality: q, number: number}, nil
}

func MustInterval(q Quality, number int) Interval {
	i, err := NewInterval(q, number)
	if err != nil {
		panic(err)
	}
	return i
}

// ParseInterval reads names like "P5", "m3" and "M10".
func ParseInterval(s string) (Interval, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Interval{}, invalid("interval", s, "expected quality followed by number")
	}
	number, err := strconv.Atoi(s[1:])
	if err != nil {
		return Interval{}, invalid("interval", s, "number is not an integer")
	}
	return NewInterval(Quality(s[0]), number)
}

// IntervalFromNumberAndSemitones finds the quality that gives an interval of
// the given diatonic number the given width.
func IntervalFromNumberAndSemitones(number, semitones int) (Interval, error) {
	if number < 1 {
		return Interval{}, invalid("interval number", number, "must be at least 1")
	}
	qualities := imperfectQualities
	if perfectCapable(number) {
		qualities = perfectQualities
	}
	for _, q := range qualities {
		i := Interval{quality: q, number: number}
		if i.Semitones() == semitones {
			return i, nil
		}
	}
	return Interval{}, errors.Wrapf(ErrNoQuality, "number %d with %d semitones", number, semitones)
}

func (i Interval) Quality() Quality {
	return i.quality
}

func (i Interval) Number() int {
	return i.number
}

func (i Interval) Semitones() int {
	octaves := (i.number - 1) / 7
	base := baseSemitones[reduce(i.number)] + 12*octaves
	switch i.quality {
	case Augmented:
		return base + 1
	case Minor:
		return base - 1
	case Diminished:
		if perfectCapable(i.number) {
			return base - 1
		}
		return base - 2
	}
	return base
}

// Add stacks other on top of i: the numbers overlap by one step and the
// semitones sum.
func (i Interval) Add(other Interval) (Interval, error) {
	return IntervalFromNumberAndSemitones(i.number+other.number-1, i.Semitones()+other.Semitones())
}

// Mul stacks n copies of i. Mul(0) is a perfect unison.
func (i Interval) Mul(n int) (Interval, error) {
	if n < 0 {
		return Interval{}, invalid("multiplier", n, "must not be negative")
	}
	res := PerfectUnison
	for k := 0; k < n; k++ {
		var err error
		if res, err = res.Add(i); err != nil {
			return Interval{}, err
		}
	}
	return res, nil
}

// Compare orders by diatonic number, then by width.
func (i Interval) Compare(other Interval) int {
	switch {
	case i.number < other.number:
		return -1
	case i.number > other.number:
		return 1
	}
	s, o := i.Semitones(), other.Semitones()
	switch {
	case s < o:
		return -1
	case s > o:
		return 1
	}
	return 0
}

func (i Interval) Less(other Interval) bool {
	return i.Compare(other) < 0
}

// IsCompound is true for anything wider than a perfect octave.
func (i Interval) IsCompound() bool {
	return i.Compare(PerfectOctave) > 0
}

func (i Interval) SimplePart() Interval {
	for i.IsCompound() {
		i.number -= 7
	}
	return i
}

// Octaves counts the perfect octaves SimplePart strips.
func (i Interval) Octaves() int {
	var n int
	for i.IsCompound() {
		i.number -= 7
		n++
	}
	return n
}

// Inversion inverts the simple part.
func (i Interval) Inversion() Interval {
	s := i.SimplePart()
	return Interval{quality: invertedQualities[s.quality], number: 9 - s.number}
}

// EnharmonicEquivalent respells an augmented interval one number up or a
// diminished interval one number down. Other qualities have none.
func (i Interval) EnharmonicEquivalent() (Interval, bool) {
	var number int
	switch i.quality {
	case Augmented:
		number = i.number + 1
	case Diminished:
		number = i.number - 1
	default:
		return Interval{}, false
	}
	if number < 1 {
		return Interval{}, false
	}
	e, err := IntervalFromNumberAndSemitones(number, i.Semitones())
	if err != nil {
		return Interval{}, false
	}
	return e, true
}

func (i Interval) IsEnharmonicTo(other Interval) bool {
	return i != other && i.Semitones() == other.Semitones()
}

func (i Interval) String() string {
	return fmt.Sprintf("%v%d", i.quality, i.number)
}

var (
	PerfectUnison     = MustInterval(Perfect, 1)
	MinorSecond       = MustInterval(Minor, 2)
	MajorSecond       = MustInterval(Major, 2)
	MinorThird        = MustInterval(Minor, 3)
	MajorThird        = MustInterval(Major, 3)
	PerfectFourth     = MustInterval(Perfect, 4)
	AugmentedFourth   = MustInterval(Augmented, 4)
	DiminishedFifth   = MustInterval(Diminished, 5)
	PerfectFifth      = MustInterval(Perfect, 5)
	AugmentedFifth    = MustInterval(Augmented, 5)
	AugmentedSixth    = MustInterval(Augmented, 6)
	DiminishedSeventh = MustInterval(Diminished, 7)
	MinorSeventh      = MustInterval(Minor, 7)
	MajorSeventh      = MustInterval(Major, 7)
	PerfectOctave     = MustInterval(Perfect, 8)
)
