package theory

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Letter is a note letter name, 'A' through 'G'.
type Letter byte

// letters in diatonic stepping order
const letters = "CDEFGAB"

const maxAccidentals = 2

var naturalClasses = map[Letter]int{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

func (l Letter) index() int {
	return strings.IndexByte(letters, byte(l))
}

func (l Letter) step(n int) Letter {
	return Letter(letters[mod(l.index()+n, len(letters))])
}

func (l Letter) String() string {
	return string(l)
}

// PitchClass is a spelled pitch class: a letter plus up to two sharps or
// two flats. Different spellings can share the same equivalence class
// (C# and Db are both class 1) while remaining distinct values.
type PitchClass struct {
	letter     Letter
	accidental int8
}

// NewPitchClass builds a pitch class from a letter and an accidental count.
// At most one of sharps and flats may be non-zero.
func NewPitchClass(letter byte, sharps, flats int) (PitchClass, error) {
	l := Letter(letter)
	if l.index() < 0 {
		return PitchClass{}, invalid("letter", string(letter), "must be one of A-G")
	}
	if sharps < 0 || sharps > maxAccidentals {
		return PitchClass{}, invalid("sharps", sharps, "must be between 0 and 2")
	}
	if flats < 0 || flats > maxAccidentals {
		return PitchClass{}, invalid("flats", flats, "must be between 0 and 2")
	}
	if sharps != 0 && flats != 0 {
		return PitchClass{}, invalid("accidental", string(letter), "cannot have both sharps and flats")
	}
	return PitchClass{letter: l, accidental: int8(sharps - flats)}, nil
}

func MustPitchClass(letter byte, sharps, flats int) PitchClass {
	p, err := NewPitchClass(letter, sharps, flats)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePitchClass reads names like "C", "F#", "Bb", "D##" and "Ebb".
func ParsePitchClass(s string) (PitchClass, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PitchClass{}, invalid("pitch class", s, "empty name")
	}
	letter := strings.ToUpper(s[:1])[0]
	var sharps, flats int
	for _, r := range s[1:] {
		switch r {
		case '#', '♯':
			sharps++
		case 'b', '♭':
			flats++
		default:
			return PitchClass{}, invalid("pitch class", s, "unknown accidental")
		}
	}
	return NewPitchClass(letter, sharps, flats)
}

func (p PitchClass) Letter() Letter {
	return p.letter
}

// Accidental is positive for sharps and negative for flats.
func (p PitchClass) Accidental() int {
	return int(p.accidental)
}

// Class is the equivalence class, 0 (C) through 11 (B).
func (p PitchClass) Class() int {
	return mod(naturalClasses[p.letter]+int(p.accidental), 12)
}

func (p PitchClass) EnharmonicTo(other PitchClass) bool {
	return p.Class() == other.Class()
}

// Compare orders by class first. Spellings sharing a class are ordered by
// letter: the one whose letter follows the other's is greater, so
// B# < C < Dbb.
func (p PitchClass) Compare(other PitchClass) int {
	if p == other {
		return 0
	}
	if pc, oc := p.Class(), other.Class(); pc != oc {
		if pc < oc {
			return -1
		}
		return 1
	}
	if mod(other.letter.index()-p.letter.index(), len(letters)) <= 3 {
		return -1
	}
	return 1
}

func (p PitchClass) Less(other PitchClass) bool {
	return p.Compare(other) < 0
}

// Add transposes p up by i. The letter moves by the interval's diatonic
// number and the class by its semitones; the result is the registered
// spelling that satisfies both.
func (p PitchClass) Add(i Interval) (PitchClass, error) {
	class := mod(p.Class()+i.SimplePart().Semitones(), 12)
	letter := p.letter.step(i.number - 1)
	for _, s := range spellings[class] {
		if s.letter == letter {
			return s, nil
		}
	}
	return PitchClass{}, errors.Wrapf(ErrNoSpelling, "%v + %v", p, i)
}

// IntervalBetween returns the ascending interval from the lower of the two
// pitch classes (by Compare) to the higher.
func (p PitchClass) IntervalBetween(other PitchClass) (Interval, error) {
	lo, hi := p, other
	if lo.Compare(hi) > 0 {
		lo, hi = hi, lo
	}
	number := mod(hi.letter.index()-lo.letter.index(), len(letters)) + 1
	semitones := mod(hi.Class()-lo.Class(), 12)
	return IntervalFromNumberAndSemitones(number, semitones)
}

func (p PitchClass) String() string {
	switch {
	case p.accidental > 0:
		return p.letter.String() + strings.Repeat("#", int(p.accidental))
	case p.accidental < 0:
		return p.letter.String() + strings.Repeat("b", int(-p.accidental))
	}
	return p.letter.String()
}

func (p PitchClass) Unicode() string {
	switch p.accidental {
	case 2:
		return p.letter.String() + "𝄪"
	case 1:
		return p.letter.String() + "♯"
	case -1:
		return p.letter.String() + "♭"
	case -2:
		return p.letter.String() + "𝄫"
	}
	return p.letter.String()
}

// spellings holds every registered spelling, indexed by class and sorted
// by Compare.
var spellings = registerSpellings()

func registerSpellings() [12][]PitchClass {
	var res [12][]PitchClass
	for i := range letters {
		for acc := -maxAccidentals; acc <= maxAccidentals; acc++ {
			p := PitchClass{letter: Letter(letters[i]), accidental: int8(acc)}
			c := p.Class()
			res[c] = append(res[c], p)
		}
	}
	for c := range res {
		s := res[c]
		sort.Slice(s, func(i, j int) bool { return s[i].Less(s[j]) })
	}
	return res
}

// Spellings returns the registered spellings of an equivalence class.
func Spellings(class int) []PitchClass {
	if class < 0 || class >= len(spellings) {
		return nil
	}
	res := make([]PitchClass, len(spellings[class]))
	copy(res, spellings[class])
	return res
}

var (
	CDoubleFlat  = MustPitchClass('C', 0, 2)
	CFlat        = MustPitchClass('C', 0, 1)
	C            = MustPitchClass('C', 0, 0)
	CSharp       = MustPitchClass('C', 1, 0)
	CDoubleSharp = MustPitchClass('C', 2, 0)
	DDoubleFlat  = MustPitchClass('D', 0, 2)
	DFlat        = MustPitchClass('D', 0, 1)
	D            = MustPitchClass('D', 0, 0)
	DSharp       = MustPitchClass('D', 1, 0)
	DDoubleSharp = MustPitchClass('D', 2, 0)
	EDoubleFlat  = MustPitchClass('E', 0, 2)
	EFlat        = MustPitchClass('E', 0, 1)
	E            = MustPitchClass('E', 0, 0)
	ESharp       = MustPitchClass('E', 1, 0)
	EDoubleSharp = MustPitchClass('E', 2, 0)
	FDoubleFlat  = MustPitchClass('F', 0, 2)
	FFlat        = MustPitchClass('F', 0, 1)
	F            = MustPitchClass('F', 0, 0)
	FSharp       = MustPitchClass('F', 1, 0)
	FDoubleSharp = MustPitchClass('F', 2, 0)
	GDoubleFlat  = MustPitchClass('G', 0, 2)
	GFlat        = MustPitchClass('G', 0, 1)
	G            = MustPitchClass('G', 0, 0)
	GSharp       = MustPitchClass('G', 1, 0)
	GDoubleSharp = MustPitchClass('G', 2, 0)
	ADoubleFlat  = MustPitchClass('A', 0, 2)
	AFlat        = MustPitchClass('A', 0, 1)
	A            = MustPitchClass('A', 0, 0)
	ASharp       = MustPitchClass('A', 1, 0)
	ADoubleSharp = MustPitchClass('A', 2, 0)
	BDoubleFlat  = MustPitchClass('B', 0, 2)
	BFlat        = MustPitchClass('B', 0, 1)
	B            = MustPitchClass('B', 0, 0)
	BSharp       = MustPitchClass('B', 1, 0)
	BDoubleSharp = MustPitchClass('B', 2, 0)
)
