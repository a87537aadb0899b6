package theory

import (
	"fmt"
	"strings"

	"github.com/0d0b3nus/chorale-writer/util"
	"github.com/pkg/errors"
)

type ChordQuality string

const (
	ChordMajor             ChordQuality = "M"
	ChordMinor             ChordQuality = "m"
	ChordDiminished        ChordQuality = "dim"
	ChordAugmented         ChordQuality = "aug"
	ChordMajorSeventh      ChordQuality = "M7"
	ChordDominantSeventh   ChordQuality = "7"
	ChordMinorSeventh      ChordQuality = "m7"
	ChordDiminishedSeventh ChordQuality = "dim7"
	ChordHalfDiminished    ChordQuality = "half-dim"
	ChordItalianSixth      ChordQuality = "It+6"
	ChordFrenchSixth       ChordQuality = "Fr+6"
	ChordGermanSixth       ChordQuality = "Ger+6"
)

// intervals stacked above the root, in root-third-fifth-seventh order
var chordIntervals = map[ChordQuality][]Interval{
	ChordMajor:             {MajorThird, PerfectFifth},
	ChordMinor:             {MinorThird, PerfectFifth},
	ChordDiminished:        {MinorThird, DiminishedFifth},
	ChordAugmented:         {MajorThird, AugmentedFifth},
	ChordMajorSeventh:      {MajorThird, PerfectFifth, MajorSeventh},
	ChordDominantSeventh:   {MajorThird, PerfectFifth, MinorSeventh},
	ChordMinorSeventh:      {MinorThird, PerfectFifth, MinorSeventh},
	ChordDiminishedSeventh: {MinorThird, DiminishedFifth, DiminishedSeventh},
	ChordHalfDiminished:    {MinorThird, DiminishedFifth, MinorSeventh},
	ChordItalianSixth:      {MajorThird, AugmentedSixth},
	ChordFrenchSixth:       {MajorThird, AugmentedFourth, AugmentedSixth},
	ChordGermanSixth:       {MajorThird, PerfectFifth, AugmentedSixth},
}

func (q ChordQuality) valid() bool {
	_, ok := chordIntervals[q]
	return ok
}

// roman reports whether the quality is named with a Roman numeral; the
// augmented sixths go by their own names.
func (q ChordQuality) roman() bool {
	switch q {
	case ChordItalianSixth, ChordFrenchSixth, ChordGermanSixth:
		return false
	}
	return true
}

func (q ChordQuality) lowercase() bool {
	switch q {
	case ChordMinor, ChordMinorSeventh, ChordDiminished, ChordDiminishedSeventh, ChordHalfDiminished:
		return true
	}
	return false
}

func (q ChordQuality) seventh() bool {
	return len(chordIntervals[q]) == 3
}

// Relative points a chord at the key built on Degree of the enclosing key,
// in Mode. V/V in C major is the V chord of G major.
type Relative struct {
	Degree int
	Mode   Mode
}

func (r Relative) String() string {
	numeral, err := util.ToRoman(r.Degree)
	if err != nil {
		return fmt.Sprint(r.Degree)
	}
	if r.Mode == ModeMinor {
		return strings.ToLower(numeral)
	}
	return numeral
}

const MaxRelativeDepth = 3

const maxInversion = 3

// Chord is a scale degree, a quality and an inversion, optionally read
// against a chain of relative keys (outermost first). Chords are comparable
// values.
type Chord struct {
	degree    int
	quality   ChordQuality
	inversion int
	relatives [MaxRelativeDepth]Relative
	depth     int
}

func NewChord(degree int, quality ChordQuality, inversion int, relatives ...Relative) (Chord, error) {
	if degree < 1 || degree > 7 {
		return Chord{}, invalid("scale degree", degree, "must be between 1 and 7")
	}
	if !quality.valid() {
		return Chord{}, invalid("chord quality", string(quality), "unknown quality")
	}
	if inversion < 0 || inversion > maxInversion {
		return Chord{}, invalid("inversion", inversion, "must be between 0 and 3")
	}
	if len(relatives) > MaxRelativeDepth {
		return Chord{}, invalid("relatives", len(relatives), "too deeply nested")
	}
	c := Chord{degree: degree, quality: quality, inversion: inversion, depth: len(relatives)}
	for i, r := range relatives {
		if r.Degree < 1 || r.Degree > 7 {
			return Chord{}, invalid("relative degree", r.Degree, "must be between 1 and 7")
		}
		if r.Mode != ModeMajor && r.Mode != ModeMinor {
			return Chord{}, invalid("relative mode", int(r.Mode), "must be major or minor")
		}
		c.relatives[i] = r
	}
	return c, nil
}

func MustChord(degree int, quality ChordQuality, inversion int, relatives ...Relative) Chord {
	c, err := NewChord(degree, quality, inversion, relatives...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Chord) ScaleDegree() int {
	return c.degree
}

func (c Chord) Quality() ChordQuality {
	return c.quality
}

func (c Chord) Inversion() int {
	return c.inversion
}

func (c Chord) Relatives() []Relative {
	res := make([]Relative, c.depth)
	copy(res, c.relatives[:c.depth])
	return res
}

func (c Chord) WithInversion(inversion int) (Chord, error) {
	if inversion < 0 || inversion > maxInversion {
		return Chord{}, invalid("inversion", inversion, "must be between 0 and 3")
	}
	c.inversion = inversion
	return c, nil
}

// resolve walks the relative chain, each step building the key on a degree
// of the previous one.
func (c Chord) resolve(key Key) (Key, error) {
	for _, r := range c.relatives[:c.depth] {
		tonic, err := key.Degree(r.Degree)
		if err != nil {
			return Key{}, err
		}
		if key, err = NewKey(tonic, r.Mode); err != nil {
			return Key{}, errors.Wrapf(err, "relative key of %v", c)
		}
	}
	return key, nil
}

// PitchClasses spells the chord in key, root first, then third, fifth and
// seventh. Inversion does not change the order.
func (c Chord) PitchClasses(key Key) ([]PitchClass, error) {
	inner, err := c.resolve(key)
	if err != nil {
		return nil, err
	}
	root, err := inner.Degree(c.degree)
	if err != nil {
		return nil, err
	}
	intervals := chordIntervals[c.quality]
	res := make([]PitchClass, 0, len(intervals)+1)
	res = append(res, root)
	for _, i := range intervals {
		p, err := root.Add(i)
		if err != nil {
			return nil, errors.Wrapf(err, "spelling %v in %v", c, key)
		}
		res = append(res, p)
	}
	return res, nil
}

// EquivalenceClasses is PitchClasses mapped to class numbers.
func (c Chord) EquivalenceClasses(key Key) ([]int, error) {
	pitches, err := c.PitchClasses(key)
	if err != nil {
		return nil, err
	}
	res := make([]int, len(pitches))
	for i, p := range pitches {
		res[i] = p.Class()
	}
	return res, nil
}

var (
	triadFigures   = [...]string{"", "6", "6/4", ""}
	seventhFigures = [...]string{"7", "6/5", "4/3", "4/2"}
)

func (c Chord) figure() string {
	if c.quality == ChordMajorSeventh {
		return "M" + seventhFigures[c.inversion]
	}
	if c.quality.seventh() {
		return seventhFigures[c.inversion]
	}
	return triadFigures[c.inversion]
}

// String names the chord with a Roman numeral and figured-bass inversion:
// "I", "I 6/4", "V 7/V", "vii°", "ii 6/5". Chords borrowed from the parallel
// mode drop the "/i" suffix: "♭VI", "♭VII".
func (c Chord) String() string {
	if !c.quality.roman() {
		return string(c.quality)
	}
	numeral, err := util.ToRoman(c.degree)
	if err != nil {
		return fmt.Sprintf("%d%s", c.degree, c.quality)
	}
	if c.quality.lowercase() {
		numeral = strings.ToLower(numeral)
	}
	// a chord borrowed from the parallel mode is named in the outer key
	mixture := c.depth == 1 && c.relatives[0].Degree == 1
	if mixture && c.relatives[0].Mode == ModeMinor && loweredInMinor(c.degree) {
		numeral = "♭" + numeral
	}
	switch c.quality {
	case ChordDiminished, ChordDiminishedSeventh:
		numeral += "°"
	case ChordHalfDiminished:
		numeral += "ø"
	case ChordAugmented:
		numeral += "+"
	}
	var sb strings.Builder
	sb.WriteString(numeral)
	if f := c.figure(); f != "" {
		sb.WriteString(" " + f)
	}
	if !mixture {
		for i := c.depth - 1; i >= 0; i-- {
			sb.WriteString("/" + c.relatives[i].String())
		}
	}
	return sb.String()
}

// loweredInMinor reports whether the degree sits a semitone lower in the
// natural minor scale than in the major one.
func loweredInMinor(degree int) bool {
	return degree == 3 || degree == 6 || degree == 7
}
