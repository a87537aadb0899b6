package theory

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInterval(t *testing.T) {
	assert := assert.New(t)

	_, err := NewInterval(Perfect, 2)
	assert.True(errors.Is(err, ErrValidation))
	_, err = NewInterval(Major, 8)
	assert.True(errors.Is(err, ErrValidation))
	_, err = NewInterval(Minor, 12)
	assert.True(errors.Is(err, ErrValidation))
	_, err = NewInterval(Major, 0)
	assert.True(errors.Is(err, ErrValidation))
	_, err = NewInterval(Quality('x'), 3)
	assert.True(errors.Is(err, ErrValidation))

	_, err = NewInterval(Diminished, 1)
	assert.NoError(err)
	_, err = NewInterval(Augmented, 12)
	assert.NoError(err)
	_, err = NewInterval(Major, 13)
	assert.NoError(err)
}

func TestParseInterval(t *testing.T) {
	assert := assert.New(t)

	i, err := ParseInterval("M10")
	assert.NoError(err)
	assert.Equal(MustInterval(Major, 10), i)

	i, err = ParseInterval("d5")
	assert.NoError(err)
	assert.Equal(DiminishedFifth, i)

	for _, s := range []string{"", "M", "Mx", "P3", "M5", "X3", "P0"} {
		_, err := ParseInterval(s)
		assert.Error(err, s)
	}
}

func TestIntervalSemitones(t *testing.T) {
	cases := map[string]int{
		"P1": 0, "m2": 1, "M2": 2, "m3": 3, "M3": 4, "P4": 5,
		"A4": 6, "d5": 6, "P5": 7, "m6": 8, "M6": 9, "A6": 10,
		"d7": 9, "m7": 10, "M7": 11, "P8": 12, "d8": 11, "A8": 13,
		"m9": 13, "M9": 14, "M10": 16, "P12": 19, "M14": 23, "P15": 24,
	}
	for s, expected := range cases {
		t.Run(s, func(t *testing.T) {
			i, err := ParseInterval(s)
			require.NoError(t, err)
			assert.Equal(t, expected, i.Semitones())
		})
	}
}

func TestIntervalFromNumberAndSemitones(t *testing.T) {
	assert := assert.New(t)

	i, err := IntervalFromNumberAndSemitones(3, 4)
	assert.NoError(err)
	assert.Equal(MajorThird, i)

	i, err = IntervalFromNumberAndSemitones(4, 6)
	assert.NoError(err)
	assert.Equal(AugmentedFourth, i)

	_, err = IntervalFromNumberAndSemitones(3, 7)
	assert.True(errors.Is(err, ErrNoQuality))

	_, err = IntervalFromNumberAndSemitones(0, 0)
	assert.True(errors.Is(err, ErrValidation))
}

func TestIntervalAdd(t *testing.T) {
	cases := []struct {
		a, b     Interval
		expected string
	}{
		{MajorThird, MinorThird, "P5"},
		{MinorThird, MajorThird, "P5"},
		{PerfectFifth, PerfectFourth, "P8"},
		{DiminishedFifth, AugmentedFourth, "P8"},
		{MajorThird, MajorThird, "A5"},
		{MinorThird, MinorThird, "d5"},
		{PerfectFifth, PerfectFifth, "M9"},
		{PerfectOctave, MajorThird, "M10"},
		{PerfectUnison, MinorSeventh, "m7"},
	}
	for _, c := range cases {
		t.Run(c.a.String()+"+"+c.b.String(), func(t *testing.T) {
			res, err := c.a.Add(c.b)
			require.NoError(t, err)
			assert.Equal(t, c.expected, res.String())
		})
	}

	_, err := MinorSecond.Add(MustInterval(Diminished, 2))
	assert.True(t, errors.Is(err, ErrNoQuality))
}

func TestIntervalMul(t *testing.T) {
	assert := assert.New(t)

	res, err := MajorThird.Mul(0)
	assert.NoError(err)
	assert.Equal(PerfectUnison, res)

	res, err = MajorThird.Mul(1)
	assert.NoError(err)
	assert.Equal(MajorThird, res)

	res, err = MajorThird.Mul(2)
	assert.NoError(err)
	assert.Equal(AugmentedFifth, res)

	res, err = MinorThird.Mul(4)
	assert.NoError(err)
	assert.Equal("d9", res.String())

	res, err = PerfectFifth.Mul(2)
	assert.NoError(err)
	assert.Equal("M9", res.String())

	_, err = MajorThird.Mul(-1)
	assert.True(errors.Is(err, ErrValidation))
}

func TestIntervalCompare(t *testing.T) {
	assert := assert.New(t)
	assert.True(MajorThird.Less(PerfectFifth))
	assert.True(MinorThird.Less(MajorThird))
	assert.True(AugmentedFourth.Less(DiminishedFifth))
	assert.False(PerfectFifth.Less(PerfectFifth))
	assert.Equal(0, PerfectOctave.Compare(MustInterval(Perfect, 8)))
	assert.Equal(1, MustInterval(Major, 9).Compare(PerfectOctave))
}

func TestIntervalSimplePart(t *testing.T) {
	cases := []struct {
		in, simple string
		octaves    int
		compound   bool
	}{
		{"M3", "M3", 0, false},
		{"P8", "P8", 0, false},
		{"A8", "A1", 1, true},
		{"M10", "M3", 1, true},
		{"P15", "P8", 1, true},
		{"M17", "M3", 2, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			i, err := ParseInterval(c.in)
			require.NoError(t, err)
			assert.Equal(t, c.simple, i.SimplePart().String())
			assert.Equal(t, c.octaves, i.Octaves())
			assert.Equal(t, c.compound, i.IsCompound())
		})
	}
}

func TestIntervalInversion(t *testing.T) {
	cases := map[string]string{
		"M3":  "m6",
		"P5":  "P4",
		"A4":  "d5",
		"P1":  "P8",
		"P8":  "P1",
		"d7":  "A2",
		"M10": "m6",
	}
	for in, expected := range cases {
		i, err := ParseInterval(in)
		require.NoError(t, err)
		assert.Equal(t, expected, i.Inversion().String(), in)
	}
}

func TestIntervalEnharmonic(t *testing.T) {
	cases := map[string]string{
		"A4": "d5",
		"d5": "A4",
		"A6": "m7",
		"d7": "M6",
		"A2": "m3",
	}
	for in, expected := range cases {
		i, err := ParseInterval(in)
		require.NoError(t, err)
		e, ok := i.EnharmonicEquivalent()
		assert.True(t, ok, in)
		assert.Equal(t, expected, e.String(), in)
		assert.True(t, i.IsEnharmonicTo(e))
	}

	_, ok := MajorThird.EnharmonicEquivalent()
	assert.False(t, ok)
	_, ok = PerfectFifth.EnharmonicEquivalent()
	assert.False(t, ok)
	_, ok = MustInterval(Diminished, 1).EnharmonicEquivalent()
	assert.False(t, ok)

	assert.False(t, AugmentedFourth.IsEnharmonicTo(AugmentedFourth))
	assert.False(t, MajorThird.IsEnharmonicTo(PerfectFourth))
}
