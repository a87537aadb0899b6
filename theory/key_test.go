package theory

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyDegrees(t *testing.T) {
	cases := []struct {
		tonic    PitchClass
		mode     Mode
		expected [7]PitchClass
	}{
		{C, ModeMajor, [7]PitchClass{C, D, E, F, G, A, B}},
		{C, ModeMinor, [7]PitchClass{C, D, EFlat, F, G, AFlat, BFlat}},
		{A, ModeMinor, [7]PitchClass{A, B, C, D, E, F, G}},
		{FSharp, ModeMajor, [7]PitchClass{FSharp, GSharp, ASharp, B, CSharp, DSharp, ESharp}},
		{BFlat, ModeMinor, [7]PitchClass{BFlat, C, DFlat, EFlat, F, GFlat, AFlat}},
		{CFlat, ModeMajor, [7]PitchClass{CFlat, DFlat, EFlat, FFlat, GFlat, AFlat, BFlat}},
	}
	for _, c := range cases {
		t.Run(c.tonic.String()+" "+c.mode.String(), func(t *testing.T) {
			k, err := NewKey(c.tonic, c.mode)
			require.NoError(t, err)
			assert.Equal(t, c.expected, k.Degrees())
			assert.Equal(t, c.tonic, k.Tonic())
			assert.Equal(t, c.mode, k.Mode())
		})
	}
}

func TestKeyDegree(t *testing.T) {
	assert := assert.New(t)
	k := MustKey(C, ModeMinor)

	p, err := k.Degree(3)
	assert.NoError(err)
	assert.Equal(EFlat, p)

	p, err = k.Degree(1)
	assert.NoError(err)
	assert.Equal(C, p)

	_, err = k.Degree(0)
	assert.True(errors.Is(err, ErrValidation))
	_, err = k.Degree(8)
	assert.True(errors.Is(err, ErrValidation))
}

func TestNewKeyErrors(t *testing.T) {
	_, err := NewKey(C, Mode(5))
	assert.True(t, errors.Is(err, ErrValidation))

	// the leading tone would need a triple sharp
	_, err = NewKey(GDoubleSharp, ModeMajor)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoSpelling))
}

func TestParseKey(t *testing.T) {
	cases := map[string]Key{
		"C":        MustKey(C, ModeMajor),
		"Am":       MustKey(A, ModeMinor),
		"Bb":       MustKey(BFlat, ModeMajor),
		"F#m":      MustKey(FSharp, ModeMinor),
		"Ebm":      MustKey(EFlat, ModeMinor),
		"bm":       MustKey(B, ModeMinor),
		"C major":  MustKey(C, ModeMajor),
		"c# minor": MustKey(CSharp, ModeMinor),
		" G ":      MustKey(G, ModeMajor),
	}
	for s, expected := range cases {
		t.Run(s, func(t *testing.T) {
			k, err := ParseKey(s)
			require.NoError(t, err)
			assert.Equal(t, expected, k)
		})
	}

	for _, s := range []string{"", "m", "H", "C mixolydian", "C#b"} {
		_, err := ParseKey(s)
		assert.Error(t, err, s)
	}
}

func TestKeyString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C major", MustKey(C, ModeMajor).String())
	assert.Equal("A minor", MustKey(A, ModeMinor).String())
	assert.Equal("C", MustKey(C, ModeMajor).Short())
	assert.Equal("F#m", MustKey(FSharp, ModeMinor).Short())

	for _, s := range []string{"Eb", "G#m", "Cb", "A#m"} {
		k, err := ParseKey(s)
		require.NoError(t, err)
		assert.Equal(s, k.Short())
	}
}

func TestCommonChords(t *testing.T) {
	assert := assert.New(t)

	major := MustKey(C, ModeMajor).CommonChords()
	minor := MustKey(A, ModeMinor).CommonChords()
	assert.Len(major, 28)
	assert.Len(minor, 23)
	assert.Equal(MustChord(1, ChordMajor, 0), major[0])
	assert.Equal(MustChord(1, ChordMinor, 0), minor[0])

	// callers get their own copy
	major[0] = MustChord(2, ChordMinor, 0)
	assert.Equal(MustChord(1, ChordMajor, 0), MustKey(C, ModeMajor).CommonChords()[0])
}

func TestCommonChordsRealizeInEveryKeySignature(t *testing.T) {
	majors := []string{"Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#"}
	minors := []string{"Abm", "Ebm", "Bbm", "Fm", "Cm", "Gm", "Dm", "Am", "Em", "Bm", "F#m", "C#m", "G#m", "D#m", "A#m"}
	for _, s := range append(majors, minors...) {
		k, err := ParseKey(s)
		require.NoError(t, err, s)
		for _, c := range k.CommonChords() {
			_, err := c.PitchClasses(k)
			assert.NoError(t, err, "%v in %v", c, k)
		}
	}
}
