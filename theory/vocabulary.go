package theory

var (
	ofMajor = Relative{Degree: 1, Mode: ModeMajor}
	ofMinor = Relative{Degree: 1, Mode: ModeMinor}
)

// Classification scans these in order and stops at the first chord that
// contains every class of a bucket, so triads come before sevenths and
// diatonic chords before borrowed ones.
var majorVocabulary = []Chord{
	MustChord(1, ChordMajor, 0),
	MustChord(2, ChordMinor, 0),
	MustChord(3, ChordMinor, 0),
	MustChord(4, ChordMajor, 0),
	MustChord(5, ChordMajor, 0),
	MustChord(6, ChordMinor, 0),
	MustChord(7, ChordDiminished, 0),

	MustChord(5, ChordDominantSeventh, 0),
	MustChord(2, ChordMinorSeventh, 0),
	MustChord(7, ChordHalfDiminished, 0),
	MustChord(1, ChordMajorSeventh, 0),
	MustChord(4, ChordMajorSeventh, 0),
	MustChord(6, ChordMinorSeventh, 0),
	MustChord(3, ChordMinorSeventh, 0),

	// mixture
	MustChord(4, ChordMinor, 0),
	MustChord(6, ChordMajor, 0, ofMinor),
	MustChord(3, ChordMajor, 0, ofMinor),
	MustChord(7, ChordMajor, 0, ofMinor),

	// applied
	MustChord(5, ChordMajor, 0, Relative{Degree: 5, Mode: ModeMajor}),
	MustChord(5, ChordDominantSeventh, 0, Relative{Degree: 5, Mode: ModeMajor}),
	MustChord(7, ChordDiminishedSeventh, 0, Relative{Degree: 5, Mode: ModeMajor}),
	MustChord(5, ChordMajor, 0, Relative{Degree: 2, Mode: ModeMinor}),
	MustChord(5, ChordMajor, 0, Relative{Degree: 6, Mode: ModeMinor}),
	MustChord(5, ChordDominantSeventh, 0, Relative{Degree: 4, Mode: ModeMajor}),
	MustChord(5, ChordMajor, 0, Relative{Degree: 3, Mode: ModeMinor}),

	MustChord(6, ChordItalianSixth, 0, ofMinor),
	MustChord(6, ChordFrenchSixth, 0, ofMinor),
	MustChord(6, ChordGermanSixth, 0, ofMinor),
}

var minorVocabulary = []Chord{
	MustChord(1, ChordMinor, 0),
	MustChord(2, ChordDiminished, 0),
	MustChord(3, ChordMajor, 0),
	MustChord(4, ChordMinor, 0),
	MustChord(5, ChordMajor, 0),
	MustChord(6, ChordMajor, 0),
	MustChord(7, ChordDiminished, 0, ofMajor),

	MustChord(5, ChordDominantSeventh, 0),
	MustChord(2, ChordHalfDiminished, 0),
	MustChord(7, ChordDiminishedSeventh, 0, ofMajor),
	MustChord(4, ChordMinorSeventh, 0),
	MustChord(1, ChordMinorSeventh, 0),

	// natural minor and the augmented mediant
	MustChord(7, ChordMajor, 0),
	MustChord(5, ChordMinor, 0),
	MustChord(3, ChordAugmented, 0),

	// applied
	MustChord(5, ChordMajor, 0, Relative{Degree: 5, Mode: ModeMajor}),
	MustChord(5, ChordDominantSeventh, 0, Relative{Degree: 5, Mode: ModeMajor}),
	MustChord(5, ChordMajor, 0, Relative{Degree: 4, Mode: ModeMinor}),
	MustChord(5, ChordDominantSeventh, 0, Relative{Degree: 4, Mode: ModeMinor}),

	// picardy third
	MustChord(1, ChordMajor, 0),

	MustChord(6, ChordItalianSixth, 0),
	MustChord(6, ChordFrenchSixth, 0),
	MustChord(6, ChordGermanSixth, 0),
}
