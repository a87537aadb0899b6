package model

// NoteOff is a note ending Delta ticks after the previous event of its voice.
type NoteOff struct {
	Note  uint8  `json:"note"`
	Delta uint32 `json:"delta"`
}

type Voice int

// voices in processing order; the bass goes first
const (
	Bass Voice = iota
	Tenor
	Alto
	Soprano
	NumVoices
)

func (v Voice) String() string {
	switch v {
	case Bass:
		return "bass"
	case Tenor:
		return "tenor"
	case Alto:
		return "alto"
	case Soprano:
		return "soprano"
	}
	return "unknown"
}

// Voices holds one note-off stream per voice, indexed by Voice.
type Voices [NumVoices][]NoteOff

// Score is everything the analysis needs from a chorale file.
type Score struct {
	Key          string `json:"key"`
	TicksPerBeat int    `json:"ticks_per_beat"`
	Voices       Voices `json:"voices"`
}

type MidiMetadata struct {
	Title    string `json:"title,omitempty"`
	Composer string `json:"composer,omitempty"`
	Catalog  string `json:"catalog,omitempty"`
	Year     uint   `json:"year,omitempty"`
}

type FileNum = uint32
type FileNumToMidiPath = map[FileNum]string
