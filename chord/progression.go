package chord

import (
	"encoding/json"
	"strings"

	"github.com/0d0b3nus/chorale-writer/theory"
)

// Progression is an append-only sequence of classified chords.
type Progression struct {
	chords []theory.Chord
}

func (p *Progression) Append(c theory.Chord) {
	p.chords = append(p.chords, c)
}

func (p Progression) Chords() []theory.Chord {
	res := make([]theory.Chord, len(p.chords))
	copy(res, p.chords)
	return res
}

func (p Progression) Len() int {
	return len(p.chords)
}

func (p Progression) Names() []string {
	res := make([]string, len(p.chords))
	for i, c := range p.chords {
		res[i] = c.String()
	}
	return res
}

func (p Progression) String() string {
	return strings.Join(p.Names(), " | ")
}

func (p Progression) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Names())
}
