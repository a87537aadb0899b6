package sample

import (
	"github.com/0d0b3nus/chorale-writer/model"
	"github.com/0d0b3nus/chorale-writer/theory"
	"github.com/0d0b3nus/chorale-writer/util"
)

func clip(events []model.NoteOff, from, to int) []model.NoteOff {
	var res []model.NoteOff
	var start int
	for _, evt := range events {
		end := start + int(evt.Delta)
		s, e := max(start, from), util.Min(end, to)
		if e > s {
			res = append(res, model.NoteOff{Note: evt.Note, Delta: uint32(e - s)})
		}
		if end >= to {
			break
		}
		start = end
	}
	return res
}

// Excerpt cuts beats [fromBeat, fromBeat+beats) out of a score. Notes
// crossing either edge are shortened to fit. With beats <= 0 the excerpt
// runs to the end.
func Excerpt(score model.Score, fromBeat, beats int) (model.Score, error) {
	if score.TicksPerBeat <= 0 {
		return model.Score{}, &theory.ValidationError{Field: "ticks per beat", Value: score.TicksPerBeat, Reason: "must be positive"}
	}
	if fromBeat < 0 {
		return model.Score{}, &theory.ValidationError{Field: "first beat", Value: fromBeat, Reason: "must not be negative"}
	}

	from := fromBeat * score.TicksPerBeat
	to := int(^uint(0) >> 1)
	if beats > 0 {
		to = from + beats*score.TicksPerBeat
	}

	res := model.Score{Key: score.Key, TicksPerBeat: score.TicksPerBeat}
	for v := model.Bass; v < model.NumVoices; v++ {
		res.Voices[v] = clip(score.Voices[v], from, to)
	}
	return res, nil
}
