package midi

import (
	"bytes"
	"io"
	"os"

	"github.com/0d0b3nus/chorale-writer/model"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

var (
	ErrWrongTrackCount     = errors.New("chorale files need a meta track and one track per voice")
	ErrNoKeySignature      = errors.New("no key signature in meta track")
	ErrUnsupportedTiming   = errors.New("only metric time formats are supported")
	ErrUnknownKeySignature = errors.New("key signature out of range")
)

const metaKeySignature = 0x59

// track index of each voice; track 0 carries the meta events
func trackOf(v model.Voice) int {
	return int(model.NumVoices - v)
}

// Read parses a standard midi file.
func Read(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s, e = nil, errors.Errorf("parsing midi file: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing midi file")
	}
	return res, nil
}

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}
	return Read(bytes.NewReader(dat))
}

// ReadScore reads a chorale file straight into a Score.
func ReadScore(filepath string) (model.Score, error) {
	s, err := ReadMidiFile(filepath)
	if err != nil {
		return model.Score{}, err
	}
	score, err := ScoreFrom(s)
	if err != nil {
		return model.Score{}, errors.Wrap(err, filepath)
	}
	return score, nil
}

func keyString(msg smf.Message) (string, bool, error) {
	if len(msg) < 4 || msg[0] != 0xFF || msg[1] != metaKeySignature {
		return "", false, nil
	}
	// the last two bytes are sharps/flats and the major/minor flag
	sf, mi := int8(msg[len(msg)-2]), msg[len(msg)-1]
	k, err := KeyFromSignature(int(sf), mi == 1)
	if err != nil {
		return "", true, err
	}
	return k, true, nil
}

func voiceEvents(track smf.Track) []model.NoteOff {
	var res []model.NoteOff
	for _, evt := range track {
		var channel, key, velocity uint8
		switch {
		case evt.Message.GetNoteOff(&channel, &key, &velocity):
		case evt.Message.GetNoteOn(&channel, &key, &velocity) && velocity == 0:
		default:
			continue
		}
		res = append(res, model.NoteOff{Note: key, Delta: evt.Delta})
	}
	return res
}

// ScoreFrom pulls the key, the resolution and the four voices out of a
// chorale file. Only the deltas of the note-off events are kept.
func ScoreFrom(s *smf.SMF) (model.Score, error) {
	var score model.Score
	if len(s.Tracks) != int(model.NumVoices)+1 {
		return score, errors.Wrapf(ErrWrongTrackCount, "got %d tracks", len(s.Tracks))
	}

	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return score, errors.Wrapf(ErrUnsupportedTiming, "%v", s.TimeFormat)
	}
	score.TicksPerBeat = int(ticks)

	for _, evt := range s.Tracks[0] {
		k, found, err := keyString(evt.Message)
		if err != nil {
			return score, err
		}
		if found {
			score.Key = k
			break
		}
	}
	if score.Key == "" {
		return score, ErrNoKeySignature
	}

	for v := model.Bass; v < model.NumVoices; v++ {
		score.Voices[v] = voiceEvents(s.Tracks[trackOf(v)])
	}

	log.WithFields(log.Fields{
		"key":            score.Key,
		"ticks_per_beat": score.TicksPerBeat,
	}).Debug("read score")
	return score, nil
}

// ToSMF lays a score out as a chorale file: a meta track with the key
// signature, then soprano, alto, tenor and bass.
func ToSMF(score model.Score) (*smf.SMF, error) {
	if score.TicksPerBeat <= 0 || score.TicksPerBeat > 0x7FFF {
		return nil, errors.Errorf("ticks per beat %d out of range", score.TicksPerBeat)
	}
	sf, minor, err := SignatureFromKey(score.Key)
	if err != nil {
		return nil, err
	}
	var mi byte
	if minor {
		mi = 1
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(score.TicksPerBeat)

	var meta smf.Track
	meta.Add(0, []byte{0xFF, metaKeySignature, 0x02, byte(int8(sf)), mi})
	meta.Close(0)
	s.Tracks = append(s.Tracks, meta)

	for i := 1; i <= int(model.NumVoices); i++ {
		v := model.NumVoices - model.Voice(i)
		var track smf.Track
		for _, n := range score.Voices[v] {
			track.Add(0, midi.NoteOn(uint8(v), n.Note, 100))
			track.Add(n.Delta, midi.NoteOff(uint8(v), n.Note))
		}
		track.Close(0)
		s.Tracks = append(s.Tracks, track)
	}
	return s, nil
}

func WriteScore(w io.Writer, score model.Score) error {
	s, err := ToSMF(score)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(w); err != nil {
		return errors.Wrap(err, "writing midi file")
	}
	return nil
}

var (
	// indexed by sharps (positive) or flats (negative) plus 7
	majorKeys = [...]string{"Cb", "Gb", "Db", "Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#"}
	minorKeys = [...]string{"Ab", "Eb", "Bb", "F", "C", "G", "D", "A", "E", "B", "F#", "C#", "G#", "D#", "A#"}
)

// KeyFromSignature names a key signature the way ParseKey reads it: "Eb",
// "F#m".
func KeyFromSignature(sharps int, minor bool) (string, error) {
	if sharps < -7 || sharps > 7 {
		return "", errors.Wrapf(ErrUnknownKeySignature, "%d", sharps)
	}
	if minor {
		return minorKeys[sharps+7] + "m", nil
	}
	return majorKeys[sharps+7], nil
}

// SignatureFromKey is the inverse of KeyFromSignature.
func SignatureFromKey(key string) (int, bool, error) {
	for i := range majorKeys {
		if majorKeys[i] == key {
			return i - 7, false, nil
		}
		if minorKeys[i]+"m" == key {
			return i - 7, true, nil
		}
	}
	return 0, false, errors.Wrapf(ErrUnknownKeySignature, "%q", key)
}
