package corpus

import (
	"sort"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

type ChordCount struct {
	Chord string `json:"chord"`
	Count int    `json:"count"`
}

type ModeSummary struct {
	Files int `json:"files"`
	// most frequent first
	Chords       []ChordCount `json:"chords"`
	MeanLength   float64      `json:"mean_length"`
	StdDevLength float64      `json:"stddev_length"`
}

type Summary struct {
	RunID  string                  `json:"run_id"`
	Files  int                     `json:"files"`
	Failed int                     `json:"failed"`
	ByMode map[string]*ModeSummary `json:"by_mode"`
}

// Summarize tallies chord names and progression lengths per mode.
func Summarize(results []Result) Summary {
	summary := Summary{
		RunID:  uuid.NewString(),
		Files:  len(results),
		ByMode: make(map[string]*ModeSummary),
	}
	histograms := make(map[string]map[string]int)
	lengths := make(map[string][]float64)

	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		mode := r.Key.Mode().String()
		if _, ok := histograms[mode]; !ok {
			histograms[mode] = make(map[string]int)
			summary.ByMode[mode] = &ModeSummary{}
		}
		summary.ByMode[mode].Files++
		for _, name := range r.Progression.Names() {
			histograms[mode][name]++
		}
		lengths[mode] = append(lengths[mode], float64(r.Progression.Len()))
	}

	for mode, ms := range summary.ByMode {
		for name, count := range histograms[mode] {
			ms.Chords = append(ms.Chords, ChordCount{Chord: name, Count: count})
		}
		sort.Slice(ms.Chords, func(i, j int) bool {
			if ms.Chords[i].Count != ms.Chords[j].Count {
				return ms.Chords[i].Count > ms.Chords[j].Count
			}
			return ms.Chords[i].Chord < ms.Chords[j].Chord
		})
		if len(lengths[mode]) > 1 {
			ms.MeanLength, ms.StdDevLength = stat.MeanStdDev(lengths[mode], nil)
		} else {
			ms.MeanLength = lengths[mode][0]
		}
	}
	return summary
}

// Top returns at most n of the most frequent chords.
func (ms *ModeSummary) Top(n int) []ChordCount {
	if n < 0 {
		n = 0
	}
	if n > len(ms.Chords) {
		n = len(ms.Chords)
	}
	return ms.Chords[:n]
}
