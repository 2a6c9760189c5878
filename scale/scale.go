// Package scale builds one-octave diatonic scales from a tonic.
package scale

import (
	"github.com/jsphweid/theory/interval"
	"github.com/jsphweid/theory/logging"
	"github.com/jsphweid/theory/model"
	"github.com/jsphweid/theory/note"
	"github.com/jsphweid/theory/util"
	"github.com/sirupsen/logrus"
)

// whole, half and whole-plus-half steps
var (
	w  = interval.Tone
	h  = interval.Semitone
	wh = interval.ToneAndHalf
)

var (
	majorSteps         = []interval.Interval{w, w, h, w, w, w, h}
	naturalMinorSteps  = []interval.Interval{w, h, w, w, h, w, w}
	harmonicMinorSteps = []interval.Interval{w, h, w, w, h, wh, h}
	melodicMinorSteps  = []interval.Interval{w, h, w, w, w, w, h}
)

var patterns = map[string][]interval.Interval{
	"major":          majorSteps,
	"maj":            majorSteps,
	"minor":          naturalMinorSteps,
	"min":            naturalMinorSteps,
	"harmonic_minor": harmonicMinorSteps,
	"melodic_minor":  melodicMinorSteps,
}

func Kinds() []string {
	return util.SortedKeys(patterns)
}

// Build returns the scale of the given kind starting on tonic, with the tonic
// repeated an octave up as the last of its 8 notes.
func Build(tonic note.Note, kind string) ([]note.Note, error) {
	if !tonic.IsValid() {
		return nil, model.InvalidArgumentf("expected a valid note for tonic, got %#v", tonic)
	}
	steps, ok := patterns[kind]
	if !ok {
		return nil, model.InvalidArgumentf("unsupported scale type: %v (supported: %v)", kind, Kinds())
	}

	res := make([]note.Note, 0, len(steps)+1)
	res = append(res, tonic)
	curr := tonic
	for _, step := range steps {
		next, err := curr.Transpose(step)
		if err != nil {
			return nil, err
		}
		res = append(res, next)
		curr = next
	}

	logging.WithFields(logrus.Fields{
		"tonic": tonic.String(),
		"kind":  kind,
		"scale": res,
	}).Debug("Built scale")
	return res, nil
}
