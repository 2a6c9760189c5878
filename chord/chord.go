package chord

import (
	"strconv"
	"strings"

	"github.com/jsphweid/theory/interval"
	"github.com/jsphweid/theory/logging"
	"github.com/jsphweid/theory/model"
	"github.com/jsphweid/theory/note"
	"github.com/jsphweid/theory/scale"
	"github.com/jsphweid/theory/util"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

// Difference in scale index from the root of the chord to each other note.
// Major and minor share offsets: the third and fifth come out major or minor
// from the scale they are picked from.
var (
	majorPattern = []int{2, 4}
	minorPattern = []int{2, 4}
)

var patterns = map[string][]int{
	"major": majorPattern,
	"maj":   majorPattern,
	"minor": minorPattern,
	"min":   minorPattern,
}

var degrees = map[string]int{
	"I":    0,
	"II":   1,
	"III":  2,
	"IV":   3,
	"V":    4,
	"VI":   5,
	"VII":  6,
	"VIII": 7,
}

// Chord is a group of notes played together, kept lowest first. It always
// holds at least one note.
type Chord struct {
	notes []note.Note
}

func New(root note.Note) (*Chord, error) {
	if !root.IsValid() {
		return nil, model.InvalidArgumentf("expected a valid note for root note, got %#v", root)
	}
	return &Chord{notes: []note.Note{root}}, nil
}

// FromNotes starts a chord with root and adds the rest in order.
func FromNotes(root note.Note, rest ...note.Note) (*Chord, error) {
	c, err := New(root)
	if err != nil {
		return nil, err
	}
	for _, n := range rest {
		if err := c.AddNote(n); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Parse reads the String form, e.g. "C4+E4+G4".
func Parse(s string) (*Chord, error) {
	var c *Chord
	for _, part := range strings.Split(s, "+") {
		n, err := note.Parse(part)
		if err != nil {
			return nil, err
		}
		if c == nil {
			c, err = New(n)
		} else {
			err = c.AddNote(n)
		}
		if err != nil {
			return nil, err
		}
	}
	return c, nil
}

// AddNote inserts n after every note that is not higher, so notes of equal
// pitch keep the order they were added in.
func (c *Chord) AddNote(n note.Note) error {
	if !n.IsValid() {
		return model.InvalidArgumentf("expected a valid note for new note, got %#v", n)
	}
	i := slices.IndexFunc(c.notes, func(existing note.Note) bool {
		return n.Less(existing)
	})
	if i < 0 {
		c.notes = append(c.notes, n)
		return nil
	}
	c.notes = slices.Insert(c.notes, i, n)
	return nil
}

func (c *Chord) AddNoteString(s string) error {
	n, err := note.Parse(s)
	if err != nil {
		return err
	}
	return c.AddNote(n)
}

// Root is the lowest note.
func (c *Chord) Root() note.Note {
	return c.notes[0]
}

func (c *Chord) Notes() []note.Note {
	return slices.Clone(c.notes)
}

func (c *Chord) Len() int {
	return len(c.notes)
}

// Key identifies the chord by its MIDI key numbers, e.g. "60-64-67", so
// enharmonic spellings of the same sound share a key.
func (c *Chord) Key() (string, error) {
	parts := make([]string, len(c.notes))
	for i, n := range c.notes {
		key, err := n.Key()
		if err != nil {
			return "", err
		}
		parts[i] = strconv.Itoa(int(key))
	}
	return strings.Join(parts, "-"), nil
}

func (c *Chord) Transpose(i interval.Interval) (*Chord, error) {
	res := &Chord{notes: make([]note.Note, 0, len(c.notes))}
	for _, n := range c.notes {
		moved, err := n.Transpose(i)
		if err != nil {
			return nil, err
		}
		res.notes = append(res.notes, moved)
	}
	return res, nil
}

func (c *Chord) String() string {
	parts := make([]string, len(c.notes))
	for i, n := range c.notes {
		parts[i] = n.String()
	}
	return strings.Join(parts, "+")
}

func Qualities() []string {
	return util.SortedKeys(patterns)
}

func Degrees() []string {
	return util.SortedKeys(degrees)
}

// Build creates the chord on the given scale degree ("I" through "VIII") of
// the tonic's major or minor scale. Notes past the top of the scale wrap
// around into the next octave.
func Build(tonic note.Note, degree string, quality string) (*Chord, error) {
	if !tonic.IsValid() {
		return nil, model.InvalidArgumentf("expected a valid note for tonic key, got %#v", tonic)
	}
	rootIdx, ok := degrees[degree]
	if !ok {
		return nil, model.InvalidArgumentf("unsupported chord number: %v", degree)
	}
	pattern, ok := patterns[quality]
	if !ok {
		return nil, model.InvalidArgumentf("unsupported chord type: %v (supported: %v)", quality, Qualities())
	}

	s, err := scale.Build(tonic, quality)
	if err != nil {
		return nil, err
	}
	c, err := New(s[rootIdx])
	if err != nil {
		return nil, err
	}

	last := len(s) - 1
	for _, diff := range pattern {
		nextIdx := rootIdx + diff
		octaveDiff := 0
		// s[last] is s[0] an octave up, so wrapping steps back by last, not len(s)
		if nextIdx > last {
			nextIdx -= last
			octaveDiff = 1
		}
		next, err := s[nextIdx].WithOctave(s[nextIdx].Octave() + octaveDiff)
		if err != nil {
			return nil, err
		}
		if err := c.AddNote(next); err != nil {
			return nil, err
		}
	}

	logging.WithFields(logrus.Fields{
		"tonic":   tonic.String(),
		"degree":  degree,
		"quality": quality,
		"chord":   c.String(),
	}).Debug("Built chord")
	return c, nil
}
