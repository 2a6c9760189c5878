// Package note models a single spelled pitch: a letter, an accidental and an
// octave. Notes are ordered by pitch, so enharmonic spellings compare equal.
package note

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jsphweid/theory/constants"
	"github.com/jsphweid/theory/interval"
	"github.com/jsphweid/theory/model"
	"github.com/jsphweid/theory/util"
)

type Letter byte

const (
	C Letter = 'C'
	D Letter = 'D'
	E Letter = 'E'
	F Letter = 'F'
	G Letter = 'G'
	A Letter = 'A'
	B Letter = 'B'
)

var letters = []Letter{C, D, E, F, G, A, B}

var letterSemitones = map[Letter]int{C: 0, D: 2, E: 4, F: 5, G: 7, A: 9, B: 11}

// index into letters, i.e. steps above C
func (l Letter) step() int {
	for i, v := range letters {
		if v == l {
			return i
		}
	}
	return -1
}

func (l Letter) String() string {
	return string(l)
}

type Accidental int

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

var accidentalSymbols = map[Accidental]string{
	DoubleFlat:  "bb",
	Flat:        "b",
	Natural:     "",
	Sharp:       "#",
	DoubleSharp: "##",
}

func (a Accidental) String() string {
	return accidentalSymbols[a]
}

func parseAccidental(s string) (Accidental, bool) {
	for a, sym := range accidentalSymbols {
		if sym == s {
			return a, true
		}
	}
	return Natural, false
}

// sharp spellings for each pitch class, used when only a key number is known
var sharpNames = [12]struct {
	letter     Letter
	accidental Accidental
}{
	{C, Natural}, {C, Sharp}, {D, Natural}, {D, Sharp}, {E, Natural}, {F, Natural},
	{F, Sharp}, {G, Natural}, {G, Sharp}, {A, Natural}, {A, Sharp}, {B, Natural},
}

// Note is a value type. The zero Note is not valid; see IsValid.
type Note struct {
	letter     Letter
	accidental Accidental
	octave     int
}

func New(letter Letter, accidental Accidental, octave int) (Note, error) {
	if letter.step() < 0 {
		return Note{}, model.InvalidArgumentf("unsupported note letter: %q", rune(letter))
	}
	if _, ok := accidentalSymbols[accidental]; !ok {
		return Note{}, model.InvalidArgumentf("unsupported accidental: %d", accidental)
	}
	if octave < 0 {
		return Note{}, model.InvalidArgumentf("expected octave to be non-negative, got %v", octave)
	}
	return Note{letter: letter, accidental: accidental, octave: octave}, nil
}

// Parse reads <letter><octave><accidental>, e.g. "C4" or "A4b". The accidental
// may also come before the octave ("Ab4").
func Parse(s string) (Note, error) {
	if s == "" {
		return Note{}, model.InvalidArgumentf("empty note string")
	}
	letter := Letter(unicode.ToUpper(rune(s[0])))
	rest := s[1:]

	digitsAt := strings.IndexFunc(rest, unicode.IsDigit)
	if digitsAt < 0 {
		return Note{}, model.InvalidArgumentf("missing octave in note string: %v", s)
	}
	prefix := rest[:digitsAt]
	rest = rest[digitsAt:]
	digitsEnd := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsDigit(r) })
	if digitsEnd < 0 {
		digitsEnd = len(rest)
	}
	suffix := rest[digitsEnd:]
	if prefix != "" && suffix != "" {
		return Note{}, model.InvalidArgumentf("more than one accidental in note string: %v", s)
	}

	accidental, ok := parseAccidental(prefix + suffix)
	if !ok {
		return Note{}, model.InvalidArgumentf("unsupported accidental in note string: %v", s)
	}
	octave, err := strconv.Atoi(rest[:digitsEnd])
	if err != nil {
		return Note{}, model.InvalidArgumentf("invalid octave in note string: %v", s)
	}
	return New(letter, accidental, octave)
}

func MustParse(s string) Note {
	n, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return n
}

// FromKey spells a MIDI key number using sharps.
func FromKey(key uint8) (Note, error) {
	if key > constants.MaxMidiKey {
		return Note{}, model.InvalidArgumentf("midi key out of range: %v", key)
	}
	octave := int(key)/constants.SemitonesPerOctave - 1
	name := sharpNames[int(key)%constants.SemitonesPerOctave]
	return New(name.letter, name.accidental, octave)
}

func (n Note) IsValid() bool {
	_, ok := accidentalSymbols[n.accidental]
	return n.letter.step() >= 0 && ok && n.octave >= 0
}

func (n Note) Letter() Letter {
	return n.letter
}

func (n Note) Accidental() Accidental {
	return n.accidental
}

func (n Note) Octave() int {
	return n.octave
}

// WithOctave keeps the spelling and moves the note to another octave.
func (n Note) WithOctave(octave int) (Note, error) {
	return New(n.letter, n.accidental, octave)
}

// Pitch is the MIDI numbering, C4 = 60. It may fall outside 0..127.
func (n Note) Pitch() int {
	return (n.octave+1)*constants.SemitonesPerOctave + letterSemitones[n.letter] + int(n.accidental)
}

func (n Note) Key() (uint8, error) {
	p := n.Pitch()
	if p < 0 || p > constants.MaxMidiKey {
		return 0, model.InvalidArgumentf("note %v is outside the midi key range", n)
	}
	return uint8(p), nil
}

func (n Note) Compare(o Note) int {
	switch {
	case n.Pitch() < o.Pitch():
		return -1
	case n.Pitch() > o.Pitch():
		return 1
	}
	return 0
}

func (n Note) Less(o Note) bool {
	return n.Compare(o) < 0
}

// SamePitch reports whether two notes sound the same, e.g. G#4 and A4b.
func (n Note) SamePitch(o Note) bool {
	return n.Compare(o) == 0
}

// letter position counted from C0
func (n Note) diatonicIndex() int {
	return n.octave*constants.DegreesPerOctave + n.letter.step()
}

// Transpose moves the note up by i, keeping the spelling the interval implies:
// E4 up a m3 is G4, but E4 up an aug2 is F4##.
func (n Note) Transpose(i interval.Interval) (Note, error) {
	if !n.IsValid() {
		return Note{}, model.InvalidArgumentf("expected a valid note to transpose, got %#v", n)
	}
	if i.Size() <= 0 {
		return Note{}, model.InvalidArgumentf("expected a valid interval, got %#v", i)
	}
	target := n.diatonicIndex() + i.Size() - 1
	letter := letters[target%constants.DegreesPerOctave]
	octave := target / constants.DegreesPerOctave

	natural := Note{letter: letter, accidental: Natural, octave: octave}
	offset := n.Pitch() + i.Semitones() - natural.Pitch()
	if util.Abs(offset) > int(DoubleSharp) {
		return Note{}, model.InvalidArgumentf("cannot spell %v transposed by %v", n, i)
	}
	return New(letter, Accidental(offset), octave)
}

// IntervalTo names the ascending interval from n to o.
func (n Note) IntervalTo(o Note) (interval.Interval, error) {
	steps := o.diatonicIndex() - n.diatonicIndex()
	if steps < 0 {
		return interval.Interval{}, model.InvalidArgumentf("%v is below %v", o, n)
	}
	return interval.FromSemitones(steps+1, o.Pitch()-n.Pitch())
}

func (n Note) String() string {
	return fmt.Sprintf("%v%v%v", n.letter, n.octave, n.accidental)
}
