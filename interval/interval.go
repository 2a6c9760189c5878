// Package interval models the gap between two pitches as a quality and a
// diatonic size, e.g. M3 or P5. Sizes of 8 and above are compound and are
// validated against their base interval within one octave.
package interval

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jsphweid/theory/constants"
	"github.com/jsphweid/theory/model"
)

type Quality string

const (
	Major      Quality = "M"
	Minor      Quality = "m"
	Perfect    Quality = "P"
	Diminished Quality = "dim"
	Augmented  Quality = "aug"
)

// longest first, so "dim" is never shadowed by a shorter token
var prefixes = []Quality{Diminished, Augmented, Major, Minor, Perfect}

var longNames = map[string]Quality{
	"major":      Major,
	"minor":      Minor,
	"perfect":    Perfect,
	"diminished": Diminished,
	"augmented":  Augmented,
}

type token struct {
	quality Quality
	size    int
}

// every interval within an octave that music theory allows
var valid = map[token]bool{
	{Diminished, 1}: true, {Perfect, 1}: true, {Augmented, 1}: true,
	{Diminished, 2}: true, {Minor, 2}: true, {Major, 2}: true, {Augmented, 2}: true,
	{Diminished, 3}: true, {Minor, 3}: true, {Major, 3}: true, {Augmented, 3}: true,
	{Diminished, 4}: true, {Perfect, 4}: true, {Augmented, 4}: true,
	{Diminished, 5}: true, {Perfect, 5}: true, {Augmented, 5}: true,
	{Diminished, 6}: true, {Minor, 6}: true, {Major, 6}: true, {Augmented, 6}: true,
	{Diminished, 7}: true, {Minor, 7}: true, {Major, 7}: true, {Augmented, 7}: true,
}

// keys = base size; values = number of semitones
var perfectSemitones = map[int]int{1: 0, 4: 5, 5: 7}
var majorSemitones = map[int]int{2: 2, 3: 4, 6: 9, 7: 11}

var (
	Tone        = MustParse("M2")
	Semitone    = MustParse("m2")
	ToneAndHalf = MustParse("aug2")
)

// MaxSize is the largest size whose semitone count fits in an int.
const MaxSize = (math.MaxInt/constants.SemitonesPerOctave - 1) * constants.DegreesPerOctave

type Interval struct {
	quality Quality
	size    int
}

func ParseQuality(s string) (Quality, error) {
	for _, q := range prefixes {
		if s == string(q) {
			return q, nil
		}
	}
	if q, ok := longNames[s]; ok {
		return q, nil
	}
	return "", model.InvalidArgumentf("unsupported interval quality: %v", s)
}

// New accepts the short quality tokens and their long names ("major", ...).
func New(q Quality, size int) (Interval, error) {
	q, err := ParseQuality(string(q))
	if err != nil {
		return Interval{}, err
	}
	if size <= 0 {
		return Interval{}, model.InvalidArgumentf("expected interval size to be positive, got %v", size)
	}
	if size > MaxSize {
		return Interval{}, model.InvalidArgumentf("interval size too large: %v", size)
	}

	if !valid[token{q, baseSize(size)}] {
		return Interval{}, model.InvalidArgumentf("impossible interval: %v%v", q, size)
	}
	return Interval{quality: q, size: size}, nil
}

// Parse reads a token of the form <quality><size>, e.g. "M3" or "dim13".
func Parse(s string) (Interval, error) {
	for _, q := range prefixes {
		if !strings.HasPrefix(s, string(q)) {
			continue
		}
		rest := strings.TrimPrefix(s, string(q))
		size, err := strconv.Atoi(rest)
		if err != nil {
			return Interval{}, model.InvalidArgumentf("expected integer for interval size, got %q", rest)
		}
		return New(q, size)
	}
	return Interval{}, model.InvalidArgumentf("invalid interval string: %v", s)
}

func MustParse(s string) Interval {
	i, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return i
}

// an 8th reduces to a 1st, a 9th to a 2nd, and so on
func baseSize(size int) int {
	return (size-1)%constants.DegreesPerOctave + 1
}

// FromSemitones names the interval spanning size diatonic steps and the given
// number of semitones. It fails when no quality fits, e.g. a 3rd of 7 semitones.
func FromSemitones(size, semitones int) (Interval, error) {
	if size <= 0 || size > MaxSize {
		return Interval{}, model.InvalidArgumentf("expected interval size between 1 and %v, got %v", MaxSize, size)
	}
	octaves := (size - 1) / constants.DegreesPerOctave
	base := baseSize(size)
	diff := semitones - octaves*constants.SemitonesPerOctave

	var q Quality
	if anchor, ok := perfectSemitones[base]; ok {
		switch diff - anchor {
		case -1:
			q = Diminished
		case 0:
			q = Perfect
		case 1:
			q = Augmented
		}
	} else {
		switch diff - majorSemitones[base] {
		case -2:
			q = Diminished
		case -1:
			q = Minor
		case 0:
			q = Major
		case 1:
			q = Augmented
		}
	}
	if q == "" {
		return Interval{}, model.InvalidArgumentf("no interval of size %v spans %v semitones", size, semitones)
	}
	return New(q, size)
}

func (i Interval) Quality() Quality {
	return i.quality
}

func (i Interval) Size() int {
	return i.size
}

// BaseSize is the size reduced into a single octave, 1 through 7.
func (i Interval) BaseSize() int {
	return baseSize(i.size)
}

func (i Interval) Octaves() int {
	return (i.size - 1) / constants.DegreesPerOctave
}

func (i Interval) IsCompound() bool {
	return i.size >= 8
}

func (i Interval) Semitones() int {
	base := i.BaseSize()
	octaves := i.Octaves() * constants.SemitonesPerOctave

	if anchor, ok := perfectSemitones[base]; ok {
		switch i.quality {
		case Diminished:
			return octaves + anchor - 1
		case Augmented:
			return octaves + anchor + 1
		}
		return octaves + anchor
	}

	anchor := majorSemitones[base]
	switch i.quality {
	case Minor:
		return octaves + anchor - 1
	case Diminished:
		return octaves + anchor - 2
	case Augmented:
		return octaves + anchor + 1
	}
	return octaves + anchor
}

func (i Interval) String() string {
	return fmt.Sprintf("%v%v", i.quality, i.size)
}
