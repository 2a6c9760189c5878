package note

import (
	"testing"

	"github.com/jsphweid/theory/interval"
	"github.com/jsphweid/theory/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in         string
		letter     Letter
		accidental Accidental
		octave     int
		out        string
	}{
		{"C4", C, Natural, 4, "C4"},
		{"A4b", A, Flat, 4, "A4b"},
		{"Ab4", A, Flat, 4, "A4b"},
		{"F3#", F, Sharp, 3, "F3#"},
		{"g10##", G, DoubleSharp, 10, "G10##"},
		{"Bbb0", B, DoubleFlat, 0, "B0bb"},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			n, err := Parse(c.in)
			require.NoError(t, err)

			assert := assert.New(t)
			assert.Equal(c.letter, n.Letter())
			assert.Equal(c.accidental, n.Accidental())
			assert.Equal(c.octave, n.Octave())
			assert.Equal(c.out, n.String())
		})
	}
}

func TestParseRejectsBadStrings(t *testing.T) {
	for _, s := range []string{"", "H4", "C", "C#", "Cb4#", "C4x", "C-1", "C4bbb"} {
		t.Run(s, func(t *testing.T) {
			_, err := Parse(s)
			assert.ErrorIs(t, err, model.ErrInvalidArgument)
		})
	}
}

func TestNewRejectsBadArguments(t *testing.T) {
	assert := assert.New(t)

	_, err := New('H', Natural, 4)
	assert.ErrorIs(err, model.ErrInvalidArgument)
	_, err = New(C, Accidental(3), 4)
	assert.ErrorIs(err, model.ErrInvalidArgument)
	_, err = New(C, Natural, -1)
	assert.ErrorIs(err, model.ErrInvalidArgument)
}

func TestZeroNoteIsInvalid(t *testing.T) {
	assert := assert.New(t)
	assert.False(Note{}.IsValid())
	assert.True(MustParse("C4").IsValid())
}

func TestPitchAndOrdering(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(60, MustParse("C4").Pitch())
	assert.Equal(69, MustParse("A4").Pitch())
	assert.Equal(59, MustParse("C4b").Pitch())

	assert.True(MustParse("D4").Less(MustParse("E4")))
	assert.True(MustParse("B3").Less(MustParse("C4")))
	assert.False(MustParse("C5").Less(MustParse("B4")))
	assert.Equal(1, MustParse("D5").Compare(MustParse("G4")))
	assert.Equal(-1, MustParse("G4").Compare(MustParse("D5")))

	// enharmonics are equal in pitch but not identical
	assert.True(MustParse("G4#").SamePitch(MustParse("A4b")))
	assert.NotEqual(MustParse("G4#"), MustParse("A4b"))
	assert.Equal(0, MustParse("B3#").Compare(MustParse("C4")))
}

func TestKey(t *testing.T) {
	assert := assert.New(t)

	key, err := MustParse("C4").Key()
	assert.NoError(err)
	assert.Equal(uint8(60), key)

	key, err = MustParse("G9").Key()
	assert.NoError(err)
	assert.Equal(uint8(127), key)

	_, err = MustParse("A9").Key()
	assert.ErrorIs(err, model.ErrInvalidArgument)
}

func TestFromKey(t *testing.T) {
	cases := map[uint8]string{
		12:  "C0",
		60:  "C4",
		61:  "C4#",
		70:  "A4#",
		127: "G9",
	}

	for key, want := range cases {
		t.Run(want, func(t *testing.T) {
			n, err := FromKey(key)
			require.NoError(t, err)
			assert.Equal(t, want, n.String())

			back, err := n.Key()
			require.NoError(t, err)
			assert.Equal(t, key, back)
		})
	}

	_, err := FromKey(11)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
	_, err = FromKey(128)
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestTranspose(t *testing.T) {
	cases := []struct {
		from     string
		interval string
		want     string
	}{
		{"C4", "M3", "E4"},
		{"C4", "P5", "G4"},
		{"B4", "m2", "C5"},
		{"E4", "m2", "F4"},
		{"E4", "aug2", "F4##"},
		{"A4b", "aug2", "B4"},
		{"D4", "M3", "F4#"},
		{"C4", "dim1", "C4b"},
		{"C4", "P8", "C5"},
		{"C4", "M10", "E5"},
		{"F4", "aug4", "B4"},
		{"B3", "dim5", "F4"},
	}

	for _, c := range cases {
		t.Run(c.from+"+"+c.interval, func(t *testing.T) {
			n, err := MustParse(c.from).Transpose(interval.MustParse(c.interval))
			require.NoError(t, err)
			assert.Equal(t, c.want, n.String())
		})
	}
}

func TestTransposeRejectsUnspellable(t *testing.T) {
	assert := assert.New(t)

	_, err := MustParse("F4##").Transpose(interval.MustParse("aug2"))
	assert.ErrorIs(err, model.ErrInvalidArgument)

	_, err = Note{}.Transpose(interval.Tone)
	assert.ErrorIs(err, model.ErrInvalidArgument)

	_, err = MustParse("C4").Transpose(interval.Interval{})
	assert.ErrorIs(err, model.ErrInvalidArgument)
}

func TestIntervalTo(t *testing.T) {
	cases := []struct {
		from string
		to   string
		want string
	}{
		{"C4", "E4", "M3"},
		{"C4", "E4b", "m3"},
		{"C4", "G5", "P12"},
		{"E4", "C5", "m6"},
		{"C4", "C4b", "dim1"},
		{"F4", "B4", "aug4"},
		{"C4", "C4", "P1"},
	}

	for _, c := range cases {
		t.Run(c.from+"->"+c.to, func(t *testing.T) {
			i, err := MustParse(c.from).IntervalTo(MustParse(c.to))
			require.NoError(t, err)
			assert.Equal(t, c.want, i.String())
		})
	}

	_, err := MustParse("E4").IntervalTo(MustParse("C4"))
	assert.ErrorIs(t, err, model.ErrInvalidArgument)
}

func TestWithOctave(t *testing.T) {
	n, err := MustParse("A4b").WithOctave(5)
	require.NoError(t, err)
	assert.Equal(t, "A5b", n.String())
}
