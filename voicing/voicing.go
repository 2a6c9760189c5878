// Package voicing turns chords into MIDI note messages and back. It only
// builds and reads messages in memory; sending them is up to the caller.
package voicing

import (
	"github.com/jsphweid/theory/chord"
	"github.com/jsphweid/theory/constants"
	"github.com/jsphweid/theory/logging"
	"github.com/jsphweid/theory/model"
	"github.com/jsphweid/theory/note"
	"github.com/sirupsen/logrus"
	"gitlab.com/gomidi/midi/v2"
)

// Voicing holds the channel and velocity used for note messages. Build one
// with New or Default; the zero value has velocity 0 and is rejected.
type Voicing struct {
	channel  uint8
	velocity uint8
}

func New(channel, velocity uint8) (Voicing, error) {
	v := Voicing{channel: channel, velocity: velocity}
	if err := v.validate(); err != nil {
		return Voicing{}, err
	}
	return v, nil
}

// a note on with velocity 0 reads as a note off
func (v Voicing) validate() error {
	if v.channel > 15 {
		return model.InvalidArgumentf("expected midi channel 0-15, got %v", v.channel)
	}
	if v.velocity == 0 || v.velocity > constants.MaxMidiKey {
		return model.InvalidArgumentf("expected velocity 1-127, got %v", v.velocity)
	}
	return nil
}

func (v Voicing) Channel() uint8 {
	return v.channel
}

func (v Voicing) Velocity() uint8 {
	return v.velocity
}

// Default reads the channel and velocity from the environment.
func Default() Voicing {
	return Voicing{
		channel:  constants.GetDefaultChannel(),
		velocity: constants.GetDefaultVelocity(),
	}
}

func keys(c *chord.Chord) ([]uint8, error) {
	notes := c.Notes()
	res := make([]uint8, 0, len(notes))
	for _, n := range notes {
		key, err := n.Key()
		if err != nil {
			return nil, err
		}
		res = append(res, key)
	}
	return res, nil
}

// NoteOns returns one note on per chord note, lowest first.
func (v Voicing) NoteOns(c *chord.Chord) ([]midi.Message, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	ks, err := keys(c)
	if err != nil {
		return nil, err
	}
	res := make([]midi.Message, 0, len(ks))
	for _, key := range ks {
		res = append(res, midi.NoteOn(v.channel, key, v.velocity))
	}
	return res, nil
}

func (v Voicing) NoteOffs(c *chord.Chord) ([]midi.Message, error) {
	if err := v.validate(); err != nil {
		return nil, err
	}
	ks, err := keys(c)
	if err != nil {
		return nil, err
	}
	res := make([]midi.Message, 0, len(ks))
	for _, key := range ks {
		res = append(res, midi.NoteOff(v.channel, key))
	}
	return res, nil
}

// FromMessages replays note on/off messages and returns the chord still
// sounding at the end, spelled with sharps. Other messages are ignored.
func FromMessages(msgs []midi.Message) (*chord.Chord, error) {
	// keyed by channel and key, like a held-notes table
	pressed := make(map[uint16]bool)
	var order []uint16

	for _, msg := range msgs {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			id := uint16(ch)<<8 | uint16(key)
			if pressed[id] {
				logging.Logger().Warnf("note double pressed: %v ch=%d", key, ch)
				continue
			}
			pressed[id] = true
			order = append(order, id)
		case msg.GetNoteEnd(&ch, &key):
			id := uint16(ch)<<8 | uint16(key)
			if !pressed[id] {
				logging.Logger().Warnf("note off for unpressed note: %v ch=%d", key, ch)
				continue
			}
			delete(pressed, id)
		}
	}

	var c *chord.Chord
	for _, id := range order {
		if !pressed[id] {
			continue
		}
		n, err := note.FromKey(uint8(id))
		if err != nil {
			return nil, err
		}
		if c == nil {
			c, err = chord.New(n)
		} else {
			err = c.AddNote(n)
		}
		if err != nil {
			return nil, err
		}
		// order lists a key again if it was released and pressed again
		delete(pressed, id)
	}
	if c == nil {
		return nil, model.InvalidArgumentf("no notes sounding in %d messages", len(msgs))
	}

	logging.WithFields(logrus.Fields{"chord": c.String()}).Debug("Read chord from messages")
	return c, nil
}
