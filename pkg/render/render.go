// Package render turns sequences of note names into Standard MIDI Files.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/james-see/pitch2midi/pkg/pitch"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 480
	defaultTempo    = 120.0
	defaultVelocity = 100
)

// Render writes the named notes as consecutive quarter notes on channel 0
// of a single-track SMF. Notes play at 75% of the step for separation.
// Any unparseable or out-of-range name fails the whole render.
func Render(names []string, tempo float64) ([]byte, error) {
	if len(names) == 0 {
		return nil, errors.New("no notes to render")
	}
	if tempo <= 0 {
		tempo = defaultTempo
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var track smf.Track

	// Tempo meta event (FF 51 03, microseconds per beat)
	microsecondsPerBeat := uint32(60000000.0 / tempo)
	track.Add(0, smf.Message([]byte{
		0xFF, 0x51, 0x03,
		byte(microsecondsPerBeat >> 16),
		byte(microsecondsPerBeat >> 8),
		byte(microsecondsPerBeat),
	}))

	// Time signature (4/4)
	track.Add(0, smf.Message([]byte{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08}))

	channel := uint8(0)
	noteLength := uint32(ticksPerQuarter * 3 / 4)
	gap := uint32(ticksPerQuarter) - noteLength

	delta := uint32(0)
	for _, name := range names {
		p, err := pitch.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("cannot render %q: %w", name, err)
		}
		key, err := p.MIDINumber()
		if err != nil {
			return nil, fmt.Errorf("cannot render %q: %w", name, err)
		}

		track.Add(delta, midi.NoteOn(channel, key, defaultVelocity))
		track.Add(noteLength, midi.NoteOff(channel, key))
		delta = gap
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile renders the notes and writes the result to filename.
func WriteFile(names []string, tempo float64, filename string) error {
	data, err := Render(names, tempo)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}
