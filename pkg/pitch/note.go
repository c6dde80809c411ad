package pitch

import (
	"fmt"
	"math"
	"strconv"
)

// Note is a musical note spelled with a letter, an accidental and an
// octave, e.g. C#4 or Bb2. Construction does not check the MIDI range;
// the check happens when a Pitch or MIDI number is requested.
type Note struct {
	letter     Letter
	accidental Accidental
	octave     int
}

// NewNote creates a symbolic note.
func NewNote(letter Letter, accidental Accidental, octave int) Note {
	return Note{letter: letter, accidental: accidental, octave: octave}
}

// Letter returns the note's base letter.
func (n Note) Letter() Letter {
	return n.letter
}

// Accidental returns the note's accidental.
func (n Note) Accidental() Accidental {
	return n.accidental
}

// Octave returns the note's octave per the MIDI convention (A4 = 4,
// MIDI 0 = C-1).
func (n Note) Octave() int {
	return n.octave
}

// Name returns the spelled note name, e.g. "A4" or "C#3".
func (n Note) Name() string {
	return n.letter.String() + n.accidental.String() + strconv.Itoa(n.octave)
}

func (n Note) String() string {
	return n.Name()
}

// MIDINumber computes the MIDI note number for this spelling.
// The octave and semitone are combined on a widened integer with explicit
// overflow guards, so arbitrary octave values fail with ErrMIDIOverflow
// instead of wrapping. Results outside 0-127 fail with *OutOfRangeError.
func (n Note) MIDINumber() (uint8, error) {
	oct := int64(n.octave)
	if oct < math.MinInt16 || oct > math.MaxInt16 {
		return 0, ErrMIDIOverflow
	}
	midi := (oct+1)*12 + int64(n.letter) + int64(n.accidental)
	if midi < math.MinInt16 || midi > math.MaxInt16 {
		return 0, ErrMIDIOverflow
	}
	if midi < 0 {
		return 0, &OutOfRangeError{Clamped: 0}
	}
	if midi > MaxMIDI {
		return 0, &OutOfRangeError{Clamped: MaxMIDI}
	}
	return uint8(midi), nil
}

// Pitch converts the note to its frequency via the MIDI mapping.
func (n Note) Pitch() (Pitch, error) {
	midi, err := n.MIDINumber()
	if err != nil {
		return Pitch{}, err
	}
	return FromMIDI(midi)
}

// NoteFromPitch spells a pitch as a letter, accidental and octave.
//
// The search is sharp-biased and deterministic: accidentals are tried in
// the fixed priority natural, sharp, flat, double-sharp, double-flat, and
// for each accidental the letters are tried in the fixed order C through B.
// The first pair whose combined offset equals the semitone wins, so natural
// names are preferred when exact and sharps beat flats. Every semitone in
// 0-11 has a single-accidental spelling under the standard letter table, so
// the double-accidental branches only matter if that table ever changes.
//
// Fails with *OutOfRangeError when the pitch has no MIDI number, or
// ErrUnspelled if no pair matches (an internal-consistency defect, not a
// user input error).
func NoteFromPitch(p Pitch) (Note, error) {
	midi, err := p.MIDINumber()
	if err != nil {
		return Note{}, fmt.Errorf("cannot spell pitch: %w", err)
	}
	octave := int(midi)/12 - 1
	semitone := int(midi) % 12

	for _, accidental := range accidentalOrder {
		for _, letter := range Letters() {
			if letter.Offset()+accidental.Offset() == semitone {
				return NewNote(letter, accidental, octave), nil
			}
		}
	}
	return Note{}, ErrUnspelled
}
