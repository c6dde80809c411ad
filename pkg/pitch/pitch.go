// Package pitch converts between audio frequencies, MIDI note numbers and
// symbolic note names in 12-tone equal temperament referenced to A4 = 440 Hz.
//
// Pitch models a raw frequency; Note models the spelled form (letter,
// accidental, octave). Both are immutable value types and every conversion
// is a pure function, so the package is safe for concurrent use without
// synchronization.
package pitch

// ConcertA is the reference frequency in Hz for MIDI note 69 (A4).
const ConcertA = 440.0

// MaxMIDI is the highest valid MIDI note number.
const MaxMIDI = 127

// Pitch is a musical pitch represented purely by its frequency in Hertz,
// without symbolic context. For notation-aware handling see Note.
type Pitch struct {
	frequency float64
}

// New creates a pitch from a frequency in Hz. The value is not validated;
// callers are expected to supply finite, positive frequencies.
func New(frequency float64) Pitch {
	return Pitch{frequency: frequency}
}

// FromMIDI creates a pitch from a MIDI note number in 0-127.
// Numbers above 127 fail with an *OutOfRangeError.
func FromMIDI(midi uint8) (Pitch, error) {
	if midi > MaxMIDI {
		return Pitch{}, &OutOfRangeError{Clamped: MaxMIDI}
	}
	return Pitch{frequency: ConcertA * pow2((float64(midi)-69)/12)}, nil
}

// Frequency returns the frequency in Hz.
func (p Pitch) Frequency() float64 {
	return p.frequency
}

// Transpose shifts the pitch by a number of semitones. Positive values
// raise the pitch, negative values lower it; fractional semitones are
// allowed. Transposition never fails: range only matters once a MIDI
// number or name is requested from the result.
func (p Pitch) Transpose(semitones float64) Pitch {
	return Pitch{frequency: p.frequency * pow2(semitones/12)}
}

// MIDINumber returns the MIDI note number nearest to this frequency.
// If the rounded value falls outside 0-127 it returns an *OutOfRangeError
// whose Clamped field holds the nearest boundary; that hint is for display
// only and must not be treated as a valid note.
func (p Pitch) MIDINumber() (uint8, error) {
	rounded := round(69 + 12*log2(p.frequency/ConcertA))
	if rounded < 0 {
		return 0, &OutOfRangeError{Clamped: 0}
	}
	if rounded > MaxMIDI {
		return 0, &OutOfRangeError{Clamped: MaxMIDI}
	}
	return uint8(rounded), nil
}

// Octave returns the octave number per the MIDI convention: MIDI 69 (A4)
// is octave 4 and MIDI 0 (C-1) is octave -1. The second return is false
// when the frequency has no MIDI number.
func (p Pitch) Octave() (int, bool) {
	midi, err := p.MIDINumber()
	if err != nil {
		return 0, false
	}
	return int(midi)/12 - 1, true
}

// SemitoneIndex returns the semitone within the octave (0-11), or false
// when the frequency has no MIDI number.
func (p Pitch) SemitoneIndex() (int, bool) {
	midi, err := p.MIDINumber()
	if err != nil {
		return 0, false
	}
	return int(midi) % 12, true
}

// letterNames is the sharp-biased abbreviation table used by LetterName.
// Flat names only ever come from parsing explicit flat input; derivation
// always spells sharps.
var letterNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// LetterName returns the sharp-biased note name without the octave, e.g.
// "C#" for MIDI 61. The second return is false when the frequency has no
// MIDI number.
func (p Pitch) LetterName() (string, bool) {
	idx, ok := p.SemitoneIndex()
	if !ok {
		return "", false
	}
	return letterNames[idx], true
}

// Note spells this pitch as a letter, accidental and octave using
// sharp-biased spelling. See NoteFromPitch for the spelling policy.
func (p Pitch) Note() (Note, error) {
	return NoteFromPitch(p)
}
