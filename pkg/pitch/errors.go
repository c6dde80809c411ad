package pitch

import (
	"errors"
	"fmt"
)

// Conversion errors. All failures are value-returned; the caller decides
// whether to reject the input, clamp, or retry with different input.
var (
	// ErrInvalidName means the note part of the text matches none of the
	// 12 canonical spellings (e.g. "H#4").
	ErrInvalidName = errors.New("note name is invalid or unrecognized")

	// ErrInvalidOctave means the octave part of the text is missing or
	// not a valid signed integer.
	ErrInvalidOctave = errors.New("octave portion could not be parsed")

	// ErrOutOfRange means a computed MIDI number falls outside 0-127.
	// Errors carrying a clamped boundary hint match this sentinel via
	// errors.Is.
	ErrOutOfRange = errors.New("midi number is outside the valid 0-127 range")

	// ErrMIDIOverflow means the octave and semitone could not be combined
	// into a MIDI number without overflowing the widened integer type.
	ErrMIDIOverflow = errors.New("midi number could not be computed due to numeric overflow")

	// ErrUnspelled means no letter and accidental pair reaches the
	// requested semitone. This should not occur for any semitone in 0-11
	// under the standard letter table; treat it as an internal defect
	// signal rather than bad user input.
	ErrUnspelled = errors.New("pitch could not be spelled as a standard letter and accidental")
)

// OutOfRangeError reports a MIDI number outside 0-127. Clamped holds the
// nearest valid boundary (0 or 127) as a diagnostic hint for display; it is
// not a substitute note value.
type OutOfRangeError struct {
	Clamped uint8
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("midi number is outside the valid 0-127 range (nearest: %d)", e.Clamped)
}

// Is makes errors.Is(err, ErrOutOfRange) match.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
