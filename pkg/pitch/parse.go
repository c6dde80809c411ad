package pitch

import (
	"strconv"
	"strings"
)

// Parse parses a note name such as "C4", "A#3" or "Db5" into a Pitch.
//
// The grammar is letter, optional accidental marker, signed octave: the
// letter is case-insensitive, the accidental is "#" or "♯" for sharp and
// "b" or "♭" for flat (double accidentals are not accepted from text), and
// the octave is a signed decimal integer, so "C#-1" is MIDI 1. Total length
// is 2 to 4 characters.
func Parse(s string) (Pitch, error) {
	note, err := ParseNote(s)
	if err != nil {
		return Pitch{}, err
	}
	return note.Pitch()
}

// ParseNote parses a note name into its symbolic form, keeping the spelling
// found in the text: "Db4" stays a D-flat rather than being respelled C#.
// The grammar matches Parse. The result is not range checked; converting it
// to a Pitch or MIDI number performs that check.
func ParseNote(s string) (Note, error) {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) < 2 || len(runes) > 4 {
		return Note{}, ErrInvalidName
	}

	// The octave part starts at the first digit or minus sign.
	split := -1
	for i, r := range runes {
		if r == '-' || (r >= '0' && r <= '9') {
			split = i
			break
		}
	}
	if split < 0 {
		return Note{}, ErrInvalidOctave
	}

	octave, err := strconv.ParseInt(string(runes[split:]), 10, 8)
	if err != nil {
		return Note{}, ErrInvalidOctave
	}

	letter, accidental, err := parseNotePart(string(runes[:split]))
	if err != nil {
		return Note{}, err
	}
	return NewNote(letter, accidental, int(octave)), nil
}

// parseNotePart matches the note part against the 12 canonical spellings:
// the 7 naturals plus the sharp/flat pairs C#/Db, D#/Eb, F#/Gb, G#/Ab and
// A#/Bb. Spellings like "E#" or "Cb" that name a white key are rejected,
// matching the canonical table.
func parseNotePart(s string) (Letter, Accidental, error) {
	s = strings.ToUpper(strings.NewReplacer("♯", "#", "♭", "b").Replace(s))
	if s == "" {
		return 0, Natural, ErrInvalidName
	}

	var letter Letter
	switch s[0] {
	case 'C':
		letter = C
	case 'D':
		letter = D
	case 'E':
		letter = E
	case 'F':
		letter = F
	case 'G':
		letter = G
	case 'A':
		letter = A
	case 'B':
		letter = B
	default:
		return 0, Natural, ErrInvalidName
	}

	accidental := Natural
	switch {
	case len(s) == 1:
	case len(s) == 2 && s[1] == '#':
		accidental = Sharp
	case len(s) == 2 && s[1] == 'B':
		accidental = Flat
	default:
		return 0, Natural, ErrInvalidName
	}

	if accidental != Natural {
		// Only the five black-key spellings carry an accidental.
		semitone := (letter.Offset() + accidental.Offset() + 12) % 12
		switch semitone {
		case 1, 3, 6, 8, 10:
		default:
			return 0, Natural, ErrInvalidName
		}
	}
	return letter, accidental, nil
}
