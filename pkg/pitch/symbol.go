package pitch

import "fmt"

// Letter is the base letter of a musical note (C, D, E, F, G, A, B).
//
// Each letter's value is its chromatic offset from C, so letters index
// directly into the semitone scale: C=0, D=2, E=4, F=5, G=7, A=9, B=11.
// The uneven gaps encode the diatonic whole/half-step pattern.
type Letter int8

const (
	C Letter = 0
	D Letter = 2
	E Letter = 4
	F Letter = 5
	G Letter = 7
	A Letter = 9
	B Letter = 11
)

// Letters returns the seven note letters in their fixed search order.
// This order is the enharmonic tie-break policy used when spelling a pitch,
// not an incidental iteration order.
func Letters() [7]Letter {
	return [7]Letter{C, D, E, F, G, A, B}
}

// Offset returns the letter's chromatic offset from C in semitones.
func (l Letter) Offset() int {
	return int(l)
}

func (l Letter) String() string {
	switch l {
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case F:
		return "F"
	case G:
		return "G"
	case A:
		return "A"
	case B:
		return "B"
	}
	return "?"
}

// Accidental is a signed semitone adjustment applied to a letter's offset:
// DoubleFlat=-2, Flat=-1, Natural=0, Sharp=+1, DoubleSharp=+2.
type Accidental int8

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// accidentalOrder is the fixed spelling priority: naturals first, sharps
// before flats, double accidentals as a last resort.
var accidentalOrder = [5]Accidental{Natural, Sharp, Flat, DoubleSharp, DoubleFlat}

// Offset returns the accidental's semitone adjustment.
func (a Accidental) Offset() int {
	return int(a)
}

func (a Accidental) String() string {
	switch a {
	case Natural:
		return ""
	case Sharp:
		return "#"
	case Flat:
		return "b"
	case DoubleSharp:
		return "𝄪"
	case DoubleFlat:
		return "𝄫"
	}
	return "?"
}

// AccidentalFromOffset maps a semitone adjustment in -2..2 to its
// Accidental.
func AccidentalFromOffset(offset int) (Accidental, error) {
	if offset < -2 || offset > 2 {
		return Natural, fmt.Errorf("invalid semitone offset for accidental: %d", offset)
	}
	return Accidental(offset), nil
}
