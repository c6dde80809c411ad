package pitch

import (
	"strconv"
	"strings"
)

// InputKind classifies free-form user input for the auto-detecting surfaces
// (the convert command and the TUI).
type InputKind string

const (
	InputNote      InputKind = "note"
	InputMIDI      InputKind = "midi"
	InputFrequency InputKind = "frequency"
	InputUnknown   InputKind = "unknown"
)

// DetectInput guesses what a piece of user input denotes.
//
// A "hz" suffix or a decimal point marks a frequency, a "midi:" prefix or a
// bare non-negative integer marks a MIDI number, and anything starting with
// a note letter is treated as a note name. The classification is a guess;
// the actual conversion still validates the value.
func DetectInput(s string) InputKind {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return InputUnknown
	}

	if v, ok := strings.CutSuffix(s, "hz"); ok {
		if _, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return InputFrequency
		}
		return InputUnknown
	}
	if v, ok := strings.CutPrefix(s, "midi:"); ok {
		if _, err := strconv.ParseUint(strings.TrimSpace(v), 10, 8); err == nil {
			return InputMIDI
		}
		return InputUnknown
	}
	if _, err := strconv.ParseUint(s, 10, 8); err == nil {
		return InputMIDI
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return InputFrequency
	}
	switch s[0] {
	case 'a', 'b', 'c', 'd', 'e', 'f', 'g':
		return InputNote
	}
	return InputUnknown
}
