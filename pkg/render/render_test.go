package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/james-see/pitch2midi/pkg/pitch"
	"gitlab.com/gomidi/midi/v2/smf"
)

func TestRenderProducesSMF(t *testing.T) {
	data, err := Render([]string{"C4", "E4", "G4"}, 120)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("MThd")) {
		t.Fatal("Render() output missing MThd header")
	}
}

func TestRenderNoteNumbers(t *testing.T) {
	names := []string{"C4", "D#4", "A4", "G9"}
	wantKeys := []uint8{60, 63, 69, 127}

	data, err := Render(names, 100)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("generated SMF does not parse: %v", err)
	}
	if len(s.Tracks) != 1 {
		t.Fatalf("got %d tracks, want 1", len(s.Tracks))
	}

	var keys []uint8
	for _, ev := range s.Tracks[0] {
		msg := ev.Message
		// Note On: 0x9n key velocity, with velocity > 0
		if len(msg) >= 3 && msg[0] >= 0x90 && msg[0] <= 0x9F && msg[2] > 0 {
			keys = append(keys, msg[1])
		}
	}

	if len(keys) != len(wantKeys) {
		t.Fatalf("got %d note-on events, want %d", len(keys), len(wantKeys))
	}
	for i, want := range wantKeys {
		if keys[i] != want {
			t.Errorf("note %d = %d, want %d", i, keys[i], want)
		}
	}
}

func TestRenderErrors(t *testing.T) {
	tests := []struct {
		name  string
		notes []string
		want  error
	}{
		{"empty input", nil, nil},
		{"bad name", []string{"C4", "H#4"}, pitch.ErrInvalidName},
		{"out of range", []string{"A9"}, pitch.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.notes, 120)
			if err == nil {
				t.Fatal("Render() error = nil, want error")
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("Render() error = %v, want %v", err, tt.want)
			}
		})
	}
}
