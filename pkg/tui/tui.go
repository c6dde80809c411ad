// Package tui provides a terminal user interface for pitch2midi
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/james-see/pitch2midi/pkg/pitch"
)

// Synth-panel color scheme
var (
	panelCyan  = lipgloss.Color("#00E5FF")
	panelAmber = lipgloss.Color("#FFBF00")
	silverGray = lipgloss.Color("#C0C0C0")
	darkGray   = lipgloss.Color("#333333")

	// Styles
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(panelCyan).
			Background(darkGray).
			Padding(0, 2).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(silverGray)

	valueStyle = lipgloss.NewStyle().
			Foreground(panelCyan).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(panelAmber)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(panelCyan).
			Padding(1, 2)
)

// Model represents the TUI model
type Model struct {
	input  textinput.Model
	width  int
	height int
}

// New creates a new TUI model
func New() Model {
	ti := textinput.New()
	ti.Placeholder = `note name ("C#4"), MIDI number ("69") or frequency ("440hz")`
	ti.CharLimit = 16
	ti.Width = 40
	ti.Focus()

	return Model{input: ti}
}

// Init initializes the TUI model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles TUI updates
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render(" PITCH CONVERTER "))
	s.WriteString("\n\n")
	s.WriteString(m.input.View())
	s.WriteString("\n\n")
	s.WriteString(m.viewConversion())
	s.WriteString("\n")
	s.WriteString(helpStyle.Render("type to convert • esc: quit"))

	return boxStyle.Render(s.String())
}

func (m Model) viewConversion() string {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return hintStyle.Render("waiting for input...")
	}

	p, description, err := resolve(raw)
	if err != nil {
		return errorStyle.Render(fmt.Sprintf("✗ %s", err))
	}

	var s strings.Builder
	s.WriteString(hintStyle.Render(description))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("Frequency:"),
		valueStyle.Render(fmt.Sprintf("%.3f Hz", p.Frequency()))))

	midi, err := p.MIDINumber()
	if err != nil {
		var oor *pitch.OutOfRangeError
		if errors.As(err, &oor) {
			s.WriteString(errorStyle.Render(
				fmt.Sprintf("outside the MIDI range (nearest: %d)", oor.Clamped)))
		} else {
			s.WriteString(errorStyle.Render(err.Error()))
		}
		return s.String()
	}
	s.WriteString(fmt.Sprintf("%s %s\n",
		labelStyle.Render("MIDI:     "),
		valueStyle.Render(strconv.Itoa(int(midi)))))

	if note, err := p.Note(); err == nil {
		s.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Name:     "),
			valueStyle.Render(note.Name())))
	}
	if octave, ok := p.Octave(); ok {
		s.WriteString(fmt.Sprintf("%s %s\n",
			labelStyle.Render("Octave:   "),
			valueStyle.Render(strconv.Itoa(octave))))
	}
	return s.String()
}

// resolve turns free-form input into a pitch, guessing the input kind the
// same way the convert command does.
func resolve(raw string) (pitch.Pitch, string, error) {
	switch pitch.DetectInput(raw) {
	case pitch.InputNote:
		p, err := pitch.Parse(raw)
		if err != nil {
			return pitch.Pitch{}, "", err
		}
		return p, "note name", nil

	case pitch.InputMIDI:
		v := strings.TrimSpace(strings.TrimPrefix(strings.ToLower(raw), "midi:"))
		number, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return pitch.Pitch{}, "", err
		}
		p, err := pitch.FromMIDI(uint8(number))
		if err != nil {
			return pitch.Pitch{}, "", err
		}
		return p, "midi number", nil

	case pitch.InputFrequency:
		v := strings.TrimSpace(strings.TrimSuffix(strings.ToLower(raw), "hz"))
		hz, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pitch.Pitch{}, "", err
		}
		if hz <= 0 {
			return pitch.Pitch{}, "", fmt.Errorf("frequency must be positive")
		}
		return pitch.New(hz), "frequency", nil
	}
	return pitch.Pitch{}, "", fmt.Errorf("cannot tell what %q is", raw)
}

// Run starts the TUI application
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
