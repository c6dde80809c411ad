// Package main is the entry point for the pitch2midi CLI
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/james-see/pitch2midi/pkg/api"
	"github.com/james-see/pitch2midi/pkg/pitch"
	"github.com/james-see/pitch2midi/pkg/render"
	"github.com/james-see/pitch2midi/pkg/tui"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFile string
	tempo      float64
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pitch2midi",
	Short: "Convert between note names, MIDI numbers and frequencies",
	Long: `pitch2midi translates between the three representations of musical
pitch: symbolic note names (like "C#4"), MIDI note numbers (0-127) and
frequencies in Hz, using 12-tone equal temperament with A4 = 440 Hz.

Examples:
  pitch2midi note C#4
  pitch2midi midi 69
  pitch2midi freq 440
  pitch2midi transpose C4 2
  pitch2midi convert 440hz
  pitch2midi render C4 E4 G4 -o chord.mid
  pitch2midi table
  pitch2midi tui
  pitch2midi serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var noteCmd = &cobra.Command{
	Use:   "note <name>",
	Short: "Convert a note name to frequency and MIDI number",
	Args:  cobra.ExactArgs(1),
	RunE:  runNote,
}

var midiCmd = &cobra.Command{
	Use:   "midi <number>",
	Short: "Convert a MIDI number to frequency and note name",
	Args:  cobra.ExactArgs(1),
	RunE:  runMIDI,
}

var freqCmd = &cobra.Command{
	Use:   "freq <hz>",
	Short: "Convert a frequency to MIDI number and note name",
	Args:  cobra.ExactArgs(1),
	RunE:  runFreq,
}

var transposeCmd = &cobra.Command{
	Use:   "transpose <name> <semitones>",
	Short: "Transpose a note by semitones (fractional allowed)",
	Args:  cobra.ExactArgs(2),
	RunE:  runTranspose,
}

var convertCmd = &cobra.Command{
	Use:   "convert <input>",
	Short: "Auto-detect the input kind and convert",
	Long:  `Detects whether the input is a note name, a MIDI number or a frequency ("440hz" or "261.63") and prints the other representations.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the full 128-note MIDI table",
	RunE:  runTable,
}

var renderCmd = &cobra.Command{
	Use:   "render <notes...>",
	Short: "Write note names as a Standard MIDI File",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRender,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return tui.Run()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("Starting API server on port %d...\n", serverPort)
		return api.StartServer(serverPort)
	},
}

func init() {
	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path (required)")
	renderCmd.Flags().Float64VarP(&tempo, "tempo", "t", 120, "Tempo in beats per minute")
	_ = renderCmd.MarkFlagRequired("output")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(noteCmd)
	rootCmd.AddCommand(midiCmd)
	rootCmd.AddCommand(freqCmd)
	rootCmd.AddCommand(transposeCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func runNote(cmd *cobra.Command, args []string) error {
	p, err := pitch.Parse(args[0])
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", args[0], err)
	}
	printPitch(p)
	return nil
}

func runMIDI(cmd *cobra.Command, args []string) error {
	number, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return fmt.Errorf("midi number must be an integer 0-255: %q", args[0])
	}
	p, err := pitch.FromMIDI(uint8(number))
	if err != nil {
		return err
	}
	printPitch(p)
	return nil
}

func runFreq(cmd *cobra.Command, args []string) error {
	hz, err := strconv.ParseFloat(args[0], 64)
	if err != nil || hz <= 0 {
		return fmt.Errorf("frequency must be a positive number: %q", args[0])
	}
	printPitch(pitch.New(hz))
	return nil
}

func runTranspose(cmd *cobra.Command, args []string) error {
	semitones, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("semitones must be a number: %q", args[1])
	}
	p, err := pitch.Parse(args[0])
	if err != nil {
		return fmt.Errorf("cannot parse %q: %w", args[0], err)
	}

	shifted := p.Transpose(semitones)
	fmt.Printf("%s %+g semitones:\n", args[0], semitones)
	printPitch(shifted)
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]
	switch pitch.DetectInput(input) {
	case pitch.InputNote:
		return runNote(cmd, []string{input})
	case pitch.InputMIDI:
		v := strings.TrimPrefix(strings.ToLower(input), "midi:")
		return runMIDI(cmd, []string{strings.TrimSpace(v)})
	case pitch.InputFrequency:
		v := strings.TrimSuffix(strings.ToLower(input), "hz")
		return runFreq(cmd, []string{strings.TrimSpace(v)})
	}
	return fmt.Errorf("cannot tell what %q is (try C#4, 69 or 440hz)", input)
}

func runTable(cmd *cobra.Command, args []string) error {
	fmt.Println("MIDI  Name   Frequency")
	for midi := 0; midi <= 127; midi++ {
		p, err := pitch.FromMIDI(uint8(midi))
		if err != nil {
			return err
		}
		note, err := p.Note()
		if err != nil {
			return err
		}
		fmt.Printf("%4d  %-5s  %10.3f Hz\n", midi, note.Name(), p.Frequency())
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := render.WriteFile(args, tempo, outputFile); err != nil {
		return err
	}
	fmt.Printf("Wrote %d notes -> %s\n", len(args), outputFile)
	return nil
}

// printPitch prints every representation the pitch supports. Out-of-range
// pitches still show their frequency plus the clamped hint.
func printPitch(p pitch.Pitch) {
	fmt.Printf("Frequency: %.3f Hz\n", p.Frequency())

	midi, err := p.MIDINumber()
	if err != nil {
		var oor *pitch.OutOfRangeError
		if errors.As(err, &oor) {
			fmt.Printf("MIDI:      outside 0-127 (nearest: %d)\n", oor.Clamped)
		} else {
			fmt.Printf("MIDI:      %v\n", err)
		}
		return
	}
	fmt.Printf("MIDI:      %d\n", midi)

	if note, err := p.Note(); err == nil {
		fmt.Printf("Name:      %s\n", note.Name())
	}
	if octave, ok := p.Octave(); ok {
		fmt.Printf("Octave:    %d\n", octave)
	}
}
