// Package api provides the REST API server for pitch2midi
package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/james-see/pitch2midi/pkg/pitch"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Pitch2MIDI API
// @version 1.0
// @description API for converting between note names, MIDI numbers and frequencies
// @host localhost:8080
// @BasePath /api/v1

// PitchResponse describes one pitch in all three representations.
type PitchResponse struct {
	Name      string  `json:"name"`
	MIDI      uint8   `json:"midi"`
	Frequency float64 `json:"frequency"`
	Octave    int     `json:"octave"`
}

// NewRouter builds the gin router with all routes registered.
func NewRouter() *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(corsMiddleware())

	// Health check
	r.GET("/health", healthCheck)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.GET("/health", healthCheck)
		v1.GET("/note/:name", handleNote)
		v1.GET("/midi/:number", handleMIDI)
		v1.GET("/frequency/:hz", handleFrequency)
		v1.GET("/transpose", handleTranspose)
		v1.GET("/notes", listNotes)
	}

	// Swagger docs
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// StartServer starts the API server on the specified port
func StartServer(port int) error {
	return NewRouter().Run(fmt.Sprintf(":%d", port))
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// healthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "pitch2midi",
	})
}

// handleNote godoc
// @Summary Convert a note name
// @Description Parses a note name like C#4 and returns frequency, MIDI number and octave
// @Tags convert
// @Produce json
// @Param name path string true "Note name, e.g. C#4 or Db5"
// @Success 200 {object} PitchResponse
// @Failure 422 {object} map[string]string
// @Router /api/v1/note/{name} [get]
func handleNote(c *gin.Context) {
	p, err := pitch.Parse(c.Param("name"))
	if err != nil {
		conversionError(c, err)
		return
	}
	respondPitch(c, p)
}

// handleMIDI godoc
// @Summary Convert a MIDI number
// @Description Returns frequency, name and octave for a MIDI note number
// @Tags convert
// @Produce json
// @Param number path int true "MIDI note number 0-127"
// @Success 200 {object} PitchResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/midi/{number} [get]
func handleMIDI(c *gin.Context) {
	number, err := strconv.ParseUint(c.Param("number"), 10, 8)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "midi number must be an integer 0-255"})
		return
	}
	p, err := pitch.FromMIDI(uint8(number))
	if err != nil {
		conversionError(c, err)
		return
	}
	respondPitch(c, p)
}

// handleFrequency godoc
// @Summary Convert a frequency
// @Description Returns the nearest MIDI number, name and octave for a frequency in Hz
// @Tags convert
// @Produce json
// @Param hz path number true "Frequency in Hz"
// @Success 200 {object} PitchResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/frequency/{hz} [get]
func handleFrequency(c *gin.Context) {
	hz, err := strconv.ParseFloat(c.Param("hz"), 64)
	if err != nil || hz <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "frequency must be a positive number"})
		return
	}
	respondPitch(c, pitch.New(hz))
}

// handleTranspose godoc
// @Summary Transpose a note
// @Description Transposes a note name by a number of semitones (fractional allowed)
// @Tags convert
// @Produce json
// @Param from query string true "Note name to transpose"
// @Param semitones query number true "Semitones to shift by"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /api/v1/transpose [get]
func handleTranspose(c *gin.Context) {
	from := c.Query("from")
	semitones, err := strconv.ParseFloat(c.Query("semitones"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "semitones must be a number"})
		return
	}

	p, err := pitch.Parse(from)
	if err != nil {
		conversionError(c, err)
		return
	}
	shifted := p.Transpose(semitones)

	result := gin.H{
		"from":      from,
		"semitones": semitones,
		"frequency": shifted.Frequency(),
	}
	// The transposed frequency may land outside the MIDI range; the
	// frequency is still reported, the symbolic fields just go missing.
	if midi, err := shifted.MIDINumber(); err == nil {
		result["midi"] = midi
		if note, err := shifted.Note(); err == nil {
			result["name"] = note.Name()
		}
	}
	c.JSON(http.StatusOK, result)
}

// listNotes godoc
// @Summary List all MIDI notes
// @Description Returns the full 128-entry table of MIDI numbers, names and frequencies
// @Tags info
// @Produce json
// @Success 200 {object} map[string][]PitchResponse
// @Router /api/v1/notes [get]
func listNotes(c *gin.Context) {
	notes := make([]PitchResponse, 0, 128)
	for midi := 0; midi <= 127; midi++ {
		p, err := pitch.FromMIDI(uint8(midi))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		note, err := p.Note()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		notes = append(notes, PitchResponse{
			Name:      note.Name(),
			MIDI:      uint8(midi),
			Frequency: p.Frequency(),
			Octave:    note.Octave(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"notes": notes})
}

func respondPitch(c *gin.Context, p pitch.Pitch) {
	midi, err := p.MIDINumber()
	if err != nil {
		conversionError(c, err)
		return
	}
	note, err := p.Note()
	if err != nil {
		conversionError(c, err)
		return
	}
	c.JSON(http.StatusOK, PitchResponse{
		Name:      note.Name(),
		MIDI:      midi,
		Frequency: p.Frequency(),
		Octave:    note.Octave(),
	})
}

// conversionError maps pitch errors onto HTTP responses. Out-of-range
// errors include the clamped boundary so clients can show a pinned display
// value without treating it as a real note.
func conversionError(c *gin.Context, err error) {
	var oor *pitch.OutOfRangeError
	if errors.As(err, &oor) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   err.Error(),
			"clamped": oor.Clamped,
		})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}
