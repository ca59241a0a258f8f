package converter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/james-see/drummap2notes/pkg/drummap"
)

const percussionChannel = 9 // GM drum channel

// PreviewWriter renders a drum map as a Standard MIDI File with one hit
// per mapped note, so a map can be audited in any sequencer.
type PreviewWriter struct {
	ticksPerQuarter uint16
	tempo           float64
}

// NewPreviewWriter creates a preview writer with default timing
func NewPreviewWriter() *PreviewWriter {
	return &PreviewWriter{
		ticksPerQuarter: 480,
		tempo:           120.0,
	}
}

// Generate creates SMF data hitting each note of the map once, a 16th
// note apart, in resolver order. Note identifiers that are not valid
// MIDI note numbers (0-127) are skipped.
func (p *PreviewWriter) Generate(m *drummap.DrumMap, grouped bool) ([]byte, error) {
	if m == nil {
		return nil, errors.New("nil drum map")
	}

	order, err := m.ResolveOrder(grouped)
	if err != nil {
		return nil, err
	}

	s := smf.New()
	s.TimeFormat = smf.MetricTicks(p.ticksPerQuarter)

	var track smf.Track

	// Tempo meta event
	microsecondsPerBeat := uint32(60000000.0 / p.tempo)
	track.Add(0, smf.Message([]byte{
		0xFF, 0x51, 0x03,
		byte(microsecondsPerBeat >> 16),
		byte(microsecondsPerBeat >> 8),
		byte(microsecondsPerBeat),
	}))

	// Time signature (4/4)
	track.Add(0, smf.Message([]byte{0xFF, 0x58, 0x04, 0x04, 0x02, 0x18, 0x08}))

	ticksPerStep := uint32(p.ticksPerQuarter) / 4
	noteLength := (ticksPerStep * 3) / 4

	var delta uint32
	for _, note := range order {
		key, err := strconv.Atoi(note)
		if err != nil || key < 0 || key > 127 {
			continue
		}

		track.Add(delta, midi.NoteOn(percussionChannel, uint8(key), 100))
		track.Add(noteLength, midi.NoteOff(percussionChannel, uint8(key)))
		delta = ticksPerStep - noteLength
	}

	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, fmt.Errorf("failed to add track: %w", err)
	}

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write MIDI: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateFile reads a .drm file and writes its preview SMF to filename
func (p *PreviewWriter) GenerateFile(inputPath, outputPath string, grouped bool) error {
	m, err := drummap.ParseFile(inputPath)
	if err != nil {
		return err
	}
	data, err := p.Generate(m, grouped)
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0644)
}
