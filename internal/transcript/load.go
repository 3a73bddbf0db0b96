package transcript

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads an initial transcript from a file, dispatching on the
// extension. JSON carries the native segment shape; SRT and VTT caption
// files are converted, their cue times floored to whole-second
// timecodes.
func Load(path string) ([]Segment, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json":
		return loadJSON(path)
	case ".srt":
		return parseSRTFile(path)
	case ".vtt":
		return parseVTTFile(path)
	default:
		return nil, fmt.Errorf("unsupported transcript format: %s", ext)
	}
}

func loadJSON(path string) ([]Segment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript file: %w", err)
	}

	var segments []Segment
	if err := json.Unmarshal(data, &segments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transcript JSON: %w", err)
	}

	for i := range segments {
		if segments[i].ID == "" {
			segments[i].ID = fmt.Sprintf("seg_%d", i+1)
		}
	}
	return segments, nil
}
