package transcript

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/karinversan/sign-flow/internal/timecode"
)

var (
	vttTimestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})\.(\d{3})`,
	)
	vttShortTimestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2})\.(\d{3})`,
	)
)

// parseVTTFile converts a WebVTT caption file into transcript segments.
// NOTE and STYLE blocks are skipped; cue identifiers are discarded and
// ids are assigned by position.
func parseVTTFile(path string) ([]Segment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open VTT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var segments []Segment
	scanner := bufio.NewScanner(file)

	var current *Segment
	var textLines []string
	lineNum := 0

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Text = strings.Join(textLines, "\n")
			segments = append(segments, *current)
		}
		current = nil
		textLines = nil
	}

	startCue := func(startH, startM, startS, endH, endM, endS string) error {
		flush()
		start, err := clockSeconds(startH, startM, startS)
		if err != nil {
			return fmt.Errorf("invalid start timestamp at line %d: %w", lineNum, err)
		}
		end, err := clockSeconds(endH, endM, endS)
		if err != nil {
			return fmt.Errorf("invalid end timestamp at line %d: %w", lineNum, err)
		}
		current = &Segment{
			ID:    fmt.Sprintf("seg_%d", len(segments)+1),
			Start: timecode.Format(start),
			End:   timecode.Format(end),
		}
		return nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "WEBVTT") {
			continue
		}

		if strings.HasPrefix(trimmed, "NOTE") || strings.HasPrefix(trimmed, "STYLE") {
			for scanner.Scan() {
				lineNum++
				if strings.TrimSpace(scanner.Text()) == "" {
					break
				}
			}
			continue
		}

		if trimmed == "" {
			flush()
			continue
		}

		if matches := vttTimestampRegex.FindStringSubmatch(line); len(matches) == 9 {
			err := startCue(
				matches[1], matches[2], matches[3],
				matches[5], matches[6], matches[7],
			)
			if err != nil {
				return nil, err
			}
			continue
		}

		if matches := vttShortTimestampRegex.FindStringSubmatch(line); len(matches) == 7 {
			err := startCue(
				"00", matches[1], matches[2],
				"00", matches[4], matches[5],
			)
			if err != nil {
				return nil, err
			}
			continue
		}

		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading VTT file: %w", err)
	}
	return segments, nil
}
