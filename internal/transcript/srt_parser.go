package transcript

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/karinversan/sign-flow/internal/timecode"
)

var srtTimestampRegex = regexp.MustCompile(
	`(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`,
)

// parseSRTFile converts an SRT caption file into transcript segments.
// Cue indices from the file are discarded; ids are assigned by position.
func parseSRTFile(path string) ([]Segment, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var segments []Segment
	scanner := bufio.NewScanner(file)

	var current *Segment
	var textLines []string
	sawTimes := false
	lineNum := 0

	flush := func() {
		if current != nil && len(textLines) > 0 {
			current.Text = strings.Join(textLines, "\n")
			segments = append(segments, *current)
		}
		current = nil
		textLines = nil
		sawTimes = false
	}

	for scanner.Scan() {
		line := scanner.Text()
		lineNum++

		if lineNum == 1 {
			line = strings.TrimPrefix(line, "\ufeff")
		}

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if current == nil {
			if _, err := strconv.Atoi(strings.TrimSpace(line)); err == nil {
				current = &Segment{ID: fmt.Sprintf("seg_%d", len(segments)+1)}
				continue
			}
		}

		if current != nil && !sawTimes {
			matches := srtTimestampRegex.FindStringSubmatch(line)
			if len(matches) == 9 {
				start, err := clockSeconds(matches[1], matches[2], matches[3])
				if err != nil {
					return nil, fmt.Errorf(
						"invalid start timestamp at line %d: %w", lineNum, err,
					)
				}
				end, err := clockSeconds(matches[5], matches[6], matches[7])
				if err != nil {
					return nil, fmt.Errorf(
						"invalid end timestamp at line %d: %w", lineNum, err,
					)
				}
				current.Start = timecode.Format(start)
				current.End = timecode.Format(end)
				sawTimes = true
				continue
			}
		}

		if current != nil {
			textLines = append(textLines, line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT file: %w", err)
	}
	return segments, nil
}

func clockSeconds(hours, minutes, seconds string) (float64, error) {
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(seconds)
	if err != nil {
		return 0, err
	}
	return float64(h*3600 + m*60 + s), nil
}
