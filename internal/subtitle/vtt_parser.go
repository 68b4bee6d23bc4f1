package subtitle

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
)

var (
	vttTimestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2})\.(\d{3})`,
	)
	vttShortTimestampRegex = regexp.MustCompile(
		`(\d{2}):(\d{2})\.(\d{3})\s*-->\s*(\d{2}):(\d{2})\.(\d{3})`,
	)
)

// parseVTTFile reads a WebVTT file, keeping cue payloads as raw bytes.
func parseVTTFile(path string) (*Subtitle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open VTT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var entries []Entry
	scanner := bufio.NewScanner(file)

	var currentEntry *Entry
	var textLines [][]byte
	lineNum := 0
	headerParsed := false
	entryIndex := 0

	flush := func() {
		if currentEntry != nil && len(textLines) > 0 {
			currentEntry.Raw = bytes.Join(textLines, []byte("\n"))
			entries = append(entries, *currentEntry)
			currentEntry = nil
			textLines = nil
		}
	}

	for scanner.Scan() {
		line := append([]byte(nil), scanner.Bytes()...)
		lineNum++

		if lineNum == 1 {
			line = bytes.TrimPrefix(line, utf8BOM)
		}

		if !headerParsed {
			if bytes.HasPrefix(bytes.TrimSpace(line), []byte("WEBVTT")) {
				headerParsed = true
				continue
			}
		}

		// NOTE and STYLE blocks run until a blank line
		trimmed := bytes.TrimSpace(line)
		if bytes.HasPrefix(trimmed, []byte("NOTE")) ||
			bytes.HasPrefix(trimmed, []byte("STYLE")) {
			for scanner.Scan() {
				if len(bytes.TrimSpace(scanner.Bytes())) == 0 {
					break
				}
			}
			continue
		}

		if len(trimmed) == 0 {
			flush()
			continue
		}

		matches := vttTimestampRegex.FindSubmatch(line)
		if len(matches) == 9 {
			flush()

			startTime, err := parseClockTimestamp(
				matches[1], matches[2], matches[3], matches[4],
			)
			if err != nil {
				return nil, fmt.Errorf(
					"invalid start timestamp at line %d: %w",
					lineNum,
					err,
				)
			}
			endTime, err := parseClockTimestamp(
				matches[5], matches[6], matches[7], matches[8],
			)
			if err != nil {
				return nil, fmt.Errorf(
					"invalid end timestamp at line %d: %w",
					lineNum,
					err,
				)
			}

			entryIndex++
			currentEntry = &Entry{
				Index:     entryIndex,
				StartTime: startTime,
				EndTime:   endTime,
			}
			continue
		}

		shortMatches := vttShortTimestampRegex.FindSubmatch(line)
		if len(shortMatches) == 7 {
			flush()

			zero := []byte("00")
			startTime, err := parseClockTimestamp(
				zero, shortMatches[1], shortMatches[2], shortMatches[3],
			)
			if err != nil {
				return nil, fmt.Errorf(
					"invalid start timestamp at line %d: %w",
					lineNum,
					err,
				)
			}
			endTime, err := parseClockTimestamp(
				zero, shortMatches[4], shortMatches[5], shortMatches[6],
			)
			if err != nil {
				return nil, fmt.Errorf(
					"invalid end timestamp at line %d: %w",
					lineNum,
					err,
				)
			}

			entryIndex++
			currentEntry = &Entry{
				Index:     entryIndex,
				StartTime: startTime,
				EndTime:   endTime,
			}
			continue
		}

		if currentEntry != nil {
			textLines = append(textLines, line)
		}
	}

	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading VTT file: %w", err)
	}

	return &Subtitle{Entries: entries, Format: FormatVTT}, nil
}
