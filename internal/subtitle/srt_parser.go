package subtitle

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"time"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var srtTimestampRegex = regexp.MustCompile(
	`(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`,
)

// parseSRTFile reads an SRT file without assuming a text encoding: the cue
// structure (indices, timestamps, separators) is plain ASCII while cue text
// is carried as raw bytes for the decoder to convert.
func parseSRTFile(path string) (*Subtitle, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	var entries []Entry
	scanner := bufio.NewScanner(file)

	var currentEntry *Entry
	var textLines [][]byte
	lineNum := 0

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

		if len(bytes.TrimSpace(line)) == 0 {
			flush()
			continue
		}

		if currentEntry == nil {
			index, err := strconv.Atoi(string(bytes.TrimSpace(line)))
			if err == nil {
				currentEntry = &Entry{Index: index}
				continue
			}
		}

		if currentEntry != nil && currentEntry.StartTime == 0 &&
			currentEntry.EndTime == 0 {
			matches := srtTimestampRegex.FindSubmatch(line)
			if len(matches) == 9 {
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
				currentEntry.StartTime = startTime
				currentEntry.EndTime = endTime
				continue
			}
		}

		if currentEntry != nil {
			textLines = append(textLines, line)
		}
	}

	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading SRT file: %w", err)
	}

	return &Subtitle{Entries: entries, Format: FormatSRT}, nil
}

func parseClockTimestamp(
	hours, minutes, seconds, millis []byte,
) (time.Duration, error) {
	h, err := strconv.Atoi(string(hours))
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(string(minutes))
	if err != nil {
		return 0, err
	}
	s, err := strconv.Atoi(string(seconds))
	if err != nil {
		return 0, err
	}
	ms, err := strconv.Atoi(string(millis))
	if err != nil {
		return 0, err
	}

	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(ms)*time.Millisecond, nil
}
