package subtitle

import (
	"time"
)

// represents a single cue read from a subtitle file. Raw keeps the payload
// bytes untouched so the charset pipeline sees the original encoding.
type Entry struct {
	Index     int
	StartTime time.Duration
	EndTime   time.Duration
	Raw       []byte
}

// represents a complete subtitle track
type Subtitle struct {
	Entries []Entry
	Format  Format
}

// represents supported subtitle file formats
type Format string

const (
	FormatSRT Format = "srt"
	FormatVTT Format = "vtt"
)

// represents a decoded cue ready to be written back out
type Cue struct {
	StartTime time.Duration
	EndTime   time.Duration
	Text      string
}

// interface for writing decoded cues to files
type Writer interface {
	Write(cues []Cue, path string) error
}
