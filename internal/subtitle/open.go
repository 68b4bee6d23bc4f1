package subtitle

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Open reads a subtitle file into raw cues based on its extension.
func Open(path string) (*Subtitle, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".srt":
		return parseSRTFile(path)
	case ".vtt":
		return parseVTTFile(path)
	default:
		return nil, fmt.Errorf("unsupported subtitle format: %s", ext)
	}
}
