// Package ffmpeg locates the ffmpeg and ffprobe executables.
package ffmpeg

import (
	"fmt"
	"os"
	"os/exec"
)

// FFmpegPath returns the ffmpeg executable, honoring SUBDEC_FFMPEG_PATH
// before falling back to PATH.
func FFmpegPath() (string, error) {
	return find("ffmpeg", "SUBDEC_FFMPEG_PATH")
}

// FFprobePath returns the ffprobe executable, honoring SUBDEC_FFPROBE_PATH
// before falling back to PATH.
func FFprobePath() (string, error) {
	return find("ffprobe", "SUBDEC_FFPROBE_PATH")
}

func find(name, envVar string) (string, error) {
	if path := os.Getenv(envVar); path != "" {
		return path, nil
	}
	if found, err := exec.LookPath(name); err == nil {
		return found, nil
	}
	return "", fmt.Errorf("%s not found: install it or set %s", name, envVar)
}
