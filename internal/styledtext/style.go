package styledtext

import (
	"fmt"
	"strings"
)

// rendering attributes for one run of subtitle text
type Style struct {
	Bold      bool
	Italic    bool
	Underline bool
	Strikeout bool

	FontName     string // font family
	MonoFontName string // monospace family override
	FontSize     int    // point size, 0 = renderer default
	FontAlpha    int

	FontColor       uint32 // 0xRRGGBB
	OutlineColor    uint32
	ShadowColor     uint32
	BackgroundColor uint32

	OutlineWidth int
	ShadowWidth  int
}

// DefaultStyle returns the style used outside of any markup scope.
func DefaultStyle() Style {
	return Style{}
}

// maximal run of text sharing one style within a single cue
type Segment struct {
	Text  string
	Style Style
}

// String renders a compact summary like "bold,italic,color=#FF0000".
// The default style renders as "default".
func (s Style) String() string {
	var parts []string
	if s.Bold {
		parts = append(parts, "bold")
	}
	if s.Italic {
		parts = append(parts, "italic")
	}
	if s.Underline {
		parts = append(parts, "underline")
	}
	if s.Strikeout {
		parts = append(parts, "strikeout")
	}
	if s.FontName != "" {
		parts = append(parts, "face="+s.FontName)
	}
	if s.MonoFontName != "" {
		parts = append(parts, "family="+s.MonoFontName)
	}
	if s.FontSize != 0 {
		parts = append(parts, fmt.Sprintf("size=%d", s.FontSize))
	}
	if s.FontAlpha != 0 {
		parts = append(parts, fmt.Sprintf("alpha=%d", s.FontAlpha))
	}
	if s.FontColor != 0 {
		parts = append(parts, fmt.Sprintf("color=#%06X", s.FontColor))
	}
	if s.OutlineColor != 0 {
		parts = append(parts, fmt.Sprintf("outline-color=#%06X", s.OutlineColor))
	}
	if s.ShadowColor != 0 {
		parts = append(parts, fmt.Sprintf("shadow-color=#%06X", s.ShadowColor))
	}
	if s.BackgroundColor != 0 {
		parts = append(parts, fmt.Sprintf("back-color=#%06X", s.BackgroundColor))
	}
	if s.OutlineWidth != 0 {
		parts = append(parts, fmt.Sprintf("outline=%d", s.OutlineWidth))
	}
	if s.ShadowWidth != 0 {
		parts = append(parts, fmt.Sprintf("shadow=%d", s.ShadowWidth))
	}
	if len(parts) == 0 {
		return "default"
	}
	return strings.Join(parts, ",")
}
