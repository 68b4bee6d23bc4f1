package styledtext

import (
	"strconv"
	"strings"
)

// closing tags that pop a style scope, matched as a case-insensitive prefix
var closableTags = [...]string{"b", "i", "u", "s", "font"}

// Parse scans a decoded UTF-8 subtitle line in a single left-to-right pass
// and splits it into styled segments at every markup boundary. Unrecognized
// markup degrades to literal text. The returned alignment is defaultAlign
// unless the line carries a {\anN} override; only the first override in a
// line is honored.
//
// The result always contains at least one segment.
func Parse(text string, defaultAlign Alignment) ([]Segment, Alignment) {
	p := parser{src: text, style: DefaultStyle(), align: defaultAlign}
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case '<':
			p.scanTag()
		case '{':
			p.scanBrace()
		default:
			p.literal()
		}
	}
	p.seal(DefaultStyle())
	return p.segments, p.align
}

type parser struct {
	src      string
	pos      int
	segments []Segment
	text     strings.Builder
	style    Style
	stack    styleStack
	align    Alignment
	alignSet bool
}

// literal appends the byte at the cursor to the current segment.
func (p *parser) literal() {
	p.text.WriteByte(p.src[p.pos])
	p.pos++
}

// seal finishes the segment under construction and starts a new one with
// the given style.
func (p *parser) seal(next Style) {
	p.segments = append(p.segments, Segment{Text: p.text.String(), Style: p.style})
	p.text.Reset()
	p.style = next
}

// open pushes a new style scope and starts the segment that owns it.
func (p *parser) open(modify func(*Style)) {
	p.seal(p.stack.Push(modify))
}

func (p *parser) scanTag() {
	rest := p.src[p.pos:]
	switch {
	case hasPrefixFold(rest, "<br/>"):
		p.text.WriteByte('\n')
		p.pos += len("<br/>")
	case hasPrefixFold(rest, "<b>"):
		p.open(func(s *Style) { s.Bold = true })
		p.pos += len("<b>")
	case hasPrefixFold(rest, "<i>"):
		p.open(func(s *Style) { s.Italic = true })
		p.pos += len("<i>")
	case hasPrefixFold(rest, "<u>"):
		p.open(func(s *Style) { s.Underline = true })
		p.pos += len("<u>")
	case hasPrefixFold(rest, "<s>"):
		p.open(func(s *Style) { s.Strikeout = true })
		p.pos += len("<s>")
	case hasPrefixFold(rest, "<font "):
		p.pos += len("<font ")
		attrs := p.consumeAttributes()
		p.open(func(s *Style) { applyFontAttributes(s, attrs) })
	case strings.HasPrefix(rest, "</"):
		p.scanClosingTag()
	default:
		// unknown tag: emit the '<' and let the rest rescan as plain text
		p.literal()
	}
}

func (p *parser) scanClosingTag() {
	s, i := p.src, p.pos
	var name string
	next := len(s)
	if end := strings.IndexByte(s[i:], '>'); end >= 0 {
		name = s[i+2 : i+end]
		next = i + end + 1
	} else {
		name = s[i+2:]
	}
	for _, tag := range closableTags {
		if len(name) <= len(tag) && strings.EqualFold(tag[:len(name)], name) {
			p.seal(p.stack.Pop())
			p.pos = next
			return
		}
	}
	// closing tag we never opened a scope for: keep it as literal text
	p.literal()
}

type fontAttr struct {
	name  string
	value string
}

// consumeAttributes reads the whitespace-separated name=value list of a
// <font ...> tag and leaves the cursor one past the tag terminator. The
// cursor always reaches the terminator, even when attributes are malformed.
func (p *parser) consumeAttributes() []fontAttr {
	var attrs []fontAttr
	for {
		name, value, ok := p.consumeAttribute()
		if !ok {
			break
		}
		attrs = append(attrs, fontAttr{name: name, value: value})
	}
	if end := strings.IndexByte(p.src[p.pos:], '>'); end >= 0 {
		p.pos += end + 1
	} else {
		p.pos = len(p.src)
	}
	return attrs
}

func (p *parser) consumeAttribute() (name, value string, ok bool) {
	s, i := p.src, p.pos
	for i < len(s) && s[i] == ' ' {
		i++
	}
	start := i
	for i < len(s) && isAttrNameByte(s[i]) {
		i++
	}
	if i == start || i >= len(s) {
		p.pos = i
		return "", "", false
	}
	name = s[start:i]
	for i < len(s) && s[i] != '=' && s[i] != '>' {
		i++
	}
	if i >= len(s) || s[i] == '>' {
		p.pos = i
		return "", "", false
	}
	i++ // past '='
	for i < len(s) && isSpaceByte(s[i]) {
		i++
	}
	var quote byte
	if i < len(s) && (s[i] == '\'' || s[i] == '"') {
		quote = s[i]
		i++
	}
	vstart := i
	if quote != 0 {
		for i < len(s) && s[i] != quote {
			i++
		}
		if i >= len(s) {
			p.pos = i
			return "", "", false
		}
		value = s[vstart:i]
		i++ // past closing quote
	} else {
		for i < len(s) && !isSpaceByte(s[i]) && s[i] != '>' && s[i] != '/' {
			i++
		}
		value = s[vstart:i]
	}
	p.pos = i
	return name, value, true
}

func applyFontAttributes(st *Style, attrs []fontAttr) {
	for _, a := range attrs {
		switch strings.ToLower(a.name) {
		case "face":
			st.FontName = a.value
		case "family":
			st.MonoFontName = a.value
		case "size":
			if n, err := strconv.Atoi(a.value); err == nil {
				st.FontSize = n
			}
		case "color":
			st.FontColor = LookupColor(a.value)
		case "outline-color":
			st.OutlineColor = LookupColor(a.value)
		case "shadow-color":
			st.ShadowColor = LookupColor(a.value)
		case "back-color":
			st.BackgroundColor = LookupColor(a.value)
		case "outline-level":
			if n, err := strconv.Atoi(a.value); err == nil {
				st.OutlineWidth = n
			}
		case "shadow-level":
			if n, err := strconv.Atoi(a.value); err == nil {
				st.ShadowWidth = n
			}
		case "alpha":
			if n, err := strconv.Atoi(a.value); err == nil {
				st.FontAlpha = n
			}
		}
		// unrecognized attribute names are ignored
	}
}

func (p *parser) scanBrace() {
	s, i := p.src, p.pos
	end := strings.IndexByte(s[i:], '}')
	if end < 0 {
		// no closing brace, not a directive
		p.literal()
		return
	}
	closing := i + end   // index of '}'
	after := closing + 1 // one past it
	switch {
	case i+1 < len(s) && s[i+1] == '\\':
		// {\...} override block; only the first {\anN} has an effect
		if !p.alignSet && closing == i+5 &&
			s[i+2] == 'a' && s[i+3] == 'n' &&
			s[i+4] >= '1' && s[i+4] <= '9' {
			p.align = KeypadAlignment(int(s[i+4] - '0'))
			p.alignSet = true
		}
		p.pos = after
	case i+2 < len(s) && (s[i+1] == 'Y' || s[i+1] == 'y') && s[i+2] == ':':
		// {Y:ibu} style directive: each flag opens its own scope
		for j := i + 3; j < closing; j++ {
			switch s[j] {
			case 'i':
				p.open(func(st *Style) { st.Italic = true })
			case 'b':
				p.open(func(st *Style) { st.Bold = true })
			case 'u':
				p.open(func(st *Style) { st.Underline = true })
			}
		}
		p.pos = after
	case i+2 < len(s) && s[i+2] == ':':
		// opaque {x:...} directive like {c:$bbggrr}, discarded
		p.pos = after
	default:
		p.literal()
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func isAttrNameByte(b byte) bool {
	return b == '-' || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t'
}
