package styledtext

// on-screen placement of a cue, one vertical and one horizontal bit
type Alignment int

const (
	AlignCenter Alignment = 0
	AlignLeft   Alignment = 0x1
	AlignRight  Alignment = 0x2
	AlignTop    Alignment = 0x4
	AlignBottom Alignment = 0x8
)

// 3x3 keypad layout used by {\anN} override codes:
//
//	7 8 9   top
//	4 5 6   middle
//	1 2 3   bottom
var (
	keypadVertical   = [3]Alignment{AlignBottom, 0, AlignTop}
	keypadHorizontal = [3]Alignment{AlignLeft, 0, AlignRight}
)

// KeypadAlignment maps a numpad digit 1-9 to its alignment bits.
func KeypadAlignment(n int) Alignment {
	if n < 1 || n > 9 {
		return AlignBottom
	}
	id := n - 1
	return keypadVertical[id/3] | keypadHorizontal[id%3]
}

func (a Alignment) String() string {
	var v, h string
	switch {
	case a&AlignTop != 0:
		v = "top"
	case a&AlignBottom != 0:
		v = "bottom"
	default:
		v = "middle"
	}
	switch {
	case a&AlignLeft != 0:
		h = "left"
	case a&AlignRight != 0:
		h = "right"
	default:
		h = "center"
	}
	return v + "-" + h
}
