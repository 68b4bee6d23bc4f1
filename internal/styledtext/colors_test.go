package styledtext

import "testing"

func TestLookupColor(t *testing.T) {
	tests := []struct {
		name string
		want uint32
	}{
		{"red", 0xFF0000},
		{"Red", 0xFF0000},
		{"RED", 0xFF0000},
		{"black", 0x000000},
		{"white", 0xFFFFFF},
		{"cornflowerblue", 0x6495ED},
		{"darkgray", 0xA9A9A9},
		{"darkgrey", 0xA9A9A9},
		{"notacolor", 0},
		{"", 0},
	}
	for _, tt := range tests {
		if got := LookupColor(tt.name); got != tt.want {
			t.Errorf("LookupColor(%q): got %#06X, want %#06X", tt.name, got, tt.want)
		}
	}
}
