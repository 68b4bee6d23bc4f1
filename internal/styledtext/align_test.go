package styledtext

import "testing"

func TestKeypadAlignment(t *testing.T) {
	tests := []struct {
		n    int
		want Alignment
	}{
		{1, AlignBottom | AlignLeft},
		{2, AlignBottom},
		{3, AlignBottom | AlignRight},
		{4, AlignLeft},
		{5, AlignCenter},
		{6, AlignRight},
		{7, AlignTop | AlignLeft},
		{8, AlignTop},
		{9, AlignTop | AlignRight},
		{0, AlignBottom},
		{10, AlignBottom},
	}
	for _, tt := range tests {
		if got := KeypadAlignment(tt.n); got != tt.want {
			t.Errorf("KeypadAlignment(%d): got %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestAlignmentString(t *testing.T) {
	tests := []struct {
		a    Alignment
		want string
	}{
		{AlignBottom, "bottom-center"},
		{AlignTop | AlignLeft, "top-left"},
		{AlignCenter, "middle-center"},
		{AlignBottom | AlignRight, "bottom-right"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("%#x: got %q, want %q", int(tt.a), got, tt.want)
		}
	}
}
