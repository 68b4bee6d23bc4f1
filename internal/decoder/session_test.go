package decoder

import (
	"errors"
	"testing"

	"subdec/internal/styledtext"
)

func TestDecodePlainPacket(t *testing.T) {
	sess := NewSession(Options{AutodetectUTF8: true}, nil)

	res, err := sess.Decode([]byte("Hello"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(res.Segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(res.Segments))
	}
	if res.Segments[0].Text != "Hello" {
		t.Errorf("got %q", res.Segments[0].Text)
	}
	if res.Alignment != styledtext.AlignBottom {
		t.Errorf("default alignment: got %v", res.Alignment)
	}
}

func TestDecodeStyledPacket(t *testing.T) {
	sess := NewSession(Options{}, nil)

	res, err := sess.Decode([]byte("a<b>b</b>c"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(res.Segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(res.Segments))
	}
	if !res.Segments[1].Style.Bold {
		t.Error("middle segment should be bold")
	}
}

func TestDecodeEmptyPacket(t *testing.T) {
	sess := NewSession(Options{}, nil)

	for _, packet := range [][]byte{nil, {}} {
		if _, err := sess.Decode(packet); !errors.Is(err, ErrEmptyPacket) {
			t.Errorf("expected ErrEmptyPacket, got %v", err)
		}
	}
}

func TestDecodeJustification(t *testing.T) {
	tests := []struct {
		name    string
		justify styledtext.Alignment
		want    styledtext.Alignment
	}{
		{
			name: "center keeps the plain bottom default",
			want: styledtext.AlignBottom,
		},
		{
			name:    "left bias",
			justify: styledtext.AlignLeft,
			want:    styledtext.AlignBottom | styledtext.AlignLeft,
		},
		{
			name:    "right bias",
			justify: styledtext.AlignRight,
			want:    styledtext.AlignBottom | styledtext.AlignRight,
		},
		{
			name:    "vertical bits are ignored",
			justify: styledtext.AlignTop | styledtext.AlignRight,
			want:    styledtext.AlignBottom | styledtext.AlignRight,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := NewSession(Options{Justify: tt.justify}, nil)
			res, err := sess.Decode([]byte("x"))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if res.Alignment != tt.want {
				t.Errorf("got %v, want %v", res.Alignment, tt.want)
			}
		})
	}
}

func TestDecodeAlignmentOverrideIsPerPacket(t *testing.T) {
	sess := NewSession(Options{}, nil)

	res, err := sess.Decode([]byte(`{\an8}top`))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if res.Alignment != styledtext.AlignTop {
		t.Errorf("override: got %v, want %v", res.Alignment, styledtext.AlignTop)
	}

	res, err = sess.Decode([]byte("next"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if res.Alignment != styledtext.AlignBottom {
		t.Errorf("override leaked into next packet: got %v", res.Alignment)
	}
}

func TestDecodeFailureIsScopedToPacket(t *testing.T) {
	sess := NewSession(Options{Encoding: "EUC-JP"}, nil)
	if sess.Encoding() != "EUC-JP" {
		t.Fatalf("expected EUC-JP, got %q", sess.Encoding())
	}

	if _, err := sess.Decode([]byte{0xFF, 0xFF}); err == nil {
		t.Fatal("expected conversion error")
	}

	res, err := sess.Decode([]byte("still decoding"))
	if err != nil {
		t.Fatalf("session should survive a bad packet: %v", err)
	}
	if res.Segments[0].Text != "still decoding" {
		t.Errorf("got %q", res.Segments[0].Text)
	}
}

func TestSessionUnknownEncodingDegrades(t *testing.T) {
	sess := NewSession(Options{Encoding: "bogus"}, nil)
	if sess.Encoding() != "UTF-8" {
		t.Errorf("expected UTF-8 fallback, got %q", sess.Encoding())
	}
}
