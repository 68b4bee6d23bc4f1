package charset

import (
	"errors"
	"testing"
)

func TestConvertDirectModePassthrough(t *testing.T) {
	conv := Open("UTF-8", "", false, nil)
	if conv.Name() != "UTF-8" {
		t.Fatalf("expected UTF-8, got %q", conv.Name())
	}

	got, err := conv.Convert([]byte("héllo"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != "héllo" {
		t.Errorf("got %q", got)
	}
}

func TestConvertDirectModeRepairsInvalidInput(t *testing.T) {
	conv := Open("UTF-8", "", false, nil)

	got, err := conv.Convert([]byte("a\x80b"))
	if err != nil {
		t.Fatalf("direct mode must never reject: %v", err)
	}
	if got != "a?b" {
		t.Errorf("got %q, want %q", got, "a?b")
	}
}

func TestOpenUnknownEncodingDegradesToUTF8(t *testing.T) {
	conv := Open("no-such-charset", "", false, nil)
	if conv.Name() != "UTF-8" {
		t.Fatalf("expected UTF-8 fallback, got %q", conv.Name())
	}

	got, err := conv.Convert([]byte("still works"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != "still works" {
		t.Errorf("got %q", got)
	}
}

func TestConvertWindows1252(t *testing.T) {
	conv := Open("Windows-1252", "", false, nil)

	got, err := conv.Convert([]byte("caf\xe9"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != "café" {
		t.Errorf("got %q, want %q", got, "café")
	}
}

func TestConvertConfiguredFallbackEncoding(t *testing.T) {
	conv := Open("", "KOI8-R", false, nil)
	if conv.Name() != "KOI8-R" {
		t.Fatalf("expected KOI8-R, got %q", conv.Name())
	}

	got, err := conv.Convert([]byte{0xC1})
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != "а" {
		t.Errorf("got %q, want Cyrillic a", got)
	}
}

func TestConvertInvalidSequence(t *testing.T) {
	conv := Open("EUC-JP", "", false, nil)

	_, err := conv.Convert([]byte{0xFF, 'a'})
	if !errors.Is(err, ErrInvalidSequence) {
		t.Fatalf("expected ErrInvalidSequence, got %v", err)
	}

	// the converter stays usable after a rejected packet
	got, err := conv.Convert([]byte("plain ascii"))
	if err != nil {
		t.Fatalf("Convert after failure: %v", err)
	}
	if got != "plain ascii" {
		t.Errorf("got %q", got)
	}
}

func TestConvertAutodetectUTF8(t *testing.T) {
	conv := Open("Windows-1252", "", true, nil)

	// valid UTF-8 bypasses the converter while autodetection is on
	got, err := conv.Convert([]byte("café"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != "café" {
		t.Errorf("passthrough: got %q", got)
	}

	// first non-UTF-8 packet turns autodetection off and converts
	got, err = conv.Convert([]byte("caf\xe9"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != "café" {
		t.Errorf("converted: got %q", got)
	}

	// the same UTF-8 bytes now go through the converter instead
	got, err = conv.Convert([]byte("café"))
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != "cafÃ©" {
		t.Errorf("autodetection should stay off: got %q", got)
	}
}
