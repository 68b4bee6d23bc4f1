package charset

import (
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"

	"subdec/internal/logging"
)

// Conversion failures are fatal for the packet they occur in: the packet is
// dropped with no partial output and the session moves on to the next one.
var (
	ErrInvalidSequence    = errors.New("invalid byte sequence for source encoding")
	ErrIncompleteSequence = errors.New("truncated multi-byte sequence at end of packet")
	ErrOutputOverflow     = errors.New("converted text exceeds output buffer")
)

// worst-case UTF-8 expansion of a single source byte
const expansionFactor = 6

// Converter transforms raw packet bytes into UTF-8 text. One converter is
// owned by exactly one decoding session for the session's whole lifetime
// and must not be used concurrently.
type Converter struct {
	name       string
	dec        *encoding.Decoder // nil means UTF-8 direct mode
	autodetect bool
	log        *logging.Logger
}

// Open resolves the source encoding from the declared and configured names
// and opens a converter for it. When the resolved name is UTF-8 no converter
// is needed. When a non-UTF-8 converter cannot be opened the failure is
// logged and the converter degrades to UTF-8 validation; this is never fatal.
func Open(declared, configured string, autodetectUTF8 bool, log *logging.Logger) *Converter {
	if log == nil {
		log = logging.Nop()
	}
	name := ResolveName(declared, configured)
	c := &Converter{name: name, autodetect: autodetectUTF8, log: log}
	if IsUTF8Name(name) {
		c.name = "UTF-8"
		return c
	}
	enc, err := lookup(name)
	if err != nil {
		log.Errorw("cannot convert from source encoding, falling back to UTF-8 validation",
			"encoding", name,
			"error", err,
		)
		c.name = "UTF-8"
		return c
	}
	c.dec = enc.NewDecoder()
	return c
}

// Name returns the canonical encoding name the converter settled on.
func (c *Converter) Name() string { return c.name }

// Convert turns one packet into UTF-8 text.
//
// In UTF-8 direct mode invalid input is repaired by substitution, never
// rejected. In converter mode the packet is transformed as a unit; any
// failure drops the whole packet. While UTF-8 autodetection is on, packets
// that already validate as UTF-8 pass through unconverted; the first packet
// that does not validate turns autodetection off for the rest of the
// session.
func (c *Converter) Convert(packet []byte) (string, error) {
	if c.dec == nil {
		if utf8.Valid(packet) {
			return string(packet), nil
		}
		c.log.Errorw("packet is not valid UTF-8, substituting offending bytes; " +
			"try setting a source encoding")
		return strings.ToValidUTF8(string(packet), "?"), nil
	}
	if c.autodetect {
		if utf8.Valid(packet) {
			return string(packet), nil
		}
		c.log.Debugw("invalid UTF-8 sequence: disabling UTF-8 autodetection")
		c.autodetect = false
	}
	return c.convert(packet)
}

func (c *Converter) convert(packet []byte) (string, error) {
	c.dec.Reset()
	dst := make([]byte, expansionFactor*len(packet))
	nDst, nSrc, err := c.dec.Transform(dst, packet, true)
	switch {
	case errors.Is(err, transform.ErrShortDst):
		return "", ErrOutputOverflow
	case errors.Is(err, transform.ErrShortSrc):
		return "", ErrIncompleteSequence
	case err != nil:
		return "", ErrInvalidSequence
	case nSrc < len(packet):
		return "", ErrInvalidSequence
	}
	out := dst[:nDst]
	// x/text decoders substitute U+FFFD instead of reporting bad input,
	// so a replacement char in the output marks the packet invalid.
	for _, r := range string(out) {
		if r == utf8.RuneError {
			return "", ErrInvalidSequence
		}
	}
	return string(out), nil
}
