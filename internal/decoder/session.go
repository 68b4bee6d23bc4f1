// Package decoder turns raw subtitle packets into styled text segments.
package decoder

import (
	"errors"

	"subdec/internal/charset"
	"subdec/internal/logging"
	"subdec/internal/styledtext"
)

// ErrEmptyPacket reports a packet with no payload bytes.
var ErrEmptyPacket = errors.New("empty subtitle packet")

// Options configures a decoding session.
type Options struct {
	// Encoding is the name declared by the packet source; empty when the
	// source declared nothing.
	Encoding string
	// FallbackEncoding is the configured fallback name. The sentinel
	// "system" means the platform default; empty means unset.
	FallbackEncoding string
	// AutodetectUTF8 lets packets that validate as UTF-8 bypass the
	// converter until the first packet that does not validate.
	AutodetectUTF8 bool
	// Justify is the horizontal bias applied to cues without an {\anN}
	// override: AlignCenter, AlignLeft or AlignRight.
	Justify styledtext.Alignment
}

// Session decodes subtitle packets strictly one at a time. It owns its
// converter handle for its whole lifetime and is not safe for concurrent
// use.
type Session struct {
	conv    *charset.Converter
	justify styledtext.Alignment
	log     *logging.Logger
}

// Result is the output for one successfully decoded packet.
type Result struct {
	Segments  []styledtext.Segment
	Alignment styledtext.Alignment
}

// NewSession opens a decoding session. Setup never fails: an unsupported
// encoding is logged and absorbed into UTF-8 validation-only mode.
func NewSession(opts Options, log *logging.Logger) *Session {
	if log == nil {
		log = logging.Nop()
	}
	conv := charset.Open(opts.Encoding, opts.FallbackEncoding, opts.AutodetectUTF8, log)
	log.Debugw("decoding session ready", "encoding", conv.Name())
	return &Session{
		conv:    conv,
		justify: opts.Justify & (styledtext.AlignLeft | styledtext.AlignRight),
		log:     log,
	}
}

// Encoding reports the source encoding name the session resolved at setup.
func (s *Session) Encoding() string { return s.conv.Name() }

// Decode converts and parses one packet. Failures are scoped to the packet:
// the error reports it and the session stays usable for the next one.
func (s *Session) Decode(packet []byte) (Result, error) {
	if len(packet) == 0 {
		s.log.Warnw("no subtitle data in packet")
		return Result{}, ErrEmptyPacket
	}
	text, err := s.conv.Convert(packet)
	if err != nil {
		s.log.Errorw("failed to convert subtitle encoding",
			"encoding", s.conv.Name(),
			"error", err,
		)
		return Result{}, err
	}
	segments, align := styledtext.Parse(text, styledtext.AlignBottom|s.justify)
	return Result{Segments: segments, Alignment: align}, nil
}
