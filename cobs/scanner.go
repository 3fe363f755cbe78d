package cobs

import (
	"bytes"
)

// A Scanner steps through the delimiter-terminated frames in a buffer of
// encoded data.  A typical stream reader accumulates received bytes, scans
// out every complete frame, and carries Rest into its next read.  The zero
// value scans with StdEncoding; call Reset before use.
type Scanner struct {
	encoding *Encoding
	rest     []byte
	frame    []byte
}

// Reset prepares the Scanner to step through the frames in buf, using the
// standard encoding.
func (s *Scanner) Reset(buf []byte) {
	s.ResetEncoding(buf, StdEncoding)
}

// ResetEncoding prepares the Scanner to step through the frames in buf,
// using encoding to locate and decode them.
func (s *Scanner) ResetEncoding(buf []byte, encoding *Encoding) {
	s.encoding = encoding
	s.rest = buf
	s.frame = nil
}

// Next advances the Scanner to the next frame, returning false when no
// complete frame remains.  Bare delimiters between frames are skipped, so a
// reader can resynchronize on stray terminators; an encoded empty record is
// a two-byte frame and is never skipped.
func (s *Scanner) Next() bool {
	if s.encoding == nil {
		s.encoding = StdEncoding
	}
	for {
		end := bytes.IndexByte(s.rest, s.encoding.delimiter)
		if end == -1 {
			s.frame = nil
			return false
		}
		frame := s.rest[:end+1]
		s.rest = s.rest[end+1:]
		if end == 0 {
			continue
		}
		s.frame = frame
		return true
	}
}

// Encoded returns the current frame, including its terminal delimiter.
func (s *Scanner) Encoded() []byte {
	return s.frame
}

// Decode decodes the current frame into record.
func (s *Scanner) Decode(record *bytes.Buffer) error {
	return s.encoding.Decode(s.frame, record)
}

// Rest returns the unconsumed tail of the buffer.  After Next returns
// false, this is the partial frame (if any) that is still waiting for its
// terminal delimiter to arrive.
func (s *Scanner) Rest() []byte {
	return s.rest
}
