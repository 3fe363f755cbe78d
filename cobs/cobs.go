package cobs

import (
	"bytes"
)

// maxRunLength is the longest run of non-delimiter bytes that a single
// length prefix can cover.  A prefix byte holds the run length plus one, so
// a full run is marked by the prefix value 255, which is reserved to mean
// "no delimiter follows this run."
const maxRunLength = 254

// A CorruptFrameError describes why an encoded frame could not be decoded.
type CorruptFrameError struct {
	reason string
}

func (e *CorruptFrameError) Error() string {
	return "cobs: " + e.reason
}

var (
	// MissingDelimiter is the error that is returned when decoding a frame
	// whose final byte is not the delimiter.
	MissingDelimiter = &CorruptFrameError{"missing terminal delimiter"}

	// InvalidChunkLength is the error that is returned when decoding a frame
	// containing a length prefix that runs past the end of the frame.
	InvalidChunkLength = &CorruptFrameError{"invalid chunk length"}
)

// An Encoding is a COBS framing scheme bound to a particular delimiter byte.
//
// Round-trip correctness holds for every delimiter value, but only the
// standard zero delimiter guarantees that the delimiter never appears inside
// an encoded frame: length prefixes are never zero, while for any other
// delimiter a prefix byte can coincide with the delimiter value.  Boundary
// scanning (see Scanner) is therefore only reliable with StdEncoding.
type Encoding struct {
	delimiter byte
	maxRun    int
}

// StdEncoding is the standard COBS encoding, which reserves 0x00 as the
// frame delimiter.
var StdEncoding = NewEncoding(0)

// NewEncoding returns an Encoding that reserves delimiter as the frame
// terminator.
func NewEncoding(delimiter byte) *Encoding {
	return &Encoding{delimiter: delimiter, maxRun: maxRunLength}
}

// findDelimiter looks for the delimiter within the first maxRun bytes of
// record.  If we find it, we return its index within record.  If not, we
// return the length of the subset of record that we looked in.  (That is,
// the minimum of maxRun and the actual length of record.)
func (e *Encoding) findDelimiter(record []byte) int {
	maxRun := e.maxRun
	if len(record) < maxRun {
		maxRun = len(record)
	} else {
		record = record[:maxRun]
	}
	result := bytes.IndexByte(record, e.delimiter)
	if result == -1 {
		return maxRun
	}
	return result
}

// Encode writes a binary record into an output buffer using the COBS
// encoding, followed by a single copy of the delimiter that terminates the
// frame.  Encode is total: it succeeds for every record, of any length and
// any content.  The record itself is never modified.
func (e *Encoding) Encode(record []byte, buf *bytes.Buffer) {
	for {
		runSize := e.findDelimiter(record)
		buf.WriteByte(byte(runSize + 1))
		buf.Write(record[:runSize])
		record = record[runSize:]
		if runSize == e.maxRun {
			// The run was cut short by the prefix width, not by a delimiter,
			// so the next prefix continues the same run.  This holds even
			// when nothing remains: the empty continuation is what tells the
			// decoder that no delimiter followed the full run.
			continue
		}
		if len(record) == 0 {
			break
		}
		// record starts with the delimiter, so skip over it.
		record = record[1:]
	}
	buf.WriteByte(e.delimiter)
}

// Decode reads a binary record from an encoded frame.  The frame must
// include its terminal delimiter; that is the slice a stream reader holds
// after scanning up to (and including) a delimiter byte.  Decode is
// all-or-nothing: on failure the caller should discard whatever was written
// to record.
func (e *Encoding) Decode(encoded []byte, record *bytes.Buffer) error {
	if len(encoded) == 0 || encoded[len(encoded)-1] != e.delimiter {
		return MissingDelimiter
	}
	encoded = encoded[:len(encoded)-1]
	for len(encoded) > 0 {
		runLength := int(encoded[0]) - 1
		if runLength < 0 || runLength > len(encoded)-1 {
			return InvalidChunkLength
		}
		record.Write(encoded[1 : 1+runLength])
		encoded = encoded[1+runLength:]
		if len(encoded) > 0 && runLength < e.maxRun {
			// A short run ends at a delimiter that the encoder stripped at
			// exactly this point; restore it.  A full run was split by the
			// prefix width instead, and gets nothing.
			record.WriteByte(e.delimiter)
		}
	}
	return nil
}

// Encode writes a binary record into an output buffer as a single
// delimiter-terminated frame, using the standard encoding.
func Encode(record []byte, buf *bytes.Buffer) {
	StdEncoding.Encode(record, buf)
}

// Decode reads a binary record from a delimiter-terminated frame, using the
// standard encoding.
func Decode(encoded []byte, record *bytes.Buffer) error {
	return StdEncoding.Decode(encoded, record)
}

// MaxEncodedLen returns the length of the largest frame that encoding a
// record of n bytes can produce: one length prefix per 254-byte window of a
// delimiter-free record, plus the terminal delimiter.
func MaxEncodedLen(n int) int {
	return n + n/maxRunLength + 2
}
