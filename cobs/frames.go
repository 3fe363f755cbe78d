package cobs

import (
	"bytes"
)

// FrameBuilder makes it easier to build up the content of individual
// records, which are then written into a buffer as one COBS frame each.  To
// build up the content of an individual record, just use the FrameBuilder as
// a bytes.Buffer.  Once a record is done, call FinishFrame.  Once you are
// done with all records, call Encode to get the encoded representation of
// everything.
type FrameBuilder struct {
	bytes.Buffer
	start        int
	frameIndices []index
}

type index struct {
	start, end int
}

// FinishFrame indicates that you have finished constructing an individual
// record.  We don't actually encode the record until you call Encode, when
// we encode _all_ of the records that you add to the builder.
func (fb *FrameBuilder) FinishFrame() {
	end := fb.Len()
	fb.frameIndices = append(fb.frameIndices, index{fb.start, end})
	fb.start = end
}

// Encode encodes all of the records in this builder into an output buffer,
// one delimiter-terminated frame per record, using the standard encoding.
func (fb *FrameBuilder) Encode(dest *bytes.Buffer) {
	fb.EncodeWith(StdEncoding, dest)
}

// EncodeWith is like Encode, but frames the records with encoding.
func (fb *FrameBuilder) EncodeWith(encoding *Encoding, dest *bytes.Buffer) {
	records := fb.Bytes()
	for _, index := range fb.frameIndices {
		record := records[index.start:index.end]
		encoding.Encode(record, dest)
	}
}
