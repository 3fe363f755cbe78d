package cobs_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/dcreager/cobs-go/cobs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleScanner() {
	encoded := []byte("\x04abc\x00\x01\x00\x00\x051234\x00")
	var s cobs.Scanner
	var decoded bytes.Buffer
	s.Reset(encoded)
	for s.Next() {
		decoded.Reset()
		err := s.Decode(&decoded)
		if err != nil {
			panic(err)
		}
		fmt.Println(decoded.String())
	}
	// Output:
	// abc
	//
	// 1234
}

func parseRecords(encoded []byte) ([]string, error) {
	decodedList := []string{}
	var s cobs.Scanner
	s.Reset(encoded)
	for s.Next() {
		var decoded bytes.Buffer
		err := s.Decode(&decoded)
		if err != nil {
			return nil, err
		}
		decodedList = append(decodedList, decoded.String())
	}
	return decodedList, nil
}

func checkListRoundTrip(t require.TestingT, inputList []string) {
	var buf bytes.Buffer
	for _, input := range inputList {
		cobs.Encode([]byte(input), &buf)
	}
	decodedList, err := parseRecords(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, inputList, decodedList)
}

func TestRoundTripList(t *testing.T) {
	checkListRoundTrip(t, shortTestCaseInputs())
}

func TestScannerEncoded(t *testing.T) {
	var buf bytes.Buffer
	cobs.Encode([]byte("abc"), &buf)
	cobs.Encode([]byte("\x00"), &buf)

	var s cobs.Scanner
	s.Reset(buf.Bytes())
	require.True(t, s.Next())
	assert.Equal(t, []byte("\x04abc\x00"), s.Encoded())
	require.True(t, s.Next())
	assert.Equal(t, []byte("\x01\x01\x00"), s.Encoded())
	assert.False(t, s.Next())
}

func TestScannerSkipsBareDelimiters(t *testing.T) {
	// Stray terminators between frames should not surface as records.
	encoded := []byte("\x00\x00\x04abc\x00\x00\x01\x00")
	decodedList, err := parseRecords(encoded)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc", ""}, decodedList)
}

func TestScannerRest(t *testing.T) {
	var buf bytes.Buffer
	cobs.Encode([]byte("abc"), &buf)
	buf.WriteString("\x0512")

	var s cobs.Scanner
	s.Reset(buf.Bytes())
	require.True(t, s.Next())

	var decoded bytes.Buffer
	require.NoError(t, s.Decode(&decoded))
	assert.Equal(t, "abc", decoded.String())

	// The partial frame stays available for the reader's next refill.
	assert.False(t, s.Next())
	assert.Equal(t, []byte("\x0512"), s.Rest())
}

func TestScannerCustomEncoding(t *testing.T) {
	encoding := cobs.NewEncoding('\n')
	var buf bytes.Buffer
	encoding.Encode([]byte("abc"), &buf)
	encoding.Encode([]byte("x\ny"), &buf)

	var s cobs.Scanner
	s.ResetEncoding(buf.Bytes(), encoding)

	var actual []string
	for s.Next() {
		var decoded bytes.Buffer
		require.NoError(t, s.Decode(&decoded))
		actual = append(actual, decoded.String())
	}
	assert.Equal(t, []string{"abc", "x\ny"}, actual)
}

func TestScannerSurfacesCorruptFrames(t *testing.T) {
	encoded := []byte("\x05abc\x00")
	var s cobs.Scanner
	s.Reset(encoded)
	require.True(t, s.Next())
	var decoded bytes.Buffer
	assert.Equal(t, cobs.InvalidChunkLength, s.Decode(&decoded))
}
