// Package cobs provides a Go implementation of Consistent Overhead Byte
// Stuffing (COBS).  COBS transforms a binary record so that the encoded form
// contains no occurrence of a reserved delimiter byte (`0x00` by default)
// except for a single trailing copy, which lets a stream reader locate
// record boundaries by scanning for the delimiter alone.
package cobs
