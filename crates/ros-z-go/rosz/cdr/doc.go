// Package cdr implements the OMG Common Data Representation cursor used by
// generated ros-z message types.
//
// The format is plain CDR (XCDR version 1) as produced by Fast CDR for ROS 2:
//
//	[encapsulation(4)][payload]
//
// The encapsulation header is 00 01 00 00 for little-endian payloads (CDR_LE)
// and 00 00 00 00 for big-endian payloads (CDR_BE). Every primitive in the
// payload is aligned to its own size, counted from the first byte after the
// header; 64-bit values are aligned to 8. Strings are a uint32 length that
// includes the terminating NUL, the bytes, then the NUL. Sequences are a
// uint32 element count followed by the elements. Fixed arrays have no count.
//
// Encoder always writes little-endian. Decoder accepts both byte orders.
//
// Alignment is exposed as a function so that size calculators can account for
// padding without writing any bytes:
//
//	size := 0
//	size += 4 + cdr.Alignment(size, 4) // sequence count
//	size += 8 + cdr.Alignment(size, 8) // float64 member
//
// Neither Encoder nor Decoder is safe for concurrent use. Distinct cursors may
// be used from different goroutines.
package cdr
