package cdr

import (
	"encoding/binary"
	"math"
)

// Encoder appends little-endian CDR data to a growing buffer.
type Encoder struct {
	buf []byte
	// origin is the buffer index that alignment is counted from.
	origin int
}

// NewEncoder returns an encoder whose buffer starts with the CDR_LE
// encapsulation header. sizeHint is the expected payload size.
func NewEncoder(sizeHint int) *Encoder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	buf := make([]byte, EncapsulationHeaderSize, EncapsulationHeaderSize+sizeHint)
	buf[1] = encapsulationCDRLE
	return &Encoder{buf: buf, origin: EncapsulationHeaderSize}
}

// NewRawEncoder returns an encoder without an encapsulation header.
func NewRawEncoder(sizeHint int) *Encoder {
	if sizeHint < 0 {
		sizeHint = 0
	}
	return &Encoder{buf: make([]byte, 0, sizeHint)}
}

// Bytes returns the encoded data, header included.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Payload returns the encoded data after the encapsulation header.
func (e *Encoder) Payload() []byte {
	return e.buf[e.origin:]
}

// Len returns the payload length, which is also the current alignment.
func (e *Encoder) Len() int {
	return len(e.buf) - e.origin
}

// Reset discards the payload and keeps the header and the allocated buffer.
func (e *Encoder) Reset() {
	e.buf = e.buf[:e.origin]
}

func (e *Encoder) align(size int) {
	var zero [8]byte
	if pad := Alignment(e.Len(), size); pad != 0 {
		e.buf = append(e.buf, zero[:pad]...)
	}
}

func (e *Encoder) WriteBool(v bool) {
	if v {
		e.buf = append(e.buf, 1)
	} else {
		e.buf = append(e.buf, 0)
	}
}

func (e *Encoder) WriteUint8(v uint8) {
	e.buf = append(e.buf, v)
}

func (e *Encoder) WriteInt8(v int8) {
	e.buf = append(e.buf, uint8(v))
}

func (e *Encoder) WriteUint16(v uint16) {
	e.align(2)
	e.buf = binary.LittleEndian.AppendUint16(e.buf, v)
}

func (e *Encoder) WriteInt16(v int16) {
	e.WriteUint16(uint16(v))
}

func (e *Encoder) WriteUint32(v uint32) {
	e.align(4)
	e.buf = binary.LittleEndian.AppendUint32(e.buf, v)
}

func (e *Encoder) WriteInt32(v int32) {
	e.WriteUint32(uint32(v))
}

func (e *Encoder) WriteUint64(v uint64) {
	e.align(8)
	e.buf = binary.LittleEndian.AppendUint64(e.buf, v)
}

func (e *Encoder) WriteInt64(v int64) {
	e.WriteUint64(uint64(v))
}

func (e *Encoder) WriteFloat32(v float32) {
	e.WriteUint32(math.Float32bits(v))
}

func (e *Encoder) WriteFloat64(v float64) {
	e.WriteUint64(math.Float64bits(v))
}

// WriteBytes appends b without a length prefix or alignment. It is used for
// uint8 and byte arrays whose count, if any, was already written.
func (e *Encoder) WriteBytes(b []byte) {
	e.buf = append(e.buf, b...)
}

// WriteString writes a uint32 length including the terminating NUL, the
// string bytes and the NUL.
func (e *Encoder) WriteString(s string) error {
	if uint64(len(s))+1 > math.MaxUint32 {
		return newValueError(ErrStringTooLong, len(s))
	}
	e.WriteUint32(uint32(len(s) + 1))
	e.buf = append(e.buf, s...)
	e.buf = append(e.buf, 0)
	return nil
}

// WriteSequenceLength writes the element count that prefixes a sequence.
func (e *Encoder) WriteSequenceLength(n int) error {
	if n < 0 || uint64(n) > math.MaxUint32 {
		return newValueError(ErrSequenceTooLong, n)
	}
	e.WriteUint32(uint32(n))
	return nil
}
