package cdr

import (
	"encoding/binary"
	"math"
)

// Decoder reads CDR data from a byte slice.
type Decoder struct {
	buf    []byte
	pos    int
	origin int
	order  binary.ByteOrder
}

// NewDecoder parses the encapsulation header of data and returns a decoder
// positioned at the first payload byte.
func NewDecoder(data []byte) (*Decoder, error) {
	if len(data) < EncapsulationHeaderSize {
		return nil, newExpectError(ErrNotEnoughData, EncapsulationHeaderSize, len(data))
	}
	if data[0] != 0 {
		return nil, newValueError(ErrBadEncapsulation, data[:2])
	}
	var order binary.ByteOrder
	switch data[1] {
	case encapsulationCDRLE:
		order = binary.LittleEndian
	case encapsulationCDRBE:
		order = binary.BigEndian
	default:
		return nil, newValueError(ErrBadEncapsulation, data[:2])
	}
	return &Decoder{
		buf:    data,
		pos:    EncapsulationHeaderSize,
		origin: EncapsulationHeaderSize,
		order:  order,
	}, nil
}

// NewRawDecoder returns a decoder for a payload without encapsulation header.
func NewRawDecoder(data []byte, order binary.ByteOrder) *Decoder {
	return &Decoder{buf: data, order: order}
}

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.pos
}

// Offset returns the read position relative to the payload start.
func (d *Decoder) Offset() int {
	return d.pos - d.origin
}

// BigEndian reports whether the payload is big-endian.
func (d *Decoder) BigEndian() bool {
	return d.order == binary.BigEndian
}

// next aligns to size and returns the following size bytes.
func (d *Decoder) next(size int) ([]byte, error) {
	pad := Alignment(d.Offset(), size)
	if pad+size > d.Remaining() {
		return nil, newExpectError(ErrNotEnoughData, pad+size, d.Remaining())
	}
	d.pos += pad
	b := d.buf[d.pos : d.pos+size]
	d.pos += size
	return b, nil
}

func (d *Decoder) ReadBool() (bool, error) {
	b, err := d.next(1)
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, newValueError(ErrInvalidBool, b[0])
	}
}

func (d *Decoder) ReadUint8() (uint8, error) {
	b, err := d.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Decoder) ReadInt8() (int8, error) {
	v, err := d.ReadUint8()
	return int8(v), err
}

func (d *Decoder) ReadUint16() (uint16, error) {
	b, err := d.next(2)
	if err != nil {
		return 0, err
	}
	return d.order.Uint16(b), nil
}

func (d *Decoder) ReadInt16() (int16, error) {
	v, err := d.ReadUint16()
	return int16(v), err
}

func (d *Decoder) ReadUint32() (uint32, error) {
	b, err := d.next(4)
	if err != nil {
		return 0, err
	}
	return d.order.Uint32(b), nil
}

func (d *Decoder) ReadInt32() (int32, error) {
	v, err := d.ReadUint32()
	return int32(v), err
}

func (d *Decoder) ReadUint64() (uint64, error) {
	b, err := d.next(8)
	if err != nil {
		return 0, err
	}
	return d.order.Uint64(b), nil
}

func (d *Decoder) ReadInt64() (int64, error) {
	v, err := d.ReadUint64()
	return int64(v), err
}

func (d *Decoder) ReadFloat32() (float32, error) {
	v, err := d.ReadUint32()
	return math.Float32frombits(v), err
}

func (d *Decoder) ReadFloat64() (float64, error) {
	v, err := d.ReadUint64()
	return math.Float64frombits(v), err
}

// ReadBytes returns a copy of the next n bytes without alignment.
func (d *Decoder) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > d.Remaining() {
		return nil, newExpectError(ErrNotEnoughData, n, d.Remaining())
	}
	out := make([]byte, n)
	copy(out, d.buf[d.pos:d.pos+n])
	d.pos += n
	return out, nil
}

// ReadString reads a NUL-terminated string. A length of zero yields the empty
// string, and a missing terminator is tolerated.
func (d *Decoder) ReadString() (string, error) {
	n, err := d.ReadUint32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	if uint64(n) > uint64(d.Remaining()) {
		return "", newExpectError(ErrNotEnoughData, n, d.Remaining())
	}
	b := d.buf[d.pos : d.pos+int(n)]
	d.pos += int(n)
	if b[len(b)-1] == 0 {
		b = b[:len(b)-1]
	}
	return string(b), nil
}

// ReadSequenceLength reads a sequence count. Every element occupies at least
// one byte, so a count larger than the unread data is rejected before the
// caller allocates.
func (d *Decoder) ReadSequenceLength() (int, error) {
	n, err := d.ReadUint32()
	if err != nil {
		return 0, err
	}
	if uint64(n) > uint64(d.Remaining()) {
		return 0, newExpectError(ErrNotEnoughData, n, d.Remaining())
	}
	return int(n), nil
}
