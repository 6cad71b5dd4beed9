package binutil

import (
	"github.com/go-faster/errors"
)

// ErrShortRead is returned when buffer has fewer bytes than requested.
var ErrShortRead = errors.New("short read")

// Reader reads big-endian values from a byte slice.
//
// On short read Reader returns ErrShortRead and does not advance.
type Reader struct {
	buf []byte
	off int
}

// NewReader creates new Reader.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns number of consumed bytes.
func (r *Reader) Offset() int { return r.off }

// Remaining returns number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// Reset resets Reader to read from buf.
func (r *Reader) Reset(buf []byte) {
	r.buf = buf
	r.off = 0
}

func read[T Integer](r *Reader) (T, error) {
	v, n := FromBigEndian[T](r.buf[r.off:])
	if n == 0 {
		return 0, errors.Wrapf(ErrShortRead, "read %d bytes at offset %d", Size[T](), r.off)
	}
	r.off += n
	return v, nil
}

// ReadUint8 reads uint8.
func (r *Reader) ReadUint8() (uint8, error) { return read[uint8](r) }

// ReadUint16 reads big-endian uint16.
func (r *Reader) ReadUint16() (uint16, error) { return read[uint16](r) }

// ReadUint32 reads big-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) { return read[uint32](r) }

// ReadUint64 reads big-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) { return read[uint64](r) }

// ReadInt8 reads int8.
func (r *Reader) ReadInt8() (int8, error) { return read[int8](r) }

// ReadInt16 reads big-endian int16.
func (r *Reader) ReadInt16() (int16, error) { return read[int16](r) }

// ReadInt32 reads big-endian int32.
func (r *Reader) ReadInt32() (int32, error) { return read[int32](r) }

// ReadInt64 reads big-endian int64.
func (r *Reader) ReadInt64() (int64, error) { return read[int64](r) }

// ReadFloat32 reads big-endian IEEE-754 float32.
func (r *Reader) ReadFloat32() (float32, error) {
	v, n := Float32FromBigEndian(r.buf[r.off:])
	if n == 0 {
		return 0, errors.Wrapf(ErrShortRead, "read 4 bytes at offset %d", r.off)
	}
	r.off += n
	return v, nil
}

// ReadFloat64 reads big-endian IEEE-754 float64.
func (r *Reader) ReadFloat64() (float64, error) {
	v, n := Float64FromBigEndian(r.buf[r.off:])
	if n == 0 {
		return 0, errors.Wrapf(ErrShortRead, "read 8 bytes at offset %d", r.off)
	}
	r.off += n
	return v, nil
}

// ReadHalf reads big-endian binary16 and widens it to float64.
func (r *Reader) ReadHalf() (float64, error) {
	h, err := read[uint16](r)
	if err != nil {
		return 0, err
	}
	return DecodeHalf(h), nil
}
