// Package binutil contains big-endian marshalling and half-precision float
// conversion helpers shared by binary serializers.
package binutil

import (
	"encoding/binary"
	"io"
	"math"
	"unsafe"

	"github.com/go-faster/errors"
)

// Integer is a fixed-width integer type.
type Integer interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Size returns width of T in bytes.
func Size[T Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// AppendBigEndian appends big-endian encoding of v to dst.
func AppendBigEndian[T Integer](dst []byte, v T) []byte {
	u := uint64(v)
	switch Size[T]() {
	case 1:
		return append(dst, byte(u))
	case 2:
		return binary.BigEndian.AppendUint16(dst, uint16(u))
	case 4:
		return binary.BigEndian.AppendUint32(dst, uint32(u))
	default:
		return binary.BigEndian.AppendUint64(dst, u)
	}
}

// AppendFloat32 appends IEEE-754 big-endian encoding of v to dst.
func AppendFloat32(dst []byte, v float32) []byte {
	return AppendBigEndian(dst, math.Float32bits(v))
}

// AppendFloat64 appends IEEE-754 big-endian encoding of v to dst.
func AppendFloat64(dst []byte, v float64) []byte {
	return AppendBigEndian(dst, math.Float64bits(v))
}

// AppendHalf appends big-endian binary16 encoding of v to dst.
func AppendHalf(dst []byte, v float64) []byte {
	return AppendBigEndian(dst, EncodeHalf(v))
}

// WriteBigEndian writes exactly Size[T]() bytes of v to w.
func WriteBigEndian[T Integer](w io.Writer, v T) error {
	var buf [8]byte
	b := AppendBigEndian(buf[:0], v)
	if _, err := w.Write(b); err != nil {
		return errors.Wrapf(err, "write %d bytes", len(b))
	}
	return nil
}

// WriteFloat32 writes IEEE-754 big-endian encoding of v to w.
func WriteFloat32(w io.Writer, v float32) error {
	return WriteBigEndian(w, math.Float32bits(v))
}

// WriteFloat64 writes IEEE-754 big-endian encoding of v to w.
func WriteFloat64(w io.Writer, v float64) error {
	return WriteBigEndian(w, math.Float64bits(v))
}

// FromBigEndian decodes T from the beginning of buf.
//
// It returns the value and number of consumed bytes. If buf is shorter than
// Size[T](), FromBigEndian returns zero value and n == 0.
func FromBigEndian[T Integer](buf []byte) (v T, n int) {
	size := Size[T]()
	if len(buf) < size {
		return 0, 0
	}
	switch size {
	case 1:
		return T(buf[0]), 1
	case 2:
		return T(binary.BigEndian.Uint16(buf)), 2
	case 4:
		return T(binary.BigEndian.Uint32(buf)), 4
	default:
		return T(binary.BigEndian.Uint64(buf)), 8
	}
}

// Float32FromBigEndian decodes IEEE-754 float32 from the beginning of buf.
//
// Short read semantics are the same as in FromBigEndian.
func Float32FromBigEndian(buf []byte) (float32, int) {
	bits, n := FromBigEndian[uint32](buf)
	return math.Float32frombits(bits), n
}

// Float64FromBigEndian decodes IEEE-754 float64 from the beginning of buf.
//
// Short read semantics are the same as in FromBigEndian.
func Float64FromBigEndian(buf []byte) (float64, int) {
	bits, n := FromBigEndian[uint64](buf)
	return math.Float64frombits(bits), n
}
