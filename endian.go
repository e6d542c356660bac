package ecbor

import (
	"encoding/binary"
	"math"
)

// The wire format is always big-endian (RFC 7049 §1.3). encoding/binary
// already abstracts over host endianness, so unlike the C original there
// is no compile-time byte-order branch to get wrong: BigEndian.Uint16/32/64
// do the right thing on every Go-supported architecture.

func uint16FromBigEndian(b []byte) uint16 { return binary.BigEndian.Uint16(b) }
func uint32FromBigEndian(b []byte) uint32 { return binary.BigEndian.Uint32(b) }
func uint64FromBigEndian(b []byte) uint64 { return binary.BigEndian.Uint64(b) }

func putUint16BigEndian(b []byte, v uint16) { binary.BigEndian.PutUint16(b, v) }
func putUint32BigEndian(b []byte, v uint32) { binary.BigEndian.PutUint32(b, v) }
func putUint64BigEndian(b []byte, v uint64) { binary.BigEndian.PutUint64(b, v) }

func fp32FromBigEndian(b []byte) float32 {
	return math.Float32frombits(binary.BigEndian.Uint32(b))
}

func fp64FromBigEndian(b []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(b))
}

func putFP32BigEndian(b []byte, v float32) {
	binary.BigEndian.PutUint32(b, math.Float32bits(v))
}

func putFP64BigEndian(b []byte, v float64) {
	binary.BigEndian.PutUint64(b, math.Float64bits(v))
}
