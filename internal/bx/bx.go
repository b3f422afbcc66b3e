// Package bx holds the byte-order helpers shared by the fixed-width
// binary codecs. All on-disk and on-wire numerics are little-endian.
package bx

import (
	"encoding/binary"
	"math"
)

var LE = binary.LittleEndian

// --- read ---
func U16(b []byte) uint16 { return LE.Uint16(b) }
func U32(b []byte) uint32 { return LE.Uint32(b) }
func U64(b []byte) uint64 { return LE.Uint64(b) }
func I32(b []byte) int32 { return int32(U32(b)) }
func I64(b []byte) int64 { return int64(U64(b)) }
func F64(b []byte) float64 { return math.Float64frombits(U64(b)) }

// --- write ---
func PutU16(b []byte, v uint16) { LE.PutUint16(b, v) }
func PutU32(b []byte, v uint32) { LE.PutUint32(b, v) }
func PutU64(b []byte, v uint64) { LE.PutUint64(b, v) }
func PutI64(b []byte, v int64) { PutU64(b, uint64(v)) }
func PutF64(b []byte, v float64) { PutU64(b, math.Float64bits(v)) }
