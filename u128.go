package nz

import (
	"fmt"
	"math/big"
)

// U128 is an unsigned 128-bit integer guaranteed non-zero at build time.
//
// Go has no primitive 128-bit integer, so U128 is a two-word value type.
// Unlike the native kinds it cannot be a Go constant; generated
// declarations are vars built with U128FromRaw. The generator validates
// the value exactly (constant evaluation is arbitrary precision) before
// emitting the raw words.
type U128 struct {
	hi, lo uint64
}

// U128FromRaw assembles a U128 from its raw high and low words.
//
// This is the total construction step used by generated code: it performs
// no check because the generator has already proven hi|lo != 0. Calling it
// with two zero words defeats the invariant; don't.
func U128FromRaw(hi, lo uint64) U128 {
	return U128{hi: hi, lo: lo}
}

// Hi returns the high 64 bits.
func (v U128) Hi() uint64 { return v.hi }

// Lo returns the low 64 bits.
func (v U128) Lo() uint64 { return v.lo }

// IsZero reports whether v is zero. For values produced by nzgen this is
// always false.
func (v U128) IsZero() bool { return v.hi == 0 && v.lo == 0 }

// Big returns v as a new big.Int.
func (v U128) Big() *big.Int {
	b := new(big.Int).SetUint64(v.hi)
	b.Lsh(b, 64)
	return b.Or(b, new(big.Int).SetUint64(v.lo))
}

// Cmp returns -1, 0 or 1 depending on whether v is less than, equal to or
// greater than w.
func (v U128) Cmp(w U128) int {
	switch {
	case v.hi < w.hi:
		return -1
	case v.hi > w.hi:
		return 1
	case v.lo < w.lo:
		return -1
	case v.lo > w.lo:
		return 1
	}
	return 0
}

// String returns the decimal representation of v.
func (v U128) String() string {
	if v.hi == 0 {
		return fmt.Sprintf("%d", v.lo)
	}
	return v.Big().String()
}
