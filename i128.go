package nz

import "math/big"

const i128SignBit = uint64(1) << 63

// two^128, used to fold the raw two's complement words back into a signed
// big.Int.
var i128Modulus = new(big.Int).Lsh(big.NewInt(1), 128)

// I128 is a signed two's complement 128-bit integer guaranteed non-zero at
// build time. See U128 for why this is a two-word struct rather than a
// defined integer type.
type I128 struct {
	hi, lo uint64
}

// I128FromRaw assembles an I128 from the raw words of its two's complement
// representation. Total conversion for generated code; no check is
// performed.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

// Hi returns the high 64 bits of the two's complement representation.
func (v I128) Hi() uint64 { return v.hi }

// Lo returns the low 64 bits of the two's complement representation.
func (v I128) Lo() uint64 { return v.lo }

// IsZero reports whether v is zero. For values produced by nzgen this is
// always false.
func (v I128) IsZero() bool { return v.hi == 0 && v.lo == 0 }

// Sign returns -1 for negative values and 1 otherwise. Zero cannot occur
// in generated values, but Sign reports 0 for it anyway.
func (v I128) Sign() int {
	if v.IsZero() {
		return 0
	}
	if v.hi&i128SignBit != 0 {
		return -1
	}
	return 1
}

// Big returns v as a new big.Int.
func (v I128) Big() *big.Int {
	b := new(big.Int).SetUint64(v.hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(v.lo))
	if v.hi&i128SignBit != 0 {
		b.Sub(b, i128Modulus)
	}
	return b
}

// Cmp returns -1, 0 or 1 depending on whether v is less than, equal to or
// greater than w, under signed interpretation.
func (v I128) Cmp(w I128) int {
	// Biasing the high words by the sign bit reduces signed comparison to
	// unsigned comparison.
	vh, wh := v.hi^i128SignBit, w.hi^i128SignBit
	switch {
	case vh < wh:
		return -1
	case vh > wh:
		return 1
	case v.lo < w.lo:
		return -1
	case v.lo > w.lo:
		return 1
	}
	return 0
}

// String returns the decimal representation of v.
func (v I128) String() string {
	return v.Big().String()
}
