// Package registry defines the static table of numeric kinds supported by
// nzgen. Everything else in the generator is parameterized over this table:
// adding a new width/signedness is one more row here plus a wrapper type in
// the nz package.
package registry

import (
	"fmt"
	"math/big"
)

// Kind identifies one of the twelve supported numeric kinds.
type Kind int

const (
	KindInvalid Kind = iota
	KindI8
	KindI16
	KindI32
	KindI64
	KindI128
	KindInt
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindUint
)

// Info describes a numeric kind. Pure data; one row per kind.
type Info struct {
	Kind Kind `json:"-"`

	// Tag is the directive tag, e.g. "u8" in //nz:u8.
	Tag string `json:"tag"`

	// BitWidth is the width of the kind in bits. Pointer-sized kinds
	// report 64: nzgen validates for the widest target so a generated
	// file is portable to any platform the build supports.
	BitWidth int `json:"bit_width"`

	Signed bool `json:"signed"`

	// GoType is the underlying primitive type name emitted for the bound
	// constant, empty for the 128-bit kinds which have no Go primitive.
	GoType string `json:"go_type,omitempty"`

	// Wrapper is the wrapper type name in the nz package.
	Wrapper string `json:"wrapper"`

	// ZeroLiteral is the literal the zero guard compares against.
	ZeroLiteral string `json:"zero_literal"`

	// ConstEmit reports whether the kind's wrapper declaration can be a Go
	// constant. False only for the 128-bit kinds.
	ConstEmit bool `json:"const_emit"`
}

// The table. Order matches the Kind constants; Lookup and All rely on it.
var table = [...]Info{
	{Kind: KindI8, Tag: "i8", BitWidth: 8, Signed: true, GoType: "int8", Wrapper: "I8", ZeroLiteral: "0", ConstEmit: true},
	{Kind: KindI16, Tag: "i16", BitWidth: 16, Signed: true, GoType: "int16", Wrapper: "I16", ZeroLiteral: "0", ConstEmit: true},
	{Kind: KindI32, Tag: "i32", BitWidth: 32, Signed: true, GoType: "int32", Wrapper: "I32", ZeroLiteral: "0", ConstEmit: true},
	{Kind: KindI64, Tag: "i64", BitWidth: 64, Signed: true, GoType: "int64", Wrapper: "I64", ZeroLiteral: "0", ConstEmit: true},
	{Kind: KindI128, Tag: "i128", BitWidth: 128, Signed: true, Wrapper: "I128", ZeroLiteral: "0", ConstEmit: false},
	{Kind: KindInt, Tag: "int", BitWidth: 64, Signed: true, GoType: "int", Wrapper: "Int", ZeroLiteral: "0", ConstEmit: true},
	{Kind: KindU8, Tag: "u8", BitWidth: 8, Signed: false, GoType: "uint8", Wrapper: "U8", ZeroLiteral: "0", ConstEmit: true},
	{Kind: KindU16, Tag: "u16", BitWidth: 16, Signed: false, GoType: "uint16", Wrapper: "U16", ZeroLiteral: "0", ConstEmit: true},
	{Kind: KindU32, Tag: "u32", BitWidth: 32, Signed: false, GoType: "uint32", Wrapper: "U32", ZeroLiteral: "0", ConstEmit: true},
	{Kind: KindU64, Tag: "u64", BitWidth: 64, Signed: false, GoType: "uint64", Wrapper: "U64", ZeroLiteral: "0", ConstEmit: true},
	{Kind: KindU128, Tag: "u128", BitWidth: 128, Signed: false, Wrapper: "U128", ZeroLiteral: "0", ConstEmit: false},
	{Kind: KindUint, Tag: "uint", BitWidth: 64, Signed: false, GoType: "uint", Wrapper: "Uint", ZeroLiteral: "0", ConstEmit: true},
}

var byTag = func() map[string]Kind {
	m := make(map[string]Kind, len(table))
	for _, info := range table {
		m[info.Tag] = info.Kind
	}
	return m
}()

// All returns the twelve kinds in declaration order.
func All() []Info {
	out := make([]Info, len(table))
	copy(out, table[:])
	return out
}

// Lookup returns the Info row for k.
// Panics on an invalid kind: callers obtain kinds from FromTag or All, so
// an invalid kind is a programming error, not input.
func Lookup(k Kind) Info {
	if k <= KindInvalid || int(k) > len(table) {
		panic(fmt.Sprintf("registry: invalid kind %d", int(k)))
	}
	return table[k-1]
}

// FromTag resolves a directive tag like "u8" to its kind.
func FromTag(tag string) (Kind, bool) {
	k, ok := byTag[tag]
	return k, ok
}

func (k Kind) String() string {
	if k <= KindInvalid || int(k) > len(table) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return table[k-1].Tag
}

// Min returns the smallest value representable in k.
func (k Kind) Min() *big.Int {
	info := Lookup(k)
	if !info.Signed {
		return new(big.Int)
	}
	// -(2^(w-1))
	min := new(big.Int).Lsh(big.NewInt(1), uint(info.BitWidth-1))
	return min.Neg(min)
}

// Max returns the largest value representable in k.
func (k Kind) Max() *big.Int {
	info := Lookup(k)
	w := uint(info.BitWidth)
	if info.Signed {
		w--
	}
	max := new(big.Int).Lsh(big.NewInt(1), w)
	return max.Sub(max, big.NewInt(1))
}

// Representable reports whether v fits in k.
func (k Kind) Representable(v *big.Int) bool {
	return v.Cmp(k.Min()) >= 0 && v.Cmp(k.Max()) <= 0
}
