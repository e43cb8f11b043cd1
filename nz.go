package nz

// The native wrapper kinds are defined integer types rather than structs so
// that generated declarations can be untyped-constant-free Go constants,
// usable in array lengths, case labels and other constant contexts. The
// non-zero invariant is established by the generator before the declaration
// is emitted, and re-proven by a constant-division assertion in the
// generated file; converting a zero by hand is a build failure there, not a
// runtime condition here.

// U8 is a uint8 guaranteed non-zero at build time.
type U8 uint8

// U16 is a uint16 guaranteed non-zero at build time.
type U16 uint16

// U32 is a uint32 guaranteed non-zero at build time.
type U32 uint32

// U64 is a uint64 guaranteed non-zero at build time.
type U64 uint64

// Uint is a uint guaranteed non-zero at build time.
type Uint uint

// I8 is an int8 guaranteed non-zero at build time.
type I8 int8

// I16 is an int16 guaranteed non-zero at build time.
type I16 int16

// I32 is an int32 guaranteed non-zero at build time.
type I32 int32

// I64 is an int64 guaranteed non-zero at build time.
type I64 int64

// Int is an int guaranteed non-zero at build time.
type Int int

// Get returns the underlying primitive value.
func (v U8) Get() uint8 { return uint8(v) }

// Get returns the underlying primitive value.
func (v U16) Get() uint16 { return uint16(v) }

// Get returns the underlying primitive value.
func (v U32) Get() uint32 { return uint32(v) }

// Get returns the underlying primitive value.
func (v U64) Get() uint64 { return uint64(v) }

// Get returns the underlying primitive value.
func (v Uint) Get() uint { return uint(v) }

// Get returns the underlying primitive value.
func (v I8) Get() int8 { return int8(v) }

// Get returns the underlying primitive value.
func (v I16) Get() int16 { return int16(v) }

// Get returns the underlying primitive value.
func (v I32) Get() int32 { return int32(v) }

// Get returns the underlying primitive value.
func (v I64) Get() int64 { return int64(v) }

// Get returns the underlying primitive value.
func (v Int) Get() int { return int(v) }
