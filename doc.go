// Package nz provides integer wrapper types whose values are guaranteed to
// be non-zero, with the guarantee established entirely at build time.
//
// Values of these types are produced by the nzgen code generator
// (github.com/nzgen/nz/cmd/nzgen). The generator evaluates a constant
// expression during the build, rejects zero and non-constant input, and
// emits the validated value as a plain typed constant (or, for the 128-bit
// kinds, a two-word struct literal). The compiled program contains no
// residual check: no branch, no panic path, no stored flag.
//
// Twelve kinds are supported, one per primitive integer width and
// signedness: I8, I16, I32, I64, I128, Int and U8, U16, U32, U64, U128,
// Uint. Each exposes an accessor returning the underlying primitive.
//
// A typical directive in package source:
//
//	//nz:u16 MaxRetries = (1 << 4) - 9
//
// running nzgen then yields, in a generated file:
//
//	const MaxRetries nz.U16 = ...
//
// The package deliberately offers no checked runtime constructor: values
// whose magnitude is unknown until the program runs are out of scope.
package nz
