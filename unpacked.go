// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

// Unpacked is the computational representation of a single value, produced
// by Codec.Unpack and consumed by Codec.Pack. The mantissa is wider than
// the stored field, from the most to the least significant bit it holds:
//
//	[implicit bit, if the format has one][stored mantissa bits][guard bits]
//
// Guard bits are zero right after unpacking; they exist to carry extra
// precision through arithmetic before the value is rounded back into the
// stored width. The exponent is kept raw, in its biased encoding.
//
// An Unpacked value belongs to the format and rounding policy of the codec
// that produced it and is owned by a single caller, it is never shared.
type Unpacked struct {
	Sign     bool
	Exponent uint64
	Mantissa uint64
}
