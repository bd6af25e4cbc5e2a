// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"

	"github.com/avdva/binfloat/internal/mathutil"
)

var errNotFinite = fmt.Errorf("not a finite number")

// Float decodes storage bits into a native float.
// Denormals decode with the minimum normal exponent and a zero leading bit,
// exactly as they are encoded. The formats carry no NaN or infinity
// encodings, so every bit pattern decodes to a finite number.
func Float[T constraints.Float](c *Codec, bits uint64) T {
	u := c.Unpack(bits)
	mant := float64(u.Mantissa >> uint(c.guard))
	v := math.Ldexp(mant, c.trueExponent(u)-c.fracBits())
	if u.Sign {
		v = -v
	}
	return T(v)
}

// FromFloat encodes a native float into storage bits, rounding through the
// codec's policy. Signed zeros keep their sign. A value too large for the
// format saturates to the second largest exponent with an all-ones
// mantissa (the top exponent value is left alone, many formats reserve it);
// a value below the smallest normal flushes to zero. NaN and infinities
// are rejected: the formats have no encodings for them.
func FromFloat[T constraints.Float](c *Codec, value T) (uint64, error) {
	f := float64(value)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errNotFinite
	}
	var sign uint64
	if math.Signbit(f) {
		sign = mathutil.Bit(c.format.layout.SignOffset)
	}
	if f == 0 {
		return sign, nil
	}
	f = math.Abs(f)

	frac, exp := math.Frexp(f) // f = frac * 2^exp, frac in [0.5, 1)
	frac *= 2
	exp--
	maxBiased := int(c.format.MaxExponent())
	if exp > maxBiased-c.format.bias {
		return c.maxFinite(sign), nil
	}
	if exp < 1-c.format.bias {
		return sign, nil
	}

	// scale the fraction below the leading 1 to an integer with room for
	// the guard bits, then let the codec's policy do the final rounding
	width := c.fracBits() + c.guard
	mant := uint64(math.Ldexp(frac-1, width) + 0.5)
	if mant == mathutil.Bit(width) {
		// the scaling itself rounded up to the next power of two:
		// the fraction is zero one exponent higher
		exp++
		mant = 0
		if exp > maxBiased-c.format.bias {
			return c.maxFinite(sign), nil
		}
	}
	// the leading 1 sits right above the fraction: the implicit-bit
	// position for implicit formats, the stored top bit otherwise
	mant |= mathutil.Bit(width)
	u := Unpacked{
		Sign:     sign != 0,
		Exponent: uint64(exp + c.format.bias),
		Mantissa: mant,
	}
	bits, carry := c.Pack(u)
	if carry {
		// rounding crossed a power of two: the stored mantissa wrapped to
		// zero, move up one exponent, saturating at the format's ceiling
		u.Exponent++
		u.Mantissa = mathutil.Bit(width)
		if u.Exponent > uint64(maxBiased) {
			return c.maxFinite(sign), nil
		}
		bits, _ = c.Pack(u)
	}
	return bits, nil
}

// maxFinite returns the saturation pattern used by FromFloat: the second
// largest exponent with an all-ones mantissa. The top exponent value is
// left alone, many formats reserve it.
func (c *Codec) maxFinite(sign uint64) uint64 {
	l := c.format.layout
	return sign |
		(c.format.MaxExponent()-1)<<uint(l.ExpOffset) |
		c.format.MaxMantissa()<<uint(l.MantOffset)
}
