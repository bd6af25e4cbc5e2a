// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import "github.com/avdva/binfloat/internal/mathutil"

// Codec binds a format descriptor to a rounding policy. The pair is fixed
// at construction; Unpack and Pack are then pure per-value transformations
// that may be invoked concurrently without synchronization.
type Codec struct {
	format *Format
	round  Rounding

	guard    int
	mantBits int // width of the unpacked mantissa
	implPos  int // position of the implicit bit, -1 if none
}

// NewCodec returns a codec for the format and rounding policy.
func NewCodec(f *Format, r Rounding) *Codec {
	c := &Codec{
		format:  f,
		round:   r,
		guard:   r.GuardBits(),
		implPos: -1,
	}
	c.mantBits = f.layout.MantBits + c.guard
	if f.layout.ImplicitBit {
		c.implPos = c.mantBits
		c.mantBits++
	}
	return c
}

// Format returns the bound format descriptor.
func (c *Codec) Format() *Format {
	return c.format
}

// Rounding returns the bound rounding policy.
func (c *Codec) Rounding() Rounding {
	return c.round
}

// MantissaBits returns the width of the unpacked mantissa:
// stored bits plus the implicit bit, if any, plus guard bits.
func (c *Codec) MantissaBits() int {
	return c.mantBits
}

// ImplicitPos returns the bit position of the implicit bit within the
// unpacked mantissa, or -1 for formats that store the leading bit.
func (c *Codec) ImplicitPos() int {
	return c.implPos
}

// fracBits returns the number of mantissa bits below the leading bit.
// For implicit-bit formats that is the whole stored field; formats that
// store the leading bit explicitly keep it above MantBits-1 fraction bits.
func (c *Codec) fracBits() int {
	if c.format.layout.ImplicitBit {
		return c.format.layout.MantBits
	}
	return c.format.layout.MantBits - 1
}

// trueExponent returns the unbiased exponent of an unpacked value.
// Denormals of implicit-bit formats use the minimum normal exponent.
func (c *Codec) trueExponent(u Unpacked) int {
	e := int(u.Exponent)
	if c.format.layout.ImplicitBit && u.Exponent == 0 {
		e = 1
	}
	return e - c.format.bias
}

// GuardMask returns a mask covering the guard bits of the unpacked mantissa.
func (c *Codec) GuardMask() uint64 {
	return mathutil.Mask(c.guard)
}

// StoredMask returns a mask covering the stored mantissa bits within the
// unpacked mantissa, excluding the implicit and guard bits.
func (c *Codec) StoredMask() uint64 {
	return mathutil.Mask(c.format.layout.MantBits) << uint(c.guard)
}

// Unpack extracts sign, exponent and mantissa from storage bits.
// It is total: every bit pattern of the storage width is a valid input,
// whatever the padding bits hold. The exponent is returned raw, still
// biased. For formats with an implicit bit a zero exponent field means
// a denormal, so the implicit bit is set only when the exponent is nonzero;
// this is a structural convention of the encoding, independent of bias.
func (c *Codec) Unpack(bits uint64) Unpacked {
	l := c.format.layout
	bits &= c.format.storageMask
	u := Unpacked{
		Sign:     bits>>uint(l.SignOffset)&mathutil.Mask(l.SignBits) != 0,
		Exponent: bits >> uint(l.ExpOffset) & mathutil.Mask(l.ExpBits),
	}
	mant := bits >> uint(l.MantOffset) & mathutil.Mask(l.MantBits) << uint(c.guard)
	if l.ImplicitBit && u.Exponent != 0 {
		mant |= mathutil.Bit(c.implPos)
	}
	u.Mantissa = mant
	return u
}

// Pack assembles storage bits from an unpacked value. The mantissa is
// collapsed to the stored width by the codec's rounding policy; every bit
// position not covered by a field is emitted as zero, so the result is
// always a canonical, zero-padded encoding. The exponent is inserted as
// given: the caller is responsible for supplying a value in valid biased
// range, no adjustment is performed.
//
// overflow reports that rounding up carried past the maximum stored
// mantissa. The emitted mantissa field is then zero and the exponent is
// deliberately NOT incremented, the numeric value of the result is wrong
// by a factor of two. Callers that can overflow must check the flag and
// decide for themselves (typically increment the exponent, or saturate).
func (c *Codec) Pack(u Unpacked) (bits uint64, overflow bool) {
	l := c.format.layout
	if u.Sign {
		bits |= mathutil.Bit(l.SignOffset)
	}
	bits |= u.Exponent & mathutil.Mask(l.ExpBits) << uint(l.ExpOffset)
	mant, carry := c.round.Round(c.format, u.Mantissa, u.Sign)
	bits |= mant << uint(l.MantOffset)
	return bits, carry
}
