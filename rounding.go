// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import "github.com/avdva/binfloat/internal/mathutil"

// Rounding collapses the wide unpacked mantissa back into the stored width.
// Implementations are stateless and safe for concurrent use.
type Rounding interface {
	// GuardBits is the number of extra low-order precision bits carried
	// by the unpacked mantissa under this policy.
	GuardBits() int
	// Round strips the guard bits and the implicit bit (if any) from a
	// wide mantissa, leaving exactly MantBits stored bits.
	//
	// carry reports that rounding up overflowed the stored width: the
	// returned mantissa is then zero (the wrapped value) and the exponent
	// is left for the caller to handle. negative exists for directional
	// modes (toward +Inf / -Inf); neither implemented policy uses it.
	Round(f *Format, wide uint64, negative bool) (mant uint64, carry bool)
}

// Implemented policies.
var (
	// ToZero truncates: guard bits are simply discarded, no increment
	// ever happens.
	ToZero Rounding = toZero{}
	// ToNearestEven rounds to nearest with ties going to the value whose
	// least significant bit is zero. It carries 3 guard bits,
	// conventionally called guard, round and sticky (GRS).
	ToNearestEven Rounding = toNearestEven{}
)

type toZero struct{}

func (toZero) GuardBits() int { return 0 }

func (toZero) Round(f *Format, wide uint64, _ bool) (uint64, bool) {
	// masking drops the implicit bit, which sits right above the stored bits
	return wide & mathutil.Mask(f.layout.MantBits), false
}

type toNearestEven struct{}

func (toNearestEven) GuardBits() int { return 3 }

func (toNearestEven) Round(f *Format, wide uint64, _ bool) (uint64, bool) {
	max := mathutil.Mask(f.layout.MantBits)
	grs := wide & 0b111
	mant := wide >> 3 & max
	if grs < 0b100 || grs == 0b100 && mant&1 == 0 {
		return mant, false
	}
	mant++
	if mant > max {
		return 0, true
	}
	return mant, false
}
