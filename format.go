// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package binfloat converts binary floating-point values between their
// packed storage representation and an unpacked form suitable for
// computation. A format is described by an arbitrary bit layout, e.g.
// for an 8-bit format with 5 exponent and 2 mantissa bits:
//
//	7      2      0
//	_______|_______
//	s e e e e e m m
//
// Fields may sit at any offsets, and the storage word may carry unused
// padding bits. The leading mantissa bit can be implied (1 for normal
// numbers, 0 for denormals) rather than stored, as in IEEE 754.
package binfloat

import (
	"fmt"

	"github.com/avdva/binfloat/bitwidth"
	"github.com/avdva/binfloat/internal/mathutil"
)

// AutoBias makes New derive the exponent bias as 2^(ExpBits-1) - 1.
const AutoBias = -1

// Layout describes the bit-level geometry of a format.
// Offsets are measured from the least significant bit of the storage word.
type Layout struct {
	SignBits   int
	SignOffset int
	ExpBits    int
	ExpOffset  int
	MantBits   int
	MantOffset int
	TotalBits  int
	// ImplicitBit tells whether the leading mantissa bit is implied
	// rather than stored.
	ImplicitBit bool
	// Bias is the exponent bias, or AutoBias.
	Bias int
	// Width selects the integer representations backing the fields.
	Width bitwidth.Policy
	// Denormal is the declared denormal treatment, see DenormalPolicy.
	Denormal DenormalPolicy
}

type layoutError struct {
	field string
	msg   string
}

func newLayoutError(field, msg string) *layoutError {
	return &layoutError{field: field, msg: msg}
}

func (le layoutError) Error() string {
	return le.field + " " + le.msg
}

// Format is an immutable format descriptor. Once constructed it is never
// mutated and is safe to share between goroutines and call sites.
type Format struct {
	layout Layout
	bias   int

	storage  bitwidth.Width
	exponent bitwidth.Width
	mantissa bitwidth.Width

	storageMask uint64
	signField   uint64
	expField    uint64
	mantField   uint64
}

// New validates a layout and returns a descriptor for it.
// A layout is rejected if any field is empty, extends beyond TotalBits,
// or if TotalBits cannot hold all the fields. No partially valid
// descriptor is ever returned.
func New(l Layout) (*Format, error) {
	fields := []struct {
		name         string
		bits, offset int
	}{
		{"sign", l.SignBits, l.SignOffset},
		{"exponent", l.ExpBits, l.ExpOffset},
		{"mantissa", l.MantBits, l.MantOffset},
	}
	for _, f := range fields {
		if f.bits <= 0 {
			return nil, newLayoutError(f.name, "field must have at least 1 bit")
		}
		if f.offset < 0 {
			return nil, newLayoutError(f.name, "field offset must not be negative")
		}
		if f.offset+f.bits > l.TotalBits {
			return nil, newLayoutError(f.name, "field extends beyond total bits")
		}
	}
	if l.TotalBits < l.SignBits+l.ExpBits+l.MantBits {
		return nil, newLayoutError("total", "bits must be at least the sum of field bits")
	}
	if l.Denormal != FullSupport {
		return nil, fmt.Errorf("denormal policy %v is not implemented", l.Denormal)
	}
	if l.Bias < 0 && l.Bias != AutoBias {
		return nil, fmt.Errorf("negative exponent bias %d", l.Bias)
	}
	storage, err := bitwidth.Unsigned(l.TotalBits, l.Width)
	if err != nil {
		return nil, err
	}
	exponent, err := bitwidth.Unsigned(l.ExpBits, l.Width)
	if err != nil {
		return nil, err
	}
	mantissa, err := bitwidth.Unsigned(l.MantBits, l.Width)
	if err != nil {
		return nil, err
	}
	bias := l.Bias
	if bias == AutoBias {
		bias = 1<<uint(l.ExpBits-1) - 1
	}
	return &Format{
		layout:      l,
		bias:        bias,
		storage:     storage,
		exponent:    exponent,
		mantissa:    mantissa,
		storageMask: mathutil.Mask(l.TotalBits),
		signField:   mathutil.Mask(l.SignBits) << uint(l.SignOffset),
		expField:    mathutil.Mask(l.ExpBits) << uint(l.ExpOffset),
		mantField:   mathutil.Mask(l.MantBits) << uint(l.MantOffset),
	}, nil
}

// IEEE returns a descriptor for a standard layout: sign at the most
// significant bit, exponent below it, mantissa at the least significant
// bits, no padding, implicit leading bit, auto bias.
func IEEE(expBits, mantBits int) (*Format, error) {
	return New(Layout{
		SignBits:    1,
		SignOffset:  expBits + mantBits,
		ExpBits:     expBits,
		ExpOffset:   mantBits,
		MantBits:    mantBits,
		MantOffset:  0,
		TotalBits:   1 + expBits + mantBits,
		ImplicitBit: true,
		Bias:        AutoBias,
	})
}

// MustIEEE is like IEEE, but panics on error.
func MustIEEE(expBits, mantBits int) *Format {
	f, err := IEEE(expBits, mantBits)
	if err != nil {
		panic(err)
	}
	return f
}

// Common formats. The naming for the 8-bit ones follows the usual
// e{exp_bits}m{mant_bits} convention.
var (
	// E5M2 is an 8-bit format with 5 exponent and 2 mantissa bits.
	E5M2 = MustIEEE(5, 2)
	// E4M3 is an 8-bit format with 4 exponent and 3 mantissa bits.
	E4M3 = MustIEEE(4, 3)
	// Binary16 is IEEE 754 half precision.
	Binary16 = MustIEEE(5, 10)
	// Binary32 is IEEE 754 single precision.
	Binary32 = MustIEEE(8, 23)
	// Binary64 is IEEE 754 double precision.
	Binary64 = MustIEEE(11, 52)
)

// Layout returns the geometry the descriptor was built from.
func (f *Format) Layout() Layout {
	return f.layout
}

// Bias returns the exponent bias, derived or explicit.
func (f *Format) Bias() int {
	return f.bias
}

// StorageWidth returns the representation backing the whole storage word.
func (f *Format) StorageWidth() bitwidth.Width {
	return f.storage
}

// ExponentWidth returns the representation backing the exponent field.
func (f *Format) ExponentWidth() bitwidth.Width {
	return f.exponent
}

// MantissaWidth returns the representation backing the stored mantissa field.
func (f *Format) MantissaWidth() bitwidth.Width {
	return f.mantissa
}

// IsStandardLayout reports whether the format is laid out the IEEE 754 way:
// a single sign bit at the most significant position, exponent and mantissa
// contiguous below it, mantissa at offset zero, and no padding.
// The predicate is informational, nothing in pack or unpack depends on it.
func (f *Format) IsStandardLayout() bool {
	l := f.layout
	return l.SignBits == 1 &&
		l.SignOffset == l.ExpOffset+l.ExpBits &&
		l.ExpOffset == l.MantOffset+l.MantBits &&
		l.MantOffset == 0 &&
		l.TotalBits == l.SignBits+l.ExpBits+l.MantBits
}

// MaxExponent returns the largest raw biased exponent field value.
func (f *Format) MaxExponent() uint64 {
	return mathutil.Mask(f.layout.ExpBits)
}

// MaxMantissa returns the largest stored mantissa field value.
func (f *Format) MaxMantissa() uint64 {
	return mathutil.Mask(f.layout.MantBits)
}

func (f *Format) String() string {
	l := f.layout
	return fmt.Sprintf("s:%d@%d e:%d@%d m:%d@%d/%d bias %d",
		l.SignBits, l.SignOffset, l.ExpBits, l.ExpOffset, l.MantBits, l.MantOffset, l.TotalBits, f.bias)
}
