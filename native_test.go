// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f    *Format
		bits uint64
		want float64
	}{
		{E5M2, 0x00, 0},
		{E5M2, 0xB3, -0.21875},
		{E5M2, 0x01, 0.0000152587890625},
		{E5M2, 0x7C, 65536},
		{E5M2, 0x40, 2},
		{E4M3, 0xB5, -0.8125},
		{E4M3, 0x07, 0.013671875},
		{Binary16, 0x3C00, 1},
		{Binary16, 0xC000, -2},
		{Binary32, uint64(math.Float32bits(1.5)), 1.5},
		{Binary64, math.Float64bits(-1.0 / 3), -1.0 / 3},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			c := NewCodec(test.f, ToNearestEven)
			a.Equal(test.want, Float[float64](c, test.bits))
			a.Equal(float32(test.want), Float[float32](c, test.bits))
		})
	}
}

func TestFromFloat(t *testing.T) {
	a := assert.New(t)
	c := NewCodec(E5M2, ToNearestEven)
	tests := []struct {
		f    float64
		bits uint64
		err  bool
	}{
		{0, 0x00, false},
		{math.Copysign(0, -1), 0x80, false},
		{0.21875, 0x33, false},
		{-0.21875, 0xB3, false},
		{65536, 0x7C, false},
		{2, 0x40, false},
		// rounding up crosses a power of two: 1.97 becomes 2.0
		{1.97, 0x40, false},
		// the scaling to guard-bit precision already carries: the largest
		// fraction below 2.0 at that precision still becomes 2.0
		{1.984375, 0x40, false},
		{-1.984375, 0xC0, false},
		// too large for the format: saturates below the top exponent
		{1e9, 0x7B, false},
		{-1e9, 0xFB, false},
		// carry at the very top exponent saturates as well
		{1.97 * 65536, 0x7B, false},
		{1.984375 * 65536, 0x7B, false},
		// below the smallest normal: flushed to zero, sign kept
		{1e-9, 0x00, false},
		{-1e-9, 0x80, false},

		{math.NaN(), 0, true},
		{math.Inf(1), 0, true},
		{math.Inf(-1), 0, true},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			bits, err := FromFloat(c, test.f)
			if test.err {
				a.EqualError(err, "not a finite number")
			} else {
				if a.NoError(err) {
					a.Equal(test.bits, bits)
				}
			}
		})
	}
}

func TestFromFloat32(t *testing.T) {
	a := assert.New(t)
	c := NewCodec(E4M3, ToNearestEven)
	bits, err := FromFloat(c, float32(-0.8125))
	if a.NoError(err) {
		a.Equal(uint64(0xB5), bits)
	}
}

// Every normal number survives a decode/encode round trip; denormals are
// flushed to zero by FromFloat, keeping only the sign.
func TestNativeRoundTrip(t *testing.T) {
	a := assert.New(t)
	for _, f := range []*Format{E5M2, E4M3} {
		c := NewCodec(f, ToNearestEven)
		for bits := uint64(0); bits < 256; bits++ {
			back, err := FromFloat(c, Float[float64](c, bits))
			if !a.NoError(err) {
				continue
			}
			if c.Unpack(bits).Exponent != 0 {
				a.Equal(bits, back, "bits %#x", bits)
			} else {
				a.Equal(bits&f.signField, back, "bits %#x", bits)
			}
		}
	}
}
