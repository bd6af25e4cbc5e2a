// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package bitwidth selects a concrete integer representation for an N-bit
// field. Go has no arbitrary-width integers, so a selection is a pair of
// widths: the logical width of the field and the standard word (8, 16, 32,
// or 64 bits) backing it. Values of a logical width narrower than its word
// are kept masked by the code operating on them.
package bitwidth

import (
	"errors"
	"fmt"
)

// Policy governs how a backing word is chosen for a requested bit count.
type Policy uint8

const (
	// Exact keeps the requested logical width and backs it with the
	// smallest standard word that holds it.
	Exact Policy = iota
	// Least widens the field to the smallest standard size with at least
	// the requested number of bits.
	Least
	// Fastest widens the field to the machine word.
	Fastest
)

// MaxBits is the widest representable field.
const MaxBits = 64

// ErrRange is returned when no standard word can hold the requested width.
var ErrRange = errors.New("bit width out of range")

func (p Policy) String() string {
	switch p {
	case Exact:
		return "Exact"
	case Least:
		return "Least"
	case Fastest:
		return "Fastest"
	}
	return fmt.Sprintf("Policy(%d)", uint8(p))
}

// Width is a selected representation: Bits is the logical field width,
// Word is the width of the backing integer.
type Width struct {
	Bits int
	Word int
}

// Mask returns a mask with the low Bits bits set.
func (w Width) Mask() uint64 {
	if w.Bits >= MaxBits {
		return ^uint64(0)
	}
	return 1<<uint(w.Bits) - 1
}

// Max returns the maximum unsigned value of the logical width.
func (w Width) Max() uint64 {
	return w.Mask()
}

// Bytes returns the storage size of the backing word.
func (w Width) Bytes() int {
	return w.Word / 8
}

// Unsigned selects an unsigned representation for the given number of bits.
func Unsigned(bits int, p Policy) (Width, error) {
	if bits < 1 || bits > MaxBits {
		return Width{}, fmt.Errorf("unsigned width %d: %w", bits, ErrRange)
	}
	return choose(bits, p), nil
}

// Signed selects a signed representation for the given number of bits.
// With the Exact policy at least 2 bits are required, as a 1-bit two's
// complement number does not exist. Least and Fastest map a 1-bit request
// to the smallest suitable standard size.
func Signed(bits int, p Policy) (Width, error) {
	if bits < 1 || bits > MaxBits {
		return Width{}, fmt.Errorf("signed width %d: %w", bits, ErrRange)
	}
	if p == Exact && bits < 2 {
		return Width{}, fmt.Errorf("signed width %d: %w", bits, ErrRange)
	}
	return choose(bits, p), nil
}

func choose(bits int, p Policy) Width {
	switch p {
	case Least:
		w := least(bits)
		return Width{Bits: w, Word: w}
	case Fastest:
		return Width{Bits: MaxBits, Word: MaxBits}
	default:
		return Width{Bits: bits, Word: least(bits)}
	}
}

func least(bits int) int {
	switch {
	case bits <= 8:
		return 8
	case bits <= 16:
		return 16
	case bits <= 32:
		return 32
	default:
		return 64
	}
}
