// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/avdva/binfloat/internal/mathutil"
)

var big5 = big.NewInt(5)

// Decimal returns the exact decimal value encoded by storage bits.
// Every finite binary fraction has a finite decimal expansion
// (mant*2^-k == mant*5^k * 10^-k), so no precision is ever lost.
func (c *Codec) Decimal(bits uint64) decimal.Decimal {
	u := c.Unpack(bits)
	mant := new(big.Int).SetUint64(u.Mantissa >> uint(c.guard))
	e := c.trueExponent(u) - c.fracBits()
	var d decimal.Decimal
	if e >= 0 {
		d = decimal.NewFromBigInt(mant.Lsh(mant, uint(e)), 0)
	} else {
		abs := mathutil.AbsInt(e)
		pow := new(big.Int).Exp(big5, big.NewInt(int64(abs)), nil)
		d = decimal.NewFromBigInt(mant.Mul(mant, pow), int32(e))
	}
	if u.Sign {
		d = d.Neg()
	}
	return d
}

// FormatBits renders the value encoded by storage bits as a decimal string.
func (c *Codec) FormatBits(bits uint64) string {
	return c.Decimal(bits).String()
}

// EncodeHex renders storage bits as a fixed-width hexadecimal string, one
// digit per four storage bits. This is the interchange form of a packed
// value carried over a text transport; the receiving side must agree on
// the descriptor out-of-band, the string is not self-describing.
func (c *Codec) EncodeHex(bits uint64) string {
	digits := (c.format.layout.TotalBits + 3) / 4
	return fmt.Sprintf("%0*x", digits, bits&c.format.storageMask)
}

// DecodeHex parses a string produced by EncodeHex.
// Returns an error if the value does not fit the storage width.
func (c *Codec) DecodeHex(s string) (uint64, error) {
	bits, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing failed: %w", err)
	}
	if bits&^c.format.storageMask != 0 {
		return 0, fmt.Errorf("value %q exceeds %d storage bits", s, c.format.layout.TotalBits)
	}
	return bits, nil
}
