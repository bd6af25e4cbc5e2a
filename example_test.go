// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat_test

import (
	"fmt"

	"github.com/avdva/binfloat"
)

func ExampleCodec() {
	c := binfloat.NewCodec(binfloat.E5M2, binfloat.ToNearestEven)

	u := c.Unpack(0xB3)
	fmt.Printf("sign=%v exponent=%d mantissa=%#b\n", u.Sign, u.Exponent, u.Mantissa)
	fmt.Println(c.FormatBits(0xB3))

	bits, overflow := c.Pack(u)
	fmt.Printf("%#x overflow=%v\n", bits, overflow)

	// Output:
	// sign=true exponent=12 mantissa=0b111000
	// -0.21875
	// 0xb3 overflow=false
}

func ExampleNew() {
	// a 12-bit storage word wrapping a 1-4-3 format,
	// with 3 unused leading and 1 unused trailing bit
	f, err := binfloat.New(binfloat.Layout{
		SignBits: 1, SignOffset: 8,
		ExpBits: 4, ExpOffset: 4,
		MantBits: 3, MantOffset: 1,
		TotalBits:   12,
		ImplicitBit: true,
		Bias:        binfloat.AutoBias,
	})
	if err != nil {
		panic(err)
	}
	c := binfloat.NewCodec(f, binfloat.ToZero)

	// pack always emits zeros in the unused positions
	bits, _ := c.Pack(c.Unpack(0b111_1_1011_010_1))
	fmt.Printf("%012b\n", bits)

	// Output:
	// 000110110100
}

func ExampleFromFloat() {
	c := binfloat.NewCodec(binfloat.E4M3, binfloat.ToNearestEven)

	bits, err := binfloat.FromFloat(c, -0.8125)
	if err != nil {
		panic(err)
	}
	fmt.Println(c.EncodeHex(bits))
	fmt.Println(binfloat.Float[float64](c, bits))

	// Output:
	// b5
	// -0.8125
}
