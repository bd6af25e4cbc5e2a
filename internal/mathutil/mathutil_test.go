package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMask(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(0), Mask(0))
	a.Equal(uint64(0), Mask(-1))
	a.Equal(uint64(1), Mask(1))
	a.Equal(uint64(0xFF), Mask(8))
	a.Equal(uint64(0x7FFFFFFFFFFFFFFF), Mask(63))
	a.Equal(^uint64(0), Mask(64))
	a.Equal(^uint64(0), Mask(100))
}

func TestBit(t *testing.T) {
	a := assert.New(t)
	a.Equal(uint64(1), Bit(0))
	a.Equal(uint64(0x20), Bit(5))
	a.Equal(uint64(1)<<63, Bit(63))
}

func TestAbsInt(t *testing.T) {
	a := assert.New(t)
	a.Equal(0, AbsInt(0))
	a.Equal(5, AbsInt(5))
	a.Equal(5, AbsInt(-5))
}
