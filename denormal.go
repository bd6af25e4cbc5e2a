// Copyright 2020 Aleksandr Demakin. All rights reserved.

package binfloat

import "fmt"

// DenormalPolicy declares how values with a zero exponent field are to be
// treated. Only FullSupport is implemented: unpack and pack provide IEEE 754
// gradual underflow. The remaining policies are reserved configuration
// values, New rejects a layout that names one of them, so behavior can
// never silently diverge from the declared policy.
type DenormalPolicy uint8

const (
	// FullSupport keeps denormal values as encoded (gradual underflow).
	FullSupport DenormalPolicy = iota
	// FlushToZero flushes denormal results to zero, inputs pass through.
	FlushToZero
	// FlushInputsToZero treats denormal inputs as zero.
	FlushInputsToZero
	// FlushOnZero flushes both denormal inputs and results to zero.
	FlushOnZero
	// NoDenormals declares that a zero exponent field always means zero.
	NoDenormals
)

func (p DenormalPolicy) String() string {
	switch p {
	case FullSupport:
		return "FullSupport"
	case FlushToZero:
		return "FlushToZero"
	case FlushInputsToZero:
		return "FlushInputsToZero"
	case FlushOnZero:
		return "FlushOnZero"
	case NoDenormals:
		return "NoDenormals"
	}
	return fmt.Sprintf("DenormalPolicy(%d)", uint8(p))
}
