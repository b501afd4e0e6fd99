// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"strings"

	"github.com/ik5/pcmsplit/utils"
)

// Arithmetic selects how raw bytes are interpreted while averaging
// channels and rebuilding the amplitude.
type Arithmetic int

const (
	// Signed reads every byte as an int8 and is the default. Sums are
	// divided with truncation toward zero, and a negative low byte
	// sign-extends over the high byte during reconstruction.
	Signed Arithmetic = iota
	// Unsigned reads every byte as 0..255 and maps the rebuilt 16-bit
	// pattern into the int16 range.
	Unsigned
)

func (a Arithmetic) String() string {
	switch a {
	case Signed:
		return "signed"
	case Unsigned:
		return "unsigned"
	}
	return fmt.Sprintf("arithmetic(%d)", int(a))
}

// ParseArithmetic converts a name ("signed" or "unsigned") into an Arithmetic.
func ParseArithmetic(s string) (Arithmetic, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "signed", "":
		return Signed, nil
	case "unsigned":
		return Unsigned, nil
	}
	return Signed, fmt.Errorf("%w: %q", ErrUnknownArithmetic, s)
}

// Set implements the pflag.Value interface.
func (a *Arithmetic) Set(s string) error {
	v, err := ParseArithmetic(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Type implements the pflag.Value interface.
func (a *Arithmetic) Type() string { return "arithmetic" }

// average returns the truncated mean of two bytes.
func (a Arithmetic) average(x, y byte) byte {
	if a == Unsigned {
		return byte((int(x) + int(y)) / 2)
	}

	// Go's integer division truncates toward zero, so the result stays
	// inside the int8 range.
	return byte(int8((int(int8(x)) + int(int8(y))) / 2))
}

// amplitude rebuilds a signed amplitude from the averaged low/high bytes.
func (a Arithmetic) amplitude(low, high byte) int {
	var raw int
	if a == Unsigned {
		raw = int(high)<<8 | int(low)
	} else {
		raw = int(int8(high))<<8 | int(int8(low))
	}

	return utils.WrapInt16(raw)
}
