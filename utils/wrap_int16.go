// SPDX-License-Identifier: EPL-2.0

package utils

// WrapInt16 maps a raw 16-bit bit pattern into the signed int16 range.
// Values of 32768 and above have 65536 subtracted; anything else is
// returned untouched.
func WrapInt16(raw int) int {
	if raw >= 32768 {
		return raw - 65536
	}

	return raw
}
