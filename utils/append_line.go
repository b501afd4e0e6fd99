// SPDX-License-Identifier: EPL-2.0

package utils

import "strconv"

// AppendIntLine appends v in base 10 followed by a newline to dst.
func AppendIntLine(dst []byte, v int) []byte {
	dst = strconv.AppendInt(dst, int64(v), 10)
	return append(dst, '\n')
}
