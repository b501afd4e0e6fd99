// SPDX-License-Identifier: EPL-2.0

package pcmsplit

import "errors"

var (
	ErrOpenInput  = errors.New("cannot open input")
	ErrOpenOutput = errors.New("cannot open output")
)
