// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize    = errors.New("dst size must hold one mono frame per stereo frame")
	ErrUnknownArithmetic = errors.New("unknown arithmetic, want signed or unsigned")
)
