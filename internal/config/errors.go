// SPDX-License-Identifier: EPL-2.0

package config

import (
	"errors"

	"github.com/ik5/pcmsplit/formats/wav"
)

var (
	ErrMissingPath       = errors.New("path is required")
	ErrInvalidHeaderSize = wav.ErrInvalidHeaderSize
	ErrInvalidSampleRate = wav.ErrInvalidSampleRate
)
