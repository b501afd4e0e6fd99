// SPDX-License-Identifier: EPL-2.0

package audio

import "encoding/binary"

const (
	// FrameSize is the size in bytes of one interleaved stereo frame.
	FrameSize = 4
	// MonoFrameSize is the size in bytes of one down-mixed frame.
	MonoFrameSize = 2
)

// Frame is one stereo frame: two little-endian int16 samples, left first.
type Frame [FrameSize]byte

// MonoFrame is the down-mixed version of a Frame.
type MonoFrame [MonoFrameSize]byte

// Left returns the left channel sample.
func (f Frame) Left() int16 { return int16(binary.LittleEndian.Uint16(f[0:2])) }

// Right returns the right channel sample.
func (f Frame) Right() int16 { return int16(binary.LittleEndian.Uint16(f[2:4])) }

// NewFrame packs left and right samples into a Frame.
func NewFrame(left, right int16) Frame {
	var f Frame
	binary.LittleEndian.PutUint16(f[0:2], uint16(left))
	binary.LittleEndian.PutUint16(f[2:4], uint16(right))
	return f
}
