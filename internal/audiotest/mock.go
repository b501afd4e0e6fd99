// SPDX-License-Identifier: EPL-2.0

// Package audiotest builds synthetic stereo PCM inputs for tests.
// It does not import the other packages of this module to avoid cycles.
package audiotest

import (
	"bytes"
	"encoding/binary"
	"math"
)

// HeaderSize is the size of the canonical RIFF/WAVE header written by WAV.
const HeaderSize = 44

// Frame is one stereo frame given as left and right samples.
type Frame struct {
	Left, Right int16
}

// Header returns a canonical 44-byte PCM WAV header describing dataSize
// bytes of audio.
func Header(sampleRate, channels, bitsPerSample int, dataSize uint32) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)

	// RIFF header
	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16)) // chunk size
	binary.Write(buf, binary.LittleEndian, uint16(1))  // PCM format
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	// data chunk
	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)

	return buf.Bytes()
}

// FrameBytes encodes frames as interleaved little-endian samples.
func FrameBytes(frames []Frame) []byte {
	out := make([]byte, 0, len(frames)*4)
	for _, f := range frames {
		out = binary.LittleEndian.AppendUint16(out, uint16(f.Left))
		out = binary.LittleEndian.AppendUint16(out, uint16(f.Right))
	}
	return out
}

// StereoWAV returns a complete 16-bit stereo WAV file holding frames.
func StereoWAV(sampleRate int, frames []Frame) []byte {
	data := FrameBytes(frames)
	return append(Header(sampleRate, 2, 16, uint32(len(data))), data...)
}

// RawWAV returns a 16-bit stereo WAV header followed by data as is.
// The header declares len(data) bytes, even when data is not a whole
// number of frames.
func RawWAV(sampleRate int, data []byte) []byte {
	return append(Header(sampleRate, 2, 16, uint32(len(data))), data...)
}

// NewFrames generates n frames using waveform for each channel.
func NewFrames(n int, waveform func(frame int, channel int) int16) []Frame {
	frames := make([]Frame, n)
	for i := range n {
		frames[i] = Frame{Left: waveform(i, 0), Right: waveform(i, 1)}
	}
	return frames
}

// SilentFrames returns n frames of silence.
func SilentFrames(n int) []Frame {
	return NewFrames(n, func(int, int) int16 { return 0 })
}

// SineFrames returns n frames of a full-scale sine at frequency, identical
// on both channels.
func SineFrames(n, sampleRate int, frequency float64) []Frame {
	return NewFrames(n, func(frame int, _ int) int16 {
		t := float64(frame) / float64(sampleRate)
		return int16(math.Sin(2*math.Pi*frequency*t) * math.MaxInt16)
	})
}

// ConstantFrames returns n frames with fixed left and right values.
func ConstantFrames(n int, left, right int16) []Frame {
	return NewFrames(n, func(_ int, channel int) int16 {
		if channel == 0 {
			return left
		}
		return right
	})
}
