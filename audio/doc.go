// SPDX-License-Identifier: EPL-2.0

// Package audio provides the byte-level stereo to mono primitives.
//
// # Frames
//
// A Frame is one interleaved stereo frame of 16-bit little-endian PCM:
//
//	[ left low | left high | right low | right high ]
//
// A MonoFrame is the 2-byte result of averaging the matching bytes of both
// channels:
//
//	mono[0] = (frame[0] + frame[2]) / 2
//	mono[1] = (frame[1] + frame[3]) / 2
//
// # Arithmetic
//
// The averaging works on individual bytes, not on whole samples, so the way
// a byte is read matters as soon as its high bit is set. Two modes exist:
//
//   - Signed (default): bytes are int8 values. Sums are divided with
//     truncation toward zero and the amplitude is rebuilt from the int8
//     values, so a negative low byte sign-extends across the high byte.
//   - Unsigned: bytes are 0..255 values, the amplitude is rebuilt from the
//     16-bit pattern and wrapped into [-32768, 32767].
//
// Both modes agree whenever no byte has its high bit set, and averaging two
// identical channels is a no-op in both.
//
// # Channel Mixing
//
//	mixer := audio.NewMonoMixer(audio.Signed)
//	mono, amplitude := mixer.Decode(audio.Frame{0x10, 0x20, 0x10, 0x20})
//	// mono == audio.MonoFrame{0x10, 0x20}, amplitude == 8208
//
// MixBuffer does the same for a whole byte slice of frames.
package audio
