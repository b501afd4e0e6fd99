// SPDX-License-Identifier: EPL-2.0

package audio

// MonoMixer down-mixes stereo frames into mono frames and decodes the
// resulting amplitude. The zero value uses Signed arithmetic.
type MonoMixer struct {
	arith Arithmetic
}

func NewMonoMixer(arith Arithmetic) *MonoMixer {
	return &MonoMixer{arith: arith}
}

func (m *MonoMixer) Arithmetic() Arithmetic { return m.arith }

// Mix averages the low bytes and the high bytes of both channels.
func (m *MonoMixer) Mix(f Frame) MonoFrame {
	return MonoFrame{
		m.arith.average(f[0], f[2]),
		m.arith.average(f[1], f[3]),
	}
}

// Amplitude rebuilds the signed amplitude of a mixed frame as
// (high << 8) | low, wrapped into [-32768, 32767].
func (m *MonoMixer) Amplitude(mf MonoFrame) int {
	return m.arith.amplitude(mf[0], mf[1])
}

// Decode mixes f and returns both the mono frame and its amplitude.
func (m *MonoMixer) Decode(f Frame) (MonoFrame, int) {
	mf := m.Mix(f)
	return mf, m.Amplitude(mf)
}

// MixBuffer down-mixes every whole frame of src into dst and returns the
// number of frames mixed. dst must hold MonoFrameSize bytes per frame.
// A trailing partial frame in src is ignored.
func (m *MonoMixer) MixBuffer(dst, src []byte) (int, error) {
	frames := len(src) / FrameSize
	if len(dst) < frames*MonoFrameSize {
		return 0, ErrInvalidDstSize
	}

	for i := range frames {
		var f Frame
		copy(f[:], src[i*FrameSize:])
		mf := m.Mix(f)
		copy(dst[i*MonoFrameSize:], mf[:])
	}

	return frames, nil
}
