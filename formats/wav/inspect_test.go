// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/ik5/pcmsplit/internal/audiotest"
)

func TestInspect_StereoPCM16(t *testing.T) {
	t.Parallel()

	frames := audiotest.SineFrames(8000, 8000, 440)
	data := audiotest.StereoWAV(8000, frames)

	info, err := Inspect(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	if info.Channels != 2 {
		t.Errorf("Channels = %d, want 2", info.Channels)
	}
	if info.SampleRate != 8000 {
		t.Errorf("SampleRate = %d, want 8000", info.SampleRate)
	}
	if info.BitDepth != 16 {
		t.Errorf("BitDepth = %d, want 16", info.BitDepth)
	}
	if info.AudioFormat != 1 {
		t.Errorf("AudioFormat = %d, want 1", info.AudioFormat)
	}
	if !info.IsPCM16Stereo() {
		t.Error("IsPCM16Stereo() = false, want true")
	}
	if info.DataBytes != int64(len(frames)*4) {
		t.Errorf("DataBytes = %d, want %d", info.DataBytes, len(frames)*4)
	}
	if info.Frames() != int64(len(frames)) {
		t.Errorf("Frames() = %d, want %d", info.Frames(), len(frames))
	}
	if info.Duration() != time.Second {
		t.Errorf("Duration() = %v, want 1s", info.Duration())
	}
}

func TestInspect_MonoIsNotStereo(t *testing.T) {
	t.Parallel()

	data := append(audiotest.Header(16000, 1, 16, 4), 0, 0, 0, 0)

	info, err := Inspect(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if info.Channels != 1 {
		t.Errorf("Channels = %d, want 1", info.Channels)
	}
	if info.IsPCM16Stereo() {
		t.Error("IsPCM16Stereo() = true for a mono file")
	}
	if info.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", info.Frames())
	}
}

func TestInspect_NotWav(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "text", data: []byte("NOT A WAV FILE DATA, JUST SOME TEXT BYTES...")},
		{name: "truncated", data: []byte("RIFF\x00")},
		{name: "empty", data: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Inspect(bytes.NewReader(tt.data))
			if !errors.Is(err, ErrNotWavFile) {
				t.Errorf("Inspect() error = %v, want ErrNotWavFile", err)
			}
		})
	}
}

func TestInfo_ZeroValues(t *testing.T) {
	t.Parallel()

	var info Info
	if info.FrameSize() != 0 || info.Frames() != 0 || info.Duration() != 0 {
		t.Errorf("zero Info = (%d, %d, %v), want zeros", info.FrameSize(), info.Frames(), info.Duration())
	}
	if info.IsPCM16Stereo() {
		t.Error("zero Info.IsPCM16Stereo() = true")
	}
}
