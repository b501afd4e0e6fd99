// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"
	"time"

	gowav "github.com/go-audio/wav"
)

// formatPCM is the WAVE_FORMAT_PCM tag of the fmt chunk.
const formatPCM = 1

// Info is what the RIFF header says about a WAV file.
type Info struct {
	AudioFormat int
	Channels    int
	SampleRate  int
	BitDepth    int
	// DataBytes is the declared size of the data chunk.
	DataBytes int64
}

// Inspect parses the RIFF header of rs. It is independent from SkipHeader,
// which never looks at the header contents.
func Inspect(rs io.ReadSeeker) (Info, error) {
	d := gowav.NewDecoder(rs)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return Info{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if d.NumChans == 0 || d.SampleRate == 0 {
		return Info{}, ErrNotWavFile
	}

	info := Info{
		AudioFormat: int(d.WavAudioFormat),
		Channels:    int(d.NumChans),
		SampleRate:  int(d.SampleRate),
		BitDepth:    int(d.BitDepth),
	}

	if err := d.FwdToPCM(); err != nil {
		return info, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}
	info.DataBytes = d.PCMLen()

	return info, nil
}

// IsPCM16Stereo reports whether the file is the layout the splitter expects.
func (i Info) IsPCM16Stereo() bool {
	return i.AudioFormat == formatPCM && i.Channels == 2 && i.BitDepth == 16
}

// FrameSize returns the number of bytes per frame, or 0 if unknown.
func (i Info) FrameSize() int {
	return i.Channels * i.BitDepth / 8
}

// Frames returns the number of whole frames in the data chunk.
func (i Info) Frames() int64 {
	fs := i.FrameSize()
	if fs == 0 {
		return 0
	}
	return i.DataBytes / int64(fs)
}

// Duration returns the playback length of the data chunk.
func (i Info) Duration() time.Duration {
	if i.SampleRate <= 0 {
		return 0
	}
	return time.Duration(i.Frames()) * time.Second / time.Duration(i.SampleRate)
}
