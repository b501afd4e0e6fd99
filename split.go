// SPDX-License-Identifier: EPL-2.0

package pcmsplit

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ik5/pcmsplit/audio"
	"github.com/ik5/pcmsplit/formats/wav"
	"github.com/ik5/pcmsplit/utils"
)

// Options controls a Splitter.
type Options struct {
	// HeaderSize is the number of leading bytes skipped before the first
	// frame. Zero means the input has no header.
	HeaderSize int
	// Arithmetic picks how bytes are read while averaging. The zero value
	// is audio.Signed.
	Arithmetic audio.Arithmetic
	// SampleRate is used for the mono WAV output when the input header
	// does not declare a usable rate. Only SplitFiles reads it.
	SampleRate int
	// Logger receives diagnostics. Nil means slog.Default().
	Logger *slog.Logger
}

// DefaultOptions returns the options for a canonical 44-byte WAV header.
func DefaultOptions() Options {
	return Options{
		HeaderSize: wav.HeaderSize,
		Arithmetic: audio.Signed,
		SampleRate: 44100,
	}
}

// SampleWriter receives one decoded amplitude per frame.
type SampleWriter interface {
	WriteSample(v int) error
}

// Outputs are the destinations of one split. Nil fields are discarded.
type Outputs struct {
	Stereo     io.Writer
	Mono       io.Writer
	Amplitudes io.Writer
	MonoWAV    SampleWriter
}

// Stats describes what a split consumed and produced.
type Stats struct {
	HeaderBytes int
	Frames      int
	// TrailingBytes is the size of the incomplete frame left at the end of
	// the input, which is dropped.
	TrailingBytes int
	// ShortInput is set when the input ended inside the header.
	ShortInput bool
}

func (s Stats) StereoBytes() int { return s.Frames * audio.FrameSize }
func (s Stats) MonoBytes() int   { return s.Frames * audio.MonoFrameSize }
func (s Stats) Lines() int       { return s.Frames }

// Splitter skips the header of a stereo PCM stream and splits every frame
// into its raw copy, its mono down-mix and its decoded amplitude.
type Splitter struct {
	headerSize int
	mixer      *audio.MonoMixer
	log        *slog.Logger
}

func NewSplitter(opts Options) *Splitter {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Splitter{
		headerSize: opts.HeaderSize,
		mixer:      audio.NewMonoMixer(opts.Arithmetic),
		log:        logger,
	}
}

// Split reads r until fewer than audio.FrameSize bytes remain.
//
// An input that ends inside the header is logged as a warning and yields
// no frames. A trailing partial frame is dropped without a diagnostic.
// Split does not buffer; wrap r and the writers when they are files.
func (s *Splitter) Split(r io.Reader, out Outputs) (Stats, error) {
	var st Stats

	if s.mixer.Arithmetic() == audio.Unsigned {
		s.log.Info("using unsigned byte arithmetic, output differs from signed arithmetic for bytes >= 0x80")
	}

	n, err := wav.SkipHeader(r, s.headerSize)
	st.HeaderBytes = n
	switch {
	case errors.Is(err, wav.ErrEmptyInput), errors.Is(err, wav.ErrShortHeader):
		st.ShortInput = true
		s.log.Warn("input is empty or shorter than the header", "header_size", s.headerSize, "read", n)
	case err != nil:
		return st, err
	}

	stereo := orDiscard(out.Stereo)
	mono := orDiscard(out.Mono)
	amplitudes := orDiscard(out.Amplitudes)

	var frame audio.Frame
	line := make([]byte, 0, 8)

	for {
		n, err := io.ReadFull(r, frame[:])
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			st.TrailingBytes = n
			break
		}
		if err != nil {
			return st, fmt.Errorf("reading frame %d: %w", st.Frames, err)
		}

		if _, err := stereo.Write(frame[:]); err != nil {
			return st, fmt.Errorf("writing stereo frame %d: %w", st.Frames, err)
		}

		mf, amplitude := s.mixer.Decode(frame)
		if _, err := mono.Write(mf[:]); err != nil {
			return st, fmt.Errorf("writing mono frame %d: %w", st.Frames, err)
		}

		line = utils.AppendIntLine(line[:0], amplitude)
		if _, err := amplitudes.Write(line); err != nil {
			return st, fmt.Errorf("writing amplitude %d: %w", st.Frames, err)
		}

		if out.MonoWAV != nil {
			if err := out.MonoWAV.WriteSample(amplitude); err != nil {
				return st, fmt.Errorf("writing mono wav sample %d: %w", st.Frames, err)
			}
		}

		st.Frames++
	}

	s.log.Debug("split finished",
		"frames", st.Frames,
		"header_bytes", st.HeaderBytes,
		"trailing_bytes", st.TrailingBytes,
	)

	return st, nil
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
