// SPDX-License-Identifier: EPL-2.0

package pcmsplit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ik5/pcmsplit/formats/wav"
)

// Paths names the files of one split. MonoWAV is optional.
type Paths struct {
	Input      string
	Stereo     string
	Mono       string
	Amplitudes string
	MonoWAV    string
}

// DefaultPaths returns the file names used when nothing is configured.
func DefaultPaths() Paths {
	return Paths{
		Input:      "test.wav",
		Stereo:     "stereo_raw",
		Mono:       "mono_raw",
		Amplitudes: "pcm_file.csv",
	}
}

// releaser closes resources in reverse order of acquisition.
type releaser []func() error

func (r *releaser) push(fn func() error) { *r = append(*r, fn) }

func (r releaser) release() error {
	var errs []error
	for i := len(r) - 1; i >= 0; i-- {
		if err := r[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// SplitFiles opens paths.Input and every output, then runs a Splitter over
// them. Opening stops at the first failure with ErrOpenInput or
// ErrOpenOutput; whatever was opened before is closed on every return path.
// Outputs are buffered and flushed before they are closed.
func SplitFiles(paths Paths, opts Options) (st Stats, err error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var res releaser
	defer func() {
		if rerr := res.release(); rerr != nil && err == nil {
			err = rerr
		}
	}()

	in, err := os.Open(paths.Input)
	if err != nil {
		return st, fmt.Errorf("%w %q: %w", ErrOpenInput, paths.Input, err)
	}
	res.push(in.Close)

	var out Outputs
	for _, o := range []struct {
		path string
		dst  *io.Writer
	}{
		{paths.Stereo, &out.Stereo},
		{paths.Mono, &out.Mono},
		{paths.Amplitudes, &out.Amplitudes},
	} {
		w, err := createBuffered(o.path, &res)
		if err != nil {
			return st, err
		}
		*o.dst = w
	}

	if paths.MonoWAV != "" {
		rate := monoWAVRate(in, opts.SampleRate, logger)
		if _, err := in.Seek(0, io.SeekStart); err != nil {
			return st, fmt.Errorf("rewinding input: %w", err)
		}

		f, err := os.Create(paths.MonoWAV)
		if err != nil {
			return st, fmt.Errorf("%w %q: %w", ErrOpenOutput, paths.MonoWAV, err)
		}
		res.push(f.Close)

		mw, err := wav.NewMonoWriter(f, rate)
		if err != nil {
			return st, err
		}
		res.push(mw.Close)
		out.MonoWAV = mw
	}

	logger.Debug("files opened",
		"input", paths.Input,
		"stereo", paths.Stereo,
		"mono", paths.Mono,
		"amplitudes", paths.Amplitudes,
		"mono_wav", paths.MonoWAV,
	)

	return NewSplitter(opts).Split(bufio.NewReader(in), out)
}

// createBuffered creates path and registers flush and close with res.
func createBuffered(path string, res *releaser) (io.Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpenOutput, path, err)
	}
	res.push(f.Close)

	bw := bufio.NewWriter(f)
	res.push(func() error {
		if err := bw.Flush(); err != nil {
			return fmt.Errorf("flushing %q: %w", path, err)
		}
		return nil
	})

	return bw, nil
}

// monoWAVRate prefers the sample rate declared by the input header.
func monoWAVRate(in io.ReadSeeker, fallback int, logger *slog.Logger) int {
	info, err := wav.Inspect(in)
	if err != nil || info.SampleRate <= 0 {
		logger.Debug("input header has no usable sample rate, using fallback", "rate", fallback, "error", err)
		return fallback
	}
	return info.SampleRate
}
