// SPDX-License-Identifier: EPL-2.0

// Package pcmsplit splits a stereo 16-bit PCM WAV file into raw and decoded
// streams.
//
// For every 4-byte stereo frame after the header it produces:
//   - the same 4 bytes on the stereo output
//   - a 2-byte mono frame, the per-byte average of both channels
//   - one line with the decoded signed amplitude of the mono frame
//
// # Quick Start
//
//	stats, err := pcmsplit.SplitFiles(pcmsplit.DefaultPaths(), pcmsplit.DefaultOptions())
//	if err != nil {
//	    // an input or output could not be opened, or I/O failed
//	}
//	fmt.Println(stats.Frames, "frames")
//
// # Streams
//
// Splitter works on plain readers and writers:
//
//	var stereo, mono, lines bytes.Buffer
//	s := pcmsplit.NewSplitter(pcmsplit.DefaultOptions())
//	stats, err := s.Split(input, pcmsplit.Outputs{
//	    Stereo:     &stereo,
//	    Mono:       &mono,
//	    Amplitudes: &lines,
//	})
//
// # Header Handling
//
// The header is skipped, never parsed. An input that ends inside the header
// is reported as a warning through the logger and produces empty outputs.
// A final frame shorter than 4 bytes is dropped silently.
//
// # Arithmetic
//
// Options.Arithmetic selects the byte interpretation used for averaging.
// See the audio package for the difference between audio.Signed (the
// default) and audio.Unsigned.
//
// # Mono WAV
//
// Setting Paths.MonoWAV additionally writes the amplitudes as a mono 16-bit
// WAV file, at the sample rate declared by the input header or
// Options.SampleRate when the header cannot be parsed.
package pcmsplit
