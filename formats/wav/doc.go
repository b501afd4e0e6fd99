// SPDX-License-Identifier: EPL-2.0

// Package wav handles the WAV container around 16-bit PCM frames.
//
// # Skipping the Header
//
// The splitter never interprets the header. SkipHeader only consumes a fixed
// number of bytes, HeaderSize (44) for the canonical layout:
//
//	n, err := wav.SkipHeader(r, wav.HeaderSize)
//	if errors.Is(err, wav.ErrEmptyInput) || errors.Is(err, wav.ErrShortHeader) {
//	    // warn and keep going, r is exhausted anyway
//	}
//
// # Inspecting the Header
//
// Inspect uses github.com/go-audio/wav to read what the header declares,
// which is useful to check a file before splitting it:
//
//	info, err := wav.Inspect(file)
//	if err == nil && !info.IsPCM16Stereo() {
//	    // not the layout the splitter expects
//	}
//
// # Writing Mono Files
//
// MonoWriter streams amplitudes into a mono 16-bit PCM WAV file through the
// go-audio encoder. It needs an io.WriteSeeker because the sizes in the
// header are patched on Close:
//
//	w, _ := wav.NewMonoWriter(file, 44100)
//	w.WriteSample(8208)
//	w.Close()
//
// # Error Handling
//
//   - ErrEmptyInput, ErrShortHeader: the input ended inside the header
//   - ErrInvalidHeaderSize: a negative header size was requested
//   - ErrNotWavFile, ErrNoPCMData: Inspect could not parse the file
//   - ErrInvalidSampleRate, ErrWriterClosed: MonoWriter misuse
package wav
