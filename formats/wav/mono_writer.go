// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// monoChunk is the number of samples buffered before handing them to the
// encoder.
const monoChunk = 4096

// MonoWriter streams int16 amplitudes into a mono 16-bit PCM WAV file.
// The RIFF sizes are patched on Close, which is why it needs a WriteSeeker.
type MonoWriter struct {
	enc     *gowav.Encoder
	buf     *goaudio.IntBuffer
	samples int
	started bool
	closed  bool
}

func NewMonoWriter(w io.WriteSeeker, sampleRate int) (*MonoWriter, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	return &MonoWriter{
		enc: gowav.NewEncoder(w, sampleRate, 16, 1, formatPCM),
		buf: &goaudio.IntBuffer{
			Format:         &goaudio.Format{NumChannels: 1, SampleRate: sampleRate},
			Data:           make([]int, 0, monoChunk),
			SourceBitDepth: 16,
		},
	}, nil
}

// WriteSample queues one amplitude. v is expected in the int16 range.
func (m *MonoWriter) WriteSample(v int) error {
	if m.closed {
		return ErrWriterClosed
	}

	m.buf.Data = append(m.buf.Data, v)
	m.samples++

	if len(m.buf.Data) >= monoChunk {
		return m.Flush()
	}
	return nil
}

// Samples returns the number of amplitudes written so far.
func (m *MonoWriter) Samples() int { return m.samples }

// Flush hands the queued samples to the encoder.
func (m *MonoWriter) Flush() error {
	if m.closed {
		return ErrWriterClosed
	}
	if len(m.buf.Data) == 0 && m.started {
		return nil
	}

	// The first Write also emits the RIFF and fmt headers, so it runs even
	// for an empty buffer.
	if err := m.enc.Write(m.buf); err != nil {
		return fmt.Errorf("%w", err)
	}
	m.started = true
	m.buf.Data = m.buf.Data[:0]

	return nil
}

// Close flushes pending samples and finalizes the header sizes.
// It does not close the underlying writer.
func (m *MonoWriter) Close() error {
	if m.closed {
		return nil
	}

	if err := m.Flush(); err != nil {
		return err
	}
	m.closed = true

	if err := m.enc.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
