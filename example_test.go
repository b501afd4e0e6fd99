// SPDX-License-Identifier: EPL-2.0

package pcmsplit_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/pcmsplit"
	"github.com/ik5/pcmsplit/internal/audiotest"
)

// Example_split splits an in-memory WAV file holding one frame.
func Example_split() {
	input := audiotest.RawWAV(44100, []byte{0x10, 0x20, 0x10, 0x20})

	var stereo, mono, lines bytes.Buffer
	s := pcmsplit.NewSplitter(pcmsplit.DefaultOptions())

	stats, err := s.Split(bytes.NewReader(input), pcmsplit.Outputs{
		Stereo:     &stereo,
		Mono:       &mono,
		Amplitudes: &lines,
	})
	if err != nil {
		fmt.Printf("split error: %v\n", err)
		return
	}

	fmt.Printf("frames: %d\n", stats.Frames)
	fmt.Printf("stereo: % x\n", stereo.Bytes())
	fmt.Printf("mono: % x\n", mono.Bytes())
	fmt.Print("lines: ", lines.String())
	// Output:
	// frames: 1
	// stereo: 10 20 10 20
	// mono: 10 20
	// lines: 8208
}

// Example_trailingBytes shows that an incomplete last frame is dropped.
func Example_trailingBytes() {
	input := audiotest.RawWAV(44100, []byte{0x01, 0x00, 0x03, 0x00, 0xAA, 0xBB})

	var lines bytes.Buffer
	stats, _ := pcmsplit.NewSplitter(pcmsplit.DefaultOptions()).Split(
		bytes.NewReader(input),
		pcmsplit.Outputs{Amplitudes: &lines},
	)

	fmt.Printf("frames: %d, dropped: %d\n", stats.Frames, stats.TrailingBytes)
	fmt.Print(lines.String())
	// Output:
	// frames: 1, dropped: 2
	// 2
}
