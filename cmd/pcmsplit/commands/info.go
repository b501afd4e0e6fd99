// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ik5/pcmsplit/audio"
	"github.com/ik5/pcmsplit/formats/wav"
)

func newInfoCommand(_ *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.wav>",
		Short: "Show the format declared by a WAV header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			st, err := f.Stat()
			if err != nil {
				return err
			}

			info, err := wav.Inspect(f)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			frames := max(st.Size()-wav.HeaderSize, 0) / audio.FrameSize

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "File:         %s\n", path)
			fmt.Fprintf(out, "Format:       %d\n", info.AudioFormat)
			fmt.Fprintf(out, "Channels:     %d\n", info.Channels)
			fmt.Fprintf(out, "Sample rate:  %d Hz\n", info.SampleRate)
			fmt.Fprintf(out, "Bit depth:    %d\n", info.BitDepth)
			fmt.Fprintf(out, "Data bytes:   %d\n", info.DataBytes)
			fmt.Fprintf(out, "Frames:       %d\n", info.Frames())
			fmt.Fprintf(out, "Duration:     %v\n", info.Duration())
			fmt.Fprintf(out, "Split frames: %d\n", frames)

			if !info.IsPCM16Stereo() {
				slog.Warn("file is not 16-bit stereo PCM, split output will not be meaningful",
					"file", path,
					"channels", info.Channels,
					"bit_depth", info.BitDepth,
				)
			}
			return nil
		},
	}
}
