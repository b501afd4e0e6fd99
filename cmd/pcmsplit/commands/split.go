// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/ik5/pcmsplit"
	"github.com/ik5/pcmsplit/audio"
	"github.com/ik5/pcmsplit/internal/config"
)

func newSplitCommand(g *globalFlags) *cobra.Command {
	var (
		flags      config.Config
		headerSize int
		arith      audio.Arithmetic
	)

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a stereo WAV file",
		Long: `Skip the header of a stereo 16-bit PCM WAV file, then for every 4-byte frame
write the frame to the stereo file, its 2-byte down-mix to the mono file and
the decoded amplitude to the listing.

Flags override values from --config, which override the defaults.

Arithmetic:
  signed    bytes are read as int8 values (default)
  unsigned  bytes are read as 0..255 values; differs for bytes >= 0x80`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(g.cfgFile)
			if err != nil {
				return err
			}

			fs := cmd.Flags()
			if fs.Changed("header-size") {
				flags.HeaderSize = &headerSize
			}
			if fs.Changed("arithmetic") {
				flags.Arithmetic = arith.String()
			}
			cfg.Merge(&flags)

			if err := cfg.Validate(); err != nil {
				return err
			}

			opts := cfg.Options()
			opts.Logger = slog.Default()

			start := time.Now()
			stats, err := pcmsplit.SplitFiles(cfg.Paths(), opts)
			if err != nil {
				return err
			}

			slog.Info("split complete",
				"input", cfg.Input,
				"frames", stats.Frames,
				"stereo_bytes", stats.StereoBytes(),
				"mono_bytes", stats.MonoBytes(),
				"arithmetic", opts.Arithmetic,
				"elapsed", time.Since(start),
			)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Input, "input", "i", "", "input WAV file (default test.wav)")
	f.StringVar(&flags.Stereo, "stereo", "", "stereo raw output (default stereo_raw)")
	f.StringVar(&flags.Mono, "mono", "", "mono raw output (default mono_raw)")
	f.StringVar(&flags.Amplitudes, "pcm", "", "amplitude listing output (default pcm_file.csv)")
	f.StringVar(&flags.MonoWAV, "mono-wav", "", "optional mono WAV output")
	f.IntVar(&headerSize, "header-size", 44, "bytes skipped before the first frame")
	f.Var(&arith, "arithmetic", "byte arithmetic: signed or unsigned")
	f.IntVar(&flags.SampleRate, "sample-rate", 0, "mono WAV sample rate when the input header has none (default 44100)")

	return cmd
}
