// SPDX-License-Identifier: EPL-2.0

package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	cfgFile string
	verbose bool
	logOut  io.Writer
}

// NewRootCommand builds the pcmsplit command tree.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{logOut: os.Stderr}

	root := &cobra.Command{
		Use:   "pcmsplit",
		Short: "Split stereo PCM WAV files into raw and mono streams",
		Long: `pcmsplit reads a stereo 16-bit little-endian PCM WAV file and writes:
  - the raw stereo frames after the header
  - a mono raw stream, the per-byte average of both channels
  - one decoded mono amplitude per line

Examples:
  # Split test.wav into stereo_raw, mono_raw and pcm_file.csv
  pcmsplit split

  # Custom paths and an extra mono WAV file
  pcmsplit split -i song.wav --pcm song.csv --mono-wav song-mono.wav

  # Settings from a YAML file
  pcmsplit --config pcmsplit.yaml split

  # Show what the WAV header declares
  pcmsplit info song.wav
`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			g.logOut = cmd.ErrOrStderr()
			initLogging(g)
		},
	}

	root.PersistentFlags().StringVar(&g.cfgFile, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(newSplitCommand(g))
	root.AddCommand(newInfoCommand(g))

	return root
}

// Execute runs the root command with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func initLogging(g *globalFlags) {
	logLevel := slog.LevelInfo
	if g.verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(g.logOut, &slog.HandlerOptions{
		Level: logLevel,
	})))
}
