// SPDX-License-Identifier: EPL-2.0

// Command pcmsplit splits a stereo 16-bit PCM WAV file into a stereo raw
// stream, a down-mixed mono raw stream and a listing of mono amplitudes.
//
// Usage:
//
//	pcmsplit [--config file] [-v] split [flags]
//	pcmsplit info <file.wav>
package main

import (
	"fmt"
	"os"

	"github.com/ik5/pcmsplit/cmd/pcmsplit/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
