package main

import (
	"fmt"
	"os"

	"github.com/cbodonnell/drizzle/pkg/replay"
	"github.com/spf13/cobra"
)

var flagReplayIn string

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Verify a recorded simulation",
	Long: `Re-run a recording produced by drizzle sim and check that the
final state matches the recorded summary. A mismatch means the
recording was tampered with or the rules changed.

Examples:
  drizzle replay --in run.drz`,
	Run: runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayIn, "in", "", "Path to the recording")
}

func runReplay(cmd *cobra.Command, args []string) {
	if flagReplayIn == "" {
		fmt.Fprintln(os.Stderr, "Error: --in is required")
		os.Exit(1)
	}

	recording, err := replay.Read(flagReplayIn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading recording: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recording %s\n", recording.Header.ID)
	fmt.Printf("  Created: %s\n", recording.Header.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("  Version: %s\n", recording.Header.Version)
	fmt.Printf("  Seed:    %d\n", recording.Header.Seed)
	fmt.Printf("  Frames:  %d (%.1fs of play)\n", len(recording.Frames), float64(len(recording.Frames))*recording.Header.DT)

	if err := recording.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "Verification failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Verified: score %d\n", recording.Summary.Score)
}
