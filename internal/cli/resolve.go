package cli

import (
	"fmt"

	"github.com/karinversan/sign-flow/internal/timecode"
	"github.com/karinversan/sign-flow/internal/transcript"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [transcript_file] [position]",
	Short: "Resolve the active segment at a playhead position",
	Long: `Resolve which segment is active at the given position. The
position is a timecode (00:01:24) or a number of seconds (84).

A segment containing the position wins; past the last segment's end the
last started segment stays active. Only a position before everything
resolves to none.

Examples:
  signflow resolve transcript.json 00:00:04
  signflow resolve demo 84`,
	Args: cobra.ExactArgs(2),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(cmd *cobra.Command, args []string) error {
	position, err := timecode.Parse(args[1])
	if err != nil {
		return fmt.Errorf("invalid position %q: %w", args[1], err)
	}

	segments, err := loadSegments(args[0])
	if err != nil {
		return fmt.Errorf("failed to load transcript: %w", err)
	}

	active, ok := transcript.ResolveActive(segments, position)
	if !ok {
		fmt.Println("no active segment")
		return nil
	}

	fmt.Printf("%s  %s --> %s\n%s\n", active.ID, active.Start, active.End, active.Text)
	return nil
}
