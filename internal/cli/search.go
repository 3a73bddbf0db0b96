package cli

import (
	"fmt"

	"github.com/karinversan/sign-flow/internal/transcript"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [transcript_file] [query]",
	Short: "Search segments by text, timecode, or id",
	Long: `Print the segments matching a case-insensitive substring query.
The query is tested against segment text, both timecode strings, and
the segment id, so "18" finds a segment starting at 00:00:18.

Examples:
  signflow search transcript.json "subtitle"
  signflow search demo 00:00:18`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	segments, err := loadSegments(args[0])
	if err != nil {
		return fmt.Errorf("failed to load transcript: %w", err)
	}

	matched := transcript.Filter(segments, args[1])

	logger.Debugw("Search complete",
		"query", args[1],
		"matched", len(matched),
		"total", len(segments),
	)

	for _, segment := range matched {
		fmt.Printf("%s  %s --> %s  %s\n",
			segment.ID, segment.Start, segment.End, segment.Text)
	}
	fmt.Printf("%d of %d segments matched\n", len(matched), len(segments))
	return nil
}
