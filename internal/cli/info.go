package cli

import (
	"fmt"

	"github.com/karinversan/sign-flow/internal/timecode"
	"github.com/karinversan/sign-flow/internal/transcript"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info [transcript_file]",
	Short: "Show transcript summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	segments, err := loadSegments(args[0])
	if err != nil {
		return fmt.Errorf("failed to load transcript: %w", err)
	}

	store := transcript.NewStore(segments)

	empty := 0
	for _, segment := range segments {
		if segment.Text == "" {
			empty++
		}
	}

	fmt.Printf("Segments: %d\n", store.Len())
	fmt.Printf("Duration: %s\n", timecode.Format(store.TotalDuration()))
	if empty > 0 {
		fmt.Printf("Empty segments: %d\n", empty)
	}
	return nil
}
