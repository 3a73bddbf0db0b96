package cli

import (
	"fmt"

	"github.com/karinversan/sign-flow/internal/session"
	"github.com/spf13/cobra"
)

var scriptCmd = &cobra.Command{
	Use:   "script [transcript_file]",
	Short: "Print the flattened voiceover script",
	Long: `Flatten the transcript into a single narration script, tagged
with the selected voice profile. Empty segments are skipped.

Examples:
  signflow script transcript.json
  signflow script demo --voice atlas`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(scriptCmd)

	scriptCmd.Flags().
		String("voice", "", "Voice profile for the tone tag (default from config)")
}

func runScript(cmd *cobra.Command, args []string) error {
	voice, _ := cmd.Flags().GetString("voice")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	segments, err := loadSegments(args[0])
	if err != nil {
		return fmt.Errorf("failed to load transcript: %w", err)
	}

	s := session.New(segments, cfg)
	if voice != "" {
		s.SetVoice(voice)
	}

	fmt.Println(s.Script())
	return nil
}
