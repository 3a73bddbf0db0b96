package cli

import (
	"fmt"

	"github.com/karinversan/sign-flow/internal/config"
	"github.com/karinversan/sign-flow/internal/logging"
	"github.com/karinversan/sign-flow/internal/transcript"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "signflow",
	Short: "Transcript-segment timeline engine for subtitle editing",
	Long: `Signflow keeps an ordered set of time-coded transcript segments
consistent and derives everything an editing surface needs from them:
the segment active at a playhead position, search over text and
timecodes, a flattened voiceover script, and SRT/VTT/plain exports.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = logging.NewLogger(verbose)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", "", "Editor defaults file (YAML)")
}

// editor defaults for the current invocation
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadSegments reads the transcript argument; the literal "demo" seeds
// the built-in sample transcript.
func loadSegments(path string) ([]transcript.Segment, error) {
	if path == "demo" {
		return transcript.DemoTranscript(), nil
	}
	return transcript.Load(path)
}
