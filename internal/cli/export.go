package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/karinversan/sign-flow/internal/clipboard"
	"github.com/karinversan/sign-flow/internal/export"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [transcript_file]",
	Short: "Export a transcript as SRT, VTT, or plain text",
	Long: `Export the transcript to a caption or script file.

The transcript argument may be a JSON segment list, an SRT file, a VTT
file, or the literal "demo" for the built-in sample transcript.

Examples:
  signflow export transcript.json
  signflow export captions.srt --format vtt
  signflow export demo -f txt -o script.txt
  signflow export transcript.json --copy`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().
		StringP("format", "f", "srt", "Output format (srt, vtt, txt)")
	exportCmd.Flags().
		Bool("copy", false, "Copy the exported document to the clipboard")
	exportCmd.Flags().
		Bool("stdout", false, "Print the document instead of writing a file")
}

func runExport(cmd *cobra.Command, args []string) error {
	transcriptPath := args[0]

	formatStr, _ := cmd.Flags().GetString("format")
	copyToClipboard, _ := cmd.Flags().GetBool("copy")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	outputPath, _ := cmd.Flags().GetString("output")

	format, err := export.ParseFormat(formatStr)
	if err != nil {
		return err
	}

	segments, err := loadSegments(transcriptPath)
	if err != nil {
		return fmt.Errorf("failed to load transcript: %w", err)
	}

	logger.Infow("Exporting transcript",
		"input", transcriptPath,
		"format", string(format),
		"segments", len(segments),
	)

	if copyToClipboard || toStdout {
		document, err := export.Render(segments, format)
		if err != nil {
			return err
		}
		if toStdout {
			fmt.Println(document)
		}
		if copyToClipboard {
			if err := clipboard.WriteAll(document); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			logger.Infow("Copied document to clipboard")
		}
		return nil
	}

	if outputPath == "" {
		baseName := strings.TrimSuffix(transcriptPath, filepath.Ext(transcriptPath))
		outputPath = baseName + export.ExtensionForFormat(format)
	}

	writer, err := export.NewWriter(format)
	if err != nil {
		return err
	}
	if err := writer.Write(segments, outputPath); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Printf("Export written: %s\n", absOutput)
	fmt.Printf("  Segments: %d\n", len(segments))

	return nil
}
