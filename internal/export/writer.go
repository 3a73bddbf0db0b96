package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/karinversan/sign-flow/internal/transcript"
)

// interface for writing exported documents to files
type Writer interface {
	Write(segments []transcript.Segment, path string) error
}

// SubRip format
type SRTWriter struct{}

// WebVTT format
type VTTWriter struct{}

// plain transcript
type TXTWriter struct{}

func NewWriter(format Format) (Writer, error) {
	switch format {
	case FormatSRT:
		return &SRTWriter{}, nil
	case FormatVTT:
		return &VTTWriter{}, nil
	case FormatTXT:
		return &TXTWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func (w *SRTWriter) Write(segments []transcript.Segment, path string) error {
	return writeDocument(CaptionDocument(segments)+"\n", path)
}

func (w *VTTWriter) Write(segments []transcript.Segment, path string) error {
	return writeDocument(VTTDocument(segments), path)
}

func (w *TXTWriter) Write(segments []transcript.Segment, path string) error {
	return writeDocument(PlainTranscript(segments)+"\n", path)
}

func writeDocument(content, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
