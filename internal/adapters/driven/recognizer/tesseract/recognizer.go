// Package tesseract provides a text recognizer that shells out to the
// tesseract binary. Tesseract must be installed separately; recognition
// degrades to empty text upstream when it is missing.
package tesseract

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"strings"

	"github.com/pillziy/pillziy-cli/internal/core/ports/driven"
	"github.com/pillziy/pillziy-cli/internal/logger"
)

// Ensure Recognizer implements the interface.
var _ driven.TextRecognizer = (*Recognizer)(nil)

// Recognizer runs OCR through the tesseract CLI.
type Recognizer struct {
	binaryPath string
}

// NewRecognizer creates a recognizer using the tesseract binary on PATH.
func NewRecognizer() *Recognizer {
	return &Recognizer{binaryPath: "tesseract"}
}

// Recognize writes img to a temp file, runs tesseract over it, and
// returns the non-empty output lines in reading order.
func (r *Recognizer) Recognize(ctx context.Context, img image.Image, opts driven.RecognitionOptions) ([]string, error) {
	tmp, err := os.CreateTemp("", "pillziy-scan-*.png")
	if err != nil {
		return nil, fmt.Errorf("creating temp image: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := png.Encode(tmp, img); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("encoding temp image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing temp image: %w", err)
	}

	args := buildArgs(tmpName, opts)
	logger.Debug("running %s %s", r.binaryPath, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, r.binaryPath, args...)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w", err)
	}

	return splitLines(string(out)), nil
}

// buildArgs assembles the tesseract invocation for the given options.
func buildArgs(imagePath string, opts driven.RecognitionOptions) []string {
	args := []string{imagePath, "stdout"}

	if opts.Language != "" {
		args = append(args, "-l", opts.Language)
	}
	if opts.Accurate {
		// OEM 1 selects the LSTM engine.
		args = append(args, "--oem", "1")
	}
	if !opts.LanguageCorrection {
		args = append(args, "-c", "load_system_dawg=0", "-c", "load_freq_dawg=0")
	}
	return args
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
