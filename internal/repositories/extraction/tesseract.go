// Package extraction shells out to local OCR tooling to pull plain text from
// uploaded invoice attachments.
package extraction

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	portsrepo "github.com/checkflowhq/checkflow_backend/internal/core/ports/repositories"
)

// TesseractExtractor runs the tesseract CLI for images and pdftotext for
// PDFs. Both binaries are expected on PATH.
type TesseractExtractor struct{}

// Ensure TesseractExtractor implements portsrepo.TextExtractor
var _ portsrepo.TextExtractor = (*TesseractExtractor)(nil)

func NewTesseractExtractor() *TesseractExtractor {
	return &TesseractExtractor{}
}

func (e *TesseractExtractor) ExtractText(ctx context.Context, filename string, content []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	tmp, err := os.CreateTemp("", "ocr-*"+ext)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file for extraction: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write temp file for extraction: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file for extraction: %w", err)
	}

	var cmd *exec.Cmd
	if ext == ".pdf" {
		cmd = exec.CommandContext(ctx, "pdftotext", tmp.Name(), "-")
	} else {
		cmd = exec.CommandContext(ctx, "tesseract", tmp.Name(), "stdout")
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("text extraction failed for %s: %s: %w", filename, strings.TrimSpace(stderr.String()), err)
	}
	return stdout.String(), nil
}
