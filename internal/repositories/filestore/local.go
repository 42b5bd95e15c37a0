// Package filestore persists invoice attachments on the local filesystem
// using a staged-write protocol: files land in a staging directory first and
// are promoted into the served directory only after the owning ledger row
// committed. A failed commit discards the staged file instead.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/checkflowhq/checkflow_backend/internal/apperrors"
	portsrepo "github.com/checkflowhq/checkflow_backend/internal/core/ports/repositories"
	"github.com/checkflowhq/checkflow_backend/internal/utils"
)

const stagingSubdir = ".staging"

// LocalAttachmentStore keeps served files under baseDir and staged files
// under baseDir/.staging.
type LocalAttachmentStore struct {
	baseDir    string
	stagingDir string
}

// Ensure LocalAttachmentStore implements portsrepo.AttachmentStore
var _ portsrepo.AttachmentStore = (*LocalAttachmentStore)(nil)

// NewLocalAttachmentStore creates both directories if they do not exist.
func NewLocalAttachmentStore(baseDir string) (*LocalAttachmentStore, error) {
	stagingDir := filepath.Join(baseDir, stagingSubdir)
	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create attachment directories: %w", err)
	}
	return &LocalAttachmentStore{baseDir: baseDir, stagingDir: stagingDir}, nil
}

// Stage writes content under a random hex filename with the original
// extension preserved and returns the generated name.
func (s *LocalAttachmentStore) Stage(_ context.Context, ext string, content []byte) (string, error) {
	name, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", fmt.Errorf("failed to generate attachment name: %w", err)
	}
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	filename := name + ext
	if err := os.WriteFile(filepath.Join(s.stagingDir, filename), content, 0o644); err != nil {
		return "", fmt.Errorf("failed to stage attachment: %w", err)
	}
	return filename, nil
}

// Promote moves a staged file into the served directory.
func (s *LocalAttachmentStore) Promote(_ context.Context, filename string) error {
	if err := validName(filename); err != nil {
		return err
	}
	if err := os.Rename(filepath.Join(s.stagingDir, filename), filepath.Join(s.baseDir, filename)); err != nil {
		return fmt.Errorf("failed to promote attachment %s: %w", filename, err)
	}
	return nil
}

// Discard removes a staged file. A missing file is not an error: the discard
// path runs as cleanup after a failed commit and must be idempotent.
func (s *LocalAttachmentStore) Discard(_ context.Context, filename string) error {
	if err := validName(filename); err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(s.stagingDir, filename)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to discard staged attachment %s: %w", filename, err)
	}
	return nil
}

// Resolve returns the absolute path of a served file.
func (s *LocalAttachmentStore) Resolve(filename string) (string, error) {
	if err := validName(filename); err != nil {
		return "", err
	}
	path := filepath.Join(s.baseDir, filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to stat attachment %s: %w", filename, err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve attachment path: %w", err)
	}
	return abs, nil
}

// validName rejects anything that could escape the store directories. Stored
// names are server generated, so a mismatch means a tampered request.
func validName(filename string) error {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return fmt.Errorf("invalid attachment name: %w", apperrors.ErrValidation)
	}
	return nil
}
