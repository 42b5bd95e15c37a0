package repositories

import "context"

// AttachmentStore persists invoice attachments with a staged-write protocol:
// content is staged first, the ledger row is committed referencing the final
// name, and only then is the file promoted to the served directory. A failed
// ledger write discards the staged file so no orphan becomes visible.
type AttachmentStore interface {
	// Stage writes content under a freshly generated random filename
	// (original extension preserved) in the staging area and returns it.
	Stage(ctx context.Context, ext string, content []byte) (string, error)

	// Promote moves a staged file into the served area.
	Promote(ctx context.Context, filename string) error

	// Discard removes a staged file.
	Discard(ctx context.Context, filename string) error

	// Resolve returns the absolute path of a served file, or
	// apperrors.ErrNotFound if it does not exist.
	Resolve(filename string) (string, error)
}

// TextExtractor produces plain text from an uploaded image or PDF. The OCR
// engine itself is an external collaborator behind this interface.
type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, content []byte) (string, error)
}
