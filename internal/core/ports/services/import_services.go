package services

import (
	"context"

	"github.com/checkflowhq/checkflow_backend/internal/dto"
)

// ImportSvcFacade turns uploaded tabular files into PENDING ledger entries.
type ImportSvcFacade interface {
	// ImportFile parses a CSV or XLSX upload and imports its rows
	// independently; row failures are reported in the summary, never
	// aborting the run. The file extension selects the parser.
	ImportFile(ctx context.Context, filename string, content []byte, importerUserID string) (*dto.ImportSummary, error)
}
