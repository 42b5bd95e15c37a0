package checkpdf_test

import (
	"testing"
	"time"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	"github.com/checkflowhq/checkflow_backend/internal/utils/checkpdf"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_ProducesPDF(t *testing.T) {
	details := &domain.CheckDetails{
		Check: domain.Check{
			CheckID:     "chk-1",
			CheckNumber: "CHK-000001",
			Amount:      decimal.RequireFromString("1234.50"),
			Status:      domain.CheckGenerated,
			IssueDate:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			Memo:        "Payment for invoice INV-1",
		},
		VendorName:    "Acme Corp",
		InvoiceNumber: "INV-1",
	}

	out, err := checkpdf.Render(details)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	// A PDF file always opens with this magic marker.
	assert.Equal(t, "%PDF", string(out[:4]))
}
