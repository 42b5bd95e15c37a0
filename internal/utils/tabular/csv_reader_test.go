package tabular_test

import (
	"testing"

	"github.com/checkflowhq/checkflow_backend/internal/utils/tabular"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV_Basic(t *testing.T) {
	content := []byte("invoice_number,store_number,vendor_name,amount\nINV-1,001,Acme Corp,100.50\nINV-2,002,Beta LLC,99\n")

	f, err := tabular.ReadCSV(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"invoice_number", "store_number", "vendor_name", "amount"}, f.Headers)
	require.Len(t, f.Rows, 2)
	assert.Equal(t, "INV-1", f.Rows[0]["invoice_number"])
	assert.Equal(t, "Acme Corp", f.Rows[0]["vendor_name"])
	assert.Equal(t, "99", f.Rows[1]["amount"])
}

func TestReadCSV_StripsBOMAndNormalizesHeaders(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Invoice_Number, Amount \nINV-9,5.00\n")...)

	f, err := tabular.ReadCSV(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"invoice_number", "amount"}, f.Headers)
	assert.Equal(t, "INV-9", f.Rows[0]["invoice_number"])
}

func TestReadCSV_ShortRowsYieldEmptyCells(t *testing.T) {
	content := []byte("invoice_number,vendor_name,amount\nINV-1,Acme\n")

	f, err := tabular.ReadCSV(content)
	require.NoError(t, err)
	require.Len(t, f.Rows, 1)
	assert.Equal(t, "", f.Rows[0]["amount"])
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := tabular.ReadCSV([]byte(""))
	assert.Error(t, err)
}

func TestMissingColumns(t *testing.T) {
	f := &tabular.File{Headers: []string{"invoice_number", "amount"}}

	missing := f.MissingColumns([]string{"invoice_number", "store_number", "vendor_name", "amount"})
	assert.Equal(t, []string{"store_number", "vendor_name"}, missing)

	assert.Nil(t, f.MissingColumns([]string{"invoice_number", "amount"}))
}
