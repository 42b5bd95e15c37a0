package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/checkflowhq/checkflow_backend/internal/apperrors"
	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	portssvc "github.com/checkflowhq/checkflow_backend/internal/core/ports/services"
	"github.com/checkflowhq/checkflow_backend/internal/core/services"
)

type ImportServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockVendorRepo  *MockVendorRepository
	service         portssvc.ImportSvcFacade
	importerID      string
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.service = services.NewImportService(suite.mockInvoiceRepo, suite.mockVendorRepo)
	suite.importerID = uuid.NewString()
}

// expectNoExisting makes every invoice-number lookup miss.
func (suite *ImportServiceTestSuite) expectNoExisting() {
	suite.mockInvoiceRepo.On("FindInvoiceByNumber", mock.Anything, mock.AnythingOfType("string")).
		Return(nil, apperrors.ErrNotFound)
}

// expectVendor makes the named vendor resolve without creation.
func (suite *ImportServiceTestSuite) expectVendor(name string) {
	suite.mockVendorRepo.On("FindVendorByName", mock.Anything, name).
		Return(&domain.Vendor{VendorID: uuid.NewString(), Name: name}, nil)
}

func (suite *ImportServiceTestSuite) TestImportFile_BadAmountRowReportedOthersImported() {
	ctx := context.Background()
	csv := "invoice_number,store_number,vendor_name,amount,invoice_date\n" +
		"INV-1,10,Acme,100.00,2026-01-05\n" +
		"INV-2,10,Acme,abc,2026-01-06\n" +
		"INV-3,11,Acme,55.25,2026-01-07\n"

	suite.expectNoExisting()
	suite.expectVendor("Acme")
	suite.mockInvoiceRepo.On("SaveInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.SourceType == domain.SourceCSV && inv.Status == domain.InvoicePending && inv.ImportedBy == suite.importerID
	})).Return(nil).Twice()

	summary, err := suite.service.ImportFile(ctx, "invoices.csv", []byte(csv), suite.importerID)

	suite.Require().NoError(err)
	suite.Equal(3, summary.TotalRows)
	suite.Equal(2, summary.Imported)
	suite.Equal(0, summary.SkippedDuplicates)
	suite.Equal([]string{"Row 3: invalid amount 'abc'"}, summary.Errors)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportFile_MissingFieldsAndBadDate() {
	ctx := context.Background()
	csv := "invoice_number,store_number,vendor_name,amount,invoice_date\n" +
		"INV-1,,Acme,100.00,2026-01-05\n" +
		"INV-2,10,Acme,50.00,not-a-date\n"

	suite.expectNoExisting()
	suite.expectVendor("Acme")

	summary, err := suite.service.ImportFile(ctx, "invoices.csv", []byte(csv), suite.importerID)

	suite.Require().NoError(err)
	suite.Equal(2, summary.TotalRows)
	suite.Equal(0, summary.Imported)
	suite.Equal([]string{
		"Row 2: missing required field(s)",
		"Row 3: invalid date 'not-a-date'",
	}, summary.Errors)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *ImportServiceTestSuite) TestImportFile_DuplicateIsSkipNotError() {
	ctx := context.Background()
	csv := "invoice_number,store_number,vendor_name,amount\n" +
		"INV-OLD,10,Acme,100.00\n" +
		"INV-NEW,10,Acme,75.00\n"

	suite.mockInvoiceRepo.On("FindInvoiceByNumber", mock.Anything, "INV-OLD").
		Return(&domain.Invoice{InvoiceNumber: "INV-OLD"}, nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceByNumber", mock.Anything, "INV-NEW").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.expectVendor("Acme")
	suite.mockInvoiceRepo.On("SaveInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceNumber == "INV-NEW"
	})).Return(nil).Once()

	summary, err := suite.service.ImportFile(ctx, "invoices.csv", []byte(csv), suite.importerID)

	suite.Require().NoError(err)
	suite.Equal(2, summary.TotalRows)
	suite.Equal(1, summary.Imported)
	suite.Equal(1, summary.SkippedDuplicates)
	suite.Empty(summary.Errors)
}

func (suite *ImportServiceTestSuite) TestImportFile_LazyVendorCreation() {
	ctx := context.Background()
	csv := "invoice_number,store_number,vendor_name,amount\n" +
		"INV-1,10,Brand New Vendor,100.00\n"

	suite.expectNoExisting()
	suite.mockVendorRepo.On("FindVendorByName", mock.Anything, "Brand New Vendor").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockVendorRepo.On("SaveVendor", mock.Anything, mock.MatchedBy(func(v domain.Vendor) bool {
		return v.Name == "Brand New Vendor" && v.CreatedBy == suite.importerID
	})).Return(nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", mock.Anything, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	summary, err := suite.service.ImportFile(ctx, "invoices.csv", []byte(csv), suite.importerID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Imported)
	suite.mockVendorRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportFile_MissingDateDefaultsToToday() {
	ctx := context.Background()
	csv := "invoice_number,store_number,vendor_name,amount,invoice_date\n" +
		"INV-1,10,Acme,100.00,\n"

	suite.expectNoExisting()
	suite.expectVendor("Acme")
	suite.mockInvoiceRepo.On("SaveInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return !inv.InvoiceDate.IsZero()
	})).Return(nil).Once()

	summary, err := suite.service.ImportFile(ctx, "invoices.csv", []byte(csv), suite.importerID)

	suite.Require().NoError(err)
	suite.Equal(1, summary.Imported)
	suite.Empty(summary.Errors)
}

func (suite *ImportServiceTestSuite) TestImportFile_UnsupportedExtension() {
	ctx := context.Background()

	summary, err := suite.service.ImportFile(ctx, "invoices.txt", []byte("whatever"), suite.importerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(summary)
}

func (suite *ImportServiceTestSuite) TestImportFile_MissingHeaderColumns() {
	ctx := context.Background()
	csv := "invoice_number,vendor_name\nINV-1,Acme\n"

	summary, err := suite.service.ImportFile(ctx, "invoices.csv", []byte(csv), suite.importerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "store_number")
	suite.Nil(summary)
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
