package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/checkflowhq/checkflow_backend/internal/apperrors"
	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	portssvc "github.com/checkflowhq/checkflow_backend/internal/core/ports/services"
	"github.com/checkflowhq/checkflow_backend/internal/core/services"
	"github.com/checkflowhq/checkflow_backend/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo *MockInvoiceRepository
	mockVendorRepo  *MockVendorRepository
	mockAttachments *MockAttachmentStore
	service         portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockVendorRepo = new(MockVendorRepository)
	suite.mockAttachments = new(MockAttachmentStore)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockVendorRepo, suite.mockAttachments)
}

func validCreateRequest(vendorID string) dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		InvoiceNumber: "INV-1001",
		StoreNumber:   "42",
		VendorID:      vendorID,
		Amount:        "149.99",
		InvoiceDate:   "2026-08-01",
	}
}

func (suite *InvoiceServiceTestSuite) TestCreateManualInvoice_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	vendorID := uuid.NewString()
	req := validCreateRequest(vendorID)

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(&domain.Vendor{VendorID: vendorID, Name: "Acme"}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceNumber == "INV-1001" &&
			inv.Status == domain.InvoicePending &&
			inv.SourceType == domain.SourceManual &&
			inv.Amount.Equal(decimal.RequireFromString("149.99")) &&
			inv.ImportedBy == creatorID
	})).Return(nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceDetailsByID", ctx, mock.AnythingOfType("string")).
		Return(&domain.InvoiceDetails{VendorName: "Acme"}, nil).Once()

	details, err := suite.service.CreateManualInvoice(ctx, req, nil, creatorID)

	suite.Require().NoError(err)
	suite.Equal("Acme", details.VendorName)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
	suite.mockAttachments.AssertNotCalled(suite.T(), "Stage", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateManualInvoice_AcceptsCommonDateFormats() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	req := validCreateRequest(vendorID)
	req.InvoiceDate = "06/02/2030"

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(&domain.Vendor{VendorID: vendorID}, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.InvoiceDate.Year() == 2030 && inv.InvoiceDate.Month() == time.June && inv.InvoiceDate.Day() == 2
	})).Return(nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceDetailsByID", ctx, mock.AnythingOfType("string")).
		Return(&domain.InvoiceDetails{}, nil).Once()

	_, err := suite.service.CreateManualInvoice(ctx, req, nil, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateManualInvoice_BadDate() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	req := validCreateRequest(vendorID)
	req.InvoiceDate = "not-a-date"

	details, err := suite.service.CreateManualInvoice(ctx, req, nil, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(details)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateManualInvoice_BadAmount() {
	ctx := context.Background()
	req := validCreateRequest(uuid.NewString())
	req.Amount = "abc"

	details, err := suite.service.CreateManualInvoice(ctx, req, nil, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(details)
}

func (suite *InvoiceServiceTestSuite) TestCreateManualInvoice_UnknownVendor() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	req := validCreateRequest(vendorID)

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(nil, apperrors.ErrNotFound).Once()

	details, err := suite.service.CreateManualInvoice(ctx, req, nil, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(details)
}

func (suite *InvoiceServiceTestSuite) TestCreateManualInvoice_AttachmentStagedThenPromoted() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	req := validCreateRequest(vendorID)
	attachment := &dto.AttachmentUpload{Filename: "scan.PDF", Content: []byte("%PDF-1.4")}

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(&domain.Vendor{VendorID: vendorID}, nil).Once()
	suite.mockAttachments.On("Stage", ctx, ".pdf", attachment.Content).Return("abc123.pdf", nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.AttachmentFilename == "abc123.pdf" && inv.SourceType == domain.SourceUpload
	})).Return(nil).Once()
	suite.mockAttachments.On("Promote", ctx, "abc123.pdf").Return(nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceDetailsByID", ctx, mock.AnythingOfType("string")).
		Return(&domain.InvoiceDetails{}, nil).Once()

	_, err := suite.service.CreateManualInvoice(ctx, req, attachment, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockAttachments.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateManualInvoice_DuplicateDiscardsStagedAttachment() {
	ctx := context.Background()
	vendorID := uuid.NewString()
	req := validCreateRequest(vendorID)
	attachment := &dto.AttachmentUpload{Filename: "scan.png", Content: []byte{0x89}}

	suite.mockVendorRepo.On("FindVendorByID", ctx, vendorID).Return(&domain.Vendor{VendorID: vendorID}, nil).Once()
	suite.mockAttachments.On("Stage", ctx, ".png", attachment.Content).Return("abc123.png", nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(apperrors.ErrDuplicate).Once()
	suite.mockAttachments.On("Discard", ctx, "abc123.png").Return(nil).Once()

	details, err := suite.service.CreateManualInvoice(ctx, req, attachment, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(details)
	suite.mockAttachments.AssertExpectations(suite.T())
	suite.mockAttachments.AssertNotCalled(suite.T(), "Promote", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_NotesAlwaysEditable() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	notes := "paid via ACH instead"
	existing := &domain.Invoice{InvoiceID: invoiceID, Status: domain.InvoiceApproved, Amount: decimal.RequireFromString("10.00")}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceFields", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Notes == notes && inv.Amount.Equal(decimal.RequireFromString("10.00"))
	})).Return(nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceDetailsByID", ctx, invoiceID).Return(&domain.InvoiceDetails{}, nil).Once()

	_, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{Notes: &notes}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_AmountLockedAfterApproval() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	amount := "999.99"
	existing := &domain.Invoice{InvoiceID: invoiceID, Status: domain.InvoiceApproved}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()

	details, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{Amount: &amount}, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Nil(details)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "UpdateInvoiceFields", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestUpdateInvoice_FinancialFieldsWhilePending() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	amount := "200.50"
	date := "July 15, 2026"
	existing := &domain.Invoice{InvoiceID: invoiceID, Status: domain.InvoicePending}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("UpdateInvoiceFields", ctx, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.Amount.Equal(decimal.RequireFromString("200.50")) && inv.InvoiceDate.Format("2006-01-02") == "2026-07-15"
	})).Return(nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceDetailsByID", ctx, invoiceID).Return(&domain.InvoiceDetails{}, nil).Once()

	_, err := suite.service.UpdateInvoice(ctx, invoiceID, dto.UpdateInvoiceRequest{Amount: &amount, InvoiceDate: &date}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestApproveInvoice_Success() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	approverID := uuid.NewString()
	existing := &domain.Invoice{InvoiceID: invoiceID, Status: domain.InvoicePending}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()
	suite.mockInvoiceRepo.On("ApproveInvoice", ctx, invoiceID, approverID).Return(nil).Once()
	suite.mockInvoiceRepo.On("FindInvoiceDetailsByID", ctx, invoiceID).
		Return(&domain.InvoiceDetails{Invoice: domain.Invoice{Status: domain.InvoiceApproved}}, nil).Once()

	details, err := suite.service.ApproveInvoice(ctx, invoiceID, approverID)

	suite.Require().NoError(err)
	suite.Equal(domain.InvoiceApproved, details.Status)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestApproveInvoice_NotPending() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	existing := &domain.Invoice{InvoiceID: invoiceID, Status: domain.InvoiceCheckGenerated}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(existing, nil).Once()

	details, err := suite.service.ApproveInvoice(ctx, invoiceID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	assert.Contains(suite.T(), err.Error(), "CHECK_GENERATED")
	suite.Nil(details)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "ApproveInvoice", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestApproveInvoice_NotFound() {
	ctx := context.Background()
	invoiceID := uuid.NewString()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(nil, apperrors.ErrNotFound).Once()

	details, err := suite.service.ApproveInvoice(ctx, invoiceID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(details)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
