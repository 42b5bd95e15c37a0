package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/checkflowhq/checkflow_backend/internal/apperrors"
	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	portssvc "github.com/checkflowhq/checkflow_backend/internal/core/ports/services"
	"github.com/checkflowhq/checkflow_backend/internal/core/services"
)

type CheckServiceTestSuite struct {
	suite.Suite
	mockCheckRepo   *MockCheckRepository
	mockInvoiceRepo *MockInvoiceRepository
	service         portssvc.CheckSvcFacade
}

func (suite *CheckServiceTestSuite) SetupTest() {
	suite.mockCheckRepo = new(MockCheckRepository)
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.service = services.NewCheckService(suite.mockCheckRepo, suite.mockInvoiceRepo)
}

func approvedInvoice() *domain.Invoice {
	return &domain.Invoice{
		InvoiceID:     uuid.NewString(),
		InvoiceNumber: "INV-2002",
		VendorID:      uuid.NewString(),
		Amount:        decimal.RequireFromString("321.50"),
		Status:        domain.InvoiceApproved,
	}
}

func (suite *CheckServiceTestSuite) TestGenerateCheck_CopiesAmountAndVendor() {
	ctx := context.Background()
	issuerID := uuid.NewString()
	invoice := approvedInvoice()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockCheckRepo.On("IssueCheck", ctx, *invoice, mock.MatchedBy(func(c domain.Check) bool {
		return c.VendorID == invoice.VendorID &&
			c.Amount.Equal(invoice.Amount) &&
			c.Status == domain.CheckGenerated &&
			c.Memo == "custom memo" &&
			c.CreatedBy == issuerID
	})).Return(&domain.Check{CheckID: "chk-1", CheckNumber: "CHK-000042"}, nil).Once()
	suite.mockCheckRepo.On("FindCheckDetailsByID", ctx, "chk-1").
		Return(&domain.CheckDetails{Check: domain.Check{CheckNumber: "CHK-000042"}}, nil).Once()

	details, err := suite.service.GenerateCheck(ctx, invoice.InvoiceID, "custom memo", issuerID)

	suite.Require().NoError(err)
	suite.Equal("CHK-000042", details.CheckNumber)
	suite.mockCheckRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestGenerateCheck_DefaultMemo() {
	ctx := context.Background()
	invoice := approvedInvoice()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockCheckRepo.On("IssueCheck", ctx, *invoice, mock.MatchedBy(func(c domain.Check) bool {
		return c.Memo == "Payment for invoice INV-2002"
	})).Return(&domain.Check{CheckID: "chk-1"}, nil).Once()
	suite.mockCheckRepo.On("FindCheckDetailsByID", ctx, "chk-1").Return(&domain.CheckDetails{}, nil).Once()

	_, err := suite.service.GenerateCheck(ctx, invoice.InvoiceID, "", uuid.NewString())

	suite.Require().NoError(err)
	suite.mockCheckRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestGenerateCheck_NotApproved() {
	ctx := context.Background()
	invoice := approvedInvoice()
	invoice.Status = domain.InvoicePending

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()

	details, err := suite.service.GenerateCheck(ctx, invoice.InvoiceID, "", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Contains(err.Error(), "PENDING")
	suite.Nil(details)
	suite.mockCheckRepo.AssertNotCalled(suite.T(), "IssueCheck", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *CheckServiceTestSuite) TestGenerateCheck_AlreadyIssued() {
	ctx := context.Background()
	invoice := approvedInvoice()
	existing := uuid.NewString()
	invoice.CheckID = &existing

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()

	details, err := suite.service.GenerateCheck(ctx, invoice.InvoiceID, "", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Contains(err.Error(), "already has a check")
	suite.Nil(details)
}

func (suite *CheckServiceTestSuite) TestGenerateCheck_LostRace() {
	ctx := context.Background()
	invoice := approvedInvoice()

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).Return(invoice, nil).Once()
	suite.mockCheckRepo.On("IssueCheck", ctx, *invoice, mock.AnythingOfType("domain.Check")).
		Return(nil, apperrors.ErrInvalidState).Once()

	details, err := suite.service.GenerateCheck(ctx, invoice.InvoiceID, "", uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Nil(details)
}

func (suite *CheckServiceTestSuite) TestPrintCheck_Success() {
	ctx := context.Background()
	checkID := uuid.NewString()
	updaterID := uuid.NewString()

	suite.mockCheckRepo.On("TransitionCheck", ctx, checkID,
		[]domain.CheckStatus{domain.CheckGenerated},
		domain.CheckPrinted, domain.InvoicePrinted, updaterID).Return(nil).Once()
	suite.mockCheckRepo.On("FindCheckDetailsByID", ctx, checkID).
		Return(&domain.CheckDetails{Check: domain.Check{Status: domain.CheckPrinted}}, nil).Once()

	details, err := suite.service.PrintCheck(ctx, checkID, updaterID)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckPrinted, details.Status)
	suite.mockCheckRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestPrintCheck_AlreadyPrinted() {
	ctx := context.Background()
	checkID := uuid.NewString()

	suite.mockCheckRepo.On("TransitionCheck", ctx, checkID, mock.Anything, domain.CheckPrinted, domain.InvoicePrinted, mock.Anything).
		Return(apperrors.ErrInvalidState).Once()
	suite.mockCheckRepo.On("FindCheckByID", ctx, checkID).
		Return(&domain.Check{CheckID: checkID, Status: domain.CheckPrinted}, nil).Once()

	details, err := suite.service.PrintCheck(ctx, checkID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.Nil(details)
}

func (suite *CheckServiceTestSuite) TestPrintCheck_NotFound() {
	ctx := context.Background()
	checkID := uuid.NewString()

	suite.mockCheckRepo.On("TransitionCheck", ctx, checkID, mock.Anything, domain.CheckPrinted, domain.InvoicePrinted, mock.Anything).
		Return(apperrors.ErrInvalidState).Once()
	suite.mockCheckRepo.On("FindCheckByID", ctx, checkID).Return(nil, apperrors.ErrNotFound).Once()

	details, err := suite.service.PrintCheck(ctx, checkID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(details)
}

func (suite *CheckServiceTestSuite) TestVoidCheck_FromPrinted() {
	ctx := context.Background()
	checkID := uuid.NewString()
	updaterID := uuid.NewString()

	suite.mockCheckRepo.On("TransitionCheck", ctx, checkID,
		[]domain.CheckStatus{domain.CheckGenerated, domain.CheckPrinted},
		domain.CheckVoid, domain.InvoiceVoid, updaterID).Return(nil).Once()
	suite.mockCheckRepo.On("FindCheckDetailsByID", ctx, checkID).
		Return(&domain.CheckDetails{Check: domain.Check{Status: domain.CheckVoid}}, nil).Once()

	details, err := suite.service.VoidCheck(ctx, checkID, updaterID)

	suite.Require().NoError(err)
	suite.Equal(domain.CheckVoid, details.Status)
	suite.mockCheckRepo.AssertExpectations(suite.T())
}

func (suite *CheckServiceTestSuite) TestRenderCheckPDF() {
	ctx := context.Background()
	checkID := uuid.NewString()
	details := &domain.CheckDetails{
		Check: domain.Check{
			CheckID:     checkID,
			CheckNumber: "CHK-000007",
			Amount:      decimal.RequireFromString("1250.00"),
			Status:      domain.CheckGenerated,
		},
		VendorName:    "Acme Supply Co",
		InvoiceNumber: "INV-3003",
	}

	suite.mockCheckRepo.On("FindCheckDetailsByID", ctx, checkID).Return(details, nil).Once()

	pdf, got, err := suite.service.RenderCheckPDF(ctx, checkID)

	suite.Require().NoError(err)
	suite.Equal(details, got)
	suite.True(len(pdf) > 4)
	suite.Equal("%PDF", string(pdf[:4]))
}

func TestCheckServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CheckServiceTestSuite))
}
