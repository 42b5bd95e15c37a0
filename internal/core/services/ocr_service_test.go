package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/checkflowhq/checkflow_backend/internal/apperrors"
	portssvc "github.com/checkflowhq/checkflow_backend/internal/core/ports/services"
	"github.com/checkflowhq/checkflow_backend/internal/core/services"
)

type OCRServiceTestSuite struct {
	suite.Suite
	mockExtractor *MockTextExtractor
	service       portssvc.OCRSvcFacade
}

func (suite *OCRServiceTestSuite) SetupTest() {
	suite.mockExtractor = new(MockTextExtractor)
	suite.service = services.NewOCRService(suite.mockExtractor)
}

func (suite *OCRServiceTestSuite) TestExtractInvoiceFields() {
	ctx := context.Background()
	content := []byte{0x89, 0x50}
	text := "Invoice #INV-4521\nDate: 03/15/2026\nTotal: $1,234.56\n"

	suite.mockExtractor.On("ExtractText", ctx, "scan.png", content).Return(text, nil).Once()

	fields, err := suite.service.ExtractInvoiceFields(ctx, "scan.png", content)

	suite.Require().NoError(err)
	suite.Require().NotNil(fields.InvoiceNumber)
	suite.Equal("INV-4521", *fields.InvoiceNumber)
	suite.Require().NotNil(fields.Amount)
	suite.Equal("1234.56", *fields.Amount)
	suite.Require().NotNil(fields.InvoiceDate)
	suite.Equal("2026-03-15", *fields.InvoiceDate)
	suite.Equal(text, fields.RawText)
}

func (suite *OCRServiceTestSuite) TestExtractInvoiceFields_NothingRecognized() {
	ctx := context.Background()

	suite.mockExtractor.On("ExtractText", ctx, "scan.jpg", mock.Anything).Return("   ", nil).Once()

	fields, err := suite.service.ExtractInvoiceFields(ctx, "scan.jpg", []byte{1})

	suite.Require().NoError(err)
	suite.Nil(fields.InvoiceNumber)
	suite.Nil(fields.Amount)
	suite.Nil(fields.InvoiceDate)
}

func (suite *OCRServiceTestSuite) TestExtractInvoiceFields_UnsupportedType() {
	ctx := context.Background()

	fields, err := suite.service.ExtractInvoiceFields(ctx, "notes.txt", []byte("text"))

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.Nil(fields)
	suite.mockExtractor.AssertNotCalled(suite.T(), "ExtractText", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OCRServiceTestSuite) TestExtractInvoiceFields_ExtractorFailure() {
	ctx := context.Background()

	suite.mockExtractor.On("ExtractText", ctx, "scan.pdf", mock.Anything).Return("", assert.AnError).Once()

	fields, err := suite.service.ExtractInvoiceFields(ctx, "scan.pdf", []byte{1})

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.Nil(fields)
}

func TestOCRServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OCRServiceTestSuite))
}
