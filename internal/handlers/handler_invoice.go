package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	portsrepo "github.com/checkflowhq/checkflow_backend/internal/core/ports/repositories"
	portssvc "github.com/checkflowhq/checkflow_backend/internal/core/ports/services"
	"github.com/checkflowhq/checkflow_backend/internal/dto"
	"github.com/checkflowhq/checkflow_backend/internal/middleware"
)

// invoiceHandler handles invoice ledger requests, including bulk import and
// the OCR assist endpoint.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
	importService  portssvc.ImportSvcFacade
	ocrService     portssvc.OCRSvcFacade
}

func newInvoiceHandler(is portssvc.InvoiceSvcFacade, imp portssvc.ImportSvcFacade, ocr portssvc.OCRSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: is, importService: imp, ocrService: ocr}
}

// registerInvoiceRoutes registers invoice routes. Reads are open to every
// authenticated role; writes require CLERK or ADMIN; approval is admin only.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade, importService portssvc.ImportSvcFacade, ocrService portssvc.OCRSvcFacade) {
	h := newInvoiceHandler(invoiceService, importService, ocrService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.GET("/attachment/:filename", h.serveAttachment)
		invoices.GET("/:id", h.getInvoice)

		writers := middleware.RequireRoles(domain.RoleAdmin, domain.RoleClerk)
		invoices.POST("/create", writers, h.createInvoice)
		invoices.POST("/import", writers, h.importInvoices)
		invoices.POST("/ocr", writers, h.extractFields)
		invoices.PUT("/:id", writers, h.updateInvoice)

		invoices.POST("/:id/approve", middleware.RequireRoles(domain.RoleAdmin), h.approveInvoice)
	}
}

func (h *invoiceHandler) listInvoices(c *gin.Context) {
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters"})
		return
	}

	details, err := h.invoiceService.ListInvoices(c.Request.Context(), portsrepo.InvoiceListFilter{
		Status: params.Status,
		Store:  params.Store,
		Search: params.Search,
	})
	if err != nil {
		respondServiceError(c, err, "Failed to list invoices")
		return
	}

	c.JSON(http.StatusOK, dto.ToListInvoicesResponse(details))
}

func (h *invoiceHandler) getInvoice(c *gin.Context) {
	details, err := h.invoiceService.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(details))
}

// readUpload slurps a multipart file header into an AttachmentUpload.
func readUpload(fh *multipart.FileHeader) (*dto.AttachmentUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &dto.AttachmentUpload{Filename: fh.Filename, Content: content}, nil
}

// createInvoice records a manually entered invoice from a multipart form,
// with an optional attachment file.
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid form data: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var attachment *dto.AttachmentUpload
	if fh, err := c.FormFile("attachment"); err == nil {
		attachment, err = readUpload(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read attachment"})
			return
		}
	}

	details, err := h.invoiceService.CreateManualInvoice(c.Request.Context(), req, attachment, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, dto.ToInvoiceResponse(details))
}

// importInvoices accepts a CSV or XLSX upload and returns a per-row summary.
func (h *invoiceHandler) importInvoices(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A file upload is required"})
		return
	}

	upload, err := readUpload(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	if len(upload.Content) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Uploaded file is empty"})
		return
	}

	importerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	summary, err := h.importService.ImportFile(c.Request.Context(), upload.Filename, upload.Content, importerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to import invoices")
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	details, err := h.invoiceService.UpdateInvoice(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(details))
}

func (h *invoiceHandler) approveInvoice(c *gin.Context) {
	approverUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	details, err := h.invoiceService.ApproveInvoice(c.Request.Context(), c.Param("id"), approverUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to approve invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ToInvoiceResponse(details))
}

// serveAttachment streams a stored attachment file.
func (h *invoiceHandler) serveAttachment(c *gin.Context) {
	path, err := h.invoiceService.ResolveAttachment(c.Param("filename"))
	if err != nil {
		respondServiceError(c, err, "Failed to resolve attachment")
		return
	}

	c.File(path)
}

// extractFields runs OCR over an uploaded document and returns best-guess
// invoice fields for the entry form.
func (h *invoiceHandler) extractFields(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "A file upload is required"})
		return
	}

	upload, err := readUpload(fh)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	if len(upload.Content) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Uploaded file is empty"})
		return
	}

	fields, err := h.ocrService.ExtractInvoiceFields(c.Request.Context(), upload.Filename, upload.Content)
	if err != nil {
		respondServiceError(c, err, "Failed to extract invoice fields")
		return
	}

	c.JSON(http.StatusOK, fields)
}
