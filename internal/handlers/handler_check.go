package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	portssvc "github.com/checkflowhq/checkflow_backend/internal/core/ports/services"
	"github.com/checkflowhq/checkflow_backend/internal/dto"
	"github.com/checkflowhq/checkflow_backend/internal/middleware"
)

// checkHandler handles check issuance and lifecycle requests.
type checkHandler struct {
	checkService portssvc.CheckSvcFacade
}

func newCheckHandler(cs portssvc.CheckSvcFacade) *checkHandler {
	return &checkHandler{checkService: cs}
}

// registerCheckRoutes registers check routes. Reads are open to every
// authenticated role; issuance and lifecycle transitions are admin only.
func registerCheckRoutes(rg *gin.RouterGroup, checkService portssvc.CheckSvcFacade) {
	h := newCheckHandler(checkService)

	checks := rg.Group("/checks")
	{
		checks.GET("", h.listChecks)
		checks.GET("/:id", h.getCheck)
		checks.GET("/:id/pdf", h.downloadPDF)

		adminOnly := middleware.RequireRoles(domain.RoleAdmin)
		checks.POST("", adminOnly, h.generateCheck)
		checks.POST("/:id/print", adminOnly, h.printCheck)
		checks.POST("/:id/void", adminOnly, h.voidCheck)
	}
}

func (h *checkHandler) listChecks(c *gin.Context) {
	details, err := h.checkService.ListChecks(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list checks")
		return
	}

	c.JSON(http.StatusOK, dto.ToListChecksResponse(details))
}

func (h *checkHandler) getCheck(c *gin.Context) {
	details, err := h.checkService.GetCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get check")
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckResponse(details))
}

func (h *checkHandler) generateCheck(c *gin.Context) {
	var req dto.GenerateCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	issuerUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	details, err := h.checkService.GenerateCheck(c.Request.Context(), req.InvoiceID, req.Memo, issuerUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to generate check")
		return
	}

	c.JSON(http.StatusCreated, dto.ToCheckResponse(details))
}

// downloadPDF streams the printable check document as an attachment.
func (h *checkHandler) downloadPDF(c *gin.Context) {
	pdf, details, err := h.checkService.RenderCheckPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to render check PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=check_%s.pdf", details.CheckNumber))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func (h *checkHandler) printCheck(c *gin.Context) {
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	details, err := h.checkService.PrintCheck(c.Request.Context(), c.Param("id"), updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to mark check printed")
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckResponse(details))
}

func (h *checkHandler) voidCheck(c *gin.Context) {
	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	details, err := h.checkService.VoidCheck(c.Request.Context(), c.Param("id"), updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to void check")
		return
	}

	c.JSON(http.StatusOK, dto.ToCheckResponse(details))
}
