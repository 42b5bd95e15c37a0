package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/checkflowhq/checkflow_backend/internal/core/domain"
	portssvc "github.com/checkflowhq/checkflow_backend/internal/core/ports/services"
	"github.com/checkflowhq/checkflow_backend/internal/dto"
	"github.com/checkflowhq/checkflow_backend/internal/middleware"
)

// vendorHandler handles vendor registry requests.
type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

func newVendorHandler(vs portssvc.VendorSvcFacade) *vendorHandler {
	return &vendorHandler{vendorService: vs}
}

// registerVendorRoutes registers vendor routes. Reads are open to every
// authenticated role; writes are admin only.
func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := newVendorHandler(vendorService)

	vendors := rg.Group("/vendors")
	{
		vendors.GET("", h.listVendors)
		vendors.GET("/:id", h.getVendor)

		adminOnly := middleware.RequireRoles(domain.RoleAdmin)
		vendors.POST("", adminOnly, h.createVendor)
		vendors.PUT("/:id", adminOnly, h.updateVendor)
		vendors.DELETE("/:id", adminOnly, h.deleteVendor)
	}
}

func (h *vendorHandler) listVendors(c *gin.Context) {
	vendors, err := h.vendorService.ListVendors(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to list vendors")
		return
	}

	c.JSON(http.StatusOK, dto.ToListVendorsResponse(vendors))
}

func (h *vendorHandler) getVendor(c *gin.Context) {
	vendor, err := h.vendorService.GetVendorByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err, "Failed to get vendor")
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

func (h *vendorHandler) createVendor(c *gin.Context) {
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	vendor, err := h.vendorService.CreateVendor(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to create vendor")
		return
	}

	c.JSON(http.StatusCreated, dto.ToVendorResponse(vendor))
}

func (h *vendorHandler) updateVendor(c *gin.Context) {
	var req dto.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	vendor, err := h.vendorService.UpdateVendor(c.Request.Context(), c.Param("id"), req, updaterUserID)
	if err != nil {
		respondServiceError(c, err, "Failed to update vendor")
		return
	}

	c.JSON(http.StatusOK, dto.ToVendorResponse(vendor))
}

func (h *vendorHandler) deleteVendor(c *gin.Context) {
	if err := h.vendorService.DeleteVendor(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err, "Failed to delete vendor")
		return
	}

	c.Status(http.StatusNoContent)
}
