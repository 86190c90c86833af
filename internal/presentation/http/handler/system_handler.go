package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/omondig/pulseboard-api/internal/application/service"
	"github.com/omondig/pulseboard-api/internal/presentation/http/dto/response"
)

// SystemHandler handles diagnostics and schema discovery requests
type SystemHandler struct {
	systemService *service.SystemService
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(systemService *service.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

// Status reports the storage backend state and collection counts
func (h *SystemHandler) Status(c *gin.Context) {
	status := h.systemService.Status(c.Request.Context())
	response.OK(c, "System status retrieved successfully", status)
}

// Schema lists the stored collections and their fields
func (h *SystemHandler) Schema(c *gin.Context) {
	response.OK(c, "Schema retrieved successfully", gin.H{
		"collections": h.systemService.Schema(),
	})
}
