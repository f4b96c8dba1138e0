package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"feedesk/internal/domain"
	"feedesk/internal/service"
)

// StructureHandler handles fee structure endpoints.
type StructureHandler struct {
	structureService service.StructureService
}

// NewStructureHandler creates a new StructureHandler.
func NewStructureHandler(structureService service.StructureService) *StructureHandler {
	return &StructureHandler{structureService: structureService}
}

type structureRequest struct {
	ClassID        uuid.UUID              `json:"class_id" binding:"required"`
	RecurringItems domain.FeeItemList     `json:"recurring_items"`
	OneTimeItems   domain.FeeItemList     `json:"one_time_items"`
	Status         domain.StructureStatus `json:"status"`
}

func (r *structureRequest) toInput() *service.StructureInput {
	return &service.StructureInput{
		ClassID:        r.ClassID,
		RecurringItems: r.RecurringItems,
		OneTimeItems:   r.OneTimeItems,
		Status:         r.Status,
	}
}

// Create handles POST /api/v1/fee-structures
func (h *StructureHandler) Create(c *gin.Context) {
	var req structureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "class_id is required")
		return
	}

	structure, err := h.structureService.Create(c.Request.Context(), req.toInput())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, structure)
}

// GetByID handles GET /api/v1/fee-structures/:id
func (h *StructureHandler) GetByID(c *gin.Context) {
	structureID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid fee structure ID")
		return
	}

	structure, err := h.structureService.GetByID(c.Request.Context(), structureID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, structure)
}

// GetByClass handles GET /api/v1/fee-structures/class/:classId
func (h *StructureHandler) GetByClass(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("classId"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid class ID")
		return
	}

	structure, err := h.structureService.GetByClass(c.Request.Context(), classID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, structure)
}

// List handles GET /api/v1/fee-structures
func (h *StructureHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	structures, total, err := h.structureService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, structures, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/fee-structures/:id
func (h *StructureHandler) Update(c *gin.Context) {
	structureID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid fee structure ID")
		return
	}

	var req structureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "class_id is required")
		return
	}

	structure, err := h.structureService.Update(c.Request.Context(), structureID, req.toInput())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, structure)
}
