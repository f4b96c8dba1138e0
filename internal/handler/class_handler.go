package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"feedesk/internal/service"
)

// ClassHandler handles school class endpoints.
type ClassHandler struct {
	classService   service.ClassService
	studentService service.StudentService
}

// NewClassHandler creates a new ClassHandler.
func NewClassHandler(classService service.ClassService, studentService service.StudentService) *ClassHandler {
	return &ClassHandler{classService: classService, studentService: studentService}
}

// Create handles POST /api/v1/classes
func (h *ClassHandler) Create(c *gin.Context) {
	var req struct {
		Name    string `json:"name" binding:"required"`
		Section string `json:"section"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "name is required")
		return
	}

	class, err := h.classService.Create(c.Request.Context(), &service.CreateClassInput{
		Name:    req.Name,
		Section: req.Section,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, class)
}

// GetByID handles GET /api/v1/classes/:id
func (h *ClassHandler) GetByID(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid class ID")
		return
	}

	class, err := h.classService.GetByID(c.Request.Context(), classID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, class)
}

// List handles GET /api/v1/classes
func (h *ClassHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	classes, total, err := h.classService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, classes, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// ListStudents handles GET /api/v1/classes/:id/students
func (h *ClassHandler) ListStudents(c *gin.Context) {
	classID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid class ID")
		return
	}
	offset, limit := parsePagination(c)

	students, total, err := h.studentService.List(c.Request.Context(), &classID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, students, PagMeta{Total: total, Offset: offset, Limit: limit})
}
