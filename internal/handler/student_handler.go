package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"feedesk/internal/service"
)

// StudentHandler handles student enrollment endpoints.
type StudentHandler struct {
	studentService service.StudentService
}

// NewStudentHandler creates a new StudentHandler.
func NewStudentHandler(studentService service.StudentService) *StudentHandler {
	return &StudentHandler{studentService: studentService}
}

// Create handles POST /api/v1/students
func (h *StudentHandler) Create(c *gin.Context) {
	var req struct {
		AdmissionNo   string    `json:"admission_no" binding:"required"`
		FullName      string    `json:"full_name" binding:"required"`
		ClassID       uuid.UUID `json:"class_id" binding:"required"`
		GuardianName  string    `json:"guardian_name"`
		GuardianEmail string    `json:"guardian_email"`
		GuardianPhone string    `json:"guardian_phone"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "admission_no, full_name, and class_id are required")
		return
	}

	student, err := h.studentService.Create(c.Request.Context(), &service.CreateStudentInput{
		AdmissionNo:   req.AdmissionNo,
		FullName:      req.FullName,
		ClassID:       req.ClassID,
		GuardianName:  req.GuardianName,
		GuardianEmail: req.GuardianEmail,
		GuardianPhone: req.GuardianPhone,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, student)
}

// GetByID handles GET /api/v1/students/:id
func (h *StudentHandler) GetByID(c *gin.Context) {
	studentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid student ID")
		return
	}

	student, err := h.studentService.GetByID(c.Request.Context(), studentID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, student)
}

// List handles GET /api/v1/students
func (h *StudentHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)

	var classID *uuid.UUID
	if raw := c.Query("class_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid class_id filter")
			return
		}
		classID = &id
	}

	students, total, err := h.studentService.List(c.Request.Context(), classID, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, students, PagMeta{Total: total, Offset: offset, Limit: limit})
}
