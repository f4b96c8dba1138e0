package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"feedesk/internal/domain"
	"feedesk/internal/service"
)

// BillHandler handles fee bill and payment endpoints.
type BillHandler struct {
	billService service.BillService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

const dateLayout = "2006-01-02"

// parseDate parses an optional YYYY-MM-DD query or body value.
func parseDate(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, false
	}
	t = t.UTC()
	return &t, true
}

// Create handles POST /api/v1/fee-bills
func (h *BillHandler) Create(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req struct {
		StudentID uuid.UUID          `json:"student_id" binding:"required"`
		BillDate  string             `json:"bill_date"`
		DueDate   string             `json:"due_date"`
		FeeItems  domain.FeeItemList `json:"fee_items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "student_id is required")
		return
	}

	billDate, ok := parseDate(req.BillDate)
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "bill_date must be YYYY-MM-DD")
		return
	}
	dueDate, ok := parseDate(req.DueDate)
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "due_date must be YYYY-MM-DD")
		return
	}

	bill, err := h.billService.Create(c.Request.Context(), &service.CreateBillInput{
		StudentID: req.StudentID,
		BillDate:  billDate,
		DueDate:   dueDate,
		Items:     req.FeeItems,
		CreatedBy: userID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, bill)
}

// Import handles POST /api/v1/fee-bills/import
// Accepts bills in upstream record shape and persists them after
// normalization.
func (h *BillHandler) Import(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	var req struct {
		Records []domain.BillRecord `json:"records" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "records is required")
		return
	}

	bills, err := h.billService.Import(c.Request.Context(), req.Records, userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, gin.H{"imported": len(bills), "bills": bills})
}

// GetByID handles GET /api/v1/fee-bills/:id
func (h *BillHandler) GetByID(c *gin.Context) {
	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid fee bill ID")
		return
	}

	bill, err := h.billService.GetByID(c.Request.Context(), billID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, bill)
}

// parseBillFilters extracts bill list filters from query params. Returns
// false if a filter value is malformed (error response already written).
func parseBillFilters(c *gin.Context) (*domain.BillFilters, bool) {
	filters := &domain.BillFilters{}

	if raw := c.Query("student_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid student_id filter")
			return nil, false
		}
		filters.StudentID = &id
	}
	if raw := c.Query("class_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid class_id filter")
			return nil, false
		}
		filters.ClassID = &id
	}
	filters.Status = domain.BillStatus(c.Query("status"))

	from, ok := parseDate(c.Query("from"))
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "from must be YYYY-MM-DD")
		return nil, false
	}
	filters.From = from

	to, ok := parseDate(c.Query("to"))
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "to must be YYYY-MM-DD")
		return nil, false
	}
	filters.To = to

	return filters, true
}

// List handles GET /api/v1/fee-bills
func (h *BillHandler) List(c *gin.Context) {
	filters, ok := parseBillFilters(c)
	if !ok {
		return
	}
	offset, limit := parsePagination(c)

	bills, total, err := h.billService.List(c.Request.Context(), filters, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, bills, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/fee-bills/:id
func (h *BillHandler) Update(c *gin.Context) {
	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid fee bill ID")
		return
	}

	var req struct {
		BillDate string             `json:"bill_date"`
		DueDate  string             `json:"due_date"`
		FeeItems domain.FeeItemList `json:"fee_items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
		return
	}

	billDate, ok := parseDate(req.BillDate)
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "bill_date must be YYYY-MM-DD")
		return
	}
	dueDate, ok := parseDate(req.DueDate)
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "due_date must be YYYY-MM-DD")
		return
	}

	bill, err := h.billService.Update(c.Request.Context(), billID, &service.UpdateBillInput{
		BillDate: billDate,
		DueDate:  dueDate,
		Items:    req.FeeItems,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, bill)
}

// Delete handles DELETE /api/v1/fee-bills/:id
func (h *BillHandler) Delete(c *gin.Context) {
	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid fee bill ID")
		return
	}

	if err := h.billService.Delete(c.Request.Context(), billID); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"message": "fee bill deleted"})
}

// DeriveItems handles GET /api/v1/fee-bills/derive
// Previews the line items a new bill would carry for the given class.
func (h *BillHandler) DeriveItems(c *gin.Context) {
	classID, err := uuid.Parse(c.Query("class_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "class_id query parameter is required")
		return
	}

	items, err := h.billService.DeriveItems(c.Request.Context(), classID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"fee_items": items})
}

// RecordPayment handles POST /api/v1/fee-bills/:id/payments
func (h *BillHandler) RecordPayment(c *gin.Context) {
	userID, _, ok := extractAuthContext(c)
	if !ok {
		return
	}

	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid fee bill ID")
		return
	}

	var req struct {
		Amount      int64                `json:"amount" binding:"required"`
		Method      domain.PaymentMethod `json:"method"`
		Reference   string               `json:"reference"`
		PaymentDate string               `json:"payment_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "amount is required")
		return
	}

	paymentDate, ok := parseDate(req.PaymentDate)
	if !ok {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "payment_date must be YYYY-MM-DD")
		return
	}

	bill, err := h.billService.RecordPayment(c.Request.Context(), &service.RecordPaymentInput{
		BillID:      billID,
		Amount:      req.Amount,
		Method:      req.Method,
		Reference:   req.Reference,
		PaymentDate: paymentDate,
		RecordedBy:  userID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, bill)
}

// ListPayments handles GET /api/v1/fee-bills/:id/payments
func (h *BillHandler) ListPayments(c *gin.Context) {
	billID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid fee bill ID")
		return
	}

	payments, err := h.billService.ListPayments(c.Request.Context(), billID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, payments)
}
