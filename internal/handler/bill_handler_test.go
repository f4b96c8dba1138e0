package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"feedesk/internal/domain"
	"feedesk/internal/handler"
	"feedesk/internal/middleware"
	"feedesk/internal/service"
	"feedesk/mocks"
)

func authedContext(w *httptest.ResponseRecorder, userID uuid.UUID) (*gin.Context, *gin.Engine) {
	c, r := gin.CreateTestContext(w)
	c.Set(middleware.ContextKeyUserID, userID)
	c.Set(middleware.ContextKeyRole, string(domain.RoleAccountant))
	return c, r
}

func TestBillHandler_Create_Success(t *testing.T) {
	mockSvc := new(mocks.MockBillService)
	h := handler.NewBillHandler(mockSvc)

	userID := uuid.New()
	studentID := uuid.New()
	created := &domain.FeeBill{
		ID:          uuid.New(),
		StudentID:   studentID,
		TotalAmount: 320000,
		Status:      domain.BillStatusPending,
	}

	mockSvc.On("Create", mock.Anything, mock.MatchedBy(func(in *service.CreateBillInput) bool {
		return in.StudentID == studentID && in.CreatedBy == userID
	})).Return(created, nil)

	body, _ := json.Marshal(map[string]interface{}{"student_id": studentID})

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/fee-bills", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestBillHandler_Create_BadDate(t *testing.T) {
	mockSvc := new(mocks.MockBillService)
	h := handler.NewBillHandler(mockSvc)

	body, _ := json.Marshal(map[string]interface{}{
		"student_id": uuid.New(),
		"due_date":   "01/05/2026",
	})

	w := httptest.NewRecorder()
	c, _ := authedContext(w, uuid.New())
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/fee-bills", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestBillHandler_RecordPayment_Success(t *testing.T) {
	mockSvc := new(mocks.MockBillService)
	h := handler.NewBillHandler(mockSvc)

	userID := uuid.New()
	billID := uuid.New()
	updated := &domain.FeeBill{
		ID:            billID,
		TotalAmount:   50000,
		PaidAmount:    50000,
		BalanceAmount: 0,
		Status:        domain.BillStatusPaid,
	}

	mockSvc.On("RecordPayment", mock.Anything, mock.MatchedBy(func(in *service.RecordPaymentInput) bool {
		return in.BillID == billID && in.Amount == 20000 && in.RecordedBy == userID
	})).Return(updated, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"amount": 20000,
		"method": "cash",
	})

	w := httptest.NewRecorder()
	c, _ := authedContext(w, userID)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/fee-bills/"+billID.String()+"/payments", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: billID.String()}}

	h.RecordPayment(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Success bool           `json:"success"`
		Data    domain.FeeBill `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, domain.BillStatusPaid, resp.Data.Status)
	mockSvc.AssertExpectations(t)
}

func TestBillHandler_RecordPayment_InvalidAmount(t *testing.T) {
	mockSvc := new(mocks.MockBillService)
	h := handler.NewBillHandler(mockSvc)

	billID := uuid.New()
	mockSvc.On("RecordPayment", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidPayment)

	body, _ := json.Marshal(map[string]interface{}{"amount": -500})

	w := httptest.NewRecorder()
	c, _ := authedContext(w, uuid.New())
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/v1/fee-bills/"+billID.String()+"/payments", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: billID.String()}}

	h.RecordPayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_PAYMENT", resp.Error.Code)
}

func TestBillHandler_Update_Conflict(t *testing.T) {
	mockSvc := new(mocks.MockBillService)
	h := handler.NewBillHandler(mockSvc)

	billID := uuid.New()
	mockSvc.On("Update", mock.Anything, billID, mock.Anything).Return(nil, domain.ErrBillHasPayments)

	body, _ := json.Marshal(map[string]interface{}{
		"fee_items": []map[string]interface{}{{"fee_head": "Tuition Fee", "amount": 100}},
	})

	w := httptest.NewRecorder()
	c, _ := authedContext(w, uuid.New())
	c.Request, _ = http.NewRequest(http.MethodPut, "/api/v1/fee-bills/"+billID.String(), bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: billID.String()}}

	h.Update(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBillHandler_List_FiltersParsed(t *testing.T) {
	mockSvc := new(mocks.MockBillService)
	h := handler.NewBillHandler(mockSvc)

	classID := uuid.New()
	from := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	mockSvc.On("List", mock.Anything, mock.MatchedBy(func(f *domain.BillFilters) bool {
		return f.ClassID != nil && *f.ClassID == classID &&
			f.Status == domain.BillStatusOverdue &&
			f.From != nil && f.From.Equal(from)
	}), 0, 20).Return([]domain.FeeBill{}, 0, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet,
		"/api/v1/fee-bills?class_id="+classID.String()+"&status=overdue&from=2026-04-01", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestBillHandler_GetByID_NotFound(t *testing.T) {
	mockSvc := new(mocks.MockBillService)
	h := handler.NewBillHandler(mockSvc)

	billID := uuid.New()
	mockSvc.On("GetByID", mock.Anything, billID).Return(nil, domain.ErrBillNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/fee-bills/"+billID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: billID.String()}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBillHandler_DeriveItems(t *testing.T) {
	mockSvc := new(mocks.MockBillService)
	h := handler.NewBillHandler(mockSvc)

	classID := uuid.New()
	items := domain.FeeItemList{
		{ID: uuid.New(), FeeHead: "Tuition Fee", Amount: 250000, FeeType: domain.FeeTypeRecurring, Frequency: domain.FrequencyMonthly},
	}
	mockSvc.On("DeriveItems", mock.Anything, classID).Return(items, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/fee-bills/derive?class_id="+classID.String(), nil)

	h.DeriveItems(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Tuition Fee")
}
