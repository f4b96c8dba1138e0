package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"feedesk/internal/domain"
	"feedesk/internal/middleware"
	"feedesk/internal/service"
	"feedesk/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func protectedRouter(authSvc service.AuthService, roles ...domain.UserRole) *gin.Engine {
	r := gin.New()
	grp := r.Group("/", middleware.AuthMiddleware(authSvc))
	if len(roles) > 0 {
		grp.Use(middleware.RequireRole(roles...))
	}
	grp.GET("/ping", func(c *gin.Context) {
		userID, _ := middleware.GetUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return r
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	r := protectedRouter(mockAuth)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "bad-token").Return(nil, domain.ErrUnauthorized)
	r := protectedRouter(mockAuth)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer bad-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	userID := uuid.New()
	mockAuth.On("ValidateToken", "good-token").Return(&service.Claims{
		UserID: userID,
		Email:  "accountant@school.test",
		Role:   domain.RoleAccountant,
	}, nil)
	r := protectedRouter(mockAuth)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID.String())
}

func TestRequireRole_Forbidden(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "viewer-token").Return(&service.Claims{
		UserID: uuid.New(),
		Role:   domain.RoleViewer,
	}, nil)
	r := protectedRouter(mockAuth, domain.RoleAdmin, domain.RoleAccountant)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer viewer-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	mockAuth.On("ValidateToken", "admin-token").Return(&service.Claims{
		UserID: uuid.New(),
		Role:   domain.RoleAdmin,
	}, nil)
	r := protectedRouter(mockAuth, domain.RoleAdmin)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
