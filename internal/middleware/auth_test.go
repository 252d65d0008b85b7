package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"shiksha/internal/domain"
	"shiksha/internal/middleware"
	"shiksha/internal/service"
)

type stubAuthService struct {
	claims *service.Claims
	err    error
}

func (s *stubAuthService) Login(context.Context, service.LoginInput) (*service.TokenPair, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) RefreshToken(context.Context, string) (*service.TokenPair, error) {
	return nil, errors.New("not implemented")
}

func (s *stubAuthService) ValidateToken(string) (*service.Claims, error) {
	return s.claims, s.err
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	schoolID := uuid.New()
	userID := uuid.New()
	auth := &stubAuthService{claims: &service.Claims{
		SchoolID: schoolID,
		UserID:   userID,
		Email:    "teacher@school.test",
		Role:     domain.RoleTeacher,
	}}

	r := gin.New()
	r.Use(middleware.AuthMiddleware(auth))
	r.GET("/test", func(c *gin.Context) {
		gotSchool, err := middleware.GetSchoolID(c)
		assert.NoError(t, err)
		assert.Equal(t, schoolID, gotSchool)

		gotUser, err := middleware.GetUserID(c)
		assert.NoError(t, err)
		assert.Equal(t, userID, gotUser)

		assert.Equal(t, domain.RoleTeacher, middleware.GetRole(c))
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer some-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(&stubAuthService{}))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r := gin.New()
	r.Use(middleware.AuthMiddleware(&stubAuthService{err: domain.ErrUnauthorized}))
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("Authorization", "Bearer expired")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_Allowed(t *testing.T) {
	r := gin.New()
	r.GET("/test",
		func(c *gin.Context) { c.Set(middleware.ContextKeyRole, string(domain.RoleAdmin)) },
		middleware.RequireRole(domain.RoleAdmin),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_Forbidden(t *testing.T) {
	r := gin.New()
	r.GET("/test",
		func(c *gin.Context) { c.Set(middleware.ContextKeyRole, string(domain.RoleStudent)) },
		middleware.RequireRole(domain.RoleAdmin, domain.RoleTeacher),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSchoolGuard_MissingContext(t *testing.T) {
	r := gin.New()
	r.Use(middleware.SchoolGuard())
	r.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/test", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
