package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ameetempireone721/employeemonitoringsystem/pkg/jwt"
)

const testSecret = "test-secret-key-for-testing-purposes"

func setupRouter(jwtService *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.GET("/protected", AuthMiddleware(jwtService), func(c *gin.Context) {
		userCtx, _ := GetUserContext(c)
		c.JSON(http.StatusOK, userCtx)
	})

	router.GET("/admin", AuthMiddleware(jwtService), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})

	return router
}

func responseCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	code, _ := body["code"].(string)
	return code
}

func TestAuthMiddleware(t *testing.T) {
	jwtService := jwt.NewService(testSecret, time.Hour, 10*time.Hour)
	router := setupRouter(jwtService)

	t.Run("Valid Token", func(t *testing.T) {
		token, err := jwtService.GenerateToken(42, "john@empireonegroup.com", false, jwt.WebClient)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var userCtx UserContext
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &userCtx))
		assert.Equal(t, int64(42), userCtx.EmployeeID)
		assert.Equal(t, "john@empireonegroup.com", userCtx.Email)
		assert.False(t, userCtx.IsAdmin)
	})

	t.Run("Missing Header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "MISSING_AUTH_HEADER", responseCode(t, w))
	})

	t.Run("Invalid Format", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Token abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_AUTH_FORMAT", responseCode(t, w))
	})

	t.Run("Empty Token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer ")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_AUTH_FORMAT", responseCode(t, w))
	})

	t.Run("Expired Token", func(t *testing.T) {
		expiredService := jwt.NewService(testSecret, -time.Hour, -time.Hour)
		token, err := expiredService.GenerateToken(42, "john@empireonegroup.com", false, jwt.WebClient)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "TOKEN_EXPIRED", responseCode(t, w))
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		otherService := jwt.NewService("other-secret", time.Hour, 10*time.Hour)
		token, err := otherService.GenerateToken(42, "john@empireonegroup.com", false, jwt.WebClient)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "INVALID_TOKEN", responseCode(t, w))
	})

	t.Run("Garbage Token", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "TOKEN_EXPIRED", responseCode(t, w))
	})
}

func TestRequireAdmin(t *testing.T) {
	jwtService := jwt.NewService(testSecret, time.Hour, 10*time.Hour)
	router := setupRouter(jwtService)

	t.Run("Admin Allowed", func(t *testing.T) {
		token, err := jwtService.GenerateToken(1, "admin@empireonegroup.com", true, jwt.WebClient)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Non-Admin Forbidden", func(t *testing.T) {
		token, err := jwtService.GenerateToken(2, "agent@empireonegroup.com", false, jwt.WebClient)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "ADMIN_REQUIRED", responseCode(t, w))
	})

	t.Run("Missing User Context", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		bare := gin.New()
		bare.GET("/admin", RequireAdmin(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		bare.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "MISSING_USER_CONTEXT", responseCode(t, w))
	})
}

func TestGetUserContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, exists := GetUserContext(c)
	assert.False(t, exists)

	c.Set(UserContextKey, UserContext{EmployeeID: 7, Email: "john@empireonegroup.com", IsAdmin: true})
	userCtx, exists := GetUserContext(c)
	assert.True(t, exists)
	assert.Equal(t, int64(7), userCtx.EmployeeID)
	assert.True(t, userCtx.IsAdmin)
}
