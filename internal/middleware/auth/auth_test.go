package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newProtectedRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireRole(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString(ContextEmail),
			"role":  c.GetString(ContextRole),
		})
	})
	return router
}

func request(router *gin.Engine, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := NewToken(testSecret, "user-1", "admin@example.com", RoleAdmin, time.Hour)
	require.NoError(t, err)

	claims, err := ParseToken(testSecret, token)
	require.NoError(t, err)

	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, RoleAdmin, claims.Role)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewToken(testSecret, "user-1", "a@b.c", RoleAdmin, time.Hour)
	require.NoError(t, err)

	_, err = ParseToken("other-secret", token)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	token, err := NewToken(testSecret, "user-1", "a@b.c", RoleAdmin, -time.Minute)
	require.NoError(t, err)

	_, err = ParseToken(testSecret, token)
	assert.Error(t, err)
}

func TestRequireRoleWithoutHeader(t *testing.T) {
	router := newProtectedRouter(RoleAdmin)
	w := request(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleWithGarbageToken(t *testing.T) {
	router := newProtectedRouter(RoleAdmin)
	w := request(router, "not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	router := newProtectedRouter(RoleAdmin)

	token, err := NewToken(testSecret, "user-1", "admin@example.com", RoleAdmin, time.Hour)
	require.NoError(t, err)

	w := request(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "admin@example.com")
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	router := newProtectedRouter(RoleAdmin)

	token, err := NewToken(testSecret, "user-2", "kunde@example.com", RoleCustomer, time.Hour)
	require.NoError(t, err)

	w := request(router, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAcceptsAnyListedRole(t *testing.T) {
	router := newProtectedRouter(RoleAdmin, RoleCustomer)

	token, err := NewToken(testSecret, "user-2", "kunde@example.com", RoleCustomer, time.Hour)
	require.NoError(t, err)

	w := request(router, token)
	assert.Equal(t, http.StatusOK, w.Code)
}
