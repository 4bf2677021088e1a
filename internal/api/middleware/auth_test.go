package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dulceandina/panela-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testRouter(issuer *TokenIssuer) *gin.Engine {
	router := gin.New()
	group := router.Group("/", RequireAuth(issuer))
	group.GET("/open", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(ContextUserID)})
	})
	group.GET("/admin", RequireRole(domain.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.GenerateToken(&domain.User{ID: "u-1", Name: "María", Role: domain.RoleOperator})
	require.NoError(t, err)

	claims, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, domain.RoleOperator, claims.Role)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)

	token, err := issuer.GenerateToken(&domain.User{ID: "u-1", Role: domain.RoleAdmin})
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestRequireAuthMissingHeader(t *testing.T) {
	router := testRouter(NewTokenIssuer("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthBadToken(t *testing.T) {
	router := testRouter(NewTokenIssuer("test-secret", time.Hour))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuthPassesValidToken(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	router := testRouter(issuer)

	token, err := issuer.GenerateToken(&domain.User{ID: "u-7", Role: domain.RoleOperator})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/open", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u-7")
}

func TestRequireRoleForbidsOperator(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	router := testRouter(issuer)

	token, err := issuer.GenerateToken(&domain.User{ID: "u-2", Role: domain.RoleOperator})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleAdminPasses(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	router := testRouter(issuer)

	token, err := issuer.GenerateToken(&domain.User{ID: "u-3", Role: domain.RoleAdmin})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExpiredTokenRejected(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Nanosecond)

	token, err := issuer.GenerateToken(&domain.User{ID: "u-4", Role: domain.RoleAdmin})
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = issuer.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}
