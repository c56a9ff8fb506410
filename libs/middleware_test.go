package libs

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func protectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/chats/:userId", JWTMiddleware(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString("userId")})
	})
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func get(r *gin.Engine, path, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		w := get(protectedRouter(), "/chats/u1", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("empty bearer token", func(t *testing.T) {
		w := get(protectedRouter(), "/chats/u1", "Bearer ")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := get(protectedRouter(), "/chats/u1", "Bearer not.a.token")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "another-secret", jwt.MapClaims{"userId": "u1"})
		w := get(protectedRouter(), "/chats/u1", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing userId claim", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{"sub": "u1"})
		w := get(protectedRouter(), "/chats/u1", "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for another user", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{"userId": "u2"})
		w := get(protectedRouter(), "/chats/u1", "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{"userId": "u1"})
		w := get(protectedRouter(), "/chats/u1", "Bearer "+token)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"userId":"u1"}`, w.Body.String())
	})
}
