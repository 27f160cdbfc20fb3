package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"verdanta/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AdminAuthMiddleware(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func signAdminToken(t *testing.T, secret, subject string) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAdminAuthMiddleware(t *testing.T) {
	config.AppConfig.AdminJWTSecret = "test-secret"
	t.Cleanup(func() { config.AppConfig.AdminJWTSecret = "" })

	r := adminTestRouter()

	do := func(authHeader string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token passes", func(t *testing.T) {
		w := do("Bearer " + signAdminToken(t, "test-secret", "admin"))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := do("")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		w := do("Bearer " + signAdminToken(t, "other-secret", "admin"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong subject is rejected", func(t *testing.T) {
		w := do("Bearer " + signAdminToken(t, "test-secret", "visitor"))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		w := do("Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("no configured secret disables the surface", func(t *testing.T) {
		config.AppConfig.AdminJWTSecret = ""
		defer func() { config.AppConfig.AdminJWTSecret = "test-secret" }()

		w := do("Bearer " + signAdminToken(t, "test-secret", "admin"))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
