package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func authTestRouter(apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(authRequired(nil, apiKey))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user": c.GetString(contextKeyUserID)})
	})
	return r
}

func TestAuthRequiredAPIKey(t *testing.T) {
	router := authTestRouter("super-secret-key")

	do := func(t *testing.T, mutate func(*http.Request)) *httptest.ResponseRecorder {
		t.Helper()
		req, err := http.NewRequest(http.MethodGet, "/protected", nil)
		require.NoError(t, err)
		mutate(req)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("accepts the key as a bearer token", func(t *testing.T) {
		rec := do(t, func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer super-secret-key")
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "api-key")
	})

	t.Run("accepts the X-API-Key header", func(t *testing.T) {
		rec := do(t, func(r *http.Request) {
			r.Header.Set("X-API-Key", "super-secret-key")
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("accepts the api_key query parameter", func(t *testing.T) {
		rec := do(t, func(r *http.Request) {
			q := r.URL.Query()
			q.Set("api_key", "super-secret-key")
			r.URL.RawQuery = q.Encode()
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects a wrong key", func(t *testing.T) {
		rec := do(t, func(r *http.Request) {
			r.Header.Set("X-API-Key", "guessed-key")
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects missing credentials", func(t *testing.T) {
		rec := do(t, func(*http.Request) {})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthRequiredNoKeyConfigured(t *testing.T) {
	// With no API key configured, plain credentials never match anything.
	router := authTestRouter("")

	req, err := http.NewRequest(http.MethodGet, "/protected", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", "")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req, err = http.NewRequest(http.MethodGet, "/protected", nil)
	require.NoError(t, err)
	req.Header.Set("X-API-Key", "anything")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(securityHeaders())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))
}
