package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func performCookieRequest(t *testing.T, handler gin.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/", handler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestCookieWriterWrite(t *testing.T) {
	t.Run("Development", func(t *testing.T) {
		cw := NewCookieWriter("token", "", false, 3600)
		w := performCookieRequest(t, func(c *gin.Context) {
			cw.Write(c, "abc123")
			c.Status(http.StatusOK)
		})

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.Equal(t, "token", cookie.Name)
		assert.Equal(t, "abc123", cookie.Value)
		assert.True(t, cookie.HttpOnly)
		assert.False(t, cookie.Secure)
		assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	})

	t.Run("Production", func(t *testing.T) {
		cw := NewCookieWriter("token", "", true, 3600)
		w := performCookieRequest(t, func(c *gin.Context) {
			cw.Write(c, "abc123")
			c.Status(http.StatusOK)
		})

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		cookie := cookies[0]
		assert.True(t, cookie.HttpOnly)
		assert.True(t, cookie.Secure)
		assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	})
}

func TestCookieWriterClear(t *testing.T) {
	cw := NewCookieWriter("token", "", false, 3600)
	w := performCookieRequest(t, func(c *gin.Context) {
		cw.Clear(c)
		c.Status(http.StatusOK)
	})

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "token", cookie.Name)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}

func TestCookieWriterRead(t *testing.T) {
	cw := NewCookieWriter("token", "", false, 3600)
	gin.SetMode(gin.TestMode)

	var got string
	router := gin.New()
	router.GET("/", func(c *gin.Context) {
		got = cw.Read(c)
		c.Status(http.StatusOK)
	})

	t.Run("Present", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "abc123"})
		router.ServeHTTP(w, req)
		assert.Equal(t, "abc123", got)
	})

	t.Run("Absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		router.ServeHTTP(w, req)
		assert.Empty(t, got)
	})
}
