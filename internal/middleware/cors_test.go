package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func corsRouter() *gin.Engine {
	router := gin.New()
	router.Use(CORS())

	ok := func(c *gin.Context) { c.Status(http.StatusOK) }
	router.GET("/test", ok)
	router.POST("/test", ok)
	router.PUT("/test", ok)
	router.DELETE("/test", ok)
	router.OPTIONS("/test", ok)
	return router
}

func TestCORS(t *testing.T) {
	t.Run("sets permissive headers on normal requests", func(t *testing.T) {
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
			req := httptest.NewRequest(method, "/test", nil)
			w := httptest.NewRecorder()

			corsRouter().ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code, "method %s", method)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "GET, POST, PUT, DELETE, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
			assert.Equal(t, "Origin, Content-Type, Authorization", w.Header().Get("Access-Control-Allow-Headers"))
			assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
		}
	})

	t.Run("preflight request returns 204 with headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/test", nil)
		w := httptest.NewRecorder()

		corsRouter().ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "86400", w.Header().Get("Access-Control-Max-Age"))
	})
}

func TestCORS_PreflightDoesNotReachHandler(t *testing.T) {
	handlerCalled := false

	router := gin.New()
	router.Use(CORS())
	router.OPTIONS("/test", func(c *gin.Context) {
		handlerCalled = true
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.False(t, handlerCalled, "handler should not be called for preflight requests")
}
