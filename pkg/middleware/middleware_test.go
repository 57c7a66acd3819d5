package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	md "github.com/Astemirdum/circulation-service/pkg/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerConfig(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(md.RequestLoggerConfig(zap.New(core))))
	e.GET("/ok", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok", http.NoBody))

	require.Equal(t, http.StatusOK, w.Code)
	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	require.Equal(t, "/ok", entries[0].ContextMap()["URI"])
	require.EqualValues(t, http.StatusOK, entries[0].ContextMap()["status"])
}

func TestNewRateLimiter(t *testing.T) {
	e := echo.New()
	e.GET("/limited", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, md.NewRateLimiter(1))

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/limited", http.NoBody)
		r.RemoteAddr = "10.0.0.1:1234"
		e.ServeHTTP(w, r)
		codes = append(codes, w.Code)
	}
	require.Equal(t, http.StatusOK, codes[0])
	require.Contains(t, codes, http.StatusTooManyRequests)
}
