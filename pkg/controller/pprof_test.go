package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"unitconv/pkg/controller"
)

func TestPprofMux_Index(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, controller.PprofPrefix, nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Body.String(), "goroutine")
}

func TestPprofMux_NamedProfile(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, controller.PprofPrefix+"goroutine?debug=1", nil)
	controller.PprofMux().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPprofMux_Cmdline(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, controller.PprofPrefix+"cmdline", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPprofMux_OutsidePrefix(t *testing.T) {
	rec := httptest.NewRecorder()
	controller.PprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cmdline", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}
