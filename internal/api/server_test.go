package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"unitconv/internal/api"
	"unitconv/internal/api/handler/v1handler"
	"unitconv/internal/calculator"
	"unitconv/internal/config"
	"unitconv/pkg/controller"
	"unitconv/pkg/metrics"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg, err := config.Load("")
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	opts := api.NewOptions(cfg)
	opts.Registerer = reg
	opts.Gatherer = reg

	svc := calculator.NewService(calculator.New(nil), metrics.New(reg))
	handler, err := api.NewHandler(api.Deps{Deps: v1handler.Deps{Calculator: svc}}, opts)
	require.NoError(t, err)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return srv
}

func do(t *testing.T, method, url, body string) (*http.Response, string) {
	t.Helper()

	req, err := http.NewRequestWithContext(context.Background(), method, url, strings.NewReader(body))
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	var sb strings.Builder
	_, err = sb.ReadFrom(res.Body)
	require.NoError(t, err)

	return res, sb.String()
}

func TestServer_ConversionRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	res, body := do(t, http.MethodPost, srv.URL+"/v1/conversions", `{"kind":"distance","value":"10 feet"}`)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NotEmpty(t, res.Header.Get(controller.RequestIDHeader))
	require.Equal(t, "*", res.Header.Get("Access-Control-Allow-Origin"))
	require.Contains(t, body, `"unit":"foot"`)
	require.Contains(t, body, `"siUnit":"m"`)
}

func TestServer_Metrics(t *testing.T) {
	srv := newTestServer(t)

	res, _ := do(t, http.MethodPost, srv.URL+"/v1/conversions", `{"kind":"mass","value":"10 lb"}`)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, body := do(t, http.MethodGet, srv.URL+"/metrics", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Contains(t, body, `unitconv_conversions_total{kind="mass",outcome="ok"} 1`)
	require.Contains(t, body, "unitconv_http_server_requests")
}

func TestServer_Docs(t *testing.T) {
	srv := newTestServer(t)

	res, body := do(t, http.MethodGet, srv.URL+"/specs/v1.yaml", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
	require.Equal(t, "application/yaml", res.Header.Get("Content-Type"))
	require.Contains(t, body, "/v1/calculations/{operation}")

	res, _ = do(t, http.MethodGet, srv.URL+"/docs/", "")
	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_Preflight(t *testing.T) {
	srv := newTestServer(t)

	res, _ := do(t, http.MethodOptions, srv.URL+"/v1/calculations/speed", "")
	require.Equal(t, http.StatusNoContent, res.StatusCode)
}

func TestNewServer_Options(t *testing.T) {
	reg := prometheus.NewRegistry()
	opts := api.Options{
		Addr:              "127.0.0.1:0",
		ReadTimeout:       time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      3 * time.Second,
		IdleTimeout:       4 * time.Second,
		MaxHeaderBytes:    1024,
		MetricsPath:       "/metrics",
		DocsPath:          "/docs",
		Registerer:        reg,
		Gatherer:          reg,
	}

	srv, err := api.NewServer(context.Background(), api.Deps{}, opts)
	require.NoError(t, err)
	require.Equal(t, opts.Addr, srv.Addr)
	require.Equal(t, opts.ReadTimeout, srv.ReadTimeout)
	require.Equal(t, opts.ReadHeaderTimeout, srv.ReadHeaderTimeout)
	require.Equal(t, opts.WriteTimeout, srv.WriteTimeout)
	require.Equal(t, opts.IdleTimeout, srv.IdleTimeout)
	require.Equal(t, opts.MaxHeaderBytes, srv.MaxHeaderBytes)
	require.NotNil(t, srv.ErrorLog)
}
