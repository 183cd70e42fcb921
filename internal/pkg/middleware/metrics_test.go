package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsBuilder(t *testing.T) {
	gin.SetMode(gin.TestMode)
	registry := prometheus.NewRegistry()
	server := gin.New()
	server.Use(NewMetricsBuilder().Registerer(registry).Build())
	server.GET("/company/applications/:id", func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	for _, path := range []string{"/company/applications/1", "/company/applications/2", "/not-found"} {
		req, err := http.NewRequest(http.MethodGet, path, nil)
		require.NoError(t, err)
		server.ServeHTTP(httptest.NewRecorder(), req)
	}

	expected := `# HELP xpecial_http_requests_total HTTP 请求次数
# TYPE xpecial_http_requests_total counter
xpecial_http_requests_total{method="GET",path="/company/applications/:id",status_code="200"} 2
xpecial_http_requests_total{method="GET",path="unknown",status_code="404"} 1
`
	err := testutil.GatherAndCompare(registry, strings.NewReader(expected), "xpecial_http_requests_total")
	assert.NoError(t, err)
	cnt, err := testutil.GatherAndCount(registry, "xpecial_http_request_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, cnt)
}
