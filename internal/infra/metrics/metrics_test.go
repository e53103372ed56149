package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"kala/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	return string(body)
}

func TestMetrics_DomainCounters(t *testing.T) {
	m := New()

	m.ApplicationSubmitted()
	m.ApplicationTransitioned(entity.StatusApproved)
	m.ApplicationTransitioned(entity.StatusApproved)
	m.UsernameChecked(false)
	m.RecordJob("purge_drafts", true, 20*time.Millisecond)

	out := scrape(t, m)
	assert.Contains(t, out, "kala_membership_applications_submitted_total 1")
	assert.Contains(t, out, `kala_membership_application_transitions_total{status="APPROVED"} 2`)
	assert.Contains(t, out, `kala_membership_username_checks_total{available="false"} 1`)
	assert.Contains(t, out, `kala_maintenance_job_runs_total{job="purge_drafts",success="true"} 1`)
}

func TestMetrics_Middleware(t *testing.T) {
	m := New()
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/api/v1/members/:username", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/boom", func(echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "nope")
	})

	for _, path := range []string{"/api/v1/members/asha", "/api/v1/members/ravi", "/boom"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	out := scrape(t, m)
	assert.Contains(t, out, `kala_http_requests_total{method="GET",route="/api/v1/members/:username",status="200"} 2`)
	assert.Contains(t, out, `kala_http_requests_total{method="GET",route="/boom",status="418"} 1`)
}

func TestMetrics_RegisterDBStats(t *testing.T) {
	m := New()
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, m.RegisterDBStats("kala", db))

	out := scrape(t, m)
	assert.Contains(t, out, `go_sql_max_open_connections{db_name="kala"}`)
	assert.Contains(t, out, `go_sql_wait_count_total{db_name="kala"} 0`)

	assert.Error(t, m.RegisterDBStats("kala", db), "same database registered twice")
}
