package health_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mottufind/internal/pkg/health"
	"mottufind/internal/pkg/logger"
)

const mb = 1024 * 1024

func appCheck(allocMB uint64) *health.ApplicationCheck {
	c := health.NewApplicationCheck(500)
	c.Sample = func() health.MemorySample { return health.MemorySample{Alloc: allocMB * mb, HeapSys: allocMB * mb} }
	return c
}

type reportBody struct {
	Status  string `json:"status"`
	Entries map[string]struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
		Tags   []string               `json:"tags"`
	} `json:"entries"`
}

func get(t *testing.T, h http.Handler, path string) (int, reportBody) {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	var body reportBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestLive_HealthyBelowThreshold(t *testing.T) {
	reg := health.NewRegistry(time.Second, logger.Nop{}, appCheck(100))

	code, body := get(t, reg.Handler(health.LiveChecks), "/health/live")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Healthy", body.Status)
	assert.EqualValues(t, 100, body.Entries["application"].Data["memory_used_mb"])
	assert.Equal(t, []string{"application"}, body.Entries["application"].Tags)
}

func TestLive_DegradedAboveThreshold(t *testing.T) {
	reg := health.NewRegistry(time.Second, logger.Nop{}, appCheck(600))

	code, body := get(t, reg.Handler(health.LiveChecks), "/health/live")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Degraded", body.Status)
	assert.EqualValues(t, 600, body.Entries["application"].Data["memory_used_mb"])
}

func TestApplicationCheck_PanicIsUnhealthy(t *testing.T) {
	c := health.NewApplicationCheck(500)
	c.Sample = func() health.MemorySample { panic("memstats indisponível") }

	res := c.Run(context.Background())

	assert.Equal(t, health.Unhealthy, res.Status)
	assert.Equal(t, "memstats indisponível", res.Data["error"])
}

func TestDatabaseCheck_PingFailure(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	reg := health.NewRegistry(time.Second, logger.Nop{}, appCheck(10), health.NewDatabaseCheck(db))
	code, body := get(t, reg.Handler(health.ReadyChecks), "/health/ready")

	assert.Equal(t, http.StatusServiceUnavailable, code)
	assert.Equal(t, "Unhealthy", body.Status)
	assert.NotContains(t, body.Entries, "application")
	assert.Equal(t, "connection refused", body.Entries["database"].Data["error"])
	assert.Equal(t, []string{"database"}, body.Entries["database"].Tags)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHealth_IncludesExternalChecks(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectPing()

	cache := health.NewCacheCheck(func(context.Context) error { return nil })
	reg := health.NewRegistry(time.Second, logger.Nop{}, appCheck(10), health.NewDatabaseCheck(db), cache)

	code, body := get(t, reg.Handler(health.AllChecks), "/health")

	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Healthy", body.Status)
	assert.Len(t, body.Entries, 3)
	assert.Equal(t, []string{"application"}, body.Entries["application"].Tags)
	assert.Equal(t, []string{"database"}, body.Entries["database"].Tags)
	assert.Equal(t, []string{"external"}, body.Entries["cache"].Tags)
}

func TestLive_SelectsOnlyApplicationTag(t *testing.T) {
	cache := health.NewCacheCheck(func(context.Context) error { return errors.New("redis down") })
	reg := health.NewRegistry(time.Second, logger.Nop{}, appCheck(10), cache)

	code, body := get(t, reg.Handler(health.LiveChecks), "/health/live")

	assert.Equal(t, http.StatusOK, code)
	assert.Len(t, body.Entries, 1)
	assert.Equal(t, []string{"application"}, body.Entries["application"].Tags)
}

func TestRegistry_WorstStatusWins(t *testing.T) {
	down := health.NewCacheCheck(func(context.Context) error { return errors.New("redis down") })
	reg := health.NewRegistry(time.Second, logger.Nop{}, appCheck(600), down)

	report := reg.Run(context.Background(), nil)

	assert.Equal(t, health.Unhealthy, report.Status)
}
