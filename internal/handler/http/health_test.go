package http

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHealthMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func serveHealth(handler http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decodeHealthResponse(t *testing.T, rec *httptest.ResponseRecorder) HealthResponse {
	t.Helper()
	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp
}

func TestHealthHandler_DatabaseStates(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(sqlmock.Sqlmock)
		wantStatus int
		wantState  string
	}{
		{
			name:       "reachable database",
			setupMock:  func(mock sqlmock.Sqlmock) { mock.ExpectPing() },
			wantStatus: http.StatusOK,
			wantState:  "healthy",
		},
		{
			name: "unreachable database",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing().WillReturnError(sql.ErrConnDone)
			},
			wantStatus: http.StatusServiceUnavailable,
			wantState:  "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newHealthMock(t)
			tt.setupMock(mock)

			handler := &HealthHandler{DB: db, Version: "test-version"}
			rec := serveHealth(handler, "/healthz")

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decodeHealthResponse(t, rec)
			assert.Equal(t, tt.wantState, resp.Status)
			assert.Equal(t, "test-version", resp.Version)
			assert.NotEmpty(t, resp.Timestamp)
			assert.Contains(t, resp.Checks, "database")
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// Without DATABASE_URL the service runs on in-memory stores and the
// health check reports that instead of a database check.
func TestHealthHandler_MemoryStores(t *testing.T) {
	handler := &HealthHandler{DB: nil, Version: "test-version"}
	rec := serveHealth(handler, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealthResponse(t, rec)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "in-memory", resp.Checks["session_store"].Message)
	assert.NotContains(t, resp.Checks, "database")
}

func TestHealthHandler_PoolDetails(t *testing.T) {
	db, mock := newHealthMock(t)
	db.SetMaxOpenConns(10)
	mock.ExpectPing()

	handler := &HealthHandler{DB: db, Version: "test-version"}
	rec := serveHealth(handler, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealthResponse(t, rec)
	dbCheck := resp.Checks["database"]
	assert.Equal(t, "healthy", dbCheck.Status)
	require.NotNil(t, dbCheck.Details)
	assert.Contains(t, dbCheck.Details, "utilization_percent")
	assert.Equal(t, float64(0), dbCheck.Details["utilization_percent"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

// MaxOpenConns of 0 means an unbounded pool. Utilization cannot be
// computed then, and the check must not divide by zero.
func TestHealthHandler_UnboundedPool(t *testing.T) {
	db, mock := newHealthMock(t)
	db.SetMaxOpenConns(0)
	mock.ExpectPing()

	handler := &HealthHandler{DB: db, Version: "test-version"}
	rec := serveHealth(handler, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealthResponse(t, rec)
	assert.Equal(t, "healthy", resp.Status)

	dbCheck := resp.Checks["database"]
	assert.Equal(t, "degraded", dbCheck.Status)
	assert.Equal(t, "connection pool max connections not configured", dbCheck.Message)
	require.NotNil(t, dbCheck.Details)
	assert.Equal(t, float64(0), dbCheck.Details["max_open_connections"])
	_, hasUtilization := dbCheck.Details["utilization_percent"]
	assert.False(t, hasUtilization)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthHandler_MinimalPool(t *testing.T) {
	db, mock := newHealthMock(t)
	db.SetMaxOpenConns(1)
	mock.ExpectPing()

	handler := &HealthHandler{DB: db, Version: "test-version"}
	rec := serveHealth(handler, "/healthz")

	assert.Equal(t, http.StatusOK, rec.Code)
	resp := decodeHealthResponse(t, rec)
	dbCheck := resp.Checks["database"]
	require.NotNil(t, dbCheck.Details)
	assert.Equal(t, float64(1), dbCheck.Details["max_open_connections"])
	assert.Contains(t, dbCheck.Details, "utilization_percent")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHealthHandler_ResponseHeaders(t *testing.T) {
	db, mock := newHealthMock(t)
	mock.ExpectPing()

	handler := &HealthHandler{DB: db, Version: "test-version"}
	rec := serveHealth(handler, "/healthz")

	assert.Equal(t, "no-cache, no-store, must-revalidate", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadyHandler(t *testing.T) {
	tests := []struct {
		name       string
		setupMock  func(sqlmock.Sqlmock)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ready",
			setupMock:  func(mock sqlmock.Sqlmock) { mock.ExpectPing() },
			wantStatus: http.StatusOK,
			wantBody:   "ready",
		},
		{
			name: "database not ready",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPing().WillReturnError(sql.ErrConnDone)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newHealthMock(t)
			tt.setupMock(mock)

			handler := &ReadyHandler{DB: db}
			rec := serveHealth(handler, "/healthz/ready")

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReadyHandler_MemoryStores(t *testing.T) {
	handler := &ReadyHandler{DB: nil}
	rec := serveHealth(handler, "/healthz/ready")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", rec.Body.String())
}

func TestReadyHandler_SlowPingTimesOut(t *testing.T) {
	db, mock := newHealthMock(t)
	mock.ExpectPing().WillDelayFor(3 * time.Second)

	handler := &ReadyHandler{DB: db}
	rec := serveHealth(handler, "/healthz/ready")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLiveHandler(t *testing.T) {
	rec := serveHealth(&LiveHandler{}, "/healthz/live")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}
