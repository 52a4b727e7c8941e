package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress/erp-gateway/config"
	"github.com/inkpress/erp-gateway/internal/core"
	"github.com/inkpress/erp-gateway/internal/data"
	"github.com/inkpress/erp-gateway/internal/domain/model"
	"github.com/inkpress/erp-gateway/internal/service"
)

// stubInvoker returns a canned result for every invocation.
type stubInvoker struct {
	result *core.ProcResult
	err    error
}

func (s *stubInvoker) Invoke(
	_ context.Context,
	_ model.Partition,
	_ model.Operation,
) (*core.ProcResult, error) {
	return s.result, s.err
}

func newTestRouter(t *testing.T, invoker core.ProcedureInvoker) http.Handler {
	t.Helper()

	tracker, err := service.NewTrackerService(service.TrackerServiceOptions{
		Store:   data.NewMemoryJobStore(),
		Invoker: invoker,
		Config:  config.TrackerConfig{Retention: time.Minute, SweepInterval: time.Minute},
	})
	require.NoError(t, err)

	production, err := service.NewProductionService(service.ProductionServiceOptions{Tracker: tracker})
	require.NoError(t, err)

	login, err := service.NewLoginService(service.LoginServiceOptions{Invoker: invoker})
	require.NoError(t, err)

	return NewRouter(RouterServices{Production: production, Login: login})
}

func startBody() string {
	return `{
		"UserID": 1,
		"EmployeeID": 2,
		"ProcessID": 3,
		"JobBookingJobCardContentsID": 4,
		"MachineID": "5",
		"JobCardFormNo": "F100",
		"database": "KOL"
	}`
}

func TestProductionStart_Accepted(t *testing.T) {
	router := newTestRouter(t, &stubInvoker{
		result: &core.ProcResult{Rows: []model.Row{{"ProductionID": int64(999)}}},
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/production/start", strings.NewReader(startBody()))
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var resp struct {
		Status bool   `json:"status"`
		JobID  string `json:"jobId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Status)
	require.NotEmpty(t, resp.JobID)

	// Poll until the job completes; the derived production id rides along.
	require.Eventually(t, func() bool {
		poll := httptest.NewRecorder()
		router.ServeHTTP(poll, httptest.NewRequest(http.MethodGet, "/api/jobs/"+resp.JobID, nil))
		if poll.Code != http.StatusOK {
			return false
		}
		var view model.JobView
		if err := json.Unmarshal(poll.Body.Bytes(), &view); err != nil {
			return false
		}
		if !view.State.Terminal() {
			return false
		}
		assert.Equal(t, model.JobStateCompleted, view.State)
		require.NotNil(t, view.Result)
		require.NotNil(t, view.Result.ProductionID)
		assert.Equal(t, int64(999), *view.Result.ProductionID)
		return true
	}, 2*time.Second, 5*time.Millisecond)
}

func TestProductionStart_ValidationRejectsWithoutJobID(t *testing.T) {
	router := newTestRouter(t, &stubInvoker{result: &core.ProcResult{}})

	body := `{"UserID": 1, "database": "KOL"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/production/start", strings.NewReader(body)))

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["status"])
	assert.NotEmpty(t, resp["message"])
	assert.NotContains(t, resp, "jobId")
}

func TestProductionStart_UnknownPartitionRejected(t *testing.T) {
	router := newTestRouter(t, &stubInvoker{result: &core.ProcResult{}})

	body := strings.Replace(startBody(), `"KOL"`, `"DEL"`, 1)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/production/start", strings.NewReader(body)))

	// Partition validation happens before JSON-level binding, so the invalid
	// name surfaces as a decode failure rather than a submission.
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotContains(t, rec.Body.String(), "jobId")
}

func TestJobStatus_UnknownJob(t *testing.T) {
	router := newTestRouter(t, &stubInvoker{result: &core.ProcResult{}})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/definitely-not-a-job", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "job_not_found", resp["error"])
}

func TestLogin_RejectionReturns401(t *testing.T) {
	router := newTestRouter(t, &stubInvoker{
		result: &core.ProcResult{Rows: []model.Row{{"Status": "Invalid Password"}}},
	})

	body := `{"username": "operator1", "password": "wrong", "database": "KOL"}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body)))

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "login_rejected", resp["error"])
	assert.Equal(t, "Invalid Password", resp["message"])
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, &stubInvoker{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
