package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gaureshpai/cprm-prototype-sub001/pkg/hospital/mocks"
	_ "github.com/gaureshpai/cprm-prototype-sub001/pkg/testing"

	"github.com/gaureshpai/cprm-prototype-sub001/pkg/common"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/db"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/hospital"
	"github.com/gaureshpai/cprm-prototype-sub001/pkg/models"
)

func setupTestServer() *RestfulServer {
	hospitalObj := &hospital.Hospital{
		Db: *db.GetInstance(db.UseMemorySqliteDialector()),
	}
	hospitalObj.WithServices(hospital.ServiceOpts{
		Registry: hospitalObj.GetIRegistry(hospital.RegistryOpts{}),
		Feed:     hospitalObj.GetIFeed(),
		Liveness: hospitalObj.GetILiveness(hospital.LivenessOpts{}),
	})

	rs := &RestfulServer{
		Server:   gin.Default(),
		Hospital: hospitalObj,
		// default we use no limiter, if need, later assign it rs.RateLimiterStore = hospital.NewRateLimiterStore(...)
	}

	rs.Setup()

	return rs
}

func setupTestServerWithLimiter(store *hospital.RateLimiterStore) *RestfulServer {
	rs := setupTestServer()
	rs.RateLimiterStore = store
	return rs
}

func seedDisplayRow(t *testing.T, rs *RestfulServer) models.Display {
	t.Helper()
	display := models.Display{
		DisplayID:   uuid.NewString(),
		Location:    "Main Lobby",
		Status:      models.DisplayOffline,
		ContentMode: "token_queue",
		LastSeenAt:  time.Now().Add(-time.Hour),
	}
	require.NoError(t, rs.Hospital.Db.Conn.Create(&display).Error)
	return display
}

func postJSON(rs *RestfulServer, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	return w
}

func TestHealthCheck(t *testing.T) {
	rs := setupTestServer()

	req := httptest.NewRequest("GET", "/healthz", nil)
	w := httptest.NewRecorder()

	rs.Server.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestPostHeartbeat(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	display := seedDisplayRow(t, rs)

	w := postJSON(rs, "/displays/"+display.DisplayID+"/heartbeat", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		DisplayID  string    `json:"display_id"`
		Status     string    `json:"status"`
		LastSeenAt time.Time `json:"last_seen_at"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, display.DisplayID, resp.DisplayID)
	assert.Equal(t, "online", resp.Status)
	assert.False(t, resp.LastSeenAt.IsZero())
}

func TestPostHeartbeat_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	// unknown display is not created by a heartbeat
	w := postJSON(rs, "/displays/"+uuid.NewString()+"/heartbeat", map[string]any{})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// unknown status value is a caller error
	display := seedDisplayRow(t, rs)
	w = postJSON(rs, "/displays/"+display.DisplayID+"/heartbeat", map[string]any{"status": "rebooting"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostDisplay(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	displayID := uuid.NewString()
	w := postJSON(rs, "/displays", map[string]any{
		"display_id":   displayID,
		"location":     "OPD Corridor",
		"content_mode": "token_queue",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// registered displays start offline until their first heartbeat
	var saved models.Display
	require.NoError(t, rs.Hospital.Db.Conn.First(&saved, "display_id = ?", displayID).Error)
	assert.Equal(t, models.DisplayOffline, saved.Status)

	w = postJSON(rs, "/displays/"+displayID+"/heartbeat", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)

	// missing display_id is rejected by the schema
	w = postJSON(rs, "/displays", map[string]any{"location": "OPD Corridor"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostDisplayStatus(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	display := seedDisplayRow(t, rs)

	w := postJSON(rs, "/displays/"+display.DisplayID+"/status", map[string]any{"status": "maintenance"})
	require.Equal(t, http.StatusOK, w.Code)

	var saved models.Display
	require.NoError(t, rs.Hospital.Db.Conn.First(&saved, "display_id = ?", display.DisplayID).Error)
	assert.Equal(t, models.DisplayMaintenance, saved.Status)

	// empty payload should be rejected
	w = postJSON(rs, "/displays/"+display.DisplayID+"/status", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPostAlertAndLifecycle(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	w := postJSON(rs, "/alerts", map[string]any{
		"code":       "code_blue",
		"department": "ICU",
		"location":   "Ward 3",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created hospital.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.SeverityCritical, created.Severity)
	assert.Equal(t, "Medical Emergency - Cardiac/Respiratory Arrest", created.Message)

	// shows up in the active list
	req := httptest.NewRequest("GET", "/alerts/active", nil)
	rec := httptest.NewRecorder()
	rs.Server.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var active []hospital.Alert
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &active))
	require.Len(t, active, 1)
	assert.Equal(t, created.ID, active[0].ID)

	w = postJSON(rs, "/alerts/"+created.ID+"/acknowledge", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var acked hospital.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &acked))
	assert.Equal(t, models.AlertAcknowledged, acked.Status)

	w = postJSON(rs, "/alerts/"+created.ID+"/resolve", nil)
	require.Equal(t, http.StatusOK, w.Code)

	// repeated resolve is idempotent
	w = postJSON(rs, "/alerts/"+created.ID+"/resolve", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resolved hospital.Alert
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resolved))
	assert.Equal(t, models.AlertResolved, resolved.Status)
}

func TestPostAlert_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	// schema-level rejection, missing required fields
	w := postJSON(rs, "/alerts", map[string]any{"code": "code_blue"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// catalog-level rejection, unknown code
	w = postJSON(rs, "/alerts", map[string]any{
		"code":       "code_purple",
		"department": "ICU",
		"location":   "Ward 3",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// transitions on unknown alerts
	w = postJSON(rs, "/alerts/"+uuid.NewString()+"/acknowledge", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = postJSON(rs, "/alerts/"+uuid.NewString()+"/resolve", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetDisplayData(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()
	display := seedDisplayRow(t, rs)

	req := httptest.NewRequest("GET", "/displays/"+display.DisplayID+"/data", nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var snapshot hospital.DisplaySnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &snapshot))
	assert.Equal(t, display.DisplayID, snapshot.DisplayID)
	assert.NotNil(t, snapshot.Queue)
	assert.NotNil(t, snapshot.Departments)
	assert.NotNil(t, snapshot.Alerts)
	assert.NotNil(t, snapshot.LowStock)
}

func TestGetDisplayData_WithMockFeed(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer()

	ctrl := gomock.NewController(t)
	mockFeed := mocks.NewMockIFeed(ctrl)
	rs.Hospital.WithServices(hospital.ServiceOpts{Feed: mockFeed})

	displayID := uuid.NewString()
	mockFeed.
		EXPECT().
		GetDisplayData(gomock.Any(), gomock.Eq(displayID)).
		Return(&hospital.DisplaySnapshot{
			DisplayID:   displayID,
			GeneratedAt: time.Now(),
			Queue:       []hospital.QueueEntryView{},
			Departments: []hospital.DepartmentView{},
			Alerts:      []hospital.Alert{},
			LowStock:    []hospital.DrugStockView{},
		}).
		Times(1)

	req := httptest.NewRequest("GET", "/displays/"+displayID+"/data", nil)
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLimiter(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(hospital.NewRateLimiterStore(0, 0))

	displayID := uuid.NewString()

	// nothing should pass below
	{
		w := postJSON(rs, "/displays/"+displayID+"/heartbeat", map[string]any{})
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}

	{
		req := httptest.NewRequest("GET", "/displays/"+displayID+"/data", nil)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
	}
}

func TestLimiter_BurstThenOverride(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(hospital.NewRateLimiterStore(2, 2))
	display := seedDisplayRow(t, rs)

	for i := 0; i < 3; i++ {
		w := postJSON(rs, "/displays/"+display.DisplayID+"/heartbeat", map[string]any{})
		if i < 2 {
			require.Equal(t, http.StatusOK, w.Code, "request %d should be allowed", i+1)
		} else {
			require.Equal(t, http.StatusTooManyRequests, w.Code, "request %d should be rate limited", i+1)
		}
	}

	// raising the per-display limit takes effect immediately
	w := postJSON(rs, "/displays/"+display.DisplayID+"/limiter", LimiterRequest{Rate: 100, Burst: 100})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(rs, "/displays/"+display.DisplayID+"/heartbeat", map[string]any{})
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPostLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServerWithLimiter(hospital.NewRateLimiterStore(2, 2))

	displayID := uuid.NewString()

	// empty payload should be rejected
	payload := []byte("{}")
	req := httptest.NewRequest("POST", "/displays/"+displayID+"/limiter", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	rs.Server.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetLimiter_EdgeCases(t *testing.T) {
	common.SetTestLoggerNop()

	rs := setupTestServer() // default without limiter store

	displayID := uuid.NewString()

	{
		// without limiter store setup limiter should be allowed and just return ok (but no effect)
		w := postJSON(rs, "/displays/"+displayID+"/limiter", LimiterRequest{Rate: 2, Burst: 2})
		require.Equal(t, http.StatusOK, w.Code, "limiter request should be allowed")
	}

	{
		// and the data endpoint stays open instead of returning too many requests
		req := httptest.NewRequest("GET", "/displays/"+displayID+"/data", nil)
		w := httptest.NewRecorder()
		rs.Server.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
