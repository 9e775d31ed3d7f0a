package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hvac_reward/internal/export"
	"hvac_reward/internal/models"
	"hvac_reward/internal/service"
)

func TestParseQueryTime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2025-08-27T15:04:05Z", time.Date(2025, 8, 27, 15, 4, 5, 0, time.UTC), true},
		{"2025-08-27T17:04:05+02:00", time.Date(2025, 8, 27, 15, 4, 5, 0, time.UTC), true},
		{"2025-08-27 15:04:05", time.Date(2025, 8, 27, 15, 4, 5, 0, time.UTC), true},
		{"2025-08-27", time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC), true},
		{"27/08/2025", time.Time{}, false},
	}
	for _, tc := range cases {
		got, err := parseQueryTime(tc.in)
		if (err == nil) != tc.ok {
			t.Fatalf("%q: err=%v, want ok=%v", tc.in, err, tc.ok)
		}
		if tc.ok && !got.Equal(tc.want) {
			t.Fatalf("%q: got %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestListRewards_ParsesFilter(t *testing.T) {
	hist := &mockHistory{list: []models.RewardRecord{{ID: "r1"}, {ID: "r2"}}}
	s := &service.Service{Authorization: okAuth(), History: hist}

	w := doRequest(t, s, http.MethodGet, "/api/v1/rewards?agent_id=a1&scenario_id=s1&from=2025-08-01&to=2025-08-31&limit=5", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count   int                   `json:"count"`
		Records []models.RewardRecord `json:"records"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 2 || len(out.Records) != 2 {
		t.Fatalf("unexpected body: %+v", out)
	}

	f := hist.lastFilter
	if f.AgentID != "a1" || f.ScenarioID != "s1" || f.Limit != 5 {
		t.Fatalf("unexpected filter: %+v", f)
	}
	if !f.From.Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("from = %v", f.From)
	}
	wantTo := time.Date(2025, 8, 31, 23, 59, 59, 999999999, time.UTC)
	if !f.To.Equal(wantTo) {
		t.Fatalf("to = %v, want %v", f.To, wantTo)
	}
}

func TestListRewards_BadQuery(t *testing.T) {
	s := &service.Service{Authorization: okAuth(), History: &mockHistory{}}
	for _, q := range []string{"from=yesterday", "to=nope", "limit=-3", "limit=x"} {
		w := doRequest(t, s, http.MethodGet, "/api/v1/rewards?"+q, nil, "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", q, w.Code)
		}
	}
}

func TestListRewards_ServiceErrors(t *testing.T) {
	hist := &mockHistory{err: service.ErrInvalidTimeRange}
	s := &service.Service{Authorization: okAuth(), History: hist}
	if w := doRequest(t, s, http.MethodGet, "/api/v1/rewards", nil, ""); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	hist.err = errors.New("db down")
	if w := doRequest(t, s, http.MethodGet, "/api/v1/rewards", nil, ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestLatestReward(t *testing.T) {
	hist := &mockHistory{}
	s := &service.Service{Authorization: okAuth(), History: hist}

	if w := doRequest(t, s, http.MethodGet, "/api/v1/rewards/latest?agent_id=a", nil, ""); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	hist.setLatest(&models.RewardRecord{ID: "r9"})
	w := doRequest(t, s, http.MethodGet, "/api/v1/rewards/latest?agent_id=a", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d", w.Code)
	}
	if hist.lastAgent != "a" {
		t.Fatalf("agent = %q", hist.lastAgent)
	}
}

func TestExportRewards(t *testing.T) {
	hist := &mockHistory{export: []byte("PK\x03\x04")}
	s := &service.Service{Authorization: okAuth(), History: hist}

	w := doRequest(t, s, http.MethodGet, "/api/v1/rewards/export?agent_id=a", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != export.ContentTypeXLSX {
		t.Fatalf("content type = %q", ct)
	}
	if w.Body.String() != "PK\x03\x04" {
		t.Fatalf("unexpected body")
	}
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(&service.Service{})
	for _, path := range []string{"/health", "/metrics"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status=%d", path, w.Code)
		}
	}
}
