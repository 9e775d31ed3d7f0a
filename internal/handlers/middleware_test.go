package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hvac_reward/internal/models"
	"hvac_reward/internal/service"
)

// operator and trainer are two signed-in users.
func twoUsers() *mockAuth {
	return &mockAuth{tokens: map[string]int{"operator-token": 11, "trainer-token": 22}}
}

func serveAs(t *testing.T, s *service.Service, method, target, authorization string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	newTestRouter(s).ServeHTTP(w, req)
	return w
}

func TestRequireUser_RejectsRequests(t *testing.T) {
	cases := []struct {
		name   string
		header string
		msg    string
	}{
		{"missing header", "", "missing Authorization header"},
		{"other scheme", "Token operator-token", "invalid Authorization header format"},
		{"bearer without token", "Bearer ", "invalid Authorization header format"},
		{"unknown token", "Bearer forged", "invalid or expired token"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rw := &mockReward{}
			s := &service.Service{Authorization: twoUsers(), Reward: rw}

			w := serveAs(t, s, http.MethodPost, "/api/v1/reward", tc.header, []byte(infoJSON))
			if w.Code != http.StatusUnauthorized {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
			var out struct {
				Error string `json:"error"`
			}
			_ = json.Unmarshal(w.Body.Bytes(), &out)
			if out.Error != tc.msg {
				t.Fatalf("error %q, want %q", out.Error, tc.msg)
			}
			if rw.lastInfo.AgentID != "" {
				t.Fatalf("reward computed for unauthenticated request")
			}
		})
	}
}

func TestRequireUser_RecordsCaller(t *testing.T) {
	rw := &mockReward{rec: models.RewardRecord{ID: "r", CreatedBy: 22}}
	auth := twoUsers()
	s := &service.Service{Authorization: auth, Reward: rw}

	w := serveAs(t, s, http.MethodPost, "/api/v1/reward", "Bearer trainer-token", []byte(infoJSON))
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
	}
	if rw.lastUser != 22 || auth.lastToken != "trainer-token" {
		t.Fatalf("computed as user %d with token %q", rw.lastUser, auth.lastToken)
	}
	var rec models.RewardRecord
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil || rec.CreatedBy != 22 {
		t.Fatalf("created_by not returned: %+v (%v)", rec, err)
	}

	batch := []byte(`{"infos":[` + infoJSON + `]}`)
	if w := serveAs(t, s, http.MethodPost, "/api/v1/reward/batch", "Bearer operator-token", batch); w.Code != http.StatusOK {
		t.Fatalf("batch status=%d body=%s", w.Code, w.Body.String())
	}
	if rw.lastUser != 11 {
		t.Fatalf("batch computed as user %d, want 11", rw.lastUser)
	}
}

func TestRequireUser_InventoryOwnership(t *testing.T) {
	inv := &mockInventory{}
	s := &service.Service{Authorization: twoUsers(), Inventory: inv}
	body := []byte(`{"zone_ids":["z1"]}`)

	w := serveAs(t, s, http.MethodPut, "/api/v1/scenarios/office/inventory", "Bearer operator-token", body)
	if w.Code != http.StatusOK || inv.lastUser != 11 {
		t.Fatalf("status=%d user=%d body=%s", w.Code, inv.lastUser, w.Body.String())
	}
	var got models.Inventory
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.OwnerID != 11 {
		t.Fatalf("owner_id not returned: %+v (%v)", got, err)
	}

	inv.err = service.ErrInventoryForbidden
	w = serveAs(t, s, http.MethodPut, "/api/v1/scenarios/office/inventory", "Bearer trainer-token", body)
	if w.Code != http.StatusForbidden || inv.lastUser != 22 {
		t.Fatalf("expected 403 for user 22, got %d (user %d)", w.Code, inv.lastUser)
	}
}
