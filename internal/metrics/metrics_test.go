package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrape(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func TestHelpersBeforeInitAreNoops(t *testing.T) {
	if computeTotal != nil {
		t.Skip("metrics already initialised by another test")
	}
	ObserveCompute(ResultSuccess, time.Millisecond)
	SetAgentReward("a", 1)
	IncPublish(ResultError)
	ObserveExport("", time.Millisecond)
	StreamConnected(1)
}

func TestInit_ExposesObservedValues(t *testing.T) {
	Init()
	Init()

	ObserveCompute(ResultInvalid, 2*time.Millisecond)
	SetAgentReward("agent-42", 0.75)
	IncPublish("")
	StreamConnected(1)
	StreamConnected(-1)

	body := scrape(t)
	for _, want := range []string{
		`hvac_reward_compute_total{result="invalid"} 1`,
		`hvac_reward_agent_reward_value{agent_id="agent-42"} 0.75`,
		`hvac_reward_publish_total{result="success"} 1`,
		`hvac_reward_stream_clients 0`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("missing %q in scrape output", want)
		}
	}
}
