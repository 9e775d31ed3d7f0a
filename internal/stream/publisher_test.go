package stream

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hvac_reward"
	"hvac_reward/internal/logger"
	"hvac_reward/internal/models"
	"hvac_reward/internal/wire"
)

type fakeWriter struct {
	msgs   []kafka.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestKafkaPublisher_Publish(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(w, logger.Nop())

	created := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	rec := models.RewardRecord{
		ID:         "rec-1",
		AgentID:    "agent-9",
		ScenarioID: "office",
		CreatedAt:  created,
		Response:   hvac_reward.RewardResponse{AgentRewardValue: 0.5, CarbonEmitted: 2},
	}
	require.NoError(t, p.Publish(context.Background(), rec))
	require.Len(t, w.msgs, 1)

	m := w.msgs[0]
	assert.Equal(t, "agent-9", string(m.Key))
	assert.Equal(t, created, m.Time)

	headers := map[string]string{}
	for _, h := range m.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "rec-1", headers[headerRecordID])
	assert.Equal(t, "office", headers[headerScenarioID])
	assert.Equal(t, wire.ContentType, headers[headerType])

	resp, err := wire.UnmarshalResponse(m.Value)
	require.NoError(t, err)
	assert.Equal(t, 0.5, resp.AgentRewardValue)
	assert.Equal(t, 2.0, resp.CarbonEmitted)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_PublishError(t *testing.T) {
	w := &fakeWriter{err: errors.New("broker down")}
	p := newKafkaPublisher(w, logger.Nop())

	err := p.Publish(context.Background(), models.RewardRecord{AgentID: "a"}, models.RewardRecord{AgentID: "b"})
	require.Error(t, err)
	assert.ErrorIs(t, err, w.err)
	assert.Contains(t, err.Error(), "2 reward(s)")
}

func TestKafkaPublisher_EmptyIsNoop(t *testing.T) {
	w := &fakeWriter{err: errors.New("should not be called")}
	p := newKafkaPublisher(w, logger.Nop())
	assert.NoError(t, p.Publish(context.Background()))
}
