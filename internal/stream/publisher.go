// Package stream publishes computed reward records to downstream consumers.
package stream

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"hvac_reward/internal/logger"
	"hvac_reward/internal/models"
	"hvac_reward/internal/wire"
)

const (
	headerRecordID   = "record-id"
	headerScenarioID = "scenario-id"
	headerType       = "content-type"

	writeTimeout = 10 * time.Second
)

type Publisher interface {
	Publish(ctx context.Context, recs ...models.RewardRecord) error
	Close() error
}

// messageWriter is the subset of *kafka.Writer used here.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher writes each record as a wire-encoded RewardResponse keyed by
// agent id, so one agent's rewards stay ordered within a partition.
type KafkaPublisher struct {
	w   messageWriter
	log *logger.Logger
}

func NewKafkaPublisher(brokers []string, topic string, log *logger.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: writeTimeout,
	}
	return newKafkaPublisher(w, log)
}

func newKafkaPublisher(w messageWriter, log *logger.Logger) *KafkaPublisher {
	return &KafkaPublisher{w: w, log: log.With("component", "kafka-publisher")}
}

func (p *KafkaPublisher) Publish(ctx context.Context, recs ...models.RewardRecord) error {
	if len(recs) == 0 {
		return nil
	}
	msgs := make([]kafka.Message, 0, len(recs))
	for _, r := range recs {
		m, err := toMessage(r)
		if err != nil {
			return fmt.Errorf("encode reward %s: %w", r.ID, err)
		}
		msgs = append(msgs, m)
	}
	if err := p.w.WriteMessages(ctx, msgs...); err != nil {
		p.log.Errorw("publish_rewards", "count", len(msgs), "err", err)
		return fmt.Errorf("publish %d reward(s): %w", len(msgs), err)
	}
	p.log.Debugw("publish_rewards", "count", len(msgs))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.w.Close()
}

func toMessage(r models.RewardRecord) (kafka.Message, error) {
	value, err := wire.MarshalResponse(r.Response)
	if err != nil {
		return kafka.Message{}, err
	}
	return kafka.Message{
		Key:   []byte(r.AgentID),
		Value: value,
		Time:  r.CreatedAt,
		Headers: []kafka.Header{
			{Key: headerRecordID, Value: []byte(r.ID)},
			{Key: headerScenarioID, Value: []byte(r.ScenarioID)},
			{Key: headerType, Value: []byte(wire.ContentType)},
		},
	}, nil
}

// Nop discards everything. Used when kafka is disabled.
type Nop struct{}

func (Nop) Publish(context.Context, ...models.RewardRecord) error { return nil }
func (Nop) Close() error { return nil }
