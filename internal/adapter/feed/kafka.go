package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/Devyanikhande/CivicGuard/internal/config"
	"github.com/Devyanikhande/CivicGuard/internal/domain"
)

// fetchGrace bounds how long FetchBatch waits for further messages once the
// first one has arrived.
const fetchGrace = 2 * time.Second

// KafkaReader drains RawInput messages from a topic and groups them by
// source, implementing the source-feed contract over Kafka.
type KafkaReader struct {
	reader *kafkago.Reader
	logger *slog.Logger
}

// NewKafkaReader creates a consumer for the configured raw report topic.
func NewKafkaReader(cfg *config.Config, logger *slog.Logger) *KafkaReader {
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.KafkaBrokers,
		Topic:    cfg.KafkaTopic,
		GroupID:  cfg.KafkaGroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &KafkaReader{reader: r, logger: logger}
}

// FetchBatch reads up to max messages and returns them grouped by source
// name. It blocks until at least one message arrives or the context is
// cancelled; after the first message it drains for at most fetchGrace.
// Messages that do not decode as RawInput are committed and skipped.
func (k *KafkaReader) FetchBatch(ctx context.Context, max int) (map[string][]domain.RawInput, error) {
	sources := make(map[string][]domain.RawInput)

	for n := 0; n < max; n++ {
		fetchCtx := ctx
		var cancel context.CancelFunc
		if n > 0 {
			fetchCtx, cancel = context.WithTimeout(ctx, fetchGrace)
		}

		msg, err := k.reader.FetchMessage(fetchCtx)
		if cancel != nil {
			cancel()
		}
		if err != nil {
			if n > 0 && ctx.Err() == nil {
				break // grace window expired, return what we have
			}
			return sources, err
		}

		var raw domain.RawInput
		if err := json.Unmarshal(msg.Value, &raw); err != nil {
			k.logger.Warn("skipping undecodable feed message",
				"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset,
				"error", err,
			)
			k.commit(ctx, msg)
			continue
		}

		sources[raw.Source] = append(sources[raw.Source], raw)
		k.commit(ctx, msg)
	}

	return sources, nil
}

func (k *KafkaReader) commit(ctx context.Context, msg kafkago.Message) {
	if err := k.reader.CommitMessages(ctx, msg); err != nil {
		k.logger.Warn("commit offset failed",
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset,
			"error", err,
		)
	}
}

// Close releases the underlying Kafka consumer.
func (k *KafkaReader) Close() error {
	return k.reader.Close()
}
