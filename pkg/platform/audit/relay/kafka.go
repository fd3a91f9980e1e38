// Package relay moves audit events from the postgres outbox table to Kafka.
// The relay is the only Kafka producer in the system; domain code never
// talks to the broker directly.
package relay

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const defaultBatchSize = 100

// Relay polls the outbox table and produces unpublished rows to Kafka,
// marking each row published only after the broker acks it. At-least-once:
// consumers must tolerate duplicates.
type Relay struct {
	db           *sql.DB
	client       *kgo.Client
	topic        string
	pollInterval time.Duration
	batchSize    int
	logger       *slog.Logger
}

type Option func(*Relay)

func WithPollInterval(d time.Duration) Option {
	return func(r *Relay) { r.pollInterval = d }
}

func WithBatchSize(n int) Option {
	return func(r *Relay) { r.batchSize = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(r *Relay) { r.logger = logger }
}

func New(db *sql.DB, client *kgo.Client, topic string, opts ...Option) *Relay {
	r := &Relay{
		db:           db,
		client:       client,
		topic:        topic,
		pollInterval: time.Second,
		batchSize:    defaultBatchSize,
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// EnsureTopic creates the audit topic if it does not exist. Idempotent.
func EnsureTopic(ctx context.Context, client *kgo.Client, topic string, partitions int32) error {
	adm := kadm.NewClient(client)
	resp, err := adm.CreateTopics(ctx, partitions, 1, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	for _, res := range resp {
		if res.Err != nil && !errors.Is(res.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", topic, res.Err)
		}
	}
	return nil
}

// Run polls until the context is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := r.relayBatch(ctx); err != nil {
				// Poll failures are transient by assumption; log and retry
				// on the next tick.
				r.logger.Error("outbox relay batch failed", "error", err)
			}
		}
	}
}

type outboxRow struct {
	id          string
	aggregateID string
	payload     []byte
}

func (r *Relay) relayBatch(ctx context.Context) error {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, aggregate_id, payload FROM outbox
		WHERE published_at IS NULL
		ORDER BY created_at
		LIMIT $1
	`, r.batchSize)
	if err != nil {
		return fmt.Errorf("query outbox: %w", err)
	}
	defer rows.Close()

	var batch []outboxRow
	for rows.Next() {
		var row outboxRow
		if err := rows.Scan(&row.id, &row.aggregateID, &row.payload); err != nil {
			return fmt.Errorf("scan outbox row: %w", err)
		}
		batch = append(batch, row)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, row := range batch {
		record := &kgo.Record{
			Topic: r.topic,
			Key:   []byte(row.aggregateID),
			Value: row.payload,
		}
		if err := r.client.ProduceSync(ctx, record).FirstErr(); err != nil {
			return fmt.Errorf("produce outbox event %s: %w", row.id, err)
		}
		if _, err := r.db.ExecContext(ctx,
			`UPDATE outbox SET published_at = NOW() WHERE id = $1`, row.id,
		); err != nil {
			return fmt.Errorf("mark outbox event %s published: %w", row.id, err)
		}
	}
	return nil
}
