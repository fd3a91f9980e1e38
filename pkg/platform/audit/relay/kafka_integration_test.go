//go:build integration

package relay

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/twmb/franz-go/pkg/kgo"

	platpostgres "certflow/internal/platform/postgres"
	id "certflow/pkg/domain"
	audit "certflow/pkg/platform/audit"
	auditpostgres "certflow/pkg/platform/audit/store/postgres"
	"certflow/pkg/testutil/containers"
)

type RelaySuite struct {
	suite.Suite
	store    *auditpostgres.Store
	producer *kgo.Client
	topic    string
}

func TestRelaySuite(t *testing.T) {
	suite.Run(t, new(RelaySuite))
}

func (s *RelaySuite) SetupSuite() {
	pc := containers.GetManager().GetPostgres(s.T())
	s.Require().NoError(platpostgres.EnsureSchema(context.Background(), pc.Pool))
	s.store = auditpostgres.New(pc.DB)

	rp := containers.GetManager().GetRedpanda(s.T())
	s.producer = rp.NewClient(s.T())
	s.topic = "certflow.audit.test." + uuid.NewString()
	s.Require().NoError(EnsureTopic(context.Background(), s.producer, s.topic, 1))
}

func (s *RelaySuite) TearDownSuite() {
	s.producer.Close()
}

func (s *RelaySuite) TestEnsureTopicIsIdempotent() {
	s.NoError(EnsureTopic(context.Background(), s.producer, s.topic, 1))
}

func (s *RelaySuite) TestOutboxEventsReachKafka() {
	pc := containers.GetManager().GetPostgres(s.T())
	rp := containers.GetManager().GetRedpanda(s.T())

	userID := id.UserID(uuid.New())
	event := audit.Event{
		Category:  audit.CategoryCompliance,
		Timestamp: time.Now().UTC(),
		UserID:    userID,
		Subject:   uuid.NewString(),
		Action:    string(audit.EventApplicationSubmitted),
		Decision:  "allowed",
	}
	s.Require().NoError(s.store.Append(context.Background(), event))

	consumer := rp.NewClient(s.T(),
		kgo.ConsumeTopics(s.topic),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()))
	defer consumer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r := New(pc.DB, s.producer, s.topic,
		WithPollInterval(100*time.Millisecond))
	go func() { _ = r.Run(ctx) }()

	fetchCtx, fetchCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer fetchCancel()

	var payload map[string]any
	for {
		fetches := consumer.PollFetches(fetchCtx)
		s.Require().NoError(fetchCtx.Err(), "timed out waiting for relayed event")
		if records := fetches.Records(); len(records) > 0 {
			record := records[0]
			s.Equal(userID.String(), string(record.Key))
			s.Require().NoError(json.Unmarshal(record.Value, &payload))
			break
		}
	}
	s.Equal(string(audit.EventApplicationSubmitted), payload["Action"])
	s.Equal("compliance", payload["Category"])

	// The relay marks the row published once the broker acks it.
	s.Require().Eventually(func() bool {
		var unpublished int
		err := pc.DB.QueryRow(
			`SELECT COUNT(*) FROM outbox WHERE published_at IS NULL AND aggregate_id = $1`,
			userID.String()).Scan(&unpublished)
		return err == nil && unpublished == 0
	}, 10*time.Second, 200*time.Millisecond)
}
