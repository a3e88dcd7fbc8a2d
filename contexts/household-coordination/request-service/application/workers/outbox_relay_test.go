package workers

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"chorepool/contexts/household-coordination/request-service/adapters/memory"
	"chorepool/contexts/household-coordination/request-service/domain/entities"
	"chorepool/contexts/household-coordination/request-service/ports"
)

type capturedEvent struct {
	topic    string
	envelope ports.EventEnvelope
}

type stubPublisher struct {
	published []capturedEvent
}

func (p *stubPublisher) Publish(_ context.Context, topic string, event ports.EventEnvelope) error {
	p.published = append(p.published, capturedEvent{topic: topic, envelope: event})
	return nil
}

func seedOutbox(t *testing.T, store *memory.Store, eventID string, occurredAt time.Time) {
	t.Helper()
	err := store.SaveRequestWithOutbox(context.Background(), entities.Request{
		RequestID: "req-" + eventID,
		PoolID:    "pool-1",
		Status:    entities.RequestStatusOpen,
		PostedBy:  "user-a",
		CreatedAt: occurredAt,
	}, ports.LifecycleEvent{
		EventID:     eventID,
		EventType:   "request.posted",
		RequestID:   "req-" + eventID,
		PoolID:      "pool-1",
		RequestType: "dishes",
		ActorID:     "user-a",
		Status:      "open",
		OccurredAt:  occurredAt,
	})
	if err != nil {
		t.Fatalf("seeding outbox failed: %v", err)
	}
}

func TestOutboxRelayPublishesAndAcks(t *testing.T) {
	store := memory.NewStore(nil)
	publisher := &stubPublisher{}
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

	seedOutbox(t, store, "evt-1", now)
	seedOutbox(t, store, "evt-2", now.Add(time.Minute))

	relay := OutboxRelay{Outbox: store, Publisher: publisher}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}

	if len(publisher.published) != 2 {
		t.Fatalf("expected 2 published events, got %d", len(publisher.published))
	}
	if publisher.published[0].topic != "requests.lifecycle" {
		t.Fatalf("expected default topic requests.lifecycle, got %s", publisher.published[0].topic)
	}
	if publisher.published[0].envelope.EventID != "evt-1" || publisher.published[1].envelope.EventID != "evt-2" {
		t.Fatalf("events must relay in creation order")
	}

	var payload map[string]string
	if err := json.Unmarshal(publisher.published[0].envelope.Data, &payload); err != nil {
		t.Fatalf("envelope data must be valid JSON: %v", err)
	}
	if payload["pool_id"] != "pool-1" || payload["status"] != "open" {
		t.Fatalf("unexpected payload: %v", payload)
	}

	pending, err := store.ListPendingOutbox(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListPendingOutbox failed: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("relayed events must be acked, still pending: %d", len(pending))
	}
}

func TestOutboxRelaySecondRunIsIdle(t *testing.T) {
	store := memory.NewStore(nil)
	publisher := &stubPublisher{}
	seedOutbox(t, store, "evt-1", time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC))

	relay := OutboxRelay{Outbox: store, Publisher: publisher, Topic: "requests.custom"}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	if err := relay.RunOnce(context.Background()); err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if len(publisher.published) != 1 {
		t.Fatalf("event must publish exactly once, got %d", len(publisher.published))
	}
	if publisher.published[0].topic != "requests.custom" {
		t.Fatalf("explicit topic must be honored, got %s", publisher.published[0].topic)
	}
}
