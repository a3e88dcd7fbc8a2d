package ports

import (
	"context"
	"time"

	"chorepool/contexts/household-coordination/request-service/domain/entities"
	contractsv1 "chorepool/contracts/gen/events/v1"
)

// LifecycleEvent is the outbound integration payload persisted to the outbox
// together with the request state change.
type LifecycleEvent struct {
	EventID     string
	EventType   string // request.posted, request.claimed, request.completed
	RequestID   string
	PoolID      string
	RequestType string
	ActorID     string
	Status      string
	OccurredAt  time.Time
}

// RequestRepository owns request persistence and the write transaction.
type RequestRepository interface {
	GetRequest(ctx context.Context, requestID string) (entities.Request, error)
	// SaveRequestWithOutbox must atomically persist the request and the outbox event.
	SaveRequestWithOutbox(ctx context.Context, request entities.Request, event LifecycleEvent) error
	ListRequestsByPool(ctx context.Context, poolID string, status entities.RequestStatus) ([]entities.Request, error)
}

type NotificationRepository interface {
	AppendNotification(ctx context.Context, notification entities.Notification) error
	ListNotificationsByPool(ctx context.Context, poolID string) ([]entities.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
}

// OutboxMessage is a row ready to relay from the module outbox.
type OutboxMessage struct {
	OutboxID     string
	EventType    string
	PartitionKey string
	Payload      []byte
	CreatedAt    time.Time
}

// OutboxRepository models worker-side outbox polling/acknowledgement.
type OutboxRepository interface {
	ListPendingOutbox(ctx context.Context, limit int) ([]OutboxMessage, error)
	MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error
}

// EventEnvelope reuses the canonical cross-runtime envelope contract.
type EventEnvelope = contractsv1.Envelope

// EventPublisher publishes canonical envelopes to a topic.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}

// Scoreboard is the scoring engine's operation surface as this module
// consumes it. The engine instance is injected by the composition root and
// called synchronously on every lifecycle transition.
type Scoreboard interface {
	RecordPost(ctx context.Context, userID string, poolID string) error
	RecordClaim(ctx context.Context, userID string, poolID string, postedAt time.Time) error
	RecordCompletion(ctx context.Context, userID string, poolID string, completionTime time.Time, isEarly bool) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
