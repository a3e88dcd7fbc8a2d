package memory

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	application "chorepool/contexts/household-coordination/request-service/application"
	"chorepool/contexts/household-coordination/request-service/domain/entities"
	domainerrors "chorepool/contexts/household-coordination/request-service/domain/errors"
	"chorepool/contexts/household-coordination/request-service/ports"
	"chorepool/internal/shared/events"

	"github.com/google/uuid"
)

// Store is an in-memory adapter implementing the request-service ports for
// local runtime and tests. It is not intended as production persistence.
type Store struct {
	mu                sync.RWMutex
	requests          map[string]entities.Request
	requestOrder      []string
	notifications     map[string]entities.Notification
	notificationOrder []string
	outbox            map[string]ports.OutboxMessage
	outboxOrder       []string
	outboxSent        map[string]time.Time
	logger            *slog.Logger
}

func NewStore(logger *slog.Logger) *Store {
	return &Store{
		requests:      make(map[string]entities.Request),
		notifications: make(map[string]entities.Notification),
		outbox:        make(map[string]ports.OutboxMessage),
		outboxSent:    make(map[string]time.Time),
		logger:        application.ResolveLogger(logger),
	}
}

func (s *Store) GetRequest(_ context.Context, requestID string) (entities.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	request, ok := s.requests[requestID]
	if !ok {
		return entities.Request{}, domainerrors.ErrRequestNotFound
	}
	return request, nil
}

func (s *Store) SaveRequestWithOutbox(_ context.Context, request entities.Request, event ports.LifecycleEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A single mutex critical section approximates transactional semantics:
	// the request write and outbox append succeed or fail together.
	payload, err := marshalEnvelope(event)
	if err != nil {
		return err
	}

	if _, exists := s.requests[request.RequestID]; !exists {
		s.requestOrder = append(s.requestOrder, request.RequestID)
	}
	s.requests[request.RequestID] = request

	s.outbox[event.EventID] = ports.OutboxMessage{
		OutboxID:     event.EventID,
		EventType:    event.EventType,
		PartitionKey: event.PoolID,
		Payload:      payload,
		CreatedAt:    event.OccurredAt,
	}
	s.outboxOrder = append(s.outboxOrder, event.EventID)

	s.logger.Info("request and outbox persisted in memory store",
		"event", "memory_save_request_with_outbox",
		"module", "household-coordination/request-service",
		"layer", "adapter",
		"request_id", request.RequestID,
		"status", string(request.Status),
		"outbox_event_id", event.EventID,
	)
	return nil
}

func (s *Store) ListRequestsByPool(_ context.Context, poolID string, status entities.RequestStatus) ([]entities.Request, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.Request, 0)
	for _, id := range s.requestOrder {
		request, ok := s.requests[id]
		if !ok || request.PoolID != poolID {
			continue
		}
		if status != "" && request.Status != status {
			continue
		}
		result = append(result, request)
	}
	return result, nil
}

func (s *Store) AppendNotification(_ context.Context, notification entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.notifications[notification.NotificationID]; !exists {
		s.notificationOrder = append(s.notificationOrder, notification.NotificationID)
	}
	s.notifications[notification.NotificationID] = notification
	return nil
}

func (s *Store) ListNotificationsByPool(_ context.Context, poolID string) ([]entities.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Newest first, matching the feed the UI renders.
	result := make([]entities.Notification, 0)
	for i := len(s.notificationOrder) - 1; i >= 0; i-- {
		notification, ok := s.notifications[s.notificationOrder[i]]
		if !ok || notification.PoolID != poolID {
			continue
		}
		result = append(result, notification)
	}
	return result, nil
}

func (s *Store) MarkNotificationRead(_ context.Context, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification, ok := s.notifications[notificationID]
	if !ok {
		return domainerrors.ErrNotificationNotFound
	}
	notification.Read = true
	s.notifications[notificationID] = notification
	return nil
}

func (s *Store) ListPendingOutbox(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	messages := make([]ports.OutboxMessage, 0, limit)
	for _, id := range s.outboxOrder {
		if _, sent := s.outboxSent[id]; sent {
			continue
		}
		if msg, ok := s.outbox[id]; ok {
			messages = append(messages, msg)
		}
		if len(messages) >= limit {
			break
		}
	}
	return messages, nil
}

func (s *Store) MarkOutboxSent(_ context.Context, outboxID string, sentAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.outbox[outboxID]; !ok {
		return domainerrors.ErrInvalidInput
	}
	s.outboxSent[outboxID] = sentAt.UTC()
	return nil
}

// OutboxEvents exposes all outbox rows regardless of sent state for tests.
func (s *Store) OutboxEvents() []ports.OutboxMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	messages := make([]ports.OutboxMessage, 0, len(s.outboxOrder))
	for _, id := range s.outboxOrder {
		if msg, ok := s.outbox[id]; ok {
			messages = append(messages, msg)
		}
	}
	return messages
}

func (s *Store) Now() time.Time {
	return time.Now()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

func marshalEnvelope(event ports.LifecycleEvent) ([]byte, error) {
	data, err := json.Marshal(events.RequestLifecyclePayload{
		RequestID:   event.RequestID,
		PoolID:      event.PoolID,
		RequestType: event.RequestType,
		ActorID:     event.ActorID,
		Status:      event.Status,
	})
	if err != nil {
		return nil, err
	}
	return json.Marshal(ports.EventEnvelope{
		EventID:          event.EventID,
		EventType:        event.EventType,
		OccurredAt:       event.OccurredAt.UTC(),
		SourceService:    "request-service",
		SchemaVersion:    1,
		PartitionKeyPath: "pool_id",
		PartitionKey:     event.PoolID,
		Data:             data,
	})
}
