package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"chorepool/contexts/household-coordination/request-service/domain/entities"
	domainerrors "chorepool/contexts/household-coordination/request-service/domain/errors"
	"chorepool/contexts/household-coordination/request-service/ports"
)

const (
	EventTypeRequestPosted    = "request.posted"
	EventTypeRequestClaimed   = "request.claimed"
	EventTypeRequestCompleted = "request.completed"
)

// Service owns the request lifecycle. Each transition persists the request
// with its outbox event, writes an in-app notification, and then reports the
// event to the scoring engine before returning, so scoring effects are
// observable as soon as the call completes.
type Service struct {
	Requests      ports.RequestRepository
	Notifications ports.NotificationRepository
	Scoreboard    ports.Scoreboard
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

type PostRequestInput struct {
	PoolID       string
	RequestType  string
	Description  string
	PostedBy     string
	PostedByName string
	ScheduledFor *time.Time
}

func (s Service) PostRequest(ctx context.Context, input PostRequestInput) (entities.Request, error) {
	input.PoolID = strings.TrimSpace(input.PoolID)
	input.RequestType = strings.TrimSpace(input.RequestType)
	input.PostedBy = strings.TrimSpace(input.PostedBy)
	if input.PoolID == "" || input.RequestType == "" || input.PostedBy == "" {
		return entities.Request{}, domainerrors.ErrInvalidInput
	}

	now := s.now()
	requestID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Request{}, err
	}
	request := entities.Request{
		RequestID:    requestID,
		PoolID:       input.PoolID,
		RequestType:  input.RequestType,
		Description:  strings.TrimSpace(input.Description),
		Status:       entities.RequestStatusOpen,
		PostedBy:     input.PostedBy,
		PostedByName: strings.TrimSpace(input.PostedByName),
		ScheduledFor: input.ScheduledFor,
		CreatedAt:    now,
	}

	event, err := s.lifecycleEvent(ctx, EventTypeRequestPosted, request, request.PostedBy, now)
	if err != nil {
		return entities.Request{}, err
	}
	if err := s.Requests.SaveRequestWithOutbox(ctx, request, event); err != nil {
		return entities.Request{}, err
	}

	s.appendNotification(ctx, request, entities.NotificationNewRequest,
		fmt.Sprintf("%s posted a new %s request", displayName(request.PostedByName, request.PostedBy), request.RequestType), now)

	if err := s.Scoreboard.RecordPost(ctx, request.PostedBy, request.PoolID); err != nil {
		return entities.Request{}, err
	}

	ResolveLogger(s.Logger).Info("request posted",
		"event", "request_posted",
		"module", "household-coordination/request-service",
		"layer", "application",
		"request_id", request.RequestID,
		"pool_id", request.PoolID,
		"request_type", request.RequestType,
	)
	return request, nil
}

func (s Service) ClaimRequest(ctx context.Context, requestID string, userID string, userName string) (entities.Request, error) {
	requestID = strings.TrimSpace(requestID)
	userID = strings.TrimSpace(userID)
	if requestID == "" || userID == "" {
		return entities.Request{}, domainerrors.ErrInvalidInput
	}

	request, err := s.Requests.GetRequest(ctx, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	if request.Status != entities.RequestStatusOpen {
		return entities.Request{}, domainerrors.ErrInvalidTransition
	}

	now := s.now()
	request.Status = entities.RequestStatusClaimed
	request.ClaimedBy = userID
	request.ClaimedByName = strings.TrimSpace(userName)

	event, err := s.lifecycleEvent(ctx, EventTypeRequestClaimed, request, userID, now)
	if err != nil {
		return entities.Request{}, err
	}
	if err := s.Requests.SaveRequestWithOutbox(ctx, request, event); err != nil {
		return entities.Request{}, err
	}

	s.appendNotification(ctx, request, entities.NotificationRequestClaimed,
		fmt.Sprintf("%s claimed your %s request", displayName(request.ClaimedByName, userID), request.RequestType), now)

	if err := s.Scoreboard.RecordClaim(ctx, userID, request.PoolID, request.CreatedAt); err != nil {
		return entities.Request{}, err
	}

	ResolveLogger(s.Logger).Info("request claimed",
		"event", "request_claimed",
		"module", "household-coordination/request-service",
		"layer", "application",
		"request_id", request.RequestID,
		"pool_id", request.PoolID,
		"claimed_by", userID,
	)
	return request, nil
}

func (s Service) CompleteRequest(ctx context.Context, requestID string, userID string) (entities.Request, error) {
	requestID = strings.TrimSpace(requestID)
	userID = strings.TrimSpace(userID)
	if requestID == "" || userID == "" {
		return entities.Request{}, domainerrors.ErrInvalidInput
	}

	request, err := s.Requests.GetRequest(ctx, requestID)
	if err != nil {
		return entities.Request{}, err
	}
	if request.Status != entities.RequestStatusClaimed {
		return entities.Request{}, domainerrors.ErrInvalidTransition
	}
	if userID != request.ClaimedBy {
		return entities.Request{}, domainerrors.ErrNotClaimer
	}

	now := s.now()
	request.Status = entities.RequestStatusCompleted
	completedAt := now
	request.CompletedAt = &completedAt
	isEarly := request.ScheduledFor != nil && now.Before(*request.ScheduledFor)

	event, err := s.lifecycleEvent(ctx, EventTypeRequestCompleted, request, userID, now)
	if err != nil {
		return entities.Request{}, err
	}
	if err := s.Requests.SaveRequestWithOutbox(ctx, request, event); err != nil {
		return entities.Request{}, err
	}

	s.appendNotification(ctx, request, entities.NotificationRequestCompleted,
		fmt.Sprintf("%s completed the %s request", displayName(request.ClaimedByName, userID), request.RequestType), now)

	if err := s.Scoreboard.RecordCompletion(ctx, userID, request.PoolID, now, isEarly); err != nil {
		return entities.Request{}, err
	}

	ResolveLogger(s.Logger).Info("request completed",
		"event", "request_completed",
		"module", "household-coordination/request-service",
		"layer", "application",
		"request_id", request.RequestID,
		"pool_id", request.PoolID,
		"completed_by", userID,
		"early", isEarly,
	)
	return request, nil
}

func (s Service) GetRequest(ctx context.Context, requestID string) (entities.Request, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.Request{}, domainerrors.ErrInvalidInput
	}
	return s.Requests.GetRequest(ctx, requestID)
}

func (s Service) ListPoolRequests(ctx context.Context, poolID string, status string) ([]entities.Request, error) {
	poolID = strings.TrimSpace(poolID)
	if poolID == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	filter, err := parseStatus(status)
	if err != nil {
		return nil, err
	}
	return s.Requests.ListRequestsByPool(ctx, poolID, filter)
}

func (s Service) ListNotifications(ctx context.Context, poolID string) ([]entities.Notification, error) {
	poolID = strings.TrimSpace(poolID)
	if poolID == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	return s.Notifications.ListNotificationsByPool(ctx, poolID)
}

func (s Service) MarkNotificationRead(ctx context.Context, notificationID string) error {
	notificationID = strings.TrimSpace(notificationID)
	if notificationID == "" {
		return domainerrors.ErrInvalidInput
	}
	return s.Notifications.MarkNotificationRead(ctx, notificationID)
}

func (s Service) lifecycleEvent(ctx context.Context, eventType string, request entities.Request, actorID string, occurredAt time.Time) (ports.LifecycleEvent, error) {
	eventID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.LifecycleEvent{}, err
	}
	return ports.LifecycleEvent{
		EventID:     eventID,
		EventType:   eventType,
		RequestID:   request.RequestID,
		PoolID:      request.PoolID,
		RequestType: request.RequestType,
		ActorID:     actorID,
		Status:      string(request.Status),
		OccurredAt:  occurredAt,
	}, nil
}

// appendNotification is best-effort: a failed notification write is logged,
// never surfaced, so a lifecycle transition cannot fail on activity-feed
// bookkeeping.
func (s Service) appendNotification(ctx context.Context, request entities.Request, kind entities.NotificationType, message string, now time.Time) {
	notificationID, err := s.IDGen.NewID(ctx)
	if err == nil {
		err = s.Notifications.AppendNotification(ctx, entities.Notification{
			NotificationID: notificationID,
			PoolID:         request.PoolID,
			Type:           kind,
			RequestID:      request.RequestID,
			Message:        message,
			CreatedAt:      now,
		})
	}
	if err != nil {
		ResolveLogger(s.Logger).Warn("notification append failed",
			"event", "request_notification_append_failed",
			"module", "household-coordination/request-service",
			"layer", "application",
			"request_id", request.RequestID,
			"error", err.Error(),
		)
	}
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

func parseStatus(status string) (entities.RequestStatus, error) {
	switch entities.RequestStatus(strings.TrimSpace(status)) {
	case "":
		return "", nil
	case entities.RequestStatusOpen:
		return entities.RequestStatusOpen, nil
	case entities.RequestStatusClaimed:
		return entities.RequestStatusClaimed, nil
	case entities.RequestStatusCompleted:
		return entities.RequestStatusCompleted, nil
	default:
		return "", domainerrors.ErrInvalidInput
	}
}

func displayName(name string, fallback string) string {
	if name != "" {
		return name
	}
	return fallback
}
