package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"chorepool/contexts/household-coordination/request-service/domain/entities"
	domainerrors "chorepool/contexts/household-coordination/request-service/domain/errors"
	"chorepool/contexts/household-coordination/request-service/ports"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

type fakeIDGen struct {
	sequence int
}

func (g *fakeIDGen) NewID(_ context.Context) (string, error) {
	g.sequence++
	return fmt.Sprintf("id-%d", g.sequence), nil
}

type fakeRequestRepo struct {
	requests map[string]entities.Request
	order    []string
	events   []ports.LifecycleEvent
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]entities.Request)}
}

func (r *fakeRequestRepo) GetRequest(_ context.Context, requestID string) (entities.Request, error) {
	request, ok := r.requests[requestID]
	if !ok {
		return entities.Request{}, domainerrors.ErrRequestNotFound
	}
	return request, nil
}

func (r *fakeRequestRepo) SaveRequestWithOutbox(_ context.Context, request entities.Request, event ports.LifecycleEvent) error {
	if _, exists := r.requests[request.RequestID]; !exists {
		r.order = append(r.order, request.RequestID)
	}
	r.requests[request.RequestID] = request
	r.events = append(r.events, event)
	return nil
}

func (r *fakeRequestRepo) ListRequestsByPool(_ context.Context, poolID string, status entities.RequestStatus) ([]entities.Request, error) {
	result := make([]entities.Request, 0)
	for _, id := range r.order {
		request := r.requests[id]
		if request.PoolID != poolID {
			continue
		}
		if status != "" && request.Status != status {
			continue
		}
		result = append(result, request)
	}
	return result, nil
}

type fakeNotificationRepo struct {
	notifications []entities.Notification
	failAppend    bool
}

func (r *fakeNotificationRepo) AppendNotification(_ context.Context, notification entities.Notification) error {
	if r.failAppend {
		return errors.New("append rejected")
	}
	r.notifications = append(r.notifications, notification)
	return nil
}

func (r *fakeNotificationRepo) ListNotificationsByPool(_ context.Context, poolID string) ([]entities.Notification, error) {
	result := make([]entities.Notification, 0)
	for i := len(r.notifications) - 1; i >= 0; i-- {
		if r.notifications[i].PoolID == poolID {
			result = append(result, r.notifications[i])
		}
	}
	return result, nil
}

func (r *fakeNotificationRepo) MarkNotificationRead(_ context.Context, notificationID string) error {
	for i := range r.notifications {
		if r.notifications[i].NotificationID == notificationID {
			r.notifications[i].Read = true
			return nil
		}
	}
	return domainerrors.ErrNotificationNotFound
}

type scoreboardCall struct {
	op     string
	userID string
	poolID string
	when   time.Time
	early  bool
}

type fakeScoreboard struct {
	calls []scoreboardCall
}

func (s *fakeScoreboard) RecordPost(_ context.Context, userID string, poolID string) error {
	s.calls = append(s.calls, scoreboardCall{op: "post", userID: userID, poolID: poolID})
	return nil
}

func (s *fakeScoreboard) RecordClaim(_ context.Context, userID string, poolID string, postedAt time.Time) error {
	s.calls = append(s.calls, scoreboardCall{op: "claim", userID: userID, poolID: poolID, when: postedAt})
	return nil
}

func (s *fakeScoreboard) RecordCompletion(_ context.Context, userID string, poolID string, completionTime time.Time, isEarly bool) error {
	s.calls = append(s.calls, scoreboardCall{op: "completion", userID: userID, poolID: poolID, when: completionTime, early: isEarly})
	return nil
}

type testHarness struct {
	service       Service
	requests      *fakeRequestRepo
	notifications *fakeNotificationRepo
	scoreboard    *fakeScoreboard
	clock         *fakeClock
}

func newTestHarness(now time.Time) *testHarness {
	requests := newFakeRequestRepo()
	notifications := &fakeNotificationRepo{}
	scoreboard := &fakeScoreboard{}
	clock := &fakeClock{now: now}
	return &testHarness{
		service: Service{
			Requests:      requests,
			Notifications: notifications,
			Scoreboard:    scoreboard,
			Clock:         clock,
			IDGen:         &fakeIDGen{},
		},
		requests:      requests,
		notifications: notifications,
		scoreboard:    scoreboard,
		clock:         clock,
	}
}

func TestPostRequestCreatesOpenRequestWithOutboxAndScore(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	h := newTestHarness(now)

	request, err := h.service.PostRequest(context.Background(), PostRequestInput{
		PoolID:       "pool-1",
		RequestType:  "dishes",
		Description:  "kitchen sink is full",
		PostedBy:     "user-a",
		PostedByName: "Alex",
	})
	if err != nil {
		t.Fatalf("PostRequest returned error: %v", err)
	}
	if request.Status != entities.RequestStatusOpen {
		t.Fatalf("expected status open, got %s", request.Status)
	}
	if !request.CreatedAt.Equal(now) {
		t.Fatalf("expected created at %v, got %v", now, request.CreatedAt)
	}

	if len(h.requests.events) != 1 {
		t.Fatalf("expected one outbox event, got %d", len(h.requests.events))
	}
	event := h.requests.events[0]
	if event.EventType != EventTypeRequestPosted {
		t.Fatalf("expected event type %s, got %s", EventTypeRequestPosted, event.EventType)
	}
	if event.ActorID != "user-a" || event.PoolID != "pool-1" {
		t.Fatalf("unexpected event identity: %+v", event)
	}

	if len(h.scoreboard.calls) != 1 || h.scoreboard.calls[0].op != "post" {
		t.Fatalf("expected one RecordPost call, got %+v", h.scoreboard.calls)
	}
	if len(h.notifications.notifications) != 1 {
		t.Fatalf("expected one notification, got %d", len(h.notifications.notifications))
	}
	if h.notifications.notifications[0].Type != entities.NotificationNewRequest {
		t.Fatalf("unexpected notification type %s", h.notifications.notifications[0].Type)
	}
}

func TestPostRequestRejectsMissingFields(t *testing.T) {
	h := newTestHarness(time.Now())

	_, err := h.service.PostRequest(context.Background(), PostRequestInput{
		PoolID:      "pool-1",
		RequestType: "dishes",
	})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(h.requests.events) != 0 || len(h.scoreboard.calls) != 0 {
		t.Fatalf("invalid input must not persist or score")
	}
}

func TestClaimRequestTransitionsAndPassesPostedAt(t *testing.T) {
	postedAt := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	h := newTestHarness(postedAt)

	request, err := h.service.PostRequest(context.Background(), PostRequestInput{
		PoolID: "pool-1", RequestType: "dishes", PostedBy: "user-a",
	})
	if err != nil {
		t.Fatalf("PostRequest returned error: %v", err)
	}

	h.clock.now = postedAt.Add(20 * time.Minute)
	claimed, err := h.service.ClaimRequest(context.Background(), request.RequestID, "user-b", "Blake")
	if err != nil {
		t.Fatalf("ClaimRequest returned error: %v", err)
	}
	if claimed.Status != entities.RequestStatusClaimed || claimed.ClaimedBy != "user-b" {
		t.Fatalf("unexpected claimed request: %+v", claimed)
	}

	last := h.scoreboard.calls[len(h.scoreboard.calls)-1]
	if last.op != "claim" || last.userID != "user-b" || !last.when.Equal(postedAt) {
		t.Fatalf("RecordClaim should receive the original posted time, got %+v", last)
	}
}

func TestClaimRequestRejectsNonOpen(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	h := newTestHarness(now)

	request, err := h.service.PostRequest(context.Background(), PostRequestInput{
		PoolID: "pool-1", RequestType: "dishes", PostedBy: "user-a",
	})
	if err != nil {
		t.Fatalf("PostRequest returned error: %v", err)
	}
	if _, err := h.service.ClaimRequest(context.Background(), request.RequestID, "user-b", ""); err != nil {
		t.Fatalf("first claim should succeed: %v", err)
	}

	_, err = h.service.ClaimRequest(context.Background(), request.RequestID, "user-c", "")
	if !errors.Is(err, domainerrors.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCompleteRequestOnlyByClaimer(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	h := newTestHarness(now)

	request, _ := h.service.PostRequest(context.Background(), PostRequestInput{
		PoolID: "pool-1", RequestType: "dishes", PostedBy: "user-a",
	})
	if _, err := h.service.ClaimRequest(context.Background(), request.RequestID, "user-b", ""); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	_, err := h.service.CompleteRequest(context.Background(), request.RequestID, "user-c")
	if !errors.Is(err, domainerrors.ErrNotClaimer) {
		t.Fatalf("expected ErrNotClaimer, got %v", err)
	}

	completed, err := h.service.CompleteRequest(context.Background(), request.RequestID, "user-b")
	if err != nil {
		t.Fatalf("claimer completion failed: %v", err)
	}
	if completed.Status != entities.RequestStatusCompleted || completed.CompletedAt == nil {
		t.Fatalf("unexpected completed request: %+v", completed)
	}
}

func TestCompleteRequestEarlyWhenBeforeSchedule(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	h := newTestHarness(now)
	scheduledFor := now.Add(6 * time.Hour)

	request, _ := h.service.PostRequest(context.Background(), PostRequestInput{
		PoolID: "pool-1", RequestType: "dishes", PostedBy: "user-a", ScheduledFor: &scheduledFor,
	})
	if _, err := h.service.ClaimRequest(context.Background(), request.RequestID, "user-b", ""); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	h.clock.now = now.Add(2 * time.Hour)
	if _, err := h.service.CompleteRequest(context.Background(), request.RequestID, "user-b"); err != nil {
		t.Fatalf("completion failed: %v", err)
	}

	last := h.scoreboard.calls[len(h.scoreboard.calls)-1]
	if last.op != "completion" || !last.early {
		t.Fatalf("completion before schedule should be early, got %+v", last)
	}
}

func TestCompleteRequestNotEarlyWithoutSchedule(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	h := newTestHarness(now)

	request, _ := h.service.PostRequest(context.Background(), PostRequestInput{
		PoolID: "pool-1", RequestType: "dishes", PostedBy: "user-a",
	})
	if _, err := h.service.ClaimRequest(context.Background(), request.RequestID, "user-b", ""); err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if _, err := h.service.CompleteRequest(context.Background(), request.RequestID, "user-b"); err != nil {
		t.Fatalf("completion failed: %v", err)
	}

	last := h.scoreboard.calls[len(h.scoreboard.calls)-1]
	if last.early {
		t.Fatalf("completion without a schedule must not be early")
	}
}

func TestNotificationFailureDoesNotFailTransition(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	h := newTestHarness(now)
	h.notifications.failAppend = true

	_, err := h.service.PostRequest(context.Background(), PostRequestInput{
		PoolID: "pool-1", RequestType: "dishes", PostedBy: "user-a",
	})
	if err != nil {
		t.Fatalf("posting must survive a notification failure, got %v", err)
	}
	if len(h.requests.events) != 1 || len(h.scoreboard.calls) != 1 {
		t.Fatalf("request persistence and scoring must still run")
	}
}

func TestListPoolRequestsFiltersByStatus(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	h := newTestHarness(now)

	first, _ := h.service.PostRequest(context.Background(), PostRequestInput{
		PoolID: "pool-1", RequestType: "dishes", PostedBy: "user-a",
	})
	if _, err := h.service.PostRequest(context.Background(), PostRequestInput{
		PoolID: "pool-1", RequestType: "trash", PostedBy: "user-a",
	}); err != nil {
		t.Fatalf("second post failed: %v", err)
	}
	if _, err := h.service.ClaimRequest(context.Background(), first.RequestID, "user-b", ""); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	open, err := h.service.ListPoolRequests(context.Background(), "pool-1", "open")
	if err != nil {
		t.Fatalf("list open failed: %v", err)
	}
	if len(open) != 1 || open[0].RequestType != "trash" {
		t.Fatalf("unexpected open list: %+v", open)
	}

	all, err := h.service.ListPoolRequests(context.Background(), "pool-1", "")
	if err != nil {
		t.Fatalf("list all failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(all))
	}

	if _, err := h.service.ListPoolRequests(context.Background(), "pool-1", "archived"); !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("unknown status filter should be rejected, got %v", err)
	}
}

func TestMarkNotificationRead(t *testing.T) {
	now := time.Date(2026, time.March, 10, 14, 0, 0, 0, time.UTC)
	h := newTestHarness(now)

	if _, err := h.service.PostRequest(context.Background(), PostRequestInput{
		PoolID: "pool-1", RequestType: "dishes", PostedBy: "user-a",
	}); err != nil {
		t.Fatalf("post failed: %v", err)
	}

	notifications, err := h.service.ListNotifications(context.Background(), "pool-1")
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(notifications) != 1 || notifications[0].Read {
		t.Fatalf("expected one unread notification, got %+v", notifications)
	}

	if err := h.service.MarkNotificationRead(context.Background(), notifications[0].NotificationID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	notifications, _ = h.service.ListNotifications(context.Background(), "pool-1")
	if !notifications[0].Read {
		t.Fatalf("notification should be read")
	}

	if err := h.service.MarkNotificationRead(context.Background(), "missing"); !errors.Is(err, domainerrors.ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}
