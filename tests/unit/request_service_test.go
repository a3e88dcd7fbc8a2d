package unit

import (
	"context"
	"testing"

	scoringengine "chorepool/contexts/community-experience/scoring-engine"
	"chorepool/contexts/community-experience/scoring-engine/domain/catalog"
	requestservice "chorepool/contexts/household-coordination/request-service"
	requesthttp "chorepool/contexts/household-coordination/request-service/transport/http"
)

func newRequestFixture() (requestservice.Module, scoringengine.Module) {
	scoring := scoringengine.NewInMemoryModule(nil)
	requests := requestservice.NewInMemoryModule(scoring.Service, nil)
	return requests, scoring
}

func TestRequestLifecycleAwardsPointsEndToEnd(t *testing.T) {
	requests, scoring := newRequestFixture()
	ctx := context.Background()

	posted, err := requests.Handler.PostRequestHandler(ctx, requesthttp.PostRequestRequest{
		PoolID:       "pool-1",
		RequestType:  "dishes",
		PostedBy:     "user-a",
		PostedByName: "Alex",
	})
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	requestID := posted.Data.RequestID

	if _, err := requests.Handler.ClaimRequestHandler(ctx, requestID, requesthttp.ClaimRequestRequest{
		UserID: "user-b", UserName: "Blake",
	}); err != nil {
		t.Fatalf("claim failed: %v", err)
	}
	if _, err := requests.Handler.CompleteRequestHandler(ctx, requestID, requesthttp.CompleteRequestRequest{
		UserID: "user-b",
	}); err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	poster, err := scoring.Handler.GetStatsHandler(ctx, "user-a", "pool-1")
	if err != nil {
		t.Fatalf("poster stats failed: %v", err)
	}
	// Posting awards the post points plus the first_post achievement bonus.
	if poster.Data.TasksPosted != 1 || poster.Data.Points < catalog.PointsTaskPost {
		t.Fatalf("poster must be credited, got %+v", poster.Data)
	}

	claimer, err := scoring.Handler.GetStatsHandler(ctx, "user-b", "pool-1")
	if err != nil {
		t.Fatalf("claimer stats failed: %v", err)
	}
	if claimer.Data.TasksClaimed != 1 || claimer.Data.TasksCompleted != 1 {
		t.Fatalf("claimer counters wrong: %+v", claimer.Data)
	}
	if claimer.Data.CurrentStreak != 1 {
		t.Fatalf("first completion must start a streak, got %d", claimer.Data.CurrentStreak)
	}
}

func TestRequestLifecycleWritesOutboxEvents(t *testing.T) {
	requests, _ := newRequestFixture()
	ctx := context.Background()

	posted, err := requests.Handler.PostRequestHandler(ctx, requesthttp.PostRequestRequest{
		PoolID: "pool-1", RequestType: "trash", PostedBy: "user-a",
	})
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if _, err := requests.Handler.ClaimRequestHandler(ctx, posted.Data.RequestID, requesthttp.ClaimRequestRequest{UserID: "user-b"}); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	events := requests.Store.OutboxEvents()
	if len(events) != 2 {
		t.Fatalf("expected 2 outbox events, got %d", len(events))
	}
	if events[0].EventType != "request.posted" || events[1].EventType != "request.claimed" {
		t.Fatalf("unexpected event types: %s, %s", events[0].EventType, events[1].EventType)
	}
	if events[0].PartitionKey != "pool-1" {
		t.Fatalf("events must partition by pool, got %s", events[0].PartitionKey)
	}
}

func TestRequestNotificationsAccumulatePerPool(t *testing.T) {
	requests, _ := newRequestFixture()
	ctx := context.Background()

	posted, err := requests.Handler.PostRequestHandler(ctx, requesthttp.PostRequestRequest{
		PoolID: "pool-1", RequestType: "dishes", PostedBy: "user-a", PostedByName: "Alex",
	})
	if err != nil {
		t.Fatalf("post failed: %v", err)
	}
	if _, err := requests.Handler.ClaimRequestHandler(ctx, posted.Data.RequestID, requesthttp.ClaimRequestRequest{UserID: "user-b", UserName: "Blake"}); err != nil {
		t.Fatalf("claim failed: %v", err)
	}

	feed, err := requests.Handler.ListNotificationsHandler(ctx, "pool-1")
	if err != nil {
		t.Fatalf("list notifications failed: %v", err)
	}
	if len(feed.Data) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(feed.Data))
	}
	// Newest first.
	if feed.Data[0].Type != "request_claimed" || feed.Data[1].Type != "new_request" {
		t.Fatalf("unexpected feed order: %s, %s", feed.Data[0].Type, feed.Data[1].Type)
	}

	if _, err := requests.Handler.MarkNotificationReadHandler(ctx, feed.Data[0].NotificationID); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}
	feed, _ = requests.Handler.ListNotificationsHandler(ctx, "pool-1")
	if !feed.Data[0].Read {
		t.Fatalf("notification must be marked read")
	}
}
