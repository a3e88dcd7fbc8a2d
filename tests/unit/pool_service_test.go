package unit

import (
	"context"
	"testing"

	poolservice "chorepool/contexts/household-coordination/pool-service"
	poolhttp "chorepool/contexts/household-coordination/pool-service/transport/http"
)

func TestPoolCreateJoinAndMembersThroughHandlers(t *testing.T) {
	module := poolservice.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreatePoolHandler(ctx, poolhttp.CreatePoolRequest{
		Name:        "Flat 4B",
		CreatedBy:   "user-a",
		CreatorName: "Alex",
	})
	if err != nil {
		t.Fatalf("create pool failed: %v", err)
	}
	if created.Data.InviteCode == "" {
		t.Fatalf("pool must carry an invite code")
	}

	joined, err := module.Handler.JoinPoolHandler(ctx, poolhttp.JoinPoolRequest{
		InviteCode:  created.Data.InviteCode,
		UserID:      "user-b",
		DisplayName: "Blake",
	})
	if err != nil {
		t.Fatalf("join failed: %v", err)
	}
	if joined.Data.PoolID != created.Data.PoolID {
		t.Fatalf("join must resolve the created pool")
	}

	members, err := module.Handler.ListMembersHandler(ctx, created.Data.PoolID)
	if err != nil {
		t.Fatalf("list members failed: %v", err)
	}
	if len(members.Data) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members.Data))
	}
	if members.Data[0].Role != "admin" || members.Data[1].Role != "member" {
		t.Fatalf("creator must be admin, joiner member: %+v", members.Data)
	}
}

func TestPoolInviteCodeRotationThroughHandlers(t *testing.T) {
	module := poolservice.NewInMemoryModule(nil)
	ctx := context.Background()

	created, err := module.Handler.CreatePoolHandler(ctx, poolhttp.CreatePoolRequest{
		Name: "Flat 4B", CreatedBy: "user-a",
	})
	if err != nil {
		t.Fatalf("create pool failed: %v", err)
	}

	rotated, err := module.Handler.RegenerateInviteCodeHandler(ctx, created.Data.PoolID, poolhttp.RegenerateInviteCodeRequest{
		UserID: "user-a",
	})
	if err != nil {
		t.Fatalf("rotation failed: %v", err)
	}
	if rotated.Data.InviteCode == created.Data.InviteCode {
		t.Fatalf("rotation must change the code")
	}

	if _, err := module.Handler.JoinPoolHandler(ctx, poolhttp.JoinPoolRequest{
		InviteCode: created.Data.InviteCode, UserID: "user-b",
	}); err == nil {
		t.Fatalf("old invite code must stop working")
	}
}
