package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"chorepool/contexts/household-coordination/pool-service/adapters/memory"
	"chorepool/contexts/household-coordination/pool-service/domain/entities"
	domainerrors "chorepool/contexts/household-coordination/pool-service/domain/errors"
)

func newTestService() Service {
	store := memory.NewStore()
	return Service{
		Repo:  store,
		Codes: store,
		Clock: store,
		IDGen: store,
	}
}

func TestCreatePoolMakesCreatorAdmin(t *testing.T) {
	service := newTestService()

	pool, err := service.CreatePool(context.Background(), "Flat 4B", "user-a", "Alex")
	if err != nil {
		t.Fatalf("CreatePool returned error: %v", err)
	}
	if pool.InviteCode == "" {
		t.Fatalf("pool must get an invite code")
	}

	members, err := service.ListMembers(context.Background(), pool.PoolID)
	if err != nil {
		t.Fatalf("ListMembers returned error: %v", err)
	}
	if len(members) != 1 || members[0].Role != entities.MemberRoleAdmin {
		t.Fatalf("creator must be the sole admin member, got %+v", members)
	}
}

func TestJoinPoolIsIdempotent(t *testing.T) {
	service := newTestService()
	pool, _ := service.CreatePool(context.Background(), "Flat 4B", "user-a", "Alex")

	joined, err := service.JoinPool(context.Background(), pool.InviteCode, "user-b", "Blake")
	if err != nil {
		t.Fatalf("JoinPool returned error: %v", err)
	}
	if joined.PoolID != pool.PoolID {
		t.Fatalf("expected pool %s, got %s", pool.PoolID, joined.PoolID)
	}

	// Same user joining again must not duplicate the membership.
	if _, err := service.JoinPool(context.Background(), pool.InviteCode, "user-b", "Blake"); err != nil {
		t.Fatalf("repeat join must succeed: %v", err)
	}
	members, _ := service.ListMembers(context.Background(), pool.PoolID)
	if len(members) != 2 {
		t.Fatalf("expected 2 members, got %d", len(members))
	}
}

func TestJoinPoolNormalizesCode(t *testing.T) {
	service := newTestService()
	pool, _ := service.CreatePool(context.Background(), "Flat 4B", "user-a", "Alex")

	lowered := "  " + strings.ToLower(pool.InviteCode) + " "
	if _, err := service.JoinPool(context.Background(), lowered, "user-b", ""); err != nil {
		t.Fatalf("case and whitespace must not matter: %v", err)
	}
}

func TestJoinPoolUnknownCode(t *testing.T) {
	service := newTestService()

	_, err := service.JoinPool(context.Background(), "AAAA-AAAA", "user-b", "")
	if !errors.Is(err, domainerrors.ErrInviteCodeNotFound) {
		t.Fatalf("expected ErrInviteCodeNotFound, got %v", err)
	}
}

func TestLeavePool(t *testing.T) {
	service := newTestService()
	pool, _ := service.CreatePool(context.Background(), "Flat 4B", "user-a", "Alex")
	if _, err := service.JoinPool(context.Background(), pool.InviteCode, "user-b", ""); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	if err := service.LeavePool(context.Background(), pool.PoolID, "user-b"); err != nil {
		t.Fatalf("LeavePool returned error: %v", err)
	}
	members, _ := service.ListMembers(context.Background(), pool.PoolID)
	if len(members) != 1 {
		t.Fatalf("expected 1 member after leave, got %d", len(members))
	}

	if err := service.LeavePool(context.Background(), pool.PoolID, "user-b"); !errors.Is(err, domainerrors.ErrNotMember) {
		t.Fatalf("expected ErrNotMember, got %v", err)
	}
}

func TestRegenerateInviteCodeAdminOnly(t *testing.T) {
	service := newTestService()
	pool, _ := service.CreatePool(context.Background(), "Flat 4B", "user-a", "Alex")
	if _, err := service.JoinPool(context.Background(), pool.InviteCode, "user-b", ""); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	if _, err := service.RegenerateInviteCode(context.Background(), pool.PoolID, "user-b"); !errors.Is(err, domainerrors.ErrNotAdmin) {
		t.Fatalf("expected ErrNotAdmin for regular member, got %v", err)
	}

	rotated, err := service.RegenerateInviteCode(context.Background(), pool.PoolID, "user-a")
	if err != nil {
		t.Fatalf("admin rotation failed: %v", err)
	}
	if rotated.InviteCode == pool.InviteCode {
		t.Fatalf("invite code must change on rotation")
	}

	// The old code stops working, the new one routes to the pool.
	if _, err := service.JoinPool(context.Background(), pool.InviteCode, "user-c", ""); !errors.Is(err, domainerrors.ErrInviteCodeNotFound) {
		t.Fatalf("old code must be revoked, got %v", err)
	}
	if _, err := service.JoinPool(context.Background(), rotated.InviteCode, "user-c", ""); err != nil {
		t.Fatalf("new code must work: %v", err)
	}
}

func TestMemberDisplayNamesSkipsEmpty(t *testing.T) {
	service := newTestService()
	pool, _ := service.CreatePool(context.Background(), "Flat 4B", "user-a", "Alex")
	if _, err := service.JoinPool(context.Background(), pool.InviteCode, "user-b", ""); err != nil {
		t.Fatalf("join failed: %v", err)
	}

	names, err := service.MemberDisplayNames(context.Background(), pool.PoolID)
	if err != nil {
		t.Fatalf("MemberDisplayNames returned error: %v", err)
	}
	if names["user-a"] != "Alex" {
		t.Fatalf("expected Alex for user-a, got %q", names["user-a"])
	}
	if _, ok := names["user-b"]; ok {
		t.Fatalf("members without display names must be absent")
	}
}
