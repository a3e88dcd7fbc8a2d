package ports

import (
	"context"
	"time"

	"chorepool/contexts/household-coordination/pool-service/domain/entities"
)

// PoolRepository owns pool and membership persistence. Members are listed in
// join order.
type PoolRepository interface {
	CreatePool(ctx context.Context, pool entities.Pool, creator entities.Member) error
	GetPool(ctx context.Context, poolID string) (entities.Pool, error)
	GetPoolByInviteCode(ctx context.Context, inviteCode string) (entities.Pool, error)
	UpdateInviteCode(ctx context.Context, poolID string, inviteCode string) error
	GetMember(ctx context.Context, poolID string, userID string) (entities.Member, bool, error)
	AddMember(ctx context.Context, member entities.Member) error
	RemoveMember(ctx context.Context, poolID string, userID string) error
	ListMembers(ctx context.Context, poolID string) ([]entities.Member, error)
}

// InviteCodeGenerator produces shareable codes. Codes must avoid ambiguous
// characters so they survive being read aloud.
type InviteCodeGenerator interface {
	NewInviteCode(ctx context.Context) (string, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
