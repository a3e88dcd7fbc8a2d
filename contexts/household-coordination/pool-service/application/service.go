package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"chorepool/contexts/household-coordination/pool-service/domain/entities"
	domainerrors "chorepool/contexts/household-coordination/pool-service/domain/errors"
	"chorepool/contexts/household-coordination/pool-service/ports"
)

// Service owns pool membership. The creator becomes the pool admin, everyone
// else joins through the invite code, and only an admin can rotate that code.
type Service struct {
	Repo   ports.PoolRepository
	Codes  ports.InviteCodeGenerator
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Logger *slog.Logger
}

func (s Service) CreatePool(ctx context.Context, name string, creatorID string, creatorName string) (entities.Pool, error) {
	name = strings.TrimSpace(name)
	creatorID = strings.TrimSpace(creatorID)
	if name == "" || creatorID == "" {
		return entities.Pool{}, domainerrors.ErrInvalidInput
	}

	now := s.now()
	poolID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Pool{}, err
	}
	inviteCode, err := s.Codes.NewInviteCode(ctx)
	if err != nil {
		return entities.Pool{}, err
	}

	pool := entities.Pool{
		PoolID:     poolID,
		Name:       name,
		InviteCode: inviteCode,
		CreatedBy:  creatorID,
		CreatedAt:  now,
	}
	creator := entities.Member{
		PoolID:      poolID,
		UserID:      creatorID,
		DisplayName: strings.TrimSpace(creatorName),
		Role:        entities.MemberRoleAdmin,
		JoinedAt:    now,
	}
	if err := s.Repo.CreatePool(ctx, pool, creator); err != nil {
		return entities.Pool{}, err
	}

	resolveLogger(s.Logger).Info("pool created",
		"event", "pool_created",
		"module", "household-coordination/pool-service",
		"layer", "application",
		"pool_id", pool.PoolID,
		"created_by", creatorID,
	)
	return pool, nil
}

// JoinPool is idempotent: joining a pool the user already belongs to returns
// the pool without touching the membership record.
func (s Service) JoinPool(ctx context.Context, inviteCode string, userID string, displayName string) (entities.Pool, error) {
	inviteCode = normalizeInviteCode(inviteCode)
	userID = strings.TrimSpace(userID)
	if inviteCode == "" || userID == "" {
		return entities.Pool{}, domainerrors.ErrInvalidInput
	}

	pool, err := s.Repo.GetPoolByInviteCode(ctx, inviteCode)
	if err != nil {
		return entities.Pool{}, err
	}

	_, exists, err := s.Repo.GetMember(ctx, pool.PoolID, userID)
	if err != nil {
		return entities.Pool{}, err
	}
	if exists {
		return pool, nil
	}

	member := entities.Member{
		PoolID:      pool.PoolID,
		UserID:      userID,
		DisplayName: strings.TrimSpace(displayName),
		Role:        entities.MemberRoleMember,
		JoinedAt:    s.now(),
	}
	if err := s.Repo.AddMember(ctx, member); err != nil {
		return entities.Pool{}, err
	}

	resolveLogger(s.Logger).Info("member joined pool",
		"event", "pool_member_joined",
		"module", "household-coordination/pool-service",
		"layer", "application",
		"pool_id", pool.PoolID,
		"user_id", userID,
	)
	return pool, nil
}

func (s Service) LeavePool(ctx context.Context, poolID string, userID string) error {
	poolID = strings.TrimSpace(poolID)
	userID = strings.TrimSpace(userID)
	if poolID == "" || userID == "" {
		return domainerrors.ErrInvalidInput
	}

	_, exists, err := s.Repo.GetMember(ctx, poolID, userID)
	if err != nil {
		return err
	}
	if !exists {
		return domainerrors.ErrNotMember
	}
	if err := s.Repo.RemoveMember(ctx, poolID, userID); err != nil {
		return err
	}

	resolveLogger(s.Logger).Info("member left pool",
		"event", "pool_member_left",
		"module", "household-coordination/pool-service",
		"layer", "application",
		"pool_id", poolID,
		"user_id", userID,
	)
	return nil
}

func (s Service) RegenerateInviteCode(ctx context.Context, poolID string, userID string) (entities.Pool, error) {
	poolID = strings.TrimSpace(poolID)
	userID = strings.TrimSpace(userID)
	if poolID == "" || userID == "" {
		return entities.Pool{}, domainerrors.ErrInvalidInput
	}

	member, exists, err := s.Repo.GetMember(ctx, poolID, userID)
	if err != nil {
		return entities.Pool{}, err
	}
	if !exists || member.Role != entities.MemberRoleAdmin {
		return entities.Pool{}, domainerrors.ErrNotAdmin
	}

	inviteCode, err := s.Codes.NewInviteCode(ctx)
	if err != nil {
		return entities.Pool{}, err
	}
	if err := s.Repo.UpdateInviteCode(ctx, poolID, inviteCode); err != nil {
		return entities.Pool{}, err
	}

	resolveLogger(s.Logger).Info("invite code regenerated",
		"event", "pool_invite_code_regenerated",
		"module", "household-coordination/pool-service",
		"layer", "application",
		"pool_id", poolID,
	)
	return s.Repo.GetPool(ctx, poolID)
}

func (s Service) GetPool(ctx context.Context, poolID string) (entities.Pool, error) {
	poolID = strings.TrimSpace(poolID)
	if poolID == "" {
		return entities.Pool{}, domainerrors.ErrInvalidInput
	}
	return s.Repo.GetPool(ctx, poolID)
}

func (s Service) ListMembers(ctx context.Context, poolID string) ([]entities.Member, error) {
	poolID = strings.TrimSpace(poolID)
	if poolID == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	return s.Repo.ListMembers(ctx, poolID)
}

// MemberDisplayNames resolves user ids to display names for read-side joins
// such as leaderboard rendering. Unknown users are simply absent.
func (s Service) MemberDisplayNames(ctx context.Context, poolID string) (map[string]string, error) {
	members, err := s.ListMembers(ctx, poolID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(members))
	for _, member := range members {
		if member.DisplayName != "" {
			names[member.UserID] = member.DisplayName
		}
	}
	return names, nil
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}

func normalizeInviteCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
