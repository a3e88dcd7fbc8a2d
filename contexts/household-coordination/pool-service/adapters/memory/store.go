package memory

import (
	"context"
	"crypto/rand"
	"sync"
	"time"

	"chorepool/contexts/household-coordination/pool-service/domain/entities"
	domainerrors "chorepool/contexts/household-coordination/pool-service/domain/errors"

	"github.com/google/uuid"
)

// inviteAlphabet drops 0, O, 1 and I so codes stay unambiguous when shared.
const inviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

type memberKey struct {
	poolID string
	userID string
}

// Store is an in-memory adapter implementing the pool-service ports for local
// runtime and tests.
type Store struct {
	mu          sync.RWMutex
	pools       map[string]entities.Pool
	byCode      map[string]string
	members     map[memberKey]entities.Member
	memberOrder []memberKey
}

func NewStore() *Store {
	return &Store{
		pools:   make(map[string]entities.Pool),
		byCode:  make(map[string]string),
		members: make(map[memberKey]entities.Member),
	}
}

func (s *Store) CreatePool(_ context.Context, pool entities.Pool, creator entities.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pool.PoolID == "" || pool.InviteCode == "" {
		return domainerrors.ErrInvalidInput
	}
	if _, exists := s.pools[pool.PoolID]; exists {
		return domainerrors.ErrInvalidInput
	}

	s.pools[pool.PoolID] = pool
	s.byCode[pool.InviteCode] = pool.PoolID

	key := memberKey{poolID: creator.PoolID, userID: creator.UserID}
	s.members[key] = creator
	s.memberOrder = append(s.memberOrder, key)
	return nil
}

func (s *Store) GetPool(_ context.Context, poolID string) (entities.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pool, ok := s.pools[poolID]
	if !ok {
		return entities.Pool{}, domainerrors.ErrPoolNotFound
	}
	return pool, nil
}

func (s *Store) GetPoolByInviteCode(_ context.Context, inviteCode string) (entities.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	poolID, ok := s.byCode[inviteCode]
	if !ok {
		return entities.Pool{}, domainerrors.ErrInviteCodeNotFound
	}
	return s.pools[poolID], nil
}

func (s *Store) UpdateInviteCode(_ context.Context, poolID string, inviteCode string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pool, ok := s.pools[poolID]
	if !ok {
		return domainerrors.ErrPoolNotFound
	}
	delete(s.byCode, pool.InviteCode)
	pool.InviteCode = inviteCode
	s.pools[poolID] = pool
	s.byCode[inviteCode] = poolID
	return nil
}

func (s *Store) GetMember(_ context.Context, poolID string, userID string) (entities.Member, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	member, ok := s.members[memberKey{poolID: poolID, userID: userID}]
	return member, ok, nil
}

func (s *Store) AddMember(_ context.Context, member entities.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pools[member.PoolID]; !ok {
		return domainerrors.ErrPoolNotFound
	}
	key := memberKey{poolID: member.PoolID, userID: member.UserID}
	if _, exists := s.members[key]; !exists {
		s.memberOrder = append(s.memberOrder, key)
	}
	s.members[key] = member
	return nil
}

func (s *Store) RemoveMember(_ context.Context, poolID string, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := memberKey{poolID: poolID, userID: userID}
	if _, ok := s.members[key]; !ok {
		return domainerrors.ErrNotMember
	}
	delete(s.members, key)
	for i, existing := range s.memberOrder {
		if existing == key {
			s.memberOrder = append(s.memberOrder[:i], s.memberOrder[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) ListMembers(_ context.Context, poolID string) ([]entities.Member, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.Member, 0)
	for _, key := range s.memberOrder {
		if key.poolID != poolID {
			continue
		}
		if member, ok := s.members[key]; ok {
			result = append(result, member)
		}
	}
	return result, nil
}

// NewInviteCode draws 8 unambiguous characters formatted as XXXX-XXXX.
func (s *Store) NewInviteCode(_ context.Context) (string, error) {
	raw := make([]byte, 8)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	code := make([]byte, 0, 9)
	for i, b := range raw {
		if i == 4 {
			code = append(code, '-')
		}
		code = append(code, inviteAlphabet[int(b)%len(inviteAlphabet)])
	}
	return string(code), nil
}

func (s *Store) Now() time.Time {
	return time.Now()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
