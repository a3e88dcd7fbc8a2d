package entities

import "time"

// Pool is a household group. Members join through a shareable invite code.
type Pool struct {
	PoolID     string
	Name       string
	InviteCode string
	CreatedBy  string
	CreatedAt  time.Time
}

type MemberRole string

const (
	MemberRoleAdmin  MemberRole = "admin"
	MemberRoleMember MemberRole = "member"
)

type Member struct {
	PoolID      string
	UserID      string
	DisplayName string
	Role        MemberRole
	JoinedAt    time.Time
}
