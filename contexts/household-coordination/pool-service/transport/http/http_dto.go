package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreatePoolRequest struct {
	Name        string `json:"name"`
	CreatedBy   string `json:"created_by"`
	CreatorName string `json:"creator_name,omitempty"`
}

type JoinPoolRequest struct {
	InviteCode  string `json:"invite_code"`
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
}

type LeavePoolRequest struct {
	UserID string `json:"user_id"`
}

type RegenerateInviteCodeRequest struct {
	UserID string `json:"user_id"`
}

type PoolDTO struct {
	PoolID     string `json:"pool_id"`
	Name       string `json:"name"`
	InviteCode string `json:"invite_code"`
	CreatedBy  string `json:"created_by"`
	CreatedAt  string `json:"created_at"`
}

type PoolResponse struct {
	Status string  `json:"status"`
	Data   PoolDTO `json:"data"`
}

type MemberDTO struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name,omitempty"`
	Role        string `json:"role"`
	JoinedAt    string `json:"joined_at"`
}

type MemberListResponse struct {
	Status string      `json:"status"`
	Data   []MemberDTO `json:"data"`
}

type AckResponse struct {
	Status string `json:"status"`
}
