package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"chorepool/contexts/household-coordination/pool-service/application"
	"chorepool/contexts/household-coordination/pool-service/domain/entities"
	httptransport "chorepool/contexts/household-coordination/pool-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreatePoolHandler(ctx context.Context, req httptransport.CreatePoolRequest) (httptransport.PoolResponse, error) {
	pool, err := h.Service.CreatePool(ctx, req.Name, req.CreatedBy, req.CreatorName)
	if err != nil {
		return httptransport.PoolResponse{}, err
	}
	return poolResponse(pool), nil
}

func (h Handler) JoinPoolHandler(ctx context.Context, req httptransport.JoinPoolRequest) (httptransport.PoolResponse, error) {
	pool, err := h.Service.JoinPool(ctx, req.InviteCode, req.UserID, req.DisplayName)
	if err != nil {
		return httptransport.PoolResponse{}, err
	}
	return poolResponse(pool), nil
}

func (h Handler) LeavePoolHandler(ctx context.Context, poolID string, req httptransport.LeavePoolRequest) (httptransport.AckResponse, error) {
	if err := h.Service.LeavePool(ctx, poolID, req.UserID); err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

func (h Handler) RegenerateInviteCodeHandler(ctx context.Context, poolID string, req httptransport.RegenerateInviteCodeRequest) (httptransport.PoolResponse, error) {
	pool, err := h.Service.RegenerateInviteCode(ctx, poolID, req.UserID)
	if err != nil {
		return httptransport.PoolResponse{}, err
	}
	return poolResponse(pool), nil
}

func (h Handler) GetPoolHandler(ctx context.Context, poolID string) (httptransport.PoolResponse, error) {
	pool, err := h.Service.GetPool(ctx, poolID)
	if err != nil {
		return httptransport.PoolResponse{}, err
	}
	return poolResponse(pool), nil
}

func (h Handler) ListMembersHandler(ctx context.Context, poolID string) (httptransport.MemberListResponse, error) {
	members, err := h.Service.ListMembers(ctx, poolID)
	if err != nil {
		return httptransport.MemberListResponse{}, err
	}
	resp := httptransport.MemberListResponse{
		Status: "success",
		Data:   make([]httptransport.MemberDTO, 0, len(members)),
	}
	for _, member := range members {
		resp.Data = append(resp.Data, httptransport.MemberDTO{
			UserID:      member.UserID,
			DisplayName: member.DisplayName,
			Role:        string(member.Role),
			JoinedAt:    member.JoinedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

func poolResponse(pool entities.Pool) httptransport.PoolResponse {
	return httptransport.PoolResponse{
		Status: "success",
		Data: httptransport.PoolDTO{
			PoolID:     pool.PoolID,
			Name:       pool.Name,
			InviteCode: pool.InviteCode,
			CreatedBy:  pool.CreatedBy,
			CreatedAt:  pool.CreatedAt.UTC().Format(time.RFC3339),
		},
	}
}
