package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"chorepool/contexts/household-coordination/request-service/application"
	"chorepool/contexts/household-coordination/request-service/domain/entities"
	domainerrors "chorepool/contexts/household-coordination/request-service/domain/errors"
	httptransport "chorepool/contexts/household-coordination/request-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) PostRequestHandler(ctx context.Context, req httptransport.PostRequestRequest) (httptransport.RequestResponse, error) {
	var scheduledFor *time.Time
	if req.ScheduledFor != "" {
		parsed, err := time.Parse(time.RFC3339, req.ScheduledFor)
		if err != nil {
			return httptransport.RequestResponse{}, domainerrors.ErrInvalidInput
		}
		scheduledFor = &parsed
	}

	request, err := h.Service.PostRequest(ctx, application.PostRequestInput{
		PoolID:       req.PoolID,
		RequestType:  req.RequestType,
		Description:  req.Description,
		PostedBy:     req.PostedBy,
		PostedByName: req.PostedByName,
		ScheduledFor: scheduledFor,
	})
	if err != nil {
		return httptransport.RequestResponse{}, err
	}
	return requestResponse(request), nil
}

func (h Handler) ClaimRequestHandler(ctx context.Context, requestID string, req httptransport.ClaimRequestRequest) (httptransport.RequestResponse, error) {
	request, err := h.Service.ClaimRequest(ctx, requestID, req.UserID, req.UserName)
	if err != nil {
		return httptransport.RequestResponse{}, err
	}
	return requestResponse(request), nil
}

func (h Handler) CompleteRequestHandler(ctx context.Context, requestID string, req httptransport.CompleteRequestRequest) (httptransport.RequestResponse, error) {
	request, err := h.Service.CompleteRequest(ctx, requestID, req.UserID)
	if err != nil {
		return httptransport.RequestResponse{}, err
	}
	return requestResponse(request), nil
}

func (h Handler) GetRequestHandler(ctx context.Context, requestID string) (httptransport.RequestResponse, error) {
	request, err := h.Service.GetRequest(ctx, requestID)
	if err != nil {
		return httptransport.RequestResponse{}, err
	}
	return requestResponse(request), nil
}

func (h Handler) ListPoolRequestsHandler(ctx context.Context, poolID string, status string) (httptransport.RequestListResponse, error) {
	requests, err := h.Service.ListPoolRequests(ctx, poolID, status)
	if err != nil {
		return httptransport.RequestListResponse{}, err
	}
	resp := httptransport.RequestListResponse{
		Status: "success",
		Data:   make([]httptransport.RequestDTO, 0, len(requests)),
	}
	for _, request := range requests {
		resp.Data = append(resp.Data, requestDTO(request))
	}
	return resp, nil
}

func (h Handler) ListNotificationsHandler(ctx context.Context, poolID string) (httptransport.NotificationListResponse, error) {
	notifications, err := h.Service.ListNotifications(ctx, poolID)
	if err != nil {
		return httptransport.NotificationListResponse{}, err
	}
	resp := httptransport.NotificationListResponse{
		Status: "success",
		Data:   make([]httptransport.NotificationDTO, 0, len(notifications)),
	}
	for _, notification := range notifications {
		resp.Data = append(resp.Data, httptransport.NotificationDTO{
			NotificationID: notification.NotificationID,
			PoolID:         notification.PoolID,
			Type:           string(notification.Type),
			RequestID:      notification.RequestID,
			Message:        notification.Message,
			Read:           notification.Read,
			CreatedAt:      notification.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return resp, nil
}

func (h Handler) MarkNotificationReadHandler(ctx context.Context, notificationID string) (httptransport.AckResponse, error) {
	if err := h.Service.MarkNotificationRead(ctx, notificationID); err != nil {
		return httptransport.AckResponse{}, err
	}
	return httptransport.AckResponse{Status: "success"}, nil
}

func requestResponse(request entities.Request) httptransport.RequestResponse {
	return httptransport.RequestResponse{
		Status: "success",
		Data:   requestDTO(request),
	}
}

func requestDTO(request entities.Request) httptransport.RequestDTO {
	dto := httptransport.RequestDTO{
		RequestID:     request.RequestID,
		PoolID:        request.PoolID,
		RequestType:   request.RequestType,
		Description:   request.Description,
		Status:        string(request.Status),
		PostedBy:      request.PostedBy,
		PostedByName:  request.PostedByName,
		ClaimedBy:     request.ClaimedBy,
		ClaimedByName: request.ClaimedByName,
		CreatedAt:     request.CreatedAt.UTC().Format(time.RFC3339),
	}
	if request.ScheduledFor != nil {
		dto.ScheduledFor = request.ScheduledFor.UTC().Format(time.RFC3339)
	}
	if request.CompletedAt != nil {
		dto.CompletedAt = request.CompletedAt.UTC().Format(time.RFC3339)
	}
	return dto
}
