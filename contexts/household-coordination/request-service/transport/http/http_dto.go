package http

// ErrorResponse is the uniform error body for request-service endpoints.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type PostRequestRequest struct {
	PoolID       string `json:"pool_id"`
	RequestType  string `json:"request_type"`
	Description  string `json:"description,omitempty"`
	PostedBy     string `json:"posted_by"`
	PostedByName string `json:"posted_by_name,omitempty"`
	ScheduledFor string `json:"scheduled_for,omitempty"` // RFC3339
}

type ClaimRequestRequest struct {
	UserID   string `json:"user_id"`
	UserName string `json:"user_name,omitempty"`
}

type CompleteRequestRequest struct {
	UserID string `json:"user_id"`
}

type RequestDTO struct {
	RequestID     string `json:"request_id"`
	PoolID        string `json:"pool_id"`
	RequestType   string `json:"request_type"`
	Description   string `json:"description,omitempty"`
	Status        string `json:"status"`
	PostedBy      string `json:"posted_by"`
	PostedByName  string `json:"posted_by_name,omitempty"`
	ClaimedBy     string `json:"claimed_by,omitempty"`
	ClaimedByName string `json:"claimed_by_name,omitempty"`
	ScheduledFor  string `json:"scheduled_for,omitempty"`
	CreatedAt     string `json:"created_at"`
	CompletedAt   string `json:"completed_at,omitempty"`
}

type RequestResponse struct {
	Status string     `json:"status"`
	Data   RequestDTO `json:"data"`
}

type RequestListResponse struct {
	Status string       `json:"status"`
	Data   []RequestDTO `json:"data"`
}

type NotificationDTO struct {
	NotificationID string `json:"notification_id"`
	PoolID         string `json:"pool_id"`
	Type           string `json:"type"`
	RequestID      string `json:"request_id"`
	Message        string `json:"message"`
	Read           bool   `json:"read"`
	CreatedAt      string `json:"created_at"`
}

type NotificationListResponse struct {
	Status string            `json:"status"`
	Data   []NotificationDTO `json:"data"`
}

type AckResponse struct {
	Status string `json:"status"`
}
