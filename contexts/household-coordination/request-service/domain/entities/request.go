package entities

import "time"

type RequestStatus string

const (
	RequestStatusOpen      RequestStatus = "open"
	RequestStatusClaimed   RequestStatus = "claimed"
	RequestStatusCompleted RequestStatus = "completed"
)

// Request is a household task posted into a pool. It moves through
// open -> claimed -> completed and never backwards.
type Request struct {
	RequestID     string
	PoolID        string
	RequestType   string
	Description   string
	Status        RequestStatus
	PostedBy      string
	PostedByName  string
	ClaimedBy     string
	ClaimedByName string
	ScheduledFor  *time.Time
	CreatedAt     time.Time
	CompletedAt   *time.Time
}

type NotificationType string

const (
	NotificationNewRequest       NotificationType = "new_request"
	NotificationRequestClaimed   NotificationType = "request_claimed"
	NotificationRequestCompleted NotificationType = "request_completed"
)

// Notification is the in-app activity record written alongside each
// lifecycle transition. Delivery to devices is out of scope.
type Notification struct {
	NotificationID string
	PoolID         string
	Type           NotificationType
	RequestID      string
	Message        string
	Read           bool
	CreatedAt      time.Time
}
