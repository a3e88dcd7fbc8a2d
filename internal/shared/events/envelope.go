package events

// RequestLifecyclePayload is the Data body carried inside the canonical
// envelope for request.posted, request.claimed and request.completed events.
// Both persistence adapters marshal this shape so downstream consumers see
// one contract regardless of store.
type RequestLifecyclePayload struct {
	RequestID   string `json:"request_id"`
	PoolID      string `json:"pool_id"`
	RequestType string `json:"request_type"`
	ActorID     string `json:"actor_id"`
	Status      string `json:"status"`
}
