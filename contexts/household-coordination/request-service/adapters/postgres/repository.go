package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"chorepool/contexts/household-coordination/request-service/domain/entities"
	domainerrors "chorepool/contexts/household-coordination/request-service/domain/errors"
	"chorepool/contexts/household-coordination/request-service/ports"
	"chorepool/internal/shared/events"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending = "pending"
	outboxStatusSent    = "sent"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) AutoMigrate() error {
	return r.db.AutoMigrate(&requestModel{}, &notificationModel{}, &outboxModel{})
}

func (r *Repository) GetRequest(ctx context.Context, requestID string) (entities.Request, error) {
	var row requestModel
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Request{}, domainerrors.ErrRequestNotFound
		}
		r.logError("get request failed", "postgres_get_request_failed", err)
		return entities.Request{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) SaveRequestWithOutbox(ctx context.Context, request entities.Request, event ports.LifecycleEvent) error {
	envelope, err := buildLifecycleEnvelope(event)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := requestModelFromEntity(request)
		if err := tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "request_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"status":          row.Status,
				"claimed_by":      row.ClaimedBy,
				"claimed_by_name": row.ClaimedByName,
				"completed_at":    row.CompletedAt,
			}),
		}).Create(&row).Error; err != nil {
			return err
		}

		outboxRow := outboxModel{
			OutboxID:     event.EventID,
			EventType:    event.EventType,
			PartitionKey: event.PoolID,
			Payload:      payload,
			Status:       outboxStatusPending,
			CreatedAt:    event.OccurredAt.UTC(),
		}
		if err := tx.Create(&outboxRow).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrInvalidInput
			}
			return err
		}
		return nil
	})
	if err != nil {
		r.logError("save request with outbox failed", "postgres_save_request_failed", err)
	}
	return err
}

func (r *Repository) ListRequestsByPool(ctx context.Context, poolID string, status entities.RequestStatus) ([]entities.Request, error) {
	tx := r.db.WithContext(ctx).Where("pool_id = ?", poolID)
	if status != "" {
		tx = tx.Where("status = ?", string(status))
	}

	var rows []requestModel
	if err := tx.Order("created_at ASC").Find(&rows).Error; err != nil {
		r.logError("list requests failed", "postgres_list_requests_failed", err)
		return nil, err
	}
	items := make([]entities.Request, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) AppendNotification(ctx context.Context, notification entities.Notification) error {
	row := notificationModelFromEntity(notification)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrInvalidInput
		}
		r.logError("append notification failed", "postgres_append_notification_failed", err)
		return err
	}
	return nil
}

func (r *Repository) ListNotificationsByPool(ctx context.Context, poolID string) ([]entities.Notification, error) {
	var rows []notificationModel
	if err := r.db.WithContext(ctx).
		Where("pool_id = ?", poolID).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		r.logError("list notifications failed", "postgres_list_notifications_failed", err)
		return nil, err
	}
	items := make([]entities.Notification, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) MarkNotificationRead(ctx context.Context, notificationID string) error {
	result := r.db.WithContext(ctx).
		Model(&notificationModel{}).
		Where("notification_id = ?", notificationID).
		Update("read", true)
	if result.Error != nil {
		r.logError("mark notification read failed", "postgres_mark_notification_read_failed", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotificationNotFound
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}

	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		r.logError("list pending outbox failed", "postgres_list_outbox_failed", err)
		return nil, err
	}

	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toPort())
	}
	return items, nil
}

func (r *Repository) MarkOutboxSent(ctx context.Context, outboxID string, sentAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", outboxID).
		Updates(map[string]any{
			"status":  outboxStatusSent,
			"sent_at": sentAt.UTC(),
		})
	if result.Error != nil {
		r.logError("mark outbox sent failed", "postgres_mark_outbox_sent_failed", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrInvalidInput
	}
	return nil
}

func (r *Repository) logError(message string, event string, err error) {
	r.logger.Error(message,
		"event", event,
		"module", "household-coordination/request-service",
		"layer", "adapter",
		"error", err.Error(),
	)
}

type requestModel struct {
	RequestID     string     `gorm:"column:request_id;primaryKey"`
	PoolID        string     `gorm:"column:pool_id;index"`
	RequestType   string     `gorm:"column:request_type"`
	Description   string     `gorm:"column:description"`
	Status        string     `gorm:"column:status"`
	PostedBy      string     `gorm:"column:posted_by"`
	PostedByName  string     `gorm:"column:posted_by_name"`
	ClaimedBy     string     `gorm:"column:claimed_by"`
	ClaimedByName string     `gorm:"column:claimed_by_name"`
	ScheduledFor  *time.Time `gorm:"column:scheduled_for"`
	CreatedAt     time.Time  `gorm:"column:created_at"`
	CompletedAt   *time.Time `gorm:"column:completed_at"`
}

func (requestModel) TableName() string {
	return "pool_requests"
}

func requestModelFromEntity(request entities.Request) requestModel {
	return requestModel{
		RequestID:     request.RequestID,
		PoolID:        request.PoolID,
		RequestType:   request.RequestType,
		Description:   request.Description,
		Status:        string(request.Status),
		PostedBy:      request.PostedBy,
		PostedByName:  request.PostedByName,
		ClaimedBy:     request.ClaimedBy,
		ClaimedByName: request.ClaimedByName,
		ScheduledFor:  request.ScheduledFor,
		CreatedAt:     request.CreatedAt.UTC(),
		CompletedAt:   request.CompletedAt,
	}
}

func (m requestModel) toEntity() entities.Request {
	return entities.Request{
		RequestID:     m.RequestID,
		PoolID:        m.PoolID,
		RequestType:   m.RequestType,
		Description:   m.Description,
		Status:        entities.RequestStatus(m.Status),
		PostedBy:      m.PostedBy,
		PostedByName:  m.PostedByName,
		ClaimedBy:     m.ClaimedBy,
		ClaimedByName: m.ClaimedByName,
		ScheduledFor:  m.ScheduledFor,
		CreatedAt:     m.CreatedAt.UTC(),
		CompletedAt:   m.CompletedAt,
	}
}

type notificationModel struct {
	NotificationID string    `gorm:"column:notification_id;primaryKey"`
	PoolID         string    `gorm:"column:pool_id;index"`
	Type           string    `gorm:"column:type"`
	RequestID      string    `gorm:"column:request_id"`
	Message        string    `gorm:"column:message"`
	Read           bool      `gorm:"column:read"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (notificationModel) TableName() string {
	return "pool_notifications"
}

func notificationModelFromEntity(notification entities.Notification) notificationModel {
	return notificationModel{
		NotificationID: notification.NotificationID,
		PoolID:         notification.PoolID,
		Type:           string(notification.Type),
		RequestID:      notification.RequestID,
		Message:        notification.Message,
		Read:           notification.Read,
		CreatedAt:      notification.CreatedAt.UTC(),
	}
}

func (m notificationModel) toEntity() entities.Notification {
	return entities.Notification{
		NotificationID: m.NotificationID,
		PoolID:         m.PoolID,
		Type:           entities.NotificationType(m.Type),
		RequestID:      m.RequestID,
		Message:        m.Message,
		Read:           m.Read,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	SentAt       *time.Time `gorm:"column:sent_at"`
}

func (outboxModel) TableName() string {
	return "request_outbox"
}

func (m outboxModel) toPort() ports.OutboxMessage {
	return ports.OutboxMessage{
		OutboxID:     m.OutboxID,
		EventType:    m.EventType,
		PartitionKey: m.PartitionKey,
		Payload:      append([]byte(nil), m.Payload...),
		CreatedAt:    m.CreatedAt.UTC(),
	}
}

func buildLifecycleEnvelope(event ports.LifecycleEvent) (ports.EventEnvelope, error) {
	data, err := json.Marshal(events.RequestLifecyclePayload{
		RequestID:   event.RequestID,
		PoolID:      event.PoolID,
		RequestType: event.RequestType,
		ActorID:     event.ActorID,
		Status:      event.Status,
	})
	if err != nil {
		return ports.EventEnvelope{}, err
	}
	return ports.EventEnvelope{
		EventID:          event.EventID,
		EventType:        event.EventType,
		OccurredAt:       event.OccurredAt.UTC(),
		SourceService:    "request-service",
		SchemaVersion:    1,
		PartitionKeyPath: "pool_id",
		PartitionKey:     event.PoolID,
		Data:             data,
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
