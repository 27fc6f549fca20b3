package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-reservation-backend/internal/domain"
	"hotel-reservation-backend/internal/hotel"
	"hotel-reservation-backend/internal/model"
)

// Store defines the interface for all database operations.
type Store interface {
	RecordEvent(ctx context.Context, e hotel.Event) error
	RoomHistory(ctx context.Context, hotelName string, roomNumber int, limit int) ([]model.RoomEvent, error)
	PutSubscription(ctx context.Context, sub model.PushSubscription) error
	DeleteSubscription(ctx context.Context, endpoint string) error
	Subscription(ctx context.Context, endpoint string) (model.PushSubscription, error)
	SubscriptionsForPayer(ctx context.Context, payerID string) ([]model.PushSubscription, error)
	DB() *gorm.DB
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) DB() *gorm.DB {
	return s.db
}

// RecordEvent appends an event to the ledger. Replaying the same event ID is
// a no-op.
func (s *gormStore) RecordEvent(ctx context.Context, e hotel.Event) error {
	row := NewRoomEvent(e)
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error; err != nil {
		return fmt.Errorf("failed to record %s event for room %d: %w", e.Kind, e.RoomNumber, err)
	}
	return nil
}

// RoomHistory returns the newest events for one room first. A non-positive
// limit means no limit.
func (s *gormStore) RoomHistory(ctx context.Context, hotelName string, roomNumber int, limit int) ([]model.RoomEvent, error) {
	q := s.db.WithContext(ctx).
		Where("hotel = ? AND room_number = ?", hotelName, roomNumber).
		Order("occurred_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var events []model.RoomEvent
	if err := q.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to load history for room %d in %s: %w", roomNumber, hotelName, err)
	}
	return events, nil
}

// PutSubscription creates or replaces a subscription keyed by endpoint.
func (s *gormStore) PutSubscription(ctx context.Context, sub model.PushSubscription) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "endpoint"}},
		DoUpdates: clause.AssignmentColumns([]string{"p256dh", "auth", "payer_id"}),
	}).Create(&sub).Error; err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}

func (s *gormStore) DeleteSubscription(ctx context.Context, endpoint string) error {
	if err := s.db.WithContext(ctx).Delete(&model.PushSubscription{Endpoint: endpoint}).Error; err != nil {
		return fmt.Errorf("failed to delete subscription %s: %w", endpoint, err)
	}
	return nil
}

func (s *gormStore) Subscription(ctx context.Context, endpoint string) (model.PushSubscription, error) {
	var sub model.PushSubscription
	err := s.db.WithContext(ctx).First(&sub, "endpoint = ?", endpoint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PushSubscription{}, fmt.Errorf("%w: subscription %s", domain.ErrNotFound, endpoint)
	}
	if err != nil {
		return model.PushSubscription{}, fmt.Errorf("failed to load subscription %s: %w", endpoint, err)
	}
	return sub, nil
}

func (s *gormStore) SubscriptionsForPayer(ctx context.Context, payerID string) ([]model.PushSubscription, error) {
	var subs []model.PushSubscription
	if err := s.db.WithContext(ctx).Where("payer_id = ?", payerID).Find(&subs).Error; err != nil {
		return nil, fmt.Errorf("failed to load subscriptions for payer %s: %w", payerID, err)
	}
	return subs, nil
}
