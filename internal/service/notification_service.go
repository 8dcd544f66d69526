package service

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
	repo "local-market/internal/repository/sqlite"
)

var ErrNotificationNotFound = errors.New("notification not found")

type NotificationService struct {
	notificationRepo repo.NotificationRepository
}

func NewNotificationService(notificationRepo repo.NotificationRepository) *NotificationService {
	return &NotificationService{notificationRepo: notificationRepo}
}

// List returns the user's notifications and, as a side effect of the
// read, marks them all read. The unread count only drops once this runs.
func (s *NotificationService) List(userID uuid.UUID) ([]entity.Notification, error) {
	notifications, err := s.notificationRepo.GetByUser(userID)
	if err != nil {
		return nil, err
	}

	if err := s.notificationRepo.MarkAllRead(userID); err != nil {
		slog.Warn("failed to mark notifications read on list", "user_id", userID, "err", err)
	}
	return notifications, nil
}

func (s *NotificationService) UnreadCount(userID uuid.UUID) (int, error) {
	return s.notificationRepo.CountUnread(userID)
}

func (s *NotificationService) MarkAllRead(userID uuid.UUID) error {
	return s.notificationRepo.MarkAllRead(userID)
}

func (s *NotificationService) MarkRead(userID, notificationID uuid.UUID) error {
	ok, err := s.notificationRepo.MarkRead(notificationID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotificationNotFound
	}
	return nil
}
