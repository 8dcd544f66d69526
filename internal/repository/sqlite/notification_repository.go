package repository

import (
	"database/sql"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
)

type NotificationRepository interface {
	Create(n *entity.Notification) error
	GetByUser(userID uuid.UUID) ([]entity.Notification, error)
	CountUnread(userID uuid.UUID) (int, error)
	MarkAllRead(userID uuid.UUID) error
	MarkRead(id, userID uuid.UUID) (bool, error)
}

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, type, message, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, n.ID, n.UserID, n.Type, n.Message, n.IsRead, n.CreatedAt)
	return err
}

func (r *notificationRepository) GetByUser(userID uuid.UUID) ([]entity.Notification, error) {
	query := `
		SELECT id, user_id, type, message, is_read, created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Message, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepository) CountUnread(userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = ? AND is_read = 0`
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// MarkAllRead is idempotent: already-read rows are simply unaffected.
func (r *notificationRepository) MarkAllRead(userID uuid.UUID) error {
	_, err := r.db.Exec(`UPDATE notifications SET is_read = 1 WHERE user_id = ?`, userID)
	return err
}

func (r *notificationRepository) MarkRead(id, userID uuid.UUID) (bool, error) {
	res, err := r.db.Exec(`UPDATE notifications SET is_read = 1 WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
