package repository

import (
	"database/sql"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
)

type MessageRepository interface {
	Create(message *entity.Message) error
	GetConversations(userID uuid.UUID) ([]entity.Conversation, error)
	GetThread(userID, otherUserID uuid.UUID) ([]entity.MessageWithSender, error)
	MarkThreadRead(senderID, receiverID uuid.UUID) error
}

type messageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *entity.Message) error {
	query := `
		INSERT INTO messages (id, sender_id, receiver_id, content, is_read, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		message.ID, message.SenderID, message.ReceiverID,
		message.Content, message.IsRead, message.CreatedAt,
	)
	return err
}

// GetConversations groups the user's messages by peer: latest message
// first, with the count of that peer's messages still unread.
// last_message_time must be selected as a bare column: wrapping it in
// MAX() drops the TIMESTAMP decltype and the driver hands back a string
// that cannot be scanned into time.Time. The inner query picks the id of
// each peer's newest message instead.
func (r *messageRepository) GetConversations(userID uuid.UUID) ([]entity.Conversation, error) {
	query := `
		SELECT
			CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END AS other_user_id,
			u.username AS other_username,
			m.content AS last_message,
			m.created_at AS last_message_time,
			(SELECT COUNT(*) FROM messages x
			  WHERE x.is_read = 0 AND x.receiver_id = ? AND x.sender_id = u.id) AS unread_count
		FROM messages m
		JOIN users u ON u.id = CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END
		WHERE m.id IN (
			SELECT id FROM (
				SELECT m2.id AS id, MAX(m2.created_at)
				FROM messages m2
				WHERE m2.sender_id = ? OR m2.receiver_id = ?
				GROUP BY CASE WHEN m2.sender_id = ? THEN m2.receiver_id ELSE m2.sender_id END
			)
		)
		ORDER BY m.created_at DESC
	`
	rows, err := r.db.Query(query, userID, userID, userID, userID, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var conversations []entity.Conversation
	for rows.Next() {
		var c entity.Conversation
		if err := rows.Scan(
			&c.OtherUserID, &c.OtherUsername, &c.LastMessage, &c.LastMessageTime, &c.UnreadCount,
		); err != nil {
			return nil, err
		}
		conversations = append(conversations, c)
	}
	return conversations, rows.Err()
}

func (r *messageRepository) GetThread(userID, otherUserID uuid.UUID) ([]entity.MessageWithSender, error) {
	query := `
		SELECT m.id, m.sender_id, m.receiver_id, m.content, m.is_read, m.created_at, u.username AS sender_username
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE (m.sender_id = ? AND m.receiver_id = ?) OR (m.sender_id = ? AND m.receiver_id = ?)
		ORDER BY m.created_at ASC
	`
	rows, err := r.db.Query(query, userID, otherUserID, otherUserID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []entity.MessageWithSender
	for rows.Next() {
		var m entity.MessageWithSender
		if err := rows.Scan(
			&m.ID, &m.SenderID, &m.ReceiverID, &m.Content, &m.IsRead, &m.CreatedAt, &m.SenderUsername,
		); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *messageRepository) MarkThreadRead(senderID, receiverID uuid.UUID) error {
	query := `UPDATE messages SET is_read = 1 WHERE sender_id = ? AND receiver_id = ? AND is_read = 0`
	_, err := r.db.Exec(query, senderID, receiverID)
	return err
}
