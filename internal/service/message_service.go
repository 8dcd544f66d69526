package service

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	entity "local-market/internal/domain"
	repo "local-market/internal/repository/sqlite"
)

type MessageService struct {
	messageRepo repo.MessageRepository
}

func NewMessageService(messageRepo repo.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

func (s *MessageService) GetConversations(userID uuid.UUID) ([]entity.Conversation, error) {
	return s.messageRepo.GetConversations(userID)
}

// GetThread returns the full conversation and, as a side effect of the
// read, marks the other party's messages read.
func (s *MessageService) GetThread(userID, otherUserID uuid.UUID) ([]entity.MessageWithSender, error) {
	messages, err := s.messageRepo.GetThread(userID, otherUserID)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.MarkThreadRead(otherUserID, userID); err != nil {
		slog.Warn("failed to mark messages read", "user_id", userID, "err", err)
	}
	return messages, nil
}

func (s *MessageService) SendMessage(senderID uuid.UUID, input entity.SendMessageInput) (*entity.Message, error) {
	message := &entity.Message{
		ID:         uuid.New(),
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
		CreatedAt:  time.Now(),
	}
	if err := s.messageRepo.Create(message); err != nil {
		return nil, err
	}
	return message, nil
}
