package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mapmyojt/mapmyojt/internal/model"
	"github.com/mapmyojt/mapmyojt/internal/store"
)

// MessageService — личная переписка. Только добавление в конец треда:
// ни редактирования, ни удаления, ни статусов доставки.
type MessageService struct {
	messages *store.MessageStore
	logger   *zap.Logger
}

func NewMessageService(messages *store.MessageStore, logger *zap.Logger) *MessageService {
	return &MessageService{
		messages: messages,
		logger:   logger,
	}
}

// Send добавляет сообщение в тред пары {отправитель, получатель}.
// Текст из одних пробелов — тихий no-op, не ошибка: возвращается (nil, nil).
func (s *MessageService) Send(senderID, receiverID, text string) (*model.Message, error) {
	if senderID == "" || receiverID == "" {
		return nil, fmt.Errorf("sender and receiver are required")
	}

	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	msg := s.messages.Append(&model.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
	})

	s.logger.Info("Message sent",
		zap.String("message_id", msg.ID),
		zap.String("sender_id", senderID),
		zap.String("receiver_id", receiverID),
	)

	return msg, nil
}

// ThreadFor возвращает переписку пары, старые сообщения первыми.
// Порядок аргументов не важен.
func (s *MessageService) ThreadFor(userA, userB string) []*model.Message {
	return s.messages.Thread(userA, userB)
}
