package store

import (
	"sync"
	"time"

	"github.com/mapmyojt/mapmyojt/internal/model"
)

// MessageStore хранит переписку в памяти. Сообщения неизменяемы,
// только добавление в конец. Таймстемпы строго возрастают.
type MessageStore struct {
	mu       sync.RWMutex
	messages []*model.Message
	lastTS   int64
}

func NewMessageStore(items []*model.Message) *MessageStore {
	s := &MessageStore{}
	s.Reset(items)
	return s
}

// Reset возвращает стор к переданному состоянию
func (s *MessageStore) Reset(items []*model.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = make([]*model.Message, 0, len(items))
	s.lastTS = 0
	for _, m := range items {
		cp := *m
		if cp.Timestamp <= s.lastTS {
			cp.Timestamp = s.lastTS + 1
		}
		s.lastTS = cp.Timestamp
		s.messages = append(s.messages, &cp)
	}
}

// Append добавляет сообщение, проставляя монотонный таймстемп
func (s *MessageStore) Append(m *model.Message) *model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *m
	cp.Timestamp = time.Now().UnixMilli()
	if cp.Timestamp <= s.lastTS {
		cp.Timestamp = s.lastTS + 1
	}
	s.lastTS = cp.Timestamp

	s.messages = append(s.messages, &cp)
	out := cp
	return &out
}

// Thread возвращает переписку между парой пользователей, старые сообщения первыми.
// Пара неупорядоченная: Thread(a, b) == Thread(b, a).
func (s *MessageStore) Thread(userA, userB string) []*model.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Message
	for _, m := range s.messages {
		if (m.SenderID == userA && m.ReceiverID == userB) ||
			(m.SenderID == userB && m.ReceiverID == userA) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out
}
