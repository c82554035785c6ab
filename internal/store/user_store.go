package store

import (
	"sync"

	"github.com/mapmyojt/mapmyojt/internal/model"
)

// UserStore — реестр известных профилей (демо-данные).
// Нужен чтобы собеседники в чате и очередь верификации разрешались по ID.
// Ссылочной целостности нет: переименованный владелец ни на что не каскадирует.
type UserStore struct {
	mu    sync.RWMutex
	users []*model.UserProfile
	byID  map[string]*model.UserProfile
}

func NewUserStore(items []*model.UserProfile) *UserStore {
	s := &UserStore{}
	s.Reset(items)
	return s
}

// Reset возвращает реестр к переданному состоянию
func (s *UserStore) Reset(items []*model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = make([]*model.UserProfile, 0, len(items))
	s.byID = make(map[string]*model.UserProfile, len(items))
	for _, u := range items {
		cp := u.Clone()
		s.users = append(s.users, cp)
		s.byID[cp.ID] = cp
	}
}

// Get возвращает профиль по ID, (nil, nil) если его нет
func (s *UserStore) Get(id string) *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if u, ok := s.byID[id]; ok {
		return u.Clone()
	}
	return nil
}

// Add добавляет профиль в реестр (регистрация новой сессии)
func (s *UserStore) Add(u *model.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := u.Clone()
	s.users = append(s.users, cp)
	s.byID[cp.ID] = cp
}

// UnverifiedBusinesses возвращает бизнесы, ожидающие верификации
func (s *UserStore) UnverifiedBusinesses() []*model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.UserProfile
	for _, u := range s.users {
		if u.Role == model.RoleBusiness && !u.IsVerified {
			out = append(out, u.Clone())
		}
	}
	return out
}

// SetVerified отмечает бизнес верифицированным.
// Профиль не найден — ErrNotFound; уже верифицирован — ErrInvalidTransition.
func (s *UserStore) SetVerified(id string) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, model.ErrNotFound
	}

	if u.IsVerified {
		return nil, model.ErrInvalidTransition
	}

	u.IsVerified = true
	return u.Clone(), nil
}
