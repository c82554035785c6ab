package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mapmyojt/mapmyojt/internal/model"
)

// SessionStore — локальное хранилище сессии: одна запись под фиксированным
// ключом (JSON-файл с сериализованным профилем). Отсутствие файла означает
// разлогиненное состояние.
type SessionStore struct {
	path string
}

func NewSessionStore(path string) *SessionStore {
	return &SessionStore{path: path}
}

// Save сохраняет профиль. Пишем во временный файл и переименовываем,
// чтобы при падении не осталось полузаписанной сессии.
func (s *SessionStore) Save(profile *model.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename session file: %w", err)
	}

	return nil
}

// Load читает сохранённый профиль. (nil, nil) если записи нет.
// Файл есть, но не разбирается — ErrSessionCorrupted.
func (s *SessionStore) Load() (*model.UserProfile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}

	var profile model.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrSessionCorrupted, err)
	}
	if !profile.Role.IsValid() || profile.ID == "" {
		return nil, model.ErrSessionCorrupted
	}

	return &profile, nil
}

// Clear удаляет запись. Отсутствующий файл — не ошибка.
func (s *SessionStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
