package store

import (
	"sync"

	"github.com/mapmyojt/mapmyojt/internal/model"
)

// LogStore хранит дневные отчёты студентов в памяти
type LogStore struct {
	mu   sync.RWMutex
	logs []*model.DailyLog
	byID map[string]*model.DailyLog
}

func NewLogStore(items []*model.DailyLog) *LogStore {
	s := &LogStore{}
	s.Reset(items)
	return s
}

// Reset возвращает стор к переданному состоянию
func (s *LogStore) Reset(items []*model.DailyLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logs = make([]*model.DailyLog, 0, len(items))
	s.byID = make(map[string]*model.DailyLog, len(items))
	for _, l := range items {
		cp := *l
		s.logs = append(s.logs, &cp)
		s.byID[cp.ID] = &cp
	}
}

// All возвращает все отчёты в порядке вставки
func (s *LogStore) All() []*model.DailyLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.DailyLog, 0, len(s.logs))
	for _, l := range s.logs {
		cp := *l
		out = append(out, &cp)
	}
	return out
}

// ByStudent возвращает все отчёты студента вне зависимости от статуса
func (s *LogStore) ByStudent(studentID string) []*model.DailyLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.DailyLog
	for _, l := range s.logs {
		if l.StudentID == studentID {
			cp := *l
			out = append(out, &cp)
		}
	}
	return out
}

// Get возвращает отчёт по ID, (nil, nil) если его нет
func (s *LogStore) Get(id string) *model.DailyLog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if l, ok := s.byID[id]; ok {
		cp := *l
		return &cp
	}
	return nil
}

// Add добавляет отчёт
func (s *LogStore) Add(l *model.DailyLog) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := *l
	s.logs = append(s.logs, &cp)
	s.byID[cp.ID] = &cp
}

// SetStatus переводит отчёт из PENDING в терминальный статус.
// Отчёт не найден — ErrNotFound; статус уже не PENDING — ErrInvalidTransition.
func (s *LogStore) SetStatus(id string, status model.LogStatus) (*model.DailyLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.byID[id]
	if !ok {
		return nil, model.ErrNotFound
	}

	if l.Status != model.LogStatusPending {
		return nil, model.ErrInvalidTransition
	}

	l.Status = status
	cp := *l
	return &cp, nil
}
