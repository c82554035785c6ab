package store

import (
	"sync"

	"github.com/mapmyojt/mapmyojt/internal/model"
)

// PostingStore хранит каталог вакансий в памяти.
// Порядок выдачи — порядок вставки, пагинации нет.
type PostingStore struct {
	mu       sync.RWMutex
	postings []*model.OJTPosting
	byID     map[string]*model.OJTPosting
}

func NewPostingStore(items []*model.OJTPosting) *PostingStore {
	s := &PostingStore{}
	s.Reset(items)
	return s
}

// Reset возвращает стор к переданному состоянию (seed после logout)
func (s *PostingStore) Reset(items []*model.OJTPosting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.postings = make([]*model.OJTPosting, 0, len(items))
	s.byID = make(map[string]*model.OJTPosting, len(items))
	for _, p := range items {
		cp := clonePosting(p)
		s.postings = append(s.postings, cp)
		s.byID[cp.ID] = cp
	}
}

// All возвращает все вакансии в порядке вставки
func (s *PostingStore) All() []*model.OJTPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.OJTPosting, 0, len(s.postings))
	for _, p := range s.postings {
		out = append(out, clonePosting(p))
	}
	return out
}

// Get возвращает вакансию по ID, (nil, nil) если её нет
func (s *PostingStore) Get(id string) *model.OJTPosting {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p, ok := s.byID[id]; ok {
		return clonePosting(p)
	}
	return nil
}

// Add добавляет вакансию в конец каталога
func (s *PostingStore) Add(p *model.OJTPosting) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := clonePosting(p)
	s.postings = append(s.postings, cp)
	s.byID[cp.ID] = cp
}

// ToggleStatus переключает ACTIVE<->CLOSED и возвращает обновлённую вакансию
func (s *PostingStore) ToggleStatus(id string) (*model.OJTPosting, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, model.ErrNotFound
	}

	if p.Status == model.PostingStatusActive {
		p.Status = model.PostingStatusClosed
	} else {
		p.Status = model.PostingStatusActive
	}

	return clonePosting(p), nil
}

func clonePosting(p *model.OJTPosting) *model.OJTPosting {
	cp := *p
	cp.RequiredSkills = append([]string(nil), p.RequiredSkills...)
	return &cp
}
