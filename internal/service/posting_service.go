package service

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mapmyojt/mapmyojt/internal/model"
	"github.com/mapmyojt/mapmyojt/internal/store"
)

// Дефолтный адрес офиса для вакансий без координат
const (
	defaultAddress = "Office HQ, Tech District"
	defaultLat     = 14.5995
	defaultLng     = 120.9842
)

// PostingService — каталог вакансий стажировок
type PostingService struct {
	postings *store.PostingStore
	logger   *zap.Logger
}

func NewPostingService(postings *store.PostingStore, logger *zap.Logger) *PostingService {
	return &PostingService{
		postings: postings,
		logger:   logger,
	}
}

// List возвращает вакансии, опционально отфильтрованные по категории.
// Пустой фильтр и "All" возвращают всё. Порядок — порядок вставки.
func (s *PostingService) List(category string) []*model.OJTPosting {
	all := s.postings.All()
	if category == "" || category == "All" {
		return all
	}

	out := make([]*model.OJTPosting, 0, len(all))
	for _, p := range all {
		if string(p.Category) == category {
			out = append(out, p)
		}
	}
	return out
}

// ListByCompany возвращает вакансии одного владельца.
// Владение — совпадение денормализованной строки CompanyName.
func (s *PostingService) ListByCompany(companyName string) []*model.OJTPosting {
	all := s.postings.All()
	out := make([]*model.OJTPosting, 0, len(all))
	for _, p := range all {
		if p.CompanyName == companyName {
			out = append(out, p)
		}
	}
	return out
}

type PostingDraft struct {
	Title       string
	Description string
	Category    model.Category
	Slots       int
	Skills      string // Строка со скиллами через запятую
	Address     string
	Lat         float64
	Lng         float64
}

// Create добавляет новую вакансию со статусом ACTIVE.
// Скиллы приходят строкой через запятую и режутся на непустые токены.
func (s *PostingService) Create(companyName string, draft PostingDraft) (*model.OJTPosting, error) {
	if companyName == "" {
		return nil, fmt.Errorf("company name is required")
	}
	if strings.TrimSpace(draft.Title) == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(draft.Description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if !draft.Category.IsValid() {
		return nil, fmt.Errorf("unknown category %q", draft.Category)
	}
	if draft.Slots < 0 {
		return nil, fmt.Errorf("slots must be non-negative")
	}

	posting := &model.OJTPosting{
		ID:             uuid.NewString(),
		CompanyName:    companyName,
		Title:          strings.TrimSpace(draft.Title),
		Description:    strings.TrimSpace(draft.Description),
		Address:        draft.Address,
		Lat:            draft.Lat,
		Lng:            draft.Lng,
		RequiredSkills: SplitSkills(draft.Skills),
		SlotsAvailable: draft.Slots,
		Status:         model.PostingStatusActive,
		Category:       draft.Category,
	}

	if posting.Address == "" {
		posting.Address = defaultAddress
	}
	if posting.Lat == 0 && posting.Lng == 0 {
		posting.Lat = defaultLat
		posting.Lng = defaultLng
	}

	s.postings.Add(posting)

	s.logger.Info("Posting created",
		zap.String("posting_id", posting.ID),
		zap.String("company", companyName),
		zap.String("category", string(posting.Category)),
	)

	return posting, nil
}

// ToggleStatus переключает ACTIVE<->CLOSED. Отсутствующий ID — ErrNotFound.
func (s *PostingService) ToggleStatus(id string) (*model.OJTPosting, error) {
	posting, err := s.postings.ToggleStatus(id)
	if err != nil {
		return nil, fmt.Errorf("toggle posting status: %w", err)
	}

	s.logger.Info("Posting status toggled",
		zap.String("posting_id", posting.ID),
		zap.String("status", string(posting.Status)),
	)

	return posting, nil
}

// Get возвращает вакансию по ID, (nil, nil) если её нет
func (s *PostingService) Get(id string) *model.OJTPosting {
	return s.postings.Get(id)
}

// Markers отдаёт точки для виджета карты. Закрытые вакансии не показываются.
func (s *PostingService) Markers() []*model.MapMarker {
	all := s.postings.All()
	out := make([]*model.MapMarker, 0, len(all))
	for _, p := range all {
		if p.Status != model.PostingStatusActive {
			continue
		}
		out = append(out, &model.MapMarker{
			ID:    p.ID,
			Lat:   p.Lat,
			Lng:   p.Lng,
			Label: p.CompanyName + ": " + p.Title,
		})
	}
	return out
}

// SplitSkills режет строку со скиллами через запятую на непустые токены
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
