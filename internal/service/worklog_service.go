package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mapmyojt/mapmyojt/internal/model"
	"github.com/mapmyojt/mapmyojt/internal/store"
)

// Ответ по умолчанию, когда сервис советов недоступен
const adviceFallback = "I'm having trouble thinking of advice right now. Keep up the hard work!"

// Enhancer — внешний сервис улучшения текста. Внедряется интерфейсом,
// чтобы логика тестировалась без живой сети.
type Enhancer interface {
	CheckLogQuality(ctx context.Context, tasks string) (string, error)
	CareerAdvice(ctx context.Context, studentProfile, currentLogs string) (string, error)
}

// WorkLogService ведёт дневные отчёты: создание студентом,
// подтверждение/отклонение бизнесом, подсчёт прогресса по часам
type WorkLogService struct {
	logs           *store.LogStore
	enhancer       Enhancer
	enhanceTimeout time.Duration
	requiredHours  float64
	logger         *zap.Logger
}

func NewWorkLogService(
	logs *store.LogStore,
	enhancer Enhancer,
	enhanceTimeout time.Duration,
	requiredHours float64,
	logger *zap.Logger,
) *WorkLogService {
	if enhanceTimeout <= 0 {
		enhanceTimeout = 10 * time.Second
	}
	if requiredHours <= 0 {
		requiredHours = 400
	}
	return &WorkLogService{
		logs:           logs,
		enhancer:       enhancer,
		enhanceTimeout: enhanceTimeout,
		requiredHours:  requiredHours,
		logger:         logger,
	}
}

type SubmitLogInput struct {
	StudentID   string
	StudentName string
	BusinessID  string
	Date        string
	Hours       float64
	Tasks       string
}

// Submit создаёт отчёт в статусе PENDING. Описание задач прогоняется через
// внешний сервис улучшения текста; сбой сервиса никогда не всплывает наружу —
// сохраняется исходный текст. Одна попытка, без ретраев.
func (s *WorkLogService) Submit(ctx context.Context, input SubmitLogInput) (*model.DailyLog, error) {
	if input.StudentID == "" {
		return nil, fmt.Errorf("student id is required")
	}
	if input.Date == "" {
		return nil, fmt.Errorf("date is required")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD")
	}
	if input.Hours <= 0 {
		return nil, fmt.Errorf("hours must be positive")
	}
	tasks := strings.TrimSpace(input.Tasks)
	if tasks == "" {
		return nil, fmt.Errorf("tasks description is required")
	}

	entry := &model.DailyLog{
		ID:          uuid.NewString(),
		StudentID:   input.StudentID,
		StudentName: input.StudentName,
		BusinessID:  input.BusinessID,
		Date:        input.Date,
		Hours:       input.Hours,
		Tasks:       s.enhanceTasks(ctx, tasks),
		Status:      model.LogStatusPending,
	}

	s.logs.Add(entry)

	s.logger.Info("Daily log submitted",
		zap.String("log_id", entry.ID),
		zap.String("student_id", entry.StudentID),
		zap.Float64("hours", entry.Hours),
	)

	return entry, nil
}

// enhanceTasks возвращает улучшенный текст либо исходный при любом сбое
func (s *WorkLogService) enhanceTasks(ctx context.Context, tasks string) string {
	if s.enhancer == nil {
		return tasks
	}

	ctx, cancel := context.WithTimeout(ctx, s.enhanceTimeout)
	defer cancel()

	enhanced, err := s.enhancer.CheckLogQuality(ctx, tasks)
	if err != nil {
		s.logger.Debug("Text enhancement unavailable, keeping original", zap.Error(err))
		return tasks
	}
	if strings.TrimSpace(enhanced) == "" {
		return tasks
	}
	return enhanced
}

// Review подтверждает или отклоняет отчёт. Разрешено только из PENDING:
// повторное решение по тому же отчёту — ErrInvalidTransition, это не то же
// самое что ErrNotFound. Совпадение рецензента с BusinessID отчёта намеренно
// не проверяется (см. DESIGN.md).
func (s *WorkLogService) Review(logID string, decision model.LogStatus) (*model.DailyLog, error) {
	if decision != model.LogStatusApproved && decision != model.LogStatusRejected {
		return nil, fmt.Errorf("decision must be APPROVED or REJECTED")
	}

	entry, err := s.logs.SetStatus(logID, decision)
	if err != nil {
		return nil, fmt.Errorf("review log: %w", err)
	}

	s.logger.Info("Daily log reviewed",
		zap.String("log_id", entry.ID),
		zap.String("decision", string(decision)),
	)

	return entry, nil
}

// All возвращает все отчёты (экран бизнеса)
func (s *WorkLogService) All() []*model.DailyLog {
	return s.logs.All()
}

// ForStudent возвращает отчёты одного студента
func (s *WorkLogService) ForStudent(studentID string) []*model.DailyLog {
	return s.logs.ByStudent(studentID)
}

// ProgressFor суммирует часы студента по всем статусам и сравнивает
// с требованием программы. Только для отображения.
func (s *WorkLogService) ProgressFor(studentID string) model.Progress {
	var total float64
	for _, l := range s.logs.ByStudent(studentID) {
		total += l.Hours
	}

	return model.Progress{
		StudentID:     studentID,
		TotalHours:    total,
		RequiredHours: s.requiredHours,
		Percent:       total / s.requiredHours * 100,
	}
}

// CareerAdvice запрашивает советы по карьере у внешнего сервиса.
// Недоступность сервиса не ошибка: возвращается дежурный ответ.
func (s *WorkLogService) CareerAdvice(ctx context.Context, profile *model.UserProfile) string {
	if s.enhancer == nil || profile == nil {
		return adviceFallback
	}

	summary := fmt.Sprintf("%s, %s at %s. Skills: %s.",
		profile.Name, profile.Role, profile.Affiliation, strings.Join(profile.Skills, ", "))

	var lines []string
	for _, l := range s.logs.ByStudent(profile.ID) {
		lines = append(lines, fmt.Sprintf("%s (%vh, %s): %s", l.Date, l.Hours, l.Status, l.Tasks))
	}

	ctx, cancel := context.WithTimeout(ctx, s.enhanceTimeout)
	defer cancel()

	advice, err := s.enhancer.CareerAdvice(ctx, summary, strings.Join(lines, "\n"))
	if err != nil {
		s.logger.Debug("Career advice unavailable, using fallback", zap.Error(err))
		return adviceFallback
	}

	return advice
}
