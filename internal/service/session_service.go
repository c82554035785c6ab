package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mapmyojt/mapmyojt/internal/model"
	"github.com/mapmyojt/mapmyojt/internal/store"
)

// SessionService — машина состояний сессии: LOGGED_OUT либо LOGGED_IN(роль, экран).
// Все остальные компоненты доступны только через активную сессию.
// Между перезапусками переживает только профиль текущего пользователя.
type SessionService struct {
	sessions *store.SessionStore
	users    *store.UserStore
	logger   *zap.Logger

	mu      sync.RWMutex
	user    *model.UserProfile
	view    model.View
	contact *model.ChatContact

	resetHooks []func()
}

func NewSessionService(sessions *store.SessionStore, users *store.UserStore, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessions: sessions,
		users:    users,
		logger:   logger,
	}
}

// OnLogout регистрирует хук сброса стора. Сторы не персистятся отдельно,
// поэтому после logout они возвращаются к seed-состоянию — это ожидаемое
// поведение, а не упущение.
func (s *SessionService) OnLogout(hook func()) {
	s.resetHooks = append(s.resetHooks, hook)
}

// Restore восстанавливает сессию из локального хранилища при старте.
// Записи нет — остаёмся в LOGGED_OUT. Запись есть, но битая — чистим её
// и тоже остаёмся в LOGGED_OUT: падать из-за этого нельзя.
func (s *SessionService) Restore() error {
	profile, err := s.sessions.Load()
	if err != nil {
		s.logger.Warn("Stored session is unreadable, starting logged out", zap.Error(err))
		if clearErr := s.sessions.Clear(); clearErr != nil {
			return fmt.Errorf("clear corrupted session: %w", clearErr)
		}
		return nil
	}

	if profile == nil {
		return nil
	}

	s.mu.Lock()
	s.user = profile
	s.view = model.DefaultView(profile.Role)
	s.contact = nil
	s.mu.Unlock()

	s.logger.Info("Session restored",
		zap.String("user_id", profile.ID),
		zap.String("role", string(profile.Role)),
	)

	return nil
}

// Login принимает любой профиль без проверки учётных данных (бэкенда
// аутентификации нет) и переводит машину в LOGGED_IN со стартовым
// экраном роли. Профиль сохраняется в локальное хранилище.
func (s *SessionService) Login(profile *model.UserProfile) (*model.UserProfile, model.View, error) {
	if profile == nil {
		return nil, "", fmt.Errorf("profile is required")
	}
	if !profile.Role.IsValid() {
		return nil, "", fmt.Errorf("unknown role %q", profile.Role)
	}

	p := profile.Clone()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.NormalizeStatuses()

	if err := s.sessions.Save(p); err != nil {
		return nil, "", fmt.Errorf("persist session: %w", err)
	}

	// Добавляем в реестр, чтобы собеседники и верификация находили профиль
	if s.users.Get(p.ID) == nil {
		s.users.Add(p)
	}

	view := model.DefaultView(p.Role)

	s.mu.Lock()
	s.user = p
	s.view = view
	s.contact = nil
	s.mu.Unlock()

	s.logger.Info("User logged in",
		zap.String("user_id", p.ID),
		zap.String("role", string(p.Role)),
		zap.String("view", string(view)),
	)

	return p.Clone(), view, nil
}

type RegisterInput struct {
	Name        string
	Email       string
	Role        model.Role
	Affiliation string
}

// Register собирает новый профиль с дефолтами роли и сразу логинит его.
// Бизнес стартует неверифицированным, остальные — верифицированными.
func (s *SessionService) Register(input RegisterInput) (*model.UserProfile, model.View, error) {
	if input.Name == "" || input.Email == "" {
		return nil, "", fmt.Errorf("name and email are required")
	}
	if !input.Role.IsValid() {
		return nil, "", fmt.Errorf("unknown role %q", input.Role)
	}

	profile := &model.UserProfile{
		ID:                   uuid.NewString(),
		Name:                 input.Name,
		Email:                input.Email,
		Role:                 input.Role,
		Affiliation:          input.Affiliation,
		IsVerified:           input.Role != model.RoleBusiness,
		JoinedAt:             time.Now(),
		Visibility:           model.VisibilityPublic,
		NotificationsEnabled: true,
	}

	switch input.Role {
	case model.RoleStudent:
		profile.Skills = []string{"React", "TypeScript"}
		profile.OJTStatus = model.OJTStatusSearching
		profile.Bio = "Passionate software engineering student looking for challenges."
		if profile.Affiliation == "" {
			profile.Affiliation = "State University"
		}
	case model.RoleBusiness:
		profile.Skills = []string{"Product Strategy"}
		profile.CompanyStatus = model.CompanyStatusHiring
		profile.Bio = "Leading innovation in the tech sector."
		if profile.Affiliation == "" {
			profile.Affiliation = "Nexus Labs"
		}
	case model.RoleCoordinator:
		if profile.Affiliation == "" {
			profile.Affiliation = "State University"
		}
	}

	profile.Avatar = fmt.Sprintf("https://picsum.photos/seed/%s/200", profile.Name)

	return s.Login(profile)
}

// Logout переводит машину в LOGGED_OUT, чистит локальное хранилище
// и сбрасывает все остальные сторы к seed-состоянию
func (s *SessionService) Logout() error {
	if err := s.sessions.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	s.mu.Lock()
	userID := ""
	if s.user != nil {
		userID = s.user.ID
	}
	s.user = nil
	s.view = ""
	s.contact = nil
	s.mu.Unlock()

	for _, hook := range s.resetHooks {
		hook()
	}

	s.logger.Info("User logged out", zap.String("user_id", userID))
	return nil
}

// Navigate переключает текущий экран. Работает только в LOGGED_IN.
// Неверифицированный бизнес пускается только на свой дашборд и профиль,
// остальные запросы молча перенаправляются на дашборд (это redirect,
// не ошибка). Прочие ролевые ограничения живут только в меню.
func (s *SessionService) Navigate(view model.View) (model.View, error) {
	if !view.IsValid() {
		return "", fmt.Errorf("unknown view %q", view)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return "", model.ErrLoggedOut
	}

	effective := view
	if s.user.Role == model.RoleBusiness && !s.user.IsVerified &&
		view != model.ViewDashboardBus && view != model.ViewProfile {
		effective = model.ViewDashboardBus
		s.logger.Info("Unverified business redirected to dashboard",
			zap.String("user_id", s.user.ID),
			zap.String("requested_view", string(view)),
		)
	}

	s.view = effective
	if effective != model.ViewChat {
		// Активный собеседник имеет смысл только на экране чата
		s.contact = nil
	}

	return effective, nil
}

// StartChat выбирает собеседника по вакансии и открывает чат
func (s *SessionService) StartChat(posting *model.OJTPosting) (*model.ChatContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, model.ErrLoggedOut
	}

	contact := &model.ChatContact{
		ID:     posting.ID,
		Name:   posting.CompanyName,
		Avatar: fmt.Sprintf("https://picsum.photos/seed/%s/200", posting.CompanyName),
	}

	s.contact = contact
	s.view = model.ViewChat

	cp := *contact
	return &cp, nil
}

// UpdateProfile вливает изменения в профиль текущей сессии и сохраняет их.
// Роль неизменяема; статус, не соответствующий роли, вычищается.
func (s *SessionService) UpdateProfile(updated *model.UserProfile) (*model.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, model.ErrLoggedOut
	}
	if updated.ID != s.user.ID {
		return nil, fmt.Errorf("profile id mismatch: %w", model.ErrNotFound)
	}
	if updated.Role != s.user.Role {
		return nil, model.ErrRoleImmutable
	}

	p := updated.Clone()
	p.JoinedAt = s.user.JoinedAt
	p.IsVerified = s.user.IsVerified
	p.NormalizeStatuses()

	if err := s.sessions.Save(p); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.user = p

	s.logger.Info("Profile updated", zap.String("user_id", p.ID))
	return p.Clone(), nil
}

// SyncVerified обновляет флаг верификации в сессии, если верифицировали
// текущего пользователя. Для остальных — no-op.
func (s *SessionService) SyncVerified(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil || s.user.ID != userID {
		return nil
	}

	p := s.user.Clone()
	p.IsVerified = true
	if err := s.sessions.Save(p); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.user = p
	return nil
}

// Current возвращает снимок состояния сессии. Пользователь nil — LOGGED_OUT.
func (s *SessionService) Current() (*model.UserProfile, model.View, *model.ChatContact) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var contact *model.ChatContact
	if s.contact != nil {
		cp := *s.contact
		contact = &cp
	}
	return s.user.Clone(), s.view, contact
}

// User возвращает профиль текущего пользователя, nil если сессии нет
func (s *SessionService) User() *model.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user.Clone()
}
