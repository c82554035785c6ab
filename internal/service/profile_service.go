package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mapmyojt/mapmyojt/internal/model"
)

// ProfileService редактирует профиль текущего пользователя через черновик:
// мутации копят изменения локально, Commit проталкивает их в сессию.
type ProfileService struct {
	session     *SessionService
	saveLatency time.Duration
	logger      *zap.Logger
}

func NewProfileService(session *SessionService, saveLatency time.Duration, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		session:     session,
		saveLatency: saveLatency,
		logger:      logger,
	}
}

// NewDraft снимает копию профиля текущей сессии для редактирования
func (s *ProfileService) NewDraft() (*ProfileDraft, error) {
	user := s.session.User()
	if user == nil {
		return nil, model.ErrLoggedOut
	}

	return &ProfileDraft{
		svc:     s,
		profile: user,
	}, nil
}

// ProfileDraft — локальная копия профиля. Изменения не видны сессии,
// пока не вызван Commit.
type ProfileDraft struct {
	svc     *ProfileService
	profile *model.UserProfile
}

// Profile возвращает текущее состояние черновика
func (d *ProfileDraft) Profile() *model.UserProfile {
	return d.profile.Clone()
}

// AddSkill добавляет скилл как в множество: дубликаты не появляются
func (d *ProfileDraft) AddSkill(skill string) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return
	}
	for _, existing := range d.profile.Skills {
		if existing == skill {
			return
		}
	}
	d.profile.Skills = append(d.profile.Skills, skill)
}

// RemoveSkill убирает скилл из множества
func (d *ProfileDraft) RemoveSkill(skill string) {
	out := d.profile.Skills[:0]
	for _, existing := range d.profile.Skills {
		if existing != skill {
			out = append(out, existing)
		}
	}
	d.profile.Skills = out
}

func (d *ProfileDraft) SetName(name string)               { d.profile.Name = name }
func (d *ProfileDraft) SetBio(bio string)                 { d.profile.Bio = bio }
func (d *ProfileDraft) SetAffiliation(affiliation string) { d.profile.Affiliation = affiliation }

func (d *ProfileDraft) SetVisibility(v model.Visibility)  { d.profile.Visibility = v }
func (d *ProfileDraft) SetNotifications(enabled bool)     { d.profile.NotificationsEnabled = enabled }
func (d *ProfileDraft) SetOJTStatus(st model.OJTStatus)   { d.profile.OJTStatus = st }
func (d *ProfileDraft) SetCompanyStatus(st model.CompanyStatus) {
	d.profile.CompanyStatus = st
}

// Commit применяет черновик через сессию, имитируя задержку сохранения.
// Если за время задержки контекст отменили (пользователь ушёл с экрана)
// или сессия сменила пользователя — результат тихо отбрасывается: (nil, nil).
func (d *ProfileDraft) Commit(ctx context.Context) (*model.UserProfile, error) {
	if d.svc.saveLatency > 0 {
		timer := time.NewTimer(d.svc.saveLatency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			d.svc.logger.Debug("Profile commit discarded, context cancelled",
				zap.String("user_id", d.profile.ID))
			return nil, nil
		case <-timer.C:
		}
	}

	current := d.svc.session.User()
	if current == nil || current.ID != d.profile.ID {
		d.svc.logger.Debug("Profile commit discarded, session changed",
			zap.String("user_id", d.profile.ID))
		return nil, nil
	}

	return d.svc.session.UpdateProfile(d.profile)
}
