package service

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mapmyojt/mapmyojt/internal/model"
	"github.com/mapmyojt/mapmyojt/internal/store"
)

// VerificationService — очередь верификации бизнесов для координатора
type VerificationService struct {
	users   *store.UserStore
	session *SessionService
	logger  *zap.Logger
}

func NewVerificationService(users *store.UserStore, session *SessionService, logger *zap.Logger) *VerificationService {
	return &VerificationService{
		users:   users,
		session: session,
		logger:  logger,
	}
}

// Pending возвращает бизнесы, ожидающие верификации
func (s *VerificationService) Pending() []*model.UserProfile {
	return s.users.UnverifiedBusinesses()
}

// Approve верифицирует бизнес. Неизвестный ID — ErrNotFound,
// уже верифицированный — ErrInvalidTransition. Если верифицировали
// текущего пользователя, сессия обновляется и пересохраняется.
func (s *VerificationService) Approve(businessID string) (*model.UserProfile, error) {
	business, err := s.users.SetVerified(businessID)
	if err != nil {
		return nil, fmt.Errorf("verify business: %w", err)
	}

	if err := s.session.SyncVerified(businessID); err != nil {
		return nil, fmt.Errorf("sync session: %w", err)
	}

	s.logger.Info("Business verified",
		zap.String("business_id", business.ID),
		zap.String("company", business.Affiliation),
	)

	return business, nil
}
