package model

import "time"

type Role string

const (
	RoleStudent     Role = "STUDENT"
	RoleBusiness    Role = "BUSINESS"
	RoleCoordinator Role = "COORDINATOR"
)

// IsValid проверяет что роль одна из трёх известных
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleBusiness || r == RoleCoordinator
}

type OJTStatus string

const (
	OJTStatusSearching OJTStatus = "SEARCHING" // Ищет место стажировки
	OJTStatusHired     OJTStatus = "HIRED"     // Принят на стажировку
	OJTStatusCompleted OJTStatus = "COMPLETED" // Стажировка завершена
	OJTStatusInactive  OJTStatus = "INACTIVE"
)

type CompanyStatus string

const (
	CompanyStatusHiring CompanyStatus = "HIRING"
	CompanyStatusClosed CompanyStatus = "CLOSED"
)

type Visibility string

const (
	VisibilityPublic  Visibility = "PUBLIC"
	VisibilityPrivate Visibility = "PRIVATE"
)

type UserProfile struct {
	ID                   string        `json:"id" yaml:"id"`
	Name                 string        `json:"name" yaml:"name"`
	Role                 Role          `json:"role" yaml:"role"`
	Email                string        `json:"email" yaml:"email"`
	Skills               []string      `json:"skills" yaml:"skills"`
	Avatar               string        `json:"avatar" yaml:"avatar"`
	Affiliation          string        `json:"affiliation,omitempty" yaml:"affiliation"` // Университет для студента/координатора, компания для бизнеса
	Bio                  string        `json:"bio,omitempty" yaml:"bio"`
	IsVerified           bool          `json:"is_verified" yaml:"is_verified"`
	JoinedAt             time.Time     `json:"joined_at" yaml:"joined_at"`
	Visibility           Visibility    `json:"visibility" yaml:"visibility"`
	NotificationsEnabled bool          `json:"notifications_enabled" yaml:"notifications_enabled"`
	OJTStatus            OJTStatus     `json:"ojt_status,omitempty" yaml:"ojt_status"`     // Только для студентов
	CompanyStatus        CompanyStatus `json:"company_status,omitempty" yaml:"company_status"` // Только для бизнеса
}

// NormalizeStatuses очищает статус, не соответствующий роли.
// Инвариант: заполнен максимум один из OJTStatus/CompanyStatus.
func (u *UserProfile) NormalizeStatuses() {
	switch u.Role {
	case RoleStudent:
		u.CompanyStatus = ""
	case RoleBusiness:
		u.OJTStatus = ""
	default:
		u.OJTStatus = ""
		u.CompanyStatus = ""
	}
}

// Clone возвращает глубокую копию профиля
func (u *UserProfile) Clone() *UserProfile {
	if u == nil {
		return nil
	}
	cp := *u
	cp.Skills = append([]string(nil), u.Skills...)
	return &cp
}
