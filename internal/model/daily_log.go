package model

type LogStatus string

const (
	LogStatusPending  LogStatus = "PENDING"  // Ожидает решения бизнеса
	LogStatusApproved LogStatus = "APPROVED" // Подтверждён (терминальный)
	LogStatusRejected LogStatus = "REJECTED" // Отклонён (терминальный)
)

// DailyLog — дневной отчёт студента о стажировке
type DailyLog struct {
	ID          string    `json:"id" yaml:"id"`
	StudentID   string    `json:"student_id" yaml:"student_id"`
	StudentName string    `json:"student_name" yaml:"student_name"` // Денормализовано для отображения
	BusinessID  string    `json:"business_id" yaml:"business_id"`
	Date        string    `json:"date" yaml:"date"` // YYYY-MM-DD
	Hours       float64   `json:"hours" yaml:"hours"`
	Tasks       string    `json:"tasks" yaml:"tasks"`
	Status      LogStatus `json:"status" yaml:"status"`
}

// Progress — суммарный прогресс студента по часам
type Progress struct {
	StudentID     string  `json:"student_id" yaml:"student_id"`
	TotalHours    float64 `json:"total_hours" yaml:"total_hours"`
	RequiredHours float64 `json:"required_hours" yaml:"required_hours"`
	Percent       float64 `json:"percent" yaml:"percent"`
}
