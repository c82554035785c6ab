package model

type PostingStatus string

const (
	PostingStatusActive PostingStatus = "ACTIVE"
	PostingStatusClosed PostingStatus = "CLOSED"
)

type Category string

const (
	CategoryTech        Category = "Tech"
	CategoryDesign      Category = "Design"
	CategoryManagement  Category = "Management"
	CategoryEngineering Category = "Engineering"
	CategoryMarketing   Category = "Marketing"
)

// IsValid проверяет что категория входит в закрытый список
func (c Category) IsValid() bool {
	switch c {
	case CategoryTech, CategoryDesign, CategoryManagement, CategoryEngineering, CategoryMarketing:
		return true
	}
	return false
}

// OJTPosting — вакансия стажировки на карте.
// Владелец определяется по CompanyName (денормализованная строка, не foreign key).
type OJTPosting struct {
	ID             string        `json:"id" yaml:"id"`
	CompanyName    string        `json:"company_name" yaml:"company_name"`
	Title          string        `json:"title" yaml:"title"`
	Description    string        `json:"description" yaml:"description"`
	Address        string        `json:"address" yaml:"address"`
	Lat            float64       `json:"lat" yaml:"lat"`
	Lng            float64       `json:"lng" yaml:"lng"`
	RequiredSkills []string      `json:"required_skills" yaml:"required_skills"`
	SlotsAvailable int           `json:"slots_available" yaml:"slots_available"`
	Status         PostingStatus `json:"status" yaml:"status"`
	Category       Category      `json:"category" yaml:"category"`
}

// MapMarker — точка для виджета карты
type MapMarker struct {
	ID    string  `json:"id" yaml:"id"`
	Lat   float64 `json:"lat" yaml:"lat"`
	Lng   float64 `json:"lng" yaml:"lng"`
	Label string  `json:"label" yaml:"label"`
}
