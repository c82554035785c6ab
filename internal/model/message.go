package model

// Message — сообщение в переписке. Неизменяемо после создания.
// Тред определяется неупорядоченной парой {SenderID, ReceiverID}.
type Message struct {
	ID         string `json:"id" yaml:"id"`
	SenderID   string `json:"sender_id" yaml:"sender_id"`
	ReceiverID string `json:"receiver_id" yaml:"receiver_id"`
	Text       string `json:"text" yaml:"text"`
	Timestamp  int64  `json:"timestamp" yaml:"timestamp"` // Миллисекунды, строго возрастают в рамках стора
}

// ChatContact — активный собеседник, выбранный из вакансии на карте
type ChatContact struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Avatar string `json:"avatar" yaml:"avatar"`
}
