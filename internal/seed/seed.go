// Package seed содержит демо-данные приложения. Бэкенда с реальной базой нет,
// поэтому после logout сторы возвращаются ровно к этому состоянию.
package seed

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mapmyojt/mapmyojt/internal/model"
)

//go:embed data.yaml
var raw []byte

type Data struct {
	Users    []*model.UserProfile `yaml:"users"`
	Postings []*model.OJTPosting  `yaml:"postings"`
	Logs     []*model.DailyLog    `yaml:"logs"`
	Messages []*model.Message     `yaml:"messages"`
}

// Load разбирает встроенный data.yaml. Каждый вызов возвращает свежие копии,
// чтобы мутации одной сессии не протекали в состояние после сброса.
func Load() (*Data, error) {
	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("unmarshal seed data: %w", err)
	}

	now := time.Now()
	ts := now.Add(-time.Hour).UnixMilli()
	for _, u := range data.Users {
		u.JoinedAt = now
		u.NormalizeStatuses()
	}
	for i, m := range data.Messages {
		// Фиксируем возрастающие таймстемпы для демо-переписки
		m.Timestamp = ts + int64(i)*600_000
	}

	return &data, nil
}

// MustLoad — как Load, но паникует. Данные встроены в бинарь,
// ошибка разбора означает сломанную сборку.
func MustLoad() *Data {
	data, err := Load()
	if err != nil {
		panic("seed: " + err.Error())
	}
	return data
}
