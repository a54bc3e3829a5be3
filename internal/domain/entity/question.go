package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Типы вопросов. Тип полностью определяет форму ответа и способ отображения:
// никаких специальных случаев по ID вопроса быть не должно.
const (
	QuestionTypeSingle = "single" // один вариант из списка
	QuestionTypeMulti  = "multi"  // один или несколько вариантов из списка
	QuestionTypeText   = "text"   // свободный текст
)

// StringArray - пользовательский тип для работы с JSONB
type StringArray []string

// Scan реализует интерфейс sql.Scanner для StringArray
// Используется GORM для чтения JSONB данных из базы
func (o *StringArray) Scan(value interface{}) error {
	// Обработка NULL значений из базы данных
	if value == nil {
		*o = StringArray{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to unmarshal JSONB value: expected []byte")
	}

	// Обработка пустого массива байтов
	if len(bytes) == 0 {
		*o = StringArray{}
		return nil
	}

	return json.Unmarshal(bytes, o)
}

// Value реализует интерфейс driver.Valuer для StringArray
// Используется GORM для записи StringArray в JSONB в базе
func (o StringArray) Value() (driver.Value, error) {
	if len(o) == 0 {
		return []byte("[]"), nil // Возвращаем пустой JSON массив вместо null
	}
	return json.Marshal(o)
}

// Question представляет вопрос анкеты
type Question struct {
	ID        uint        `gorm:"primaryKey" json:"id"`
	Type      string      `gorm:"size:20;not null" json:"type"`
	Prompt    string      `gorm:"size:500;not null" json:"prompt"`
	Options   StringArray `gorm:"type:jsonb;not null" json:"options"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// IsSelect возвращает true, если вопрос предполагает выбор из вариантов
func (q *Question) IsSelect() bool {
	return q.Type == QuestionTypeSingle || q.Type == QuestionTypeMulti
}

// HasOption проверяет, входит ли значение в список вариантов вопроса
func (q *Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// OptionsCount возвращает количество вариантов ответа
func (q *Question) OptionsCount() int {
	return len(q.Options)
}
