package entity

import (
	"time"
)

// Answer представляет нормализованный ответ на один вопрос.
// Value всегда хранится как JSONB-массив строк: для single/text это массив
// из одного элемента, для multi - из одного или более.
type Answer struct {
	ID         string      `gorm:"type:uuid;primaryKey" json:"id"`
	ResponseID string      `gorm:"type:uuid;not null;index;uniqueIndex:idx_response_question" json:"response_id"`
	QuestionID uint        `gorm:"not null;uniqueIndex:idx_response_question" json:"question_id"`
	Value      StringArray `gorm:"type:jsonb;not null" json:"value"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Answer) TableName() string {
	return "answers"
}

// Response представляет отправку анкеты пользователем.
// Инвариант: не более одной записи на пару (user_id, questionnaire_id);
// повторная отправка целиком заменяет набор ответов, сохраняя id и created_at.
type Response struct {
	ID              string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uint      `gorm:"not null;index;uniqueIndex:idx_user_questionnaire" json:"user_id"`
	QuestionnaireID uint      `gorm:"not null;index;uniqueIndex:idx_user_questionnaire" json:"questionnaire_id"`
	Answers         []Answer  `gorm:"foreignKey:ResponseID" json:"answers,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (Response) TableName() string {
	return "responses"
}

// AnswerFor возвращает ответ на конкретный вопрос, если он есть
func (r *Response) AnswerFor(questionID uint) (*Answer, bool) {
	for i := range r.Answers {
		if r.Answers[i].QuestionID == questionID {
			return &r.Answers[i], true
		}
	}
	return nil, false
}
