package entity

import (
	"time"
)

// Questionnaire представляет анкету - именованный упорядоченный набор вопросов
type Questionnaire struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Questions заполняется репозиторием в порядке приоритета связей.
	// Порядок значим и должен сохраняться вплоть до отображения.
	Questions []Question `gorm:"-" json:"questions,omitempty"`
}

// TableName определяет имя таблицы для GORM
func (Questionnaire) TableName() string {
	return "questionnaires"
}

// QuestionnaireQuestion связывает анкету с вопросом и задает его позицию.
// Пара (questionnaire_id, question_id) уникальна, сортировка по priority ASC.
type QuestionnaireQuestion struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	QuestionnaireID uint      `gorm:"not null;index;uniqueIndex:idx_questionnaire_question" json:"questionnaire_id"`
	QuestionID      uint      `gorm:"not null;uniqueIndex:idx_questionnaire_question" json:"question_id"`
	Priority        int       `gorm:"not null;default:0" json:"priority"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName определяет имя таблицы для GORM
func (QuestionnaireQuestion) TableName() string {
	return "questionnaire_questions"
}

// QuestionByID возвращает вопрос анкеты по его ID
func (qn *Questionnaire) QuestionByID(questionID uint) (*Question, bool) {
	for i := range qn.Questions {
		if qn.Questions[i].ID == questionID {
			return &qn.Questions[i], true
		}
	}
	return nil, false
}
