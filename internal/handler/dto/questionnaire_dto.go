package dto

import (
	"time"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту
type QuestionResponse struct {
	ID      uint     `json:"id"`
	Type    string   `json:"type"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// QuestionnaireResponse представляет анкету в формате для ответа клиенту
type QuestionnaireResponse struct {
	ID        uint               `json:"id"`
	Name      string             `json:"name"`
	Questions []QuestionResponse `json:"questions,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// NewQuestionnaireResponse создает DTO анкеты.
// Вопросы идут в порядке приоритета, как их вернул репозиторий.
func NewQuestionnaireResponse(q *entity.Questionnaire) *QuestionnaireResponse {
	resp := &QuestionnaireResponse{
		ID:        q.ID,
		Name:      q.Name,
		CreatedAt: q.CreatedAt,
		UpdatedAt: q.UpdatedAt,
	}
	for _, question := range q.Questions {
		resp.Questions = append(resp.Questions, QuestionResponse{
			ID:      question.ID,
			Type:    question.Type,
			Prompt:  question.Prompt,
			Options: question.Options,
		})
	}
	return resp
}

// NewListQuestionnaireResponse создает список DTO анкет без вопросов
func NewListQuestionnaireResponse(questionnaires []entity.Questionnaire) []*QuestionnaireResponse {
	result := make([]*QuestionnaireResponse, 0, len(questionnaires))
	for i := range questionnaires {
		result = append(result, NewQuestionnaireResponse(&questionnaires[i]))
	}
	return result
}
