package dto

import (
	"time"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
	"github.com/yourusername/questionnaire-api/internal/submission"
)

// ResponseDetail представляет отправку анкеты для повторного отображения
// формы: значения декодированы кодеком и привязаны к вопросам
type ResponseDetail struct {
	ID              string                       `json:"id"`
	QuestionnaireID uint                         `json:"questionnaire_id"`
	Values          map[uint]submission.RawValue `json:"values"`
	CreatedAt       time.Time                    `json:"created_at"`
	UpdatedAt       time.Time                    `json:"updated_at"`
}

// NewResponseDetail создает DTO отправки, декодируя каждый ответ
// по типу его вопроса
func NewResponseDetail(response *entity.Response, questionnaire *entity.Questionnaire) *ResponseDetail {
	values := make(map[uint]submission.RawValue, len(response.Answers))
	for i := range response.Answers {
		a := &response.Answers[i]
		if q, ok := questionnaire.QuestionByID(a.QuestionID); ok {
			values[a.QuestionID] = submission.Decode(q, a)
		}
	}
	return &ResponseDetail{
		ID:              response.ID,
		QuestionnaireID: response.QuestionnaireID,
		Values:          values,
		CreatedAt:       response.CreatedAt,
		UpdatedAt:       response.UpdatedAt,
	}
}

// UserCompletionResponse представляет строку админского списка пользователей
type UserCompletionResponse struct {
	UserID         uint   `json:"user_id"`
	Username       string `json:"username"`
	CompletedCount int    `json:"completed_count"`
}
