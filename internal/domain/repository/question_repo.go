package repository

import (
	"context"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
)

// QuestionRepository определяет методы создания вопросов.
// Вопросы создаются административной загрузкой данных; дальше они читаются
// только в составе анкеты через QuestionnaireRepository.GetWithQuestions.
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	CreateBatch(ctx context.Context, questions []entity.Question) error
}
