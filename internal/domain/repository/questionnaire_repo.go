package repository

import (
	"context"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
)

// QuestionnaireRepository определяет методы для работы с анкетами
type QuestionnaireRepository interface {
	Create(ctx context.Context, questionnaire *entity.Questionnaire) error
	GetByID(ctx context.Context, id uint) (*entity.Questionnaire, error)
	// GetWithQuestions возвращает анкету с вопросами, отсортированными
	// по приоритету связей (priority ASC)
	GetWithQuestions(ctx context.Context, id uint) (*entity.Questionnaire, error)
	List(ctx context.Context) ([]entity.Questionnaire, error)
	// LinkQuestion привязывает вопрос к анкете с заданным приоритетом
	LinkQuestion(ctx context.Context, questionnaireID, questionID uint, priority int) error
}
