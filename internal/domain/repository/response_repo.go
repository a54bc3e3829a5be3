package repository

import (
	"context"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
	"github.com/yourusername/questionnaire-api/internal/submission"
)

// ResponseRepository определяет методы для работы с отправками анкет.
// Запись идет только через Upsert и только для набора ответов, прошедшего
// валидацию: тип submission.ValidatedAnswerSet невозможно сконструировать
// в обход валидатора.
type ResponseRepository interface {
	// Upsert создает Response для пары (user_id, questionnaire_id) или целиком
	// заменяет набор ответов существующей, сохраняя id и created_at и обновляя
	// updated_at. Атомарен: читатели никогда не видят частично записанную
	// Response, параллельные повторы сходятся к одной записи.
	Upsert(ctx context.Context, userID, questionnaireID uint, validated submission.ValidatedAnswerSet) (*entity.Response, error)
	// GetByUserAndQuestionnaire возвращает отправку пользователя для анкеты
	// вместе с ответами или apperrors.ErrNotFound
	GetByUserAndQuestionnaire(ctx context.Context, userID, questionnaireID uint) (*entity.Response, error)
	ListByUser(ctx context.Context, userID uint) ([]entity.Response, error)
	ListByQuestionnaire(ctx context.Context, questionnaireID uint) ([]entity.Response, error)
	// ListAll возвращает все отправки с ответами; используется агрегатором
	ListAll(ctx context.Context) ([]entity.Response, error)
}
