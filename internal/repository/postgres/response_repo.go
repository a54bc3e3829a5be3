package postgres

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
	apperrors "github.com/yourusername/questionnaire-api/internal/pkg/errors"
	"github.com/yourusername/questionnaire-api/internal/submission"
)

// ResponseRepo реализует repository.ResponseRepository
type ResponseRepo struct {
	db *gorm.DB
}

// NewResponseRepo создает новый репозиторий отправок
func NewResponseRepo(db *gorm.DB) *ResponseRepo {
	return &ResponseRepo{db: db}
}

// Upsert создает или целиком заменяет отправку пользователя для анкеты.
// Вся запись идет в одной транзакции: существующая строка блокируется
// FOR UPDATE, так что параллельные повторы (дубли сетевых ретраев)
// сериализуются на паре (user_id, questionnaire_id) и сходятся к одной
// Response. id и created_at при замене сохраняются, updated_at обновляется.
func (r *ResponseRepo) Upsert(ctx context.Context, userID, questionnaireID uint, validated submission.ValidatedAnswerSet) (*entity.Response, error) {
	var response *entity.Response

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing entity.Response
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND questionnaire_id = ?", userID, questionnaireID).
			First(&existing).Error

		switch {
		case err == nil:
			response = &existing
			return r.replaceAnswers(tx, response, validated.Answers())

		case errors.Is(err, gorm.ErrRecordNotFound):
			created := entity.Response{
				ID:              uuid.New().String(),
				UserID:          userID,
				QuestionnaireID: questionnaireID,
			}
			// Savepoint нужен, чтобы транзакция пережила нарушение уникального
			// индекса: Postgres обрывает транзакцию после любой ошибки
			if err := tx.SavePoint("sp_create_response").Error; err != nil {
				return err
			}
			if err := tx.Create(&created).Error; err != nil {
				if isUniqueViolation(err) {
					// Параллельная отправка успела создать строку первой:
					// откатываемся к savepoint и переигрываем как замену
					log.Printf("[ResponseRepo] Гонка при создании отправки user=%d questionnaire=%d, переключаемся на замену", userID, questionnaireID)
					if err := tx.RollbackTo("sp_create_response").Error; err != nil {
						return err
					}
					if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
						Where("user_id = ? AND questionnaire_id = ?", userID, questionnaireID).
						First(&existing).Error; err != nil {
						return err
					}
					response = &existing
					return r.replaceAnswers(tx, response, validated.Answers())
				}
				return err
			}
			response = &created
			return r.replaceAnswers(tx, response, validated.Answers())

		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// replaceAnswers заменяет набор ответов отправки внутри транзакции
func (r *ResponseRepo) replaceAnswers(tx *gorm.DB, response *entity.Response, answers []entity.Answer) error {
	if err := tx.Where("response_id = ?", response.ID).Delete(&entity.Answer{}).Error; err != nil {
		return err
	}

	now := time.Now()
	rows := make([]entity.Answer, len(answers))
	for i, a := range answers {
		a.ID = uuid.New().String()
		a.ResponseID = response.ID
		rows[i] = a
	}
	if len(rows) > 0 {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
	}

	if err := tx.Model(response).Update("updated_at", now).Error; err != nil {
		return err
	}

	response.Answers = rows
	response.UpdatedAt = now
	return nil
}

// GetByUserAndQuestionnaire возвращает отправку пользователя с ответами
func (r *ResponseRepo) GetByUserAndQuestionnaire(ctx context.Context, userID, questionnaireID uint) (*entity.Response, error) {
	var response entity.Response
	err := r.db.WithContext(ctx).
		Preload("Answers").
		Where("user_id = ? AND questionnaire_id = ?", userID, questionnaireID).
		First(&response).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &response, nil
}

// ListByUser возвращает все отправки пользователя с ответами
func (r *ResponseRepo) ListByUser(ctx context.Context, userID uint) ([]entity.Response, error) {
	var responses []entity.Response
	err := r.db.WithContext(ctx).
		Preload("Answers").
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&responses).Error
	return responses, err
}

// ListByQuestionnaire возвращает все отправки для анкеты с ответами
func (r *ResponseRepo) ListByQuestionnaire(ctx context.Context, questionnaireID uint) ([]entity.Response, error) {
	var responses []entity.Response
	err := r.db.WithContext(ctx).
		Preload("Answers").
		Where("questionnaire_id = ?", questionnaireID).
		Order("created_at").
		Find(&responses).Error
	return responses, err
}

// ListAll возвращает все отправки с ответами для агрегатора
func (r *ResponseRepo) ListAll(ctx context.Context) ([]entity.Response, error) {
	var responses []entity.Response
	err := r.db.WithContext(ctx).
		Preload("Answers").
		Order("created_at").
		Find(&responses).Error
	return responses, err
}
