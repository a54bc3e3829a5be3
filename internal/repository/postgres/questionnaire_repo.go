package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
	apperrors "github.com/yourusername/questionnaire-api/internal/pkg/errors"
)

// QuestionnaireRepo реализует repository.QuestionnaireRepository
type QuestionnaireRepo struct {
	db *gorm.DB
}

// NewQuestionnaireRepo создает новый репозиторий анкет
func NewQuestionnaireRepo(db *gorm.DB) *QuestionnaireRepo {
	return &QuestionnaireRepo{db: db}
}

// Create создает новую анкету
func (r *QuestionnaireRepo) Create(ctx context.Context, questionnaire *entity.Questionnaire) error {
	return r.db.WithContext(ctx).Create(questionnaire).Error
}

// GetByID возвращает анкету без вопросов
func (r *QuestionnaireRepo) GetByID(ctx context.Context, id uint) (*entity.Questionnaire, error) {
	var questionnaire entity.Questionnaire
	err := r.db.WithContext(ctx).First(&questionnaire, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &questionnaire, nil
}

// GetWithQuestions возвращает анкету с вопросами в порядке приоритета связей.
// Порядок вопросов значим: он сохраняется до самого отображения.
func (r *QuestionnaireRepo) GetWithQuestions(ctx context.Context, id uint) (*entity.Questionnaire, error) {
	questionnaire, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var questions []entity.Question
	err = r.db.WithContext(ctx).
		Joins("JOIN questionnaire_questions qq ON qq.question_id = questions.id").
		Where("qq.questionnaire_id = ?", id).
		Order("qq.priority ASC").
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	questionnaire.Questions = questions
	return questionnaire, nil
}

// List возвращает все анкеты
func (r *QuestionnaireRepo) List(ctx context.Context) ([]entity.Questionnaire, error) {
	var questionnaires []entity.Questionnaire
	err := r.db.WithContext(ctx).Order("id").Find(&questionnaires).Error
	return questionnaires, err
}

// LinkQuestion привязывает вопрос к анкете с заданным приоритетом
func (r *QuestionnaireRepo) LinkQuestion(ctx context.Context, questionnaireID, questionID uint, priority int) error {
	link := entity.QuestionnaireQuestion{
		QuestionnaireID: questionnaireID,
		QuestionID:      questionID,
		Priority:        priority,
	}
	err := r.db.WithContext(ctx).Create(&link).Error
	if err != nil && isUniqueViolation(err) {
		return apperrors.ErrConflict
	}
	return err
}
