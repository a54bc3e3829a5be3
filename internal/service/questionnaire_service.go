package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
	"github.com/yourusername/questionnaire-api/internal/domain/repository"
	apperrors "github.com/yourusername/questionnaire-api/internal/pkg/errors"
)

// questionnaireCacheTTL - время жизни кешированного снимка анкеты.
// Анкеты после административной загрузки только читаются, поэтому
// короткий TTL нужен лишь на случай ручной правки данных.
const questionnaireCacheTTL = 10 * time.Minute

// QuestionnaireService предоставляет методы для чтения анкет
type QuestionnaireService struct {
	questionnaireRepo repository.QuestionnaireRepository
	cacheRepo         repository.CacheRepository
}

// NewQuestionnaireService создает новый сервис анкет
func NewQuestionnaireService(
	questionnaireRepo repository.QuestionnaireRepository,
	cacheRepo repository.CacheRepository,
) *QuestionnaireService {
	return &QuestionnaireService{
		questionnaireRepo: questionnaireRepo,
		cacheRepo:         cacheRepo,
	}
}

// List возвращает все анкеты без вопросов
func (s *QuestionnaireService) List(ctx context.Context) ([]entity.Questionnaire, error) {
	return s.questionnaireRepo.List(ctx)
}

// GetWithQuestions возвращает анкету с вопросами в порядке приоритета.
// Снимок кешируется в Redis; ошибки кеша не фатальны и только логируются.
func (s *QuestionnaireService) GetWithQuestions(ctx context.Context, id uint) (*entity.Questionnaire, error) {
	cacheKey := fmt.Sprintf("questionnaire:%d:with_questions", id)

	if s.cacheRepo != nil {
		var cached entity.Questionnaire
		err := s.cacheRepo.GetJSON(cacheKey, &cached)
		if err == nil {
			return &cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[QuestionnaireService] WARNING: Ошибка чтения кеша анкеты #%d: %v", id, err)
		}
	}

	questionnaire, err := s.questionnaireRepo.GetWithQuestions(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(cacheKey, questionnaire, questionnaireCacheTTL); err != nil {
			log.Printf("[QuestionnaireService] WARNING: Ошибка записи кеша анкеты #%d: %v", id, err)
		}
	}

	return questionnaire, nil
}
