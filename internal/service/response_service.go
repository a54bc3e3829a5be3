package service

import (
	"context"
	"fmt"
	"log"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
	"github.com/yourusername/questionnaire-api/internal/domain/repository"
	"github.com/yourusername/questionnaire-api/internal/submission"
)

// ResponseService управляет отправкой анкет: валидация полного набора
// ответов и идемпотентная запись create-or-update
type ResponseService struct {
	responseRepo         repository.ResponseRepository
	questionnaireService *QuestionnaireService
}

// NewResponseService создает новый сервис отправок
func NewResponseService(
	responseRepo repository.ResponseRepository,
	questionnaireService *QuestionnaireService,
) *ResponseService {
	return &ResponseService{
		responseRepo:         responseRepo,
		questionnaireService: questionnaireService,
	}
}

// Submit валидирует сырые ответы по снимку анкеты и сохраняет их.
// Валидация и кодек свободны от побочных эффектов, поэтому отмена контекста
// до записи просто отбрасывает результат. Ошибка валидации означает, что
// Response не создана и не изменена.
func (s *ResponseService) Submit(ctx context.Context, userID, questionnaireID uint, raw []submission.RawAnswer) (*entity.Response, error) {
	questionnaire, err := s.questionnaireService.GetWithQuestions(ctx, questionnaireID)
	if err != nil {
		return nil, fmt.Errorf("failed to load questionnaire #%d: %w", questionnaireID, err)
	}

	validated, err := submission.Validate(questionnaire, raw)
	if err != nil {
		return nil, err
	}

	response, err := s.responseRepo.Upsert(ctx, userID, questionnaireID, validated)
	if err != nil {
		return nil, fmt.Errorf("failed to save response: %w", err)
	}

	log.Printf("[ResponseService] Пользователь #%d отправил анкету #%d (%d ответов)", userID, questionnaireID, validated.Len())
	return response, nil
}

// GetOwn возвращает отправку текущего пользователя для анкеты.
// Чужие отправки через этот метод недоступны: user_id всегда берется
// из аутентифицированной сессии.
func (s *ResponseService) GetOwn(ctx context.Context, userID, questionnaireID uint) (*entity.Response, error) {
	return s.responseRepo.GetByUserAndQuestionnaire(ctx, userID, questionnaireID)
}

// CompletedQuestionnaireIDs возвращает ID анкет, на которые пользователь
// уже отвечал. Используется клиентом для выбора между "начать" и
// "обновить ответы".
func (s *ResponseService) CompletedQuestionnaireIDs(ctx context.Context, userID uint) (map[uint]struct{}, error) {
	responses, err := s.responseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make(map[uint]struct{}, len(responses))
	for _, r := range responses {
		ids[r.QuestionnaireID] = struct{}{}
	}
	return ids, nil
}
