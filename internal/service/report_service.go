package service

import (
	"context"
	"fmt"
	"time"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
	"github.com/yourusername/questionnaire-api/internal/domain/repository"
	"github.com/yourusername/questionnaire-api/internal/submission"
)

// ExpandedAnswer - ответ, соединенный со своим вопросом для отображения
type ExpandedAnswer struct {
	QuestionID uint                `json:"question_id"`
	Prompt     string              `json:"prompt"`
	Value      submission.RawValue `json:"value"`
}

// ExpandedResponse - отправка анкеты, развернутая в подписанные вопросами
// ответы в порядке вопросов анкеты
type ExpandedResponse struct {
	ResponseID        string           `json:"response_id"`
	QuestionnaireID   uint             `json:"questionnaire_id"`
	QuestionnaireName string           `json:"questionnaire_name"`
	Answers           []ExpandedAnswer `json:"answers"`
	SubmittedAt       time.Time        `json:"submitted_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ReportService - агрегатор для административного обзора: счетчики
// заполненных анкет по пользователям и детализация ответов.
// Оба представления - чистые проекции над снимком хранилища.
type ReportService struct {
	responseRepo         repository.ResponseRepository
	questionnaireService *QuestionnaireService
}

// NewReportService создает новый сервис отчетов
func NewReportService(
	responseRepo repository.ResponseRepository,
	questionnaireService *QuestionnaireService,
) *ReportService {
	return &ReportService{
		responseRepo:         responseRepo,
		questionnaireService: questionnaireService,
	}
}

// CompletionCounts возвращает количество заполненных анкет по каждому
// пользователю. Пользователи без единой отправки в карте отсутствуют -
// админский список показывает только тех, кто отвечал.
func (s *ReportService) CompletionCounts(ctx context.Context) (map[uint]int, error) {
	responses, err := s.responseRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[uint]map[uint]struct{})
	for _, r := range responses {
		if seen[r.UserID] == nil {
			seen[r.UserID] = make(map[uint]struct{})
		}
		seen[r.UserID][r.QuestionnaireID] = struct{}{}
	}

	counts := make(map[uint]int, len(seen))
	for userID, questionnaires := range seen {
		counts[userID] = len(questionnaires)
	}
	return counts, nil
}

// ExpandResponse разворачивает отправку в подписанные вопросами ответы
// в порядке вопросов анкеты, декодируя значения кодеком. Ответ на вопрос,
// которого в анкете больше нет, - ошибка схемы: о ней сообщается, а не
// молча отбрасывается.
func (s *ReportService) ExpandResponse(response *entity.Response, questionnaire *entity.Questionnaire) ([]ExpandedAnswer, error) {
	for _, a := range response.Answers {
		if _, ok := questionnaire.QuestionByID(a.QuestionID); !ok {
			return nil, &submission.AnswerError{QuestionID: a.QuestionID, Err: submission.ErrOrphanAnswer}
		}
	}

	expanded := make([]ExpandedAnswer, 0, len(response.Answers))
	for i := range questionnaire.Questions {
		q := &questionnaire.Questions[i]
		answer, ok := response.AnswerFor(q.ID)
		if !ok {
			continue
		}
		expanded = append(expanded, ExpandedAnswer{
			QuestionID: q.ID,
			Prompt:     q.Prompt,
			Value:      submission.Decode(q, answer),
		})
	}
	return expanded, nil
}

// UserResponses возвращает все отправки пользователя, развернутые
// для административного просмотра
func (s *ReportService) UserResponses(ctx context.Context, userID uint) ([]ExpandedResponse, error) {
	responses, err := s.responseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]ExpandedResponse, 0, len(responses))
	for i := range responses {
		r := &responses[i]

		questionnaire, err := s.questionnaireService.GetWithQuestions(ctx, r.QuestionnaireID)
		if err != nil {
			return nil, fmt.Errorf("failed to load questionnaire #%d for response %s: %w", r.QuestionnaireID, r.ID, err)
		}

		answers, err := s.ExpandResponse(r, questionnaire)
		if err != nil {
			return nil, err
		}

		result = append(result, ExpandedResponse{
			ResponseID:        r.ID,
			QuestionnaireID:   questionnaire.ID,
			QuestionnaireName: questionnaire.Name,
			Answers:           answers,
			SubmittedAt:       r.CreatedAt,
			UpdatedAt:         r.UpdatedAt,
		})
	}
	return result, nil
}
