package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/questionnaire-api/internal/handler/dto"
	"github.com/yourusername/questionnaire-api/internal/service"
)

// QuestionnaireHandler обрабатывает запросы, связанные с анкетами
type QuestionnaireHandler struct {
	questionnaireService *service.QuestionnaireService
	responseService      *service.ResponseService
}

// NewQuestionnaireHandler создает новый обработчик анкет
func NewQuestionnaireHandler(
	questionnaireService *service.QuestionnaireService,
	responseService *service.ResponseService,
) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		questionnaireService: questionnaireService,
		responseService:      responseService,
	}
}

// List возвращает список анкет
func (h *QuestionnaireHandler) List(c *gin.Context) {
	questionnaires, err := h.questionnaireService.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListQuestionnaireResponse(questionnaires))
}

// Get возвращает анкету с вопросами в порядке приоритета
func (h *QuestionnaireHandler) Get(c *gin.Context) {
	questionnaireID := c.MustGet("questionnaireID").(uint)

	questionnaire, err := h.questionnaireService.GetWithQuestions(c.Request.Context(), questionnaireID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionnaireResponse(questionnaire))
}

// Completed возвращает ID анкет, на которые текущий пользователь уже отвечал.
// Клиент по этому списку выбирает между "начать" и "обновить ответы".
func (h *QuestionnaireHandler) Completed(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	ids, err := h.responseService.CompletedQuestionnaireIDs(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	completed := make([]uint, 0, len(ids))
	for id := range ids {
		completed = append(completed, id)
	}
	c.JSON(http.StatusOK, gin.H{"completed": completed})
}
