package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/questionnaire-api/internal/handler/dto"
	"github.com/yourusername/questionnaire-api/internal/service"
	"github.com/yourusername/questionnaire-api/internal/submission"
)

// ResponseHandler обрабатывает отправку ответов на анкеты
type ResponseHandler struct {
	responseService      *service.ResponseService
	questionnaireService *service.QuestionnaireService
}

// NewResponseHandler создает новый обработчик отправок
func NewResponseHandler(
	responseService *service.ResponseService,
	questionnaireService *service.QuestionnaireService,
) *ResponseHandler {
	return &ResponseHandler{
		responseService:      responseService,
		questionnaireService: questionnaireService,
	}
}

// SubmitRequest представляет запрос на отправку ответов
type SubmitRequest struct {
	Answers []submission.RawAnswer `json:"answers" binding:"required"`
}

// Submit обрабатывает отправку анкеты. Повторная отправка обновляет
// существующую Response, не создавая дубликата.
func (h *ResponseHandler) Submit(c *gin.Context) {
	questionnaireID := c.MustGet("questionnaireID").(uint)
	userID := c.MustGet("user_id").(uint)

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.responseService.Submit(c.Request.Context(), userID, questionnaireID, req.Answers)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":               response.ID,
		"questionnaire_id": response.QuestionnaireID,
		"created_at":       response.CreatedAt,
		"updated_at":       response.UpdatedAt,
	})
}

// GetOwn возвращает отправку текущего пользователя со значениями,
// декодированными для повторного отображения формы
func (h *ResponseHandler) GetOwn(c *gin.Context) {
	questionnaireID := c.MustGet("questionnaireID").(uint)
	userID := c.MustGet("user_id").(uint)

	response, err := h.responseService.GetOwn(c.Request.Context(), userID, questionnaireID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	questionnaire, err := h.questionnaireService.GetWithQuestions(c.Request.Context(), questionnaireID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewResponseDetail(response, questionnaire))
}
