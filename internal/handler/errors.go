package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/yourusername/questionnaire-api/internal/pkg/errors"
	"github.com/yourusername/questionnaire-api/internal/submission"
)

// fieldError - причина отклонения конкретного вопроса в теле ответа
type fieldError struct {
	QuestionID uint   `json:"question_id"`
	Code       string `json:"code"`
	Value      string `json:"value,omitempty"`
}

// handleServiceError единообразно транслирует ошибки сервисов в HTTP-ответы.
// Ошибки валидации возвращаются с разбивкой по вопросам, чтобы клиент мог
// подсветить каждое проблемное поле. Ошибки хранилища/сети - общий
// retryable-ответ: повторная отправка безопасна, upsert идемпотентен.
func handleServiceError(c *gin.Context, err error) {
	var validationErrs submission.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]fieldError, 0, len(validationErrs))
		for _, e := range validationErrs {
			fields = append(fields, fieldError{QuestionID: e.QuestionID, Code: e.Code(), Value: e.Value})
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": fields,
		})
		return
	}

	var answerErr *submission.AnswerError
	if errors.As(err, &answerErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": []fieldError{{QuestionID: answerErr.QuestionID, Code: answerErr.Code(), Value: answerErr.Value}},
		})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Conflict"})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
	default:
		log.Printf("[Handler] Внутренняя ошибка: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error, please retry"})
	}
}
