package submission

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки кодека и валидатора. Все они локальные и восстановимые:
// отправка отклоняется с указанием конкретного вопроса, ничего не пишется в БД.
var (
	// ErrInvalidAnswerShape - форма значения не соответствует типу вопроса
	// (например, несколько значений для single-вопроса).
	ErrInvalidAnswerShape = errors.New("invalid answer shape")

	// ErrUnknownOption - значение не входит в список вариантов вопроса.
	// Защита от устаревшего или подмененного состояния клиента.
	ErrUnknownOption = errors.New("unknown option")

	// ErrMissingAnswer - на обязательный вопрос анкеты нет ответа.
	ErrMissingAnswer = errors.New("missing answer")

	// ErrEmptyAnswer - ответ присутствует, но значение пустое.
	// Относится ко всем типам вопросов, включая multi.
	ErrEmptyAnswer = errors.New("empty answer")

	// ErrOrphanAnswer - ответ ссылается на вопрос, которого нет в анкете.
	ErrOrphanAnswer = errors.New("answer references unknown question")
)

// AnswerError привязывает ошибку кодека/валидатора к конкретному вопросу
type AnswerError struct {
	QuestionID uint
	Value      string // Значение, вызвавшее ошибку (для ErrUnknownOption)
	Err        error
}

// Error реализует интерфейс error
func (e *AnswerError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("question #%d: %v (value %q)", e.QuestionID, e.Err, e.Value)
	}
	return fmt.Sprintf("question #%d: %v", e.QuestionID, e.Err)
}

// Unwrap возвращает базовую ошибку для errors.Is
func (e *AnswerError) Unwrap() error {
	return e.Err
}

// ValidationErrors собирает ошибки по всем вопросам отправки,
// чтобы клиент мог подсветить каждый проблемный вопрос разом
type ValidationErrors []*AnswerError

// Error реализует интерфейс error
func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// Unwrap позволяет errors.Is находить базовые ошибки внутри набора
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, e := range v {
		errs[i] = e
	}
	return errs
}

// ByQuestion возвращает ошибку для конкретного вопроса, если она есть
func (v ValidationErrors) ByQuestion(questionID uint) (*AnswerError, bool) {
	for _, e := range v {
		if e.QuestionID == questionID {
			return e, true
		}
	}
	return nil, false
}

// Code возвращает машиночитаемый код причины для ответа клиенту
func (e *AnswerError) Code() string {
	switch {
	case errors.Is(e.Err, ErrInvalidAnswerShape):
		return "invalid_answer_shape"
	case errors.Is(e.Err, ErrUnknownOption):
		return "unknown_option"
	case errors.Is(e.Err, ErrMissingAnswer):
		return "missing_answer"
	case errors.Is(e.Err, ErrEmptyAnswer):
		return "empty_answer"
	case errors.Is(e.Err, ErrOrphanAnswer):
		return "orphan_answer"
	default:
		return "invalid_answer"
	}
}
