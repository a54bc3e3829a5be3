package submission

import (
	"github.com/yourusername/questionnaire-api/internal/domain/entity"
)

// RawAnswer представляет ответ на один вопрос в том виде, в каком он
// приходит от клиента
type RawAnswer struct {
	QuestionID uint     `json:"question_id"`
	Value      RawValue `json:"value"`
}

// ValidatedAnswerSet - набор ответов, прошедший валидацию по анкете.
// Конструируется только валидатором: путь записи хранилища принимает
// исключительно этот тип, непроверенные ответы сохранить невозможно.
type ValidatedAnswerSet struct {
	answers []entity.Answer
}

// Answers возвращает проверенные ответы в порядке вопросов анкеты
func (s ValidatedAnswerSet) Answers() []entity.Answer {
	return s.answers
}

// Len возвращает количество ответов в наборе
func (s ValidatedAnswerSet) Len() int {
	return len(s.answers)
}

// Validate проверяет полный набор сырых ответов по списку вопросов анкеты.
// Все вопросы обязательны - понятия "необязательный вопрос" нет. Ошибки
// собираются по всем вопросам сразу, чтобы клиент мог подсветить каждый.
// Функция чистая: никакого I/O, результат детерминирован.
func Validate(questionnaire *entity.Questionnaire, raw []RawAnswer) (ValidatedAnswerSet, error) {
	byQuestion := make(map[uint]RawAnswer, len(raw))
	var errs ValidationErrors

	for _, ra := range raw {
		if _, ok := questionnaire.QuestionByID(ra.QuestionID); !ok {
			// Ответ на вопрос, которого в анкете нет - устаревший клиент
			errs = append(errs, &AnswerError{QuestionID: ra.QuestionID, Err: ErrOrphanAnswer})
			continue
		}
		if _, dup := byQuestion[ra.QuestionID]; dup {
			errs = append(errs, &AnswerError{QuestionID: ra.QuestionID, Err: ErrInvalidAnswerShape})
			continue
		}
		byQuestion[ra.QuestionID] = ra
	}

	answers := make([]entity.Answer, 0, len(questionnaire.Questions))
	for i := range questionnaire.Questions {
		q := &questionnaire.Questions[i]

		ra, ok := byQuestion[q.ID]
		if !ok {
			errs = append(errs, &AnswerError{QuestionID: q.ID, Err: ErrMissingAnswer})
			continue
		}

		// Пустое значение недопустимо для любого типа вопроса, включая multi:
		// "ответил ничем" считается неответом. Для single/text пустая строка
		// равнозначна отсутствию значения.
		if ra.Value.Len() == 0 || (q.Type != entity.QuestionTypeMulti && ra.Value.Len() == 1 && ra.Value.Values()[0] == "") {
			errs = append(errs, &AnswerError{QuestionID: q.ID, Err: ErrEmptyAnswer})
			continue
		}

		answer, err := Encode(q, ra.Value)
		if err != nil {
			var ansErr *AnswerError
			if e, ok := err.(*AnswerError); ok {
				ansErr = e
			} else {
				ansErr = &AnswerError{QuestionID: q.ID, Err: err}
			}
			errs = append(errs, ansErr)
			continue
		}

		answers = append(answers, answer)
	}

	if len(errs) > 0 {
		return ValidatedAnswerSet{}, errs
	}
	return ValidatedAnswerSet{answers: answers}, nil
}
