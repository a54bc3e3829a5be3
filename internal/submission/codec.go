package submission

import (
	"encoding/json"
	"fmt"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
)

// RawValue представляет сырое значение формы: скаляр для single/text
// или список строк для multi. В JSON принимает как строку, так и массив.
type RawValue struct {
	values []string
	isList bool
}

// Scalar создает скалярное значение
func Scalar(v string) RawValue {
	return RawValue{values: []string{v}}
}

// List создает значение-список
func List(values ...string) RawValue {
	if values == nil {
		values = []string{}
	}
	return RawValue{values: values, isList: true}
}

// IsList возвращает true, если значение пришло списком
func (v RawValue) IsList() bool {
	return v.isList
}

// Values возвращает значения в виде списка (для скаляра - список из одного элемента)
func (v RawValue) Values() []string {
	return v.values
}

// Len возвращает количество значений
func (v RawValue) Len() int {
	return len(v.values)
}

// UnmarshalJSON принимает строку или массив строк
func (v *RawValue) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*v = Scalar(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("raw value must be a string or an array of strings: %w", err)
	}
	*v = List(list...)
	return nil
}

// MarshalJSON - точная инверсия UnmarshalJSON: скаляр сериализуется строкой,
// список - массивом
func (v RawValue) MarshalJSON() ([]byte, error) {
	if v.isList {
		return json.Marshal(v.values)
	}
	if len(v.values) == 0 {
		return json.Marshal("")
	}
	return json.Marshal(v.values[0])
}

// Encode нормализует сырое значение формы в Answer согласно типу вопроса.
// Пустое значение здесь допустимо для любого типа: пустота - забота
// валидатора, а не кодека.
func Encode(q *entity.Question, raw RawValue) (entity.Answer, error) {
	switch q.Type {
	case entity.QuestionTypeSingle, entity.QuestionTypeText:
		// Скаляр или список из одного элемента нормализуются к одному элементу
		if raw.Len() > 1 {
			return entity.Answer{}, &AnswerError{QuestionID: q.ID, Err: ErrInvalidAnswerShape}
		}
	case entity.QuestionTypeMulti:
		// Форма всегда допустима, проверяем только принадлежность вариантам
	default:
		return entity.Answer{}, &AnswerError{QuestionID: q.ID, Err: ErrInvalidAnswerShape}
	}

	// Для select-вопросов каждое значение обязано входить в список вариантов
	if q.IsSelect() {
		for _, val := range raw.Values() {
			if !q.HasOption(val) {
				return entity.Answer{}, &AnswerError{QuestionID: q.ID, Value: val, Err: ErrUnknownOption}
			}
		}
	}

	// ID ответу присваивает хранилище при записи: кодек детерминирован
	return entity.Answer{
		QuestionID: q.ID,
		Value:      entity.StringArray(raw.Values()),
	}, nil
}

// Decode преобразует сохраненный Answer обратно в значение для отображения.
// Инверсия Encode: multi остается списком, single/text разворачивается в скаляр.
func Decode(q *entity.Question, a *entity.Answer) RawValue {
	if q.Type == entity.QuestionTypeMulti {
		return List(a.Value...)
	}
	if len(a.Value) == 0 {
		return Scalar("")
	}
	return Scalar(a.Value[0])
}
