package submission

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
)

func TestEncode_SingleSelect_Scalar(t *testing.T) {
	// Arrange
	question := &entity.Question{
		ID:      1,
		Type:    entity.QuestionTypeSingle,
		Prompt:  "Какой у вас стаж?",
		Options: entity.StringArray{"до года", "1-3 года", "более 3 лет"},
	}

	// Act
	answer, err := Encode(question, Scalar("1-3 года"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, uint(1), answer.QuestionID)
	assert.Equal(t, entity.StringArray{"1-3 года"}, answer.Value, "скаляр должен нормализоваться к массиву из одного элемента")
}

func TestEncode_SingleSelect_SingletonList(t *testing.T) {
	// Arrange
	question := &entity.Question{
		ID:      1,
		Type:    entity.QuestionTypeSingle,
		Options: entity.StringArray{"A", "B"},
	}

	// Act
	answer, err := Encode(question, List("B"))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, entity.StringArray{"B"}, answer.Value)
}

func TestEncode_SingleSelect_MultipleValues(t *testing.T) {
	// Arrange
	question := &entity.Question{
		ID:      2,
		Type:    entity.QuestionTypeSingle,
		Options: entity.StringArray{"A", "B"},
	}

	// Act
	_, err := Encode(question, List("A", "B"))

	// Assert: несколько значений для single-вопроса недопустимы
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAnswerShape)

	var ansErr *AnswerError
	require.ErrorAs(t, err, &ansErr)
	assert.Equal(t, uint(2), ansErr.QuestionID)
}

func TestEncode_SingleSelect_UnknownOption(t *testing.T) {
	// Arrange
	question := &entity.Question{
		ID:      3,
		Type:    entity.QuestionTypeSingle,
		Options: entity.StringArray{"Red", "Blue"},
	}

	// Act
	_, err := Encode(question, Scalar("Green"))

	// Assert: защита от устаревшего/подмененного состояния клиента
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOption)

	var ansErr *AnswerError
	require.ErrorAs(t, err, &ansErr)
	assert.Equal(t, "Green", ansErr.Value)
}

func TestEncode_MultiSelect_UnknownOption(t *testing.T) {
	// Arrange
	question := &entity.Question{
		ID:      4,
		Type:    entity.QuestionTypeMulti,
		Options: entity.StringArray{"Red", "Blue"},
	}

	// Act
	_, err := Encode(question, List("Red", "Green"))

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestEncode_MultiSelect_EmptyListIsCodecValid(t *testing.T) {
	// Arrange
	question := &entity.Question{
		ID:      5,
		Type:    entity.QuestionTypeMulti,
		Options: entity.StringArray{"Red", "Blue"},
	}

	// Act: пустой список - забота валидатора, кодек его пропускает
	answer, err := Encode(question, List())

	// Assert
	require.NoError(t, err)
	assert.Empty(t, answer.Value)
}

func TestEncode_Text_NoOptionsConstraint(t *testing.T) {
	// Arrange
	question := &entity.Question{
		ID:     6,
		Type:   entity.QuestionTypeText,
		Prompt: "Расскажите о себе",
	}

	// Act
	answer, err := Encode(question, Scalar("произвольный текст"))

	// Assert: свободный текст не ограничен вариантами
	require.NoError(t, err)
	assert.Equal(t, entity.StringArray{"произвольный текст"}, answer.Value)
}

func TestEncode_UnknownQuestionType(t *testing.T) {
	// Arrange
	question := &entity.Question{ID: 7, Type: "rating"}

	// Act
	_, err := Encode(question, Scalar("5"))

	// Assert
	assert.ErrorIs(t, err, ErrInvalidAnswerShape)
}

func TestRoundTrip_MultiSelect(t *testing.T) {
	// Arrange
	question := &entity.Question{
		ID:      10,
		Type:    entity.QuestionTypeMulti,
		Prompt:  "Color?",
		Options: entity.StringArray{"Red", "Blue", "Green"},
	}
	raw := List("Red", "Blue")

	// Act
	answer, err := Encode(question, raw)
	require.NoError(t, err)
	decoded := Decode(question, &answer)

	// Assert: закон обратимости decode(encode(q, v)) == v
	assert.Equal(t, raw, decoded)
}

func TestRoundTrip_SingleAndText(t *testing.T) {
	// Arrange
	single := &entity.Question{ID: 11, Type: entity.QuestionTypeSingle, Options: entity.StringArray{"да", "нет"}}
	text := &entity.Question{ID: 12, Type: entity.QuestionTypeText}

	// Act & Assert: скаляр возвращается скаляром
	for _, tc := range []struct {
		q   *entity.Question
		raw RawValue
	}{
		{single, Scalar("да")},
		{text, Scalar("свободный ответ")},
	} {
		answer, err := Encode(tc.q, tc.raw)
		require.NoError(t, err)
		assert.Equal(t, tc.raw, Decode(tc.q, &answer))
	}
}

func TestRawValue_UnmarshalJSON(t *testing.T) {
	// Arrange & Act: строка
	var scalar RawValue
	require.NoError(t, json.Unmarshal([]byte(`"Red"`), &scalar))

	// Assert
	assert.False(t, scalar.IsList())
	assert.Equal(t, []string{"Red"}, scalar.Values())

	// Arrange & Act: массив
	var list RawValue
	require.NoError(t, json.Unmarshal([]byte(`["Red","Blue"]`), &list))

	// Assert
	assert.True(t, list.IsList())
	assert.Equal(t, []string{"Red", "Blue"}, list.Values())

	// Act: недопустимый тип
	var bad RawValue
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestRawValue_MarshalJSON_Inverse(t *testing.T) {
	// Arrange
	for _, tc := range []struct {
		value    RawValue
		expected string
	}{
		{Scalar("Red"), `"Red"`},
		{List("Red", "Blue"), `["Red","Blue"]`},
		{List(), `[]`},
	} {
		// Act
		data, err := json.Marshal(tc.value)

		// Assert
		require.NoError(t, err)
		assert.JSONEq(t, tc.expected, string(data))
	}
}
