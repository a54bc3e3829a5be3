package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuestion_IsSelect(t *testing.T) {
	testCases := []struct {
		name     string
		qType    string
		expected bool
	}{
		{"single является select-вопросом", QuestionTypeSingle, true},
		{"multi является select-вопросом", QuestionTypeMulti, true},
		{"text не является select-вопросом", QuestionTypeText, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := &Question{Type: tc.qType}
			assert.Equal(t, tc.expected, q.IsSelect())
		})
	}
}

func TestQuestion_HasOption(t *testing.T) {
	// Arrange
	q := &Question{
		Type:    QuestionTypeSingle,
		Prompt:  "Ваш возраст?",
		Options: StringArray{"до 18", "18-25", "26-40"},
	}

	// Act & Assert
	assert.True(t, q.HasOption("18-25"), "Существующий вариант должен находиться")
	assert.False(t, q.HasOption("41-60"), "Отсутствующий вариант не должен находиться")
	assert.False(t, q.HasOption(""), "Пустая строка не является вариантом")
	assert.Equal(t, 3, q.OptionsCount())
}

func TestStringArray_ScanValue_RoundTrip(t *testing.T) {
	// Arrange
	original := StringArray{"Спорт", "Музыка"}

	// Act: сериализуем как при записи в JSONB и читаем обратно
	value, err := original.Value()
	require.NoError(t, err)

	var restored StringArray
	err = restored.Scan(value)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, original, restored, "Scan должен восстанавливать исходный массив")
}

func TestStringArray_Scan_HandlesNull(t *testing.T) {
	var arr StringArray
	err := arr.Scan(nil)

	require.NoError(t, err)
	assert.Equal(t, StringArray{}, arr, "NULL из базы должен давать пустой массив")
}

func TestStringArray_Value_EmptyArray(t *testing.T) {
	value, err := StringArray{}.Value()

	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), value, "Пустой массив должен сериализоваться как [], а не null")
}
