package postgres

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"

	"github.com/yourusername/questionnaire-api/internal/domain/entity"
)

// TestMigration_CoversEntityColumns сверяет колонки, которые GORM записывает
// при Create, с объявлениями таблиц в SQL-миграции. Расхождение сущности и
// схемы проявляется только в рантайме ("column does not exist"), поэтому
// ловим его статически по всем таблицам сразу.
func TestMigration_CoversEntityColumns(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "000001_init_schema.up.sql"))
	require.NoError(t, err)
	sql := strings.ToLower(string(raw))

	cache := &sync.Map{}
	for _, tc := range []struct {
		model interface{}
		table string
	}{
		{&entity.User{}, "users"},
		{&entity.Question{}, "questions"},
		{&entity.Questionnaire{}, "questionnaires"},
		{&entity.QuestionnaireQuestion{}, "questionnaire_questions"},
		{&entity.Response{}, "responses"},
		{&entity.Answer{}, "answers"},
	} {
		s, err := schema.Parse(tc.model, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		block := tableBlock(t, sql, tc.table)
		for _, column := range s.DBNames {
			assert.Contains(t, block, "\n    "+column+" ",
				"колонка %s.%s объявлена в сущности, но отсутствует в миграции", tc.table, column)
		}
	}
}

// tableBlock возвращает тело CREATE TABLE для таблицы
func tableBlock(t *testing.T, sql, table string) string {
	t.Helper()
	start := strings.Index(sql, "create table "+table+" (")
	require.NotEqual(t, -1, start, "таблица %s не объявлена в миграции", table)
	length := strings.Index(sql[start:], ";")
	require.NotEqual(t, -1, length)
	return sql[start : start+length]
}
