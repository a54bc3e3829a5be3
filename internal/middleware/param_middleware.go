package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ExtractUintParam разбирает числовой параметр пути и кладет его в контекст
// запроса под ключом contextKey. Нечисловое или отрицательное значение
// отклоняется сразу, до вызова обработчика.
func ExtractUintParam(param, contextKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Param(param)
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Parameter '" + param + "' must be a positive integer",
			})
			c.Abort()
			return
		}
		c.Set(contextKey, uint(value))
		c.Next()
	}
}
