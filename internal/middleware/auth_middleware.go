package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/questionnaire-api/internal/service"
	"github.com/yourusername/questionnaire-api/internal/session"
)

// SessionKey - ключ контекста Gin, под которым лежит состояние сессии
const SessionKey = "session"

// AuthMiddleware обеспечивает аутентификацию для защищенных маршрутов.
// Решение о доступе всегда принимает единственный предикат session.Decide:
// никакой продублированной по обработчикам логики.
type AuthMiddleware struct {
	authService *service.AuthService
}

// NewAuthMiddleware создает новый middleware аутентификации
func NewAuthMiddleware(authService *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// bearerToken извлекает токен из заголовка Authorization
func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// RequireAuth проверяет сессию и применяет предикат доступа для
// пользовательских маршрутов
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return m.guard(session.Route{})
}

// AdminOnly применяет предикат доступа для административных маршрутов.
// Используется ПОСЛЕ RequireAuth либо самостоятельно.
func (m *AuthMiddleware) AdminOnly() gin.HandlerFunc {
	return m.guard(session.Route{AdminOnly: true})
}

// guard строит состояние сессии для запроса и транслирует решение
// предиката в HTTP-ответ
func (m *AuthMiddleware) guard(route session.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := m.sessionState(c)

		switch session.Decide(state, route) {
		case session.Allow:
			c.Set(SessionKey, state)
			c.Set("user_id", state.User.ID)
			c.Set("is_admin", state.User.IsAdmin)
			c.Next()

		case session.RedirectLogin:
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":    "Unauthorized",
				"redirect": "/login",
			})
			c.Abort()

		case session.RedirectUserHome:
			c.JSON(http.StatusForbidden, gin.H{
				"error":    "Admin rights required",
				"redirect": "/questionnaires",
			})
			c.Abort()
		}
	}
}

// sessionState восстанавливает состояние сессии из bearer-токена запроса.
// Состояние строится заново на каждый запрос и нигде не разделяется.
func (m *AuthMiddleware) sessionState(c *gin.Context) session.State {
	// Если сессию уже проверил предыдущий middleware в цепочке,
	// повторно токен не разбираем
	if existing, ok := c.Get(SessionKey); ok {
		if state, ok := existing.(session.State); ok {
			return state
		}
	}

	token, ok := bearerToken(c)
	if !ok {
		return session.Anonymous()
	}
	return m.authService.CheckSession(c.Request.Context(), token)
}
