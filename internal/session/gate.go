package session

import (
	"github.com/yourusername/questionnaire-api/internal/domain/entity"
)

// Состояния сессии. Состояние - значение, а не разделяемый объект:
// переходы возвращают новое состояние, старое никогда не мутируется.
type Status string

const (
	StatusAnonymous      Status = "anonymous"
	StatusAuthenticating Status = "authenticating"
	StatusAuthenticated  Status = "authenticated"
	StatusAuthFailed     Status = "auth_failed"
)

// State представляет текущее состояние сессии
type State struct {
	Status Status
	User   *entity.User // Заполнен только в состоянии Authenticated
	Reason string       // Причина отказа, только для AuthFailed
}

// Anonymous возвращает начальное состояние
func Anonymous() State {
	return State{Status: StatusAnonymous}
}

// CheckSession начинает проверку сохраненного токена: Anonymous -> Authenticating
func (s State) CheckSession() State {
	return State{Status: StatusAuthenticating}
}

// Success завершает проверку успехом: Authenticating -> Authenticated
func (s State) Success(user *entity.User) State {
	return State{Status: StatusAuthenticated, User: user}
}

// Failure завершает проверку отказом: Authenticating -> AuthFailed.
// Сохраненный токен при этом считается сброшенным - следующий переход
// через Clear возвращает в Anonymous.
func (s State) Failure(reason string) State {
	return State{Status: StatusAuthFailed, Reason: reason}
}

// Clear сбрасывает отказ: AuthFailed -> Anonymous
func (s State) Clear() State {
	return State{Status: StatusAnonymous}
}

// Logout завершает сессию: Authenticated -> Anonymous
func (s State) Logout() State {
	return State{Status: StatusAnonymous}
}

// IsAuthenticated возвращает true для аутентифицированной сессии
func (s State) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated && s.User != nil
}

// IsAdmin возвращает true для аутентифицированного администратора
func (s State) IsAdmin() bool {
	return s.IsAuthenticated() && s.User.IsAdmin
}

// Route описывает требования защищенной точки входа
type Route struct {
	AdminOnly bool
}

// Decision - решение предиката доступа
type Decision int

const (
	// Allow - доступ разрешен
	Allow Decision = iota
	// RedirectLogin - неаутентифицированный запрос, отправить на вход
	RedirectLogin
	// RedirectUserHome - не-администратор на админском маршруте,
	// отправить на пользовательский список анкет
	RedirectUserHome
)

// Decide - единственный предикат доступа для всех защищенных точек входа.
// Правило применяется одинаково независимо от того, какой маршрут его вызвал:
// администратор на пользовательском маршруте проходит без редиректа.
func Decide(s State, route Route) Decision {
	if !s.IsAuthenticated() {
		return RedirectLogin
	}
	if route.AdminOnly && !s.IsAdmin() {
		return RedirectUserHome
	}
	return Allow
}
