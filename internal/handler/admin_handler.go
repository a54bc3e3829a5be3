package handler

import (
	"fmt"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/questionnaire-api/internal/handler/dto"
	"github.com/yourusername/questionnaire-api/internal/service"
)

// AdminHandler обрабатывает административные запросы: обзор пользователей
// и детализация их ответов
type AdminHandler struct {
	reportService *service.ReportService
	userService   *service.UserService
}

// NewAdminHandler создает новый административный обработчик
func NewAdminHandler(reportService *service.ReportService, userService *service.UserService) *AdminHandler {
	return &AdminHandler{
		reportService: reportService,
		userService:   userService,
	}
}

// ListUsers возвращает пользователей со счетчиками заполненных анкет.
// Пользователи без единой отправки в списке не появляются.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	counts, err := h.reportService.CompletionCounts(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	rows := make([]dto.UserCompletionResponse, 0, len(counts))
	for userID, count := range counts {
		user, err := h.userService.GetByID(c.Request.Context(), userID)
		if err != nil {
			// Отправка есть, а пользователя уже нет - показываем без имени,
			// а не роняем весь список
			log.Printf("[AdminHandler] WARNING: Пользователь #%d со счетчиком %d не найден: %v", userID, count, err)
			rows = append(rows, dto.UserCompletionResponse{UserID: userID, CompletedCount: count})
			continue
		}
		rows = append(rows, dto.UserCompletionResponse{
			UserID:         user.ID,
			Username:       user.Username,
			CompletedCount: count,
		})
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].UserID < rows[j].UserID })
	c.JSON(http.StatusOK, rows)
}

// UserResponses возвращает развернутые ответы пользователя
func (h *AdminHandler) UserResponses(c *gin.Context) {
	userID := c.MustGet("targetUserID").(uint)

	reports, err := h.reportService.UserResponses(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// ExportUserResponses выгружает ответы пользователя в Excel
func (h *AdminHandler) ExportUserResponses(c *gin.Context) {
	userID := c.MustGet("targetUserID").(uint)

	user, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	reports, err := h.reportService.UserResponses(c.Request.Context(), userID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"responses_%s.xlsx\"", user.Username))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Ответы"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[AdminHandler] Ошибка создания StreamWriter: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel file"})
		return
	}

	headers := []interface{}{"Анкета", "Вопрос", "Ответ", "Обновлено"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[AdminHandler] Ошибка записи заголовков: %v", err)
	}

	rowNum := 2
	for _, report := range reports {
		for _, answer := range report.Answers {
			cell := fmt.Sprintf("A%d", rowNum)
			row := []interface{}{
				sanitizeForExcel(report.QuestionnaireName),
				sanitizeForExcel(answer.Prompt),
				sanitizeForExcel(strings.Join(answer.Value.Values(), ", ")),
				report.UpdatedAt.Format("2006-01-02 15:04:05"),
			}
			if err := sw.SetRow(cell, row); err != nil {
				log.Printf("[AdminHandler] Ошибка записи строки %d: %v", rowNum, err)
			}
			rowNum++
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[AdminHandler] Ошибка при Flush: %v", err)
	}

	if err := f.Write(c.Writer); err != nil {
		log.Printf("[AdminHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
