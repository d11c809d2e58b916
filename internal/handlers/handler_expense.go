package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/XpenseXpress/xpense_backend/internal/core/ports/services"
	"github.com/XpenseXpress/xpense_backend/internal/dto"
	"github.com/XpenseXpress/xpense_backend/internal/utils/pagination"
)

// ExpenseHandler exposes the expense-report endpoints.
type ExpenseHandler struct {
	service services.ExpenseSvcFacade
}

// NewExpenseHandler creates an ExpenseHandler over the given service facade.
func NewExpenseHandler(service services.ExpenseSvcFacade) *ExpenseHandler {
	return &ExpenseHandler{service: service}
}

func registerExpenseRoutes(rg *gin.RouterGroup, h *ExpenseHandler) {
	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.CreateExpenseReport)
		expenses.GET("", h.ListExpenseReports)
		expenses.GET("/:id", h.GetExpenseReportByID)
		expenses.PUT("/:id", h.UpdateExpenseReport)
		expenses.DELETE("/:id", h.DeleteExpenseReport)
	}
}

// CreateExpenseReport handles POST /api/expenses.
func (h *ExpenseHandler) CreateExpenseReport(c *gin.Context) {
	var req dto.CreateExpenseReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, err := h.service.CreateExpenseReport(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Expense report not found")
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Expense report created successfully",
		dto.CreatedExpenseReportData{ReportHeaderID: id}))
}

// ListExpenseReports handles GET /api/expenses with page/limit windowing.
func (h *ExpenseHandler) ListExpenseReports(c *gin.Context) {
	params := pagination.Parse(c.Query("page"), c.Query("limit"))

	headers, total, err := h.service.ListExpenseReports(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Expense report not found")
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Count:   &total,
		Data:    dto.ToExpenseHeaderResponses(headers),
		Pagination: &dto.Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: params.TotalPages(total),
		},
	})
}

// GetExpenseReportByID handles GET /api/expenses/:id.
func (h *ExpenseHandler) GetExpenseReportByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	header, lines, err := h.service.GetExpenseReportByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Expense report not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("", dto.ExpenseReportDetailResponse{
		Header: dto.ToExpenseHeaderResponse(header),
		Lines:  dto.ToExpenseLineResponses(lines),
	}))
}

// UpdateExpenseReport handles PUT /api/expenses/:id. Header fields are
// patched; a non-empty lines array replaces the full line set atomically.
func (h *ExpenseHandler) UpdateExpenseReport(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateExpenseReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.service.UpdateExpenseReport(c.Request.Context(), id, req); err != nil {
		respondError(c, err, "Expense report not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Expense report updated successfully",
		dto.CreatedExpenseReportData{ReportHeaderID: id}))
}

// DeleteExpenseReport handles DELETE /api/expenses/:id.
func (h *ExpenseHandler) DeleteExpenseReport(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteExpenseReport(c.Request.Context(), id); err != nil {
		respondError(c, err, "Expense report not found")
		return
	}

	c.JSON(http.StatusOK, dto.OK("Expense report deleted successfully", nil))
}

// parseIDParam reads the :id path segment. On failure it writes the 400
// envelope itself and reports ok=false.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid id parameter"))
		return 0, false
	}
	return id, true
}
