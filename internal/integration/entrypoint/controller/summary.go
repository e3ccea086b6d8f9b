package controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/resto-reports/backend/internal/application/usecase/summary"
	domainerror "github.com/resto-reports/backend/internal/domain/error"
	"github.com/resto-reports/backend/internal/integration/entrypoint/dto"
)

// SummaryController handles derived-view endpoints: summaries, the month
// comparison and budget variance.
type SummaryController struct {
	summaryUseCase  *summary.GetSummaryUseCase
	simpleUseCase   *summary.GetSimpleSummaryUseCase
	compareUseCase  *summary.CompareMonthsUseCase
	varianceUseCase *summary.BudgetVarianceUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	summaryUseCase *summary.GetSummaryUseCase,
	simpleUseCase *summary.GetSimpleSummaryUseCase,
	compareUseCase *summary.CompareMonthsUseCase,
	varianceUseCase *summary.BudgetVarianceUseCase,
) *SummaryController {
	return &SummaryController{
		summaryUseCase:  summaryUseCase,
		simpleUseCase:   simpleUseCase,
		compareUseCase:  compareUseCase,
		varianceUseCase: varianceUseCase,
	}
}

// GetSummary handles GET /reports/:month/summary requests.
func (c *SummaryController) GetSummary(ctx *gin.Context) {
	input := summary.GetSummaryInput{
		UserID:   requestUserID(ctx),
		MonthKey: ctx.Param("month"),
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(output))
}

// GetSimpleSummary handles GET /reports/:month/summary/simple requests.
func (c *SummaryController) GetSimpleSummary(ctx *gin.Context) {
	input := summary.GetSimpleSummaryInput{
		UserID:   requestUserID(ctx),
		MonthKey: ctx.Param("month"),
	}

	output, err := c.simpleUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimpleSummaryResponse(output))
}

// CompareMonths handles GET /reports/comparison?months=... requests. The
// months parameter is a comma-separated list of month keys in display order.
func (c *SummaryController) CompareMonths(ctx *gin.Context) {
	monthsParam := ctx.Query("months")
	if monthsParam == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "months query parameter is required",
			Code:  string(domainerror.ErrCodeInvalidMonthKey),
		})
		return
	}

	monthKeys := strings.Split(monthsParam, ",")
	for i, key := range monthKeys {
		monthKeys[i] = strings.TrimSpace(key)
	}

	input := summary.CompareMonthsInput{
		UserID:    requestUserID(ctx),
		MonthKeys: monthKeys,
	}

	output, err := c.compareUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToComparisonResponse(output))
}

// GetBudgetVariance handles GET /reports/:month/budget/variance requests.
func (c *SummaryController) GetBudgetVariance(ctx *gin.Context) {
	input := summary.BudgetVarianceInput{
		UserID:   requestUserID(ctx),
		MonthKey: ctx.Param("month"),
	}

	output, err := c.varianceUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetVarianceResponse(output))
}
