package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/application/usecase/report"
	"github.com/resto-reports/backend/internal/domain/entity"
	domainerror "github.com/resto-reports/backend/internal/domain/error"
	"github.com/resto-reports/backend/internal/integration/entrypoint/dto"
	"github.com/resto-reports/backend/internal/integration/entrypoint/middleware"
)

// ReportController handles monthly report endpoints. Requests without an
// authenticated user operate on the local store only.
type ReportController struct {
	loadUseCase      *report.LoadReportUseCase
	saveUseCase      *report.SaveReportUseCase
	addItemUseCase   *report.AddItemUseCase
	renameUseCase    *report.RenameItemUseCase
	updateUseCase    *report.UpdateItemUseCase
	deleteUseCase    *report.DeleteItemUseCase
	setBudgetUseCase *report.SetBudgetUseCase
}

// NewReportController creates a new report controller instance.
func NewReportController(
	loadUseCase *report.LoadReportUseCase,
	saveUseCase *report.SaveReportUseCase,
	addItemUseCase *report.AddItemUseCase,
	renameUseCase *report.RenameItemUseCase,
	updateUseCase *report.UpdateItemUseCase,
	deleteUseCase *report.DeleteItemUseCase,
	setBudgetUseCase *report.SetBudgetUseCase,
) *ReportController {
	return &ReportController{
		loadUseCase:      loadUseCase,
		saveUseCase:      saveUseCase,
		addItemUseCase:   addItemUseCase,
		renameUseCase:    renameUseCase,
		updateUseCase:    updateUseCase,
		deleteUseCase:    deleteUseCase,
		setBudgetUseCase: setBudgetUseCase,
	}
}

// Load handles GET /reports/:month requests.
func (c *ReportController) Load(ctx *gin.Context) {
	input := report.LoadReportInput{
		UserID:   requestUserID(ctx),
		MonthKey: ctx.Param("month"),
	}

	output, err := c.loadUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLoadReportResponse(output))
}

// Save handles PUT /reports/:month requests.
func (c *ReportController) Save(ctx *gin.Context) {
	var req dto.SaveReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyItemName),
		})
		return
	}

	input := dto.ToSaveReportInput(req)
	input.UserID = requestUserID(ctx)
	input.MonthKey = ctx.Param("month")

	output, err := c.saveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output.Report))
}

// AddItem handles POST /reports/:month/items requests.
func (c *ReportController) AddItem(ctx *gin.Context) {
	var req dto.AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyItemName),
		})
		return
	}

	input := report.AddItemInput{
		UserID:       requestUserID(ctx),
		MonthKey:     ctx.Param("month"),
		Category:     entity.Category(req.Category),
		ItemName:     req.Name,
		InitialValue: req.InitialValue,
		Subsection:   req.Subsection,
	}

	output, err := c.addItemUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToReportResponse(output.Report))
}

// RenameItem handles POST /reports/:month/items/rename requests.
func (c *ReportController) RenameItem(ctx *gin.Context) {
	var req dto.RenameItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyItemName),
		})
		return
	}

	input := report.RenameItemInput{
		UserID:   requestUserID(ctx),
		MonthKey: ctx.Param("month"),
		Category: entity.Category(req.Category),
		OldName:  req.OldName,
		NewName:  req.NewName,
	}

	output, err := c.renameUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output.Report))
}

// UpdateItem handles PATCH /reports/:month/items requests.
func (c *ReportController) UpdateItem(ctx *gin.Context) {
	var req dto.UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyItemName),
		})
		return
	}

	input := report.UpdateItemInput{
		UserID:   requestUserID(ctx),
		MonthKey: ctx.Param("month"),
		Category: entity.Category(req.Category),
		ItemName: req.Name,
		NewValue: req.Value,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output.Report))
}

// DeleteItem handles DELETE /reports/:month/items requests.
func (c *ReportController) DeleteItem(ctx *gin.Context) {
	var req dto.DeleteItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyItemName),
		})
		return
	}

	input := report.DeleteItemInput{
		UserID:   requestUserID(ctx),
		MonthKey: ctx.Param("month"),
		Category: entity.Category(req.Category),
		ItemName: req.Name,
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output.Report))
}

// SetBudget handles PUT /reports/:month/budget requests.
func (c *ReportController) SetBudget(ctx *gin.Context) {
	var req dto.SetBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidMonthKey),
		})
		return
	}

	input := report.SetBudgetInput{
		UserID:   requestUserID(ctx),
		MonthKey: ctx.Param("month"),
		Budget: entity.Budget{
			TargetRevenue:  req.TargetRevenue,
			TargetExpenses: req.TargetExpenses,
			TargetProfit:   req.TargetProfit,
		},
	}

	output, err := c.setBudgetUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToReportResponse(output.Report))
}

// requestUserID resolves the user from the context; anonymous requests get
// the nil UUID, which the use cases route to the local store.
func requestUserID(ctx *gin.Context) uuid.UUID {
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return userID
	}
	return uuid.Nil
}

// handleReportError handles report errors and returns appropriate HTTP responses.
func handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		ctx.JSON(statusCodeForReportError(reportErr.Code), dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForReportError maps report error codes to HTTP status codes.
func statusCodeForReportError(code domainerror.ReportErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidMonthKey,
		domainerror.ErrCodeInvalidCategory,
		domainerror.ErrCodeEmptyItemName:
		return http.StatusBadRequest
	case domainerror.ErrCodeItemNotFound,
		domainerror.ErrCodeReportNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeRemoteStoreWrite:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
