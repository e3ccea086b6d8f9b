// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/resto-reports/backend/internal/application/adapter"
	"github.com/resto-reports/backend/internal/domain/entity"
	"github.com/resto-reports/backend/internal/integration/persistence/model"
)

// reportRepository implements the adapter.ReportStore interface against the
// remote PostgreSQL database.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) adapter.ReportStore {
	return &reportRepository{
		db: db,
	}
}

// Load retrieves the report document for (userID, monthKey). Absence yields
// (nil, nil): a month without data is not an error.
func (r *reportRepository) Load(ctx context.Context, userID uuid.UUID, monthKey string) (*entity.Report, error) {
	var reportModel model.ReportModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, monthKey).
		First(&reportModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return reportModel.ToEntity(), nil
}

// Save inserts or updates the document keyed by (UserID, MonthKey). The
// check-then-act is not transactional; overlapping saves for the same key
// resolve last-write-wins at row-update granularity.
func (r *reportRepository) Save(ctx context.Context, rep *entity.Report) error {
	var existing model.ReportModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", rep.UserID, rep.MonthKey).
		First(&existing)

	reportModel := model.ReportFromEntity(rep)
	reportModel.UpdatedAt = time.Now().UTC()

	if result.Error != nil {
		if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}
		reportModel.ID = uuid.New()
		reportModel.CreatedAt = reportModel.UpdatedAt
		return r.db.WithContext(ctx).Create(reportModel).Error
	}

	reportModel.ID = existing.ID
	reportModel.CreatedAt = existing.CreatedAt
	return r.db.WithContext(ctx).Save(reportModel).Error
}

// Exists reports whether a document is stored for (userID, monthKey).
func (r *reportRepository) Exists(ctx context.Context, userID uuid.UUID, monthKey string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ReportModel{}).
		Where("user_id = ? AND date = ?", userID, monthKey).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
