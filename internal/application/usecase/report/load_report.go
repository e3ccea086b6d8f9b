// Package report contains the month-keyed report reconciliation use cases.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/domain/entity"
	domainerror "github.com/resto-reports/backend/internal/domain/error"
	"github.com/resto-reports/backend/internal/domain/valueobject"
)

// LoadReportInput represents the input for loading a monthly report.
// A Nil UserID means no authenticated user: the load is served from the
// local store only.
type LoadReportInput struct {
	UserID   uuid.UUID
	MonthKey string
}

// LoadReportOutput represents the output of loading a monthly report.
// Report is never nil: a month with no stored document yields the default
// template. Warning carries a user-visible notice when the remote tier was
// unreachable and the local tier served the read.
type LoadReportOutput struct {
	Report  *entity.Report
	Source  Source
	Healed  bool
	Warning string
}

// LoadReportUseCase handles report loading with default backfill.
type LoadReportUseCase struct {
	stores Stores
}

// NewLoadReportUseCase creates a new LoadReportUseCase instance.
func NewLoadReportUseCase(stores Stores) *LoadReportUseCase {
	return &LoadReportUseCase{
		stores: stores,
	}
}

// Execute performs the report load.
//
// On a successful fetch every category map becomes the union of its default
// template and the stored map, stored values winning. When the backfill added
// keys the stored document was missing, the healed document is re-persisted;
// that re-save is best-effort and never fails the read.
func (uc *LoadReportUseCase) Execute(ctx context.Context, input LoadReportInput) (*LoadReportOutput, error) {
	if !valueobject.ValidMonthKey(input.MonthKey) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthKey,
			fmt.Sprintf("month key %q is not in YYYY-MM form", input.MonthKey),
			domainerror.ErrInvalidMonthKey,
		)
	}

	rep, source, warning, err := uc.stores.loadWithFallback(ctx, input.UserID, input.MonthKey)
	if err != nil {
		return nil, err
	}

	if rep == nil {
		// Absence is not an error: the caller gets a fresh default template
		// that becomes persisted on its first write.
		return &LoadReportOutput{
			Report: entity.NewDefaultReport(input.UserID, input.MonthKey),
			Source: SourceDefault,
		}, nil
	}

	healed := backfill(rep)
	if healed {
		if err := uc.stores.persist(ctx, input.UserID, rep); err != nil {
			slog.Warn("Failed to re-persist backfilled report",
				"month", input.MonthKey,
				"error", err,
			)
		}
	}

	return &LoadReportOutput{
		Report:  rep,
		Source:  source,
		Healed:  healed,
		Warning: warning,
	}, nil
}
