// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/domain/entity"
)

// ReportStore is the storage port for monthly report documents. The remote
// PostgreSQL store and the local SQLite fallback both implement it; tier
// selection and fallback live in the reconciliation use cases, not here.
type ReportStore interface {
	// Load retrieves the report for (userID, monthKey). It returns (nil, nil)
	// when no document exists: absence is not an error.
	Load(ctx context.Context, userID uuid.UUID, monthKey string) (*entity.Report, error)

	// Save inserts or updates the report keyed by (UserID, MonthKey).
	Save(ctx context.Context, report *entity.Report) error

	// Exists reports whether a document is stored for (userID, monthKey).
	Exists(ctx context.Context, userID uuid.UUID, monthKey string) (bool, error)
}
