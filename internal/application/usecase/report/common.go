// Package report contains the month-keyed report reconciliation use cases.
// It is the sole arbiter of how a stored report document is read, defaulted,
// and written back across the remote and local storage tiers.
package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/application/adapter"
	"github.com/resto-reports/backend/internal/domain/entity"
	domainerror "github.com/resto-reports/backend/internal/domain/error"
	"github.com/resto-reports/backend/internal/domain/valueobject"
)

// Source identifies which tier a loaded report came from.
type Source string

const (
	SourceRemote  Source = "remote"
	SourceLocal   Source = "local"
	SourceDefault Source = "default"
)

// Stores bundles the two storage tiers. Remote may be nil when the service
// runs without a database connection; Local is always present.
type Stores struct {
	Remote adapter.ReportStore
	Local  adapter.ReportStore
}

// localOnly reports whether operations for this user must skip the remote
// tier: either there is no authenticated user or no remote store at all.
func (s Stores) localOnly(userID uuid.UUID) bool {
	return userID == uuid.Nil || s.Remote == nil
}

// backfill merges every category map with its default template, recording
// the inserted keys on the report. It returns true when any default key was
// missing from the stored document, which is the signal to re-persist the
// healed report.
func backfill(rep *entity.Report) bool {
	var healed []string
	for _, field := range entity.AllStorageFields {
		merged, added := entity.MergeDefaults(field, rep.FieldMap(field))
		rep.SetFieldMap(field, merged)
		healed = append(healed, added...)
	}
	rep.HealedKeys = healed
	return len(healed) > 0
}

// loadWithFallback reads the report for (userID, monthKey), preferring the
// remote tier and falling back to the local tier on remote failure. The
// returned warning is non-empty when the fallback was taken. Absence on the
// chosen tier yields (nil, source, warning, nil).
func (s Stores) loadWithFallback(ctx context.Context, userID uuid.UUID, monthKey string) (*entity.Report, Source, string, error) {
	if s.localOnly(userID) {
		rep, err := s.Local.Load(ctx, userID, monthKey)
		if err != nil {
			return nil, SourceLocal, "", fmt.Errorf("failed to load report from local store: %w", err)
		}
		return rep, SourceLocal, "", nil
	}

	rep, err := s.Remote.Load(ctx, userID, monthKey)
	if err == nil {
		return rep, SourceRemote, "", nil
	}

	slog.Warn("Remote report load failed, falling back to local store",
		"month", monthKey,
		"error", err,
	)
	rep, localErr := s.Local.Load(ctx, userID, monthKey)
	if localErr != nil {
		return nil, SourceLocal, "", fmt.Errorf("failed to load report from both stores: %w", localErr)
	}
	return rep, SourceLocal, "remote store unavailable, showing locally saved data", nil
}

// persist writes the report to the tier the user operates on and, after a
// successful remote write, mirrors it into the local store. The mirror is
// best-effort: its errors are logged and swallowed.
func (s Stores) persist(ctx context.Context, userID uuid.UUID, rep *entity.Report) error {
	if s.localOnly(userID) {
		if err := s.Local.Save(ctx, rep); err != nil {
			return fmt.Errorf("failed to save report to local store: %w", err)
		}
		return nil
	}

	if err := s.Remote.Save(ctx, rep); err != nil {
		return domainerror.NewReportError(
			domainerror.ErrCodeRemoteStoreWrite,
			"failed to save report to remote store",
			err,
		)
	}
	if err := s.Local.Save(ctx, rep); err != nil {
		slog.Warn("Failed to mirror report into local store",
			"month", rep.MonthKey,
			"error", err,
		)
	}
	return nil
}

// loadForMutation resolves the current report for an item operation,
// constructing a fresh default-template document when no stored one exists.
// The created flag reports whether the document is new and unsaved.
func (s Stores) loadForMutation(ctx context.Context, userID uuid.UUID, monthKey string) (*entity.Report, bool, error) {
	rep, _, _, err := s.loadWithFallback(ctx, userID, monthKey)
	if err != nil {
		return nil, false, err
	}
	if rep == nil {
		return entity.NewDefaultReport(userID, monthKey), true, nil
	}
	backfill(rep)
	return rep, false, nil
}

// validateItemTarget checks the month key, category, and item name shared by
// every item operation.
func validateItemTarget(monthKey string, category entity.Category, name string) error {
	if !valueobject.ValidMonthKey(monthKey) {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidMonthKey,
			fmt.Sprintf("month key %q is not in YYYY-MM form", monthKey),
			domainerror.ErrInvalidMonthKey,
		)
	}
	if !category.IsValid() {
		return domainerror.NewReportError(
			domainerror.ErrCodeInvalidCategory,
			fmt.Sprintf("unknown category %q", category),
			domainerror.ErrInvalidCategory,
		)
	}
	if name == "" {
		return domainerror.NewReportError(
			domainerror.ErrCodeEmptyItemName,
			"item name must not be empty",
			domainerror.ErrEmptyItemName,
		)
	}
	return nil
}
