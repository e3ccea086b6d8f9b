// Package report contains the month-keyed report reconciliation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/domain/entity"
	domainerror "github.com/resto-reports/backend/internal/domain/error"
)

// RenameItemInput represents the input for renaming a line item.
type RenameItemInput struct {
	UserID   uuid.UUID
	MonthKey string
	Category entity.Category
	OldName  string
	NewName  string
}

// RenameItemOutput represents the output of renaming a line item.
type RenameItemOutput struct {
	Report *entity.Report
}

// RenameItemUseCase handles line item renames.
type RenameItemUseCase struct {
	stores Stores
}

// NewRenameItemUseCase creates a new RenameItemUseCase instance.
func NewRenameItemUseCase(stores Stores) *RenameItemUseCase {
	return &RenameItemUseCase{
		stores: stores,
	}
}

// Execute performs the rename. The rename must operate against the physical
// field the category aliases to, so a bar item renamed through the kitchen
// category still resolves correctly. It fails without touching storage when
// the old name is absent; when the new name already exists its prior value
// is overwritten. The tracked subcategory label follows the item.
func (uc *RenameItemUseCase) Execute(ctx context.Context, input RenameItemInput) (*RenameItemOutput, error) {
	if err := validateItemTarget(input.MonthKey, input.Category, input.OldName); err != nil {
		return nil, err
	}
	if input.NewName == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeEmptyItemName,
			"new item name must not be empty",
			domainerror.ErrEmptyItemName,
		)
	}

	rep, _, err := uc.stores.loadForMutation(ctx, input.UserID, input.MonthKey)
	if err != nil {
		return nil, err
	}

	if !rep.RenameItem(input.Category, input.OldName, input.NewName) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeItemNotFound,
			fmt.Sprintf("item %q not found in category %q", input.OldName, input.Category),
			domainerror.ErrItemNotFound,
		)
	}

	if err := uc.stores.persist(ctx, input.UserID, rep); err != nil {
		return nil, err
	}

	return &RenameItemOutput{
		Report: rep,
	}, nil
}
