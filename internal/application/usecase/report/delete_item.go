// Package report contains the month-keyed report reconciliation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/domain/entity"
	domainerror "github.com/resto-reports/backend/internal/domain/error"
)

// DeleteItemInput represents the input for deleting a line item.
type DeleteItemInput struct {
	UserID   uuid.UUID
	MonthKey string
	Category entity.Category
	ItemName string
}

// DeleteItemOutput represents the output of deleting a line item.
type DeleteItemOutput struct {
	Report *entity.Report
}

// DeleteItemUseCase handles line item deletion.
type DeleteItemUseCase struct {
	stores Stores
}

// NewDeleteItemUseCase creates a new DeleteItemUseCase instance.
func NewDeleteItemUseCase(stores Stores) *DeleteItemUseCase {
	return &DeleteItemUseCase{
		stores: stores,
	}
}

// Execute performs the deletion. It fails when the item is not present.
// Deleting a default-template item does not remove it from the template, so
// the next load backfills it again at its template value.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, input DeleteItemInput) (*DeleteItemOutput, error) {
	if err := validateItemTarget(input.MonthKey, input.Category, input.ItemName); err != nil {
		return nil, err
	}

	rep, _, err := uc.stores.loadForMutation(ctx, input.UserID, input.MonthKey)
	if err != nil {
		return nil, err
	}

	if !rep.DeleteItem(input.Category, input.ItemName) {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeItemNotFound,
			fmt.Sprintf("item %q not found in category %q", input.ItemName, input.Category),
			domainerror.ErrItemNotFound,
		)
	}

	if err := uc.stores.persist(ctx, input.UserID, rep); err != nil {
		return nil, err
	}

	return &DeleteItemOutput{
		Report: rep,
	}, nil
}
