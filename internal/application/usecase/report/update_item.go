// Package report contains the month-keyed report reconciliation use cases.
package report

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/resto-reports/backend/internal/domain/entity"
)

// UpdateItemInput represents the input for updating a line item's value.
type UpdateItemInput struct {
	UserID   uuid.UUID
	MonthKey string
	Category entity.Category
	ItemName string
	NewValue float64
}

// UpdateItemOutput represents the output of updating a line item.
type UpdateItemOutput struct {
	Report *entity.Report
	// Inserted reports that the item was absent and the update behaved as an
	// insert.
	Inserted bool
}

// UpdateItemUseCase handles line item value updates.
type UpdateItemUseCase struct {
	stores Stores
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(stores Stores) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		stores: stores,
	}
}

// Execute performs the value update. Update is effectively an upsert: a
// missing item is logged as a warning and then inserted.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	if err := validateItemTarget(input.MonthKey, input.Category, input.ItemName); err != nil {
		return nil, err
	}

	rep, _, err := uc.stores.loadForMutation(ctx, input.UserID, input.MonthKey)
	if err != nil {
		return nil, err
	}

	items := rep.FieldMap(input.Category.StorageField())
	_, existed := items[input.ItemName]
	if !existed {
		slog.Warn("Updating item that is not in the stored map, inserting it",
			"month", input.MonthKey,
			"category", input.Category,
			"item", input.ItemName,
		)
	}
	rep.SetItem(input.Category, input.ItemName, input.NewValue, "")

	if err := uc.stores.persist(ctx, input.UserID, rep); err != nil {
		return nil, err
	}

	return &UpdateItemOutput{
		Report:   rep,
		Inserted: !existed,
	}, nil
}
