package model

import (
	"fleet/shared/model"
)

const (
	TableName  = "revenues"
	EntityName = "revenue"

	FieldID    = "id"
	FieldTotal = "total"
)

// Revenue is a branch-scoped running total of accrued income. The total only
// grows through the accrual operation.
type Revenue struct {
	ID    string  `db:"id"`
	Total float64 `db:"total"`
	model.Metadata
}
