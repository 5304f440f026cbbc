package dto

import (
	"fleet/internal/domains/revenue/model"
	"fleet/shared"
	gDto "fleet/shared/dto"
	gModel "fleet/shared/model"
	"fleet/shared/timezone"

	"github.com/google/uuid"
)

type CreateRevenueRequest struct {
	Total float64 `json:"total" validate:"omitempty,gte=0"`
}

func (c *CreateRevenueRequest) ToModel(user string) model.Revenue {
	return model.Revenue{
		ID:    uuid.NewString(),
		Total: c.Total,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRevenueRequest struct {
	Total float64 `db:"total" json:"total" validate:"omitempty,gte=0"`
}

// AccrueRevenueRequest is additive: the amount is added to the running
// total, never replacing it.
type AccrueRevenueRequest struct {
	Amount float64 `json:"amount" validate:"required,gte=0"`
}

type RevenueResponse struct {
	ID    string  `json:"id"`
	Total float64 `json:"total"`
	gDto.Metadata
}

func (r *RevenueResponse) FromModel(model model.Revenue) {
	r.ID = model.ID
	r.Total = model.Total
	r.Metadata.FromModel(model.Metadata)
}

type GetRevenuesResponse struct {
	Revenues  []RevenueResponse `json:"revenues"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetRevenuesResponse) FromModels(models []model.Revenue, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Revenues = make([]RevenueResponse, len(models))
	for i, mod := range models {
		r.Revenues[i].FromModel(mod)
	}
}
