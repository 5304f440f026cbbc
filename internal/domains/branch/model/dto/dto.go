package dto

import (
	"fleet/internal/domains/branch/model"
	"fleet/shared"
	gDto "fleet/shared/dto"
	gModel "fleet/shared/model"
	"fleet/shared/timezone"

	"github.com/google/uuid"
)

type OpenBranchRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Address string `json:"address" validate:"required,max=255"`
}

func (c *OpenBranchRequest) ToModel(companyID, user string) model.Branch {
	return model.Branch{
		ID:        uuid.NewString(),
		Name:      c.Name,
		Address:   c.Address,
		CompanyID: companyID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBranchRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Address string `db:"address" json:"address" validate:"omitempty,max=255"`
}

type SetManagerRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
}

type BranchResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	CompanyID string  `json:"company_id"`
	ManagerID *string `json:"manager_id"`
	RevenueID *string `json:"revenue_id"`
	gDto.Metadata
}

func (r *BranchResponse) FromModel(model model.Branch) {
	r.ID = model.ID
	r.Name = model.Name
	r.Address = model.Address
	r.CompanyID = model.CompanyID
	r.ManagerID = model.ManagerID
	r.RevenueID = model.RevenueID
	r.Metadata.FromModel(model.Metadata)
}

type GetBranchesResponse struct {
	Branches  []BranchResponse `json:"branches"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetBranchesResponse) FromModels(models []model.Branch, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Branches = make([]BranchResponse, len(models))
	for i, mod := range models {
		r.Branches[i].FromModel(mod)
	}
}
