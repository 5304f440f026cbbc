package dto

import (
	"fleet/internal/domains/employee/model"
	"fleet/shared"
	gDto "fleet/shared/dto"
	gModel "fleet/shared/model"
	"fleet/shared/timezone"

	"github.com/google/uuid"
)

type CreateEmployeeRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name"     validate:"required,max=100"`
	Surname  string `json:"surname"  validate:"required,max=100"`
	Position string `json:"position" validate:"required"`
}

// ToModel builds the employee record; the caller supplies the already-hashed
// password.
func (c *CreateEmployeeRequest) ToModel(hashedPassword, user string) model.Employee {
	return model.Employee{
		ID:       uuid.NewString(),
		Username: c.Username,
		Person: gModel.Person{
			Name:     c.Name,
			Surname:  c.Surname,
			Password: hashedPassword,
		},
		Position: c.Position,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateEmployeeRequest struct {
	Name     string `db:"name"     json:"name"     validate:"omitempty,max=100"`
	Surname  string `db:"surname"  json:"surname"  validate:"omitempty,max=100"`
	Position string `db:"position" json:"position" validate:"omitempty"`
}

type EmployeeResponse struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	Position string  `json:"position"`
	BranchID *string `json:"branch_id"`
	gDto.Metadata
}

func (r *EmployeeResponse) FromModel(model model.Employee) {
	r.ID = model.ID
	r.Username = model.Username
	r.Name = model.Name
	r.Surname = model.Surname
	r.Position = model.Position
	r.BranchID = model.BranchID
	r.Metadata.FromModel(model.Metadata)
}

type GetEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetEmployeesResponse) FromModels(models []model.Employee, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Employees = make([]EmployeeResponse, len(models))
	for i, mod := range models {
		r.Employees[i].FromModel(mod)
	}
}
