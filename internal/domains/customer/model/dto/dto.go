package dto

import (
	"fleet/internal/domains/customer/model"
	"fleet/shared"
	gDto "fleet/shared/dto"
	gModel "fleet/shared/model"
	"fleet/shared/timezone"

	"github.com/google/uuid"
)

type CreateCustomerRequest struct {
	Email    string `json:"email"    validate:"required,email,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Name     string `json:"name"     validate:"required,max=100"`
	Surname  string `json:"surname"  validate:"required,max=100"`
	Address  string `json:"address"  validate:"omitempty,max=255"`
}

// ToModel builds the customer record; the caller supplies the already-hashed
// password.
func (c *CreateCustomerRequest) ToModel(hashedPassword, user string) model.Customer {
	return model.Customer{
		ID:    uuid.NewString(),
		Email: c.Email,
		Person: gModel.Person{
			Name:     c.Name,
			Surname:  c.Surname,
			Password: hashedPassword,
		},
		Address: c.Address,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCustomerRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Surname string `db:"surname" json:"surname" validate:"omitempty,max=100"`
	Address string `db:"address" json:"address" validate:"omitempty,max=255"`
}

type CustomerResponse struct {
	ID       string  `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Surname  string  `json:"surname"`
	Address  string  `json:"address"`
	BranchID *string `json:"branch_id"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Email = model.Email
	r.Name = model.Name
	r.Surname = model.Surname
	r.Address = model.Address
	r.BranchID = model.BranchID
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
