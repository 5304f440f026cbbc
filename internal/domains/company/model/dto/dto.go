package dto

import (
	"fleet/internal/domains/company/model"
	gDto "fleet/shared/dto"
	gModel "fleet/shared/model"
	"fleet/shared/timezone"

	"github.com/google/uuid"
)

type CreateCompanyRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Domain  string `json:"domain"  validate:"omitempty,max=100"`
	Address string `json:"address" validate:"required,max=255"`
	Owner   string `json:"owner"   validate:"required,max=100"`
}

func (c *CreateCompanyRequest) ToModel(user string) model.Company {
	return model.Company{
		ID:      uuid.NewString(),
		Name:    c.Name,
		Domain:  c.Domain,
		Address: c.Address,
		Owner:   c.Owner,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCompanyRequest struct {
	Name    string `db:"name"    json:"name"    validate:"omitempty,max=100"`
	Domain  string `db:"domain"  json:"domain"  validate:"omitempty,max=100"`
	Address string `db:"address" json:"address" validate:"omitempty,max=255"`
	Owner   string `db:"owner"   json:"owner"   validate:"omitempty,max=100"`
}

type UploadLogoRequest struct {
	Logo string `json:"logo" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=2"`
}

type CompanyResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Domain  string `json:"domain"`
	Address string `json:"address"`
	Owner   string `json:"owner"`
	LogoURL string `json:"logo_url"`
	gDto.Metadata
}

func (r *CompanyResponse) FromModel(model model.Company) {
	r.ID = model.ID
	r.Name = model.Name
	r.Domain = model.Domain
	r.Address = model.Address
	r.Owner = model.Owner
	r.LogoURL = model.LogoURL
	r.Metadata.FromModel(model.Metadata)
}
