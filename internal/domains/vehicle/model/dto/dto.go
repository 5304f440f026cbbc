package dto

import (
	"fleet/internal/domains/vehicle/model"
	"fleet/shared"
	gDto "fleet/shared/dto"
	gModel "fleet/shared/model"
	"fleet/shared/timezone"

	"github.com/google/uuid"
)

type CreateVehicleRequest struct {
	Make      string  `json:"make"       validate:"required,max=100"`
	Model     string  `json:"model"      validate:"required,max=100"`
	BodyStyle string  `json:"body_style" validate:"omitempty,max=50"`
	Year      int     `json:"year"       validate:"required,gte=1900"`
	Colour    string  `json:"colour"     validate:"omitempty,max=50"`
	Mileage   int     `json:"mileage"    validate:"omitempty,gte=0"`
	Status    string  `json:"status"     validate:"omitempty,oneof=available rented serviced"`
	DayRate   float64 `json:"day_rate"   validate:"required,gte=0"`
}

func (c *CreateVehicleRequest) ToModel(user string) model.Vehicle {
	status := model.StatusAvailable
	if c.Status != "" {
		status = c.Status
	}

	return model.Vehicle{
		ID:        uuid.NewString(),
		Make:      c.Make,
		Model:     c.Model,
		BodyStyle: c.BodyStyle,
		Year:      c.Year,
		Colour:    c.Colour,
		Mileage:   c.Mileage,
		Status:    status,
		DayRate:   c.DayRate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateVehicleRequest struct {
	Make      string  `db:"make"       json:"make"       validate:"omitempty,max=100"`
	Model     string  `db:"model"      json:"model"      validate:"omitempty,max=100"`
	BodyStyle string  `db:"body_style" json:"body_style" validate:"omitempty,max=50"`
	Year      int     `db:"year"       json:"year"       validate:"omitempty,gte=1900"`
	Colour    string  `db:"colour"     json:"colour"     validate:"omitempty,max=50"`
	Mileage   int     `db:"mileage"    json:"mileage"    validate:"omitempty,gte=0"`
	Status    string  `db:"status"     json:"status"     validate:"omitempty,oneof=available rented serviced"`
	DayRate   float64 `db:"day_rate"   json:"day_rate"   validate:"omitempty,gte=0"`
}

type VehicleResponse struct {
	ID        string  `json:"id"`
	Make      string  `json:"make"`
	Model     string  `json:"model"`
	BodyStyle string  `json:"body_style"`
	Year      int     `json:"year"`
	Colour    string  `json:"colour"`
	Mileage   int     `json:"mileage"`
	Status    string  `json:"status"`
	DayRate   float64 `json:"day_rate"`
	BranchID  *string `json:"branch_id"`
	gDto.Metadata
}

func (r *VehicleResponse) FromModel(model model.Vehicle) {
	r.ID = model.ID
	r.Make = model.Make
	r.Model = model.Model
	r.BodyStyle = model.BodyStyle
	r.Year = model.Year
	r.Colour = model.Colour
	r.Mileage = model.Mileage
	r.Status = model.Status
	r.DayRate = model.DayRate
	r.BranchID = model.BranchID
	r.Metadata.FromModel(model.Metadata)
}

type GetVehiclesResponse struct {
	Vehicles  []VehicleResponse `json:"vehicles"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetVehiclesResponse) FromModels(models []model.Vehicle, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Vehicles = make([]VehicleResponse, len(models))
	for i, mod := range models {
		r.Vehicles[i].FromModel(mod)
	}
}

// VehicleStatusResponse is the derived occupancy of a vehicle on one date.
type VehicleStatusResponse struct {
	VehicleID string `json:"vehicle_id"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}
