package dto

import (
	"fleet/internal/domains/reservation/model"
	"fleet/shared"
	"fleet/shared/constant"
	gDto "fleet/shared/dto"
	gModel "fleet/shared/model"
	"fleet/shared/timezone"
	"time"

	"github.com/google/uuid"
)

// CreateReservationRequest carries a price field only because clients send
// one; the stored price is always recomputed from the vehicle day-rate and
// the date range.
type CreateReservationRequest struct {
	CustomerID    string  `json:"customer_id"     validate:"required"`
	VehicleID     string  `json:"vehicle_id"      validate:"required"`
	StartBranchID string  `json:"start_branch_id" validate:"required"`
	EndBranchID   string  `json:"end_branch_id"   validate:"required"`
	StartDate     string  `json:"start_date"      validate:"required"`
	EndDate       string  `json:"end_date"        validate:"required"`
	Price         float64 `json:"price"           validate:"omitempty"`
}

func (c *CreateReservationRequest) ToModel(price float64, user string) (model.Reservation, error) {
	startDate, err := time.Parse(constant.DateOnlyLayout, c.StartDate)
	if err != nil {
		return model.Reservation{}, err
	}

	endDate, err := time.Parse(constant.DateOnlyLayout, c.EndDate)
	if err != nil {
		return model.Reservation{}, err
	}

	return model.Reservation{
		ID:            uuid.NewString(),
		StartDate:     startDate,
		EndDate:       endDate,
		Price:         price,
		StartBranchID: c.StartBranchID,
		EndBranchID:   c.EndBranchID,
		VehicleID:     c.VehicleID,
		CustomerID:    c.CustomerID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateReservationRequest struct {
	CustomerID    string  `json:"customer_id"     validate:"omitempty"`
	VehicleID     string  `json:"vehicle_id"      validate:"omitempty"`
	StartBranchID string  `json:"start_branch_id" validate:"omitempty"`
	EndBranchID   string  `json:"end_branch_id"   validate:"omitempty"`
	StartDate     string  `json:"start_date"      validate:"omitempty"`
	EndDate       string  `json:"end_date"        validate:"omitempty"`
	Price         float64 `json:"price"           validate:"omitempty"`
}

type ReservationResponse struct {
	ID            string  `json:"id"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	Price         float64 `json:"price"`
	StartBranchID string  `json:"start_branch_id"`
	EndBranchID   string  `json:"end_branch_id"`
	VehicleID     string  `json:"vehicle_id"`
	CustomerID    string  `json:"customer_id"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.StartDate = model.StartDate.Format(constant.DateOnlyLayout)
	r.EndDate = model.EndDate.Format(constant.DateOnlyLayout)
	r.Price = model.Price
	r.StartBranchID = model.StartBranchID
	r.EndBranchID = model.EndBranchID
	r.VehicleID = model.VehicleID
	r.CustomerID = model.CustomerID
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
