package dto

import (
	"fleet/internal/domains/rentals/model"
	"fleet/shared"
	"fleet/shared/constant"
	gDto "fleet/shared/dto"
	gModel "fleet/shared/model"
	"fleet/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateRentalRequest struct {
	ReservationID string `json:"reservation_id" validate:"required"`
	EmployeeID    string `json:"employee_id"    validate:"required"`
	Comments      string `json:"comments"       validate:"omitempty,max=500"`
	RentalDate    string `json:"rental_date"    validate:"required"`
}

func (c *CreateRentalRequest) ToModel(user string) (model.RentalAgreement, error) {
	rentalDate, err := time.Parse(constant.DateOnlyLayout, c.RentalDate)
	if err != nil {
		return model.RentalAgreement{}, err
	}

	return model.RentalAgreement{
		ID:            uuid.NewString(),
		Comments:      c.Comments,
		RentalDate:    rentalDate,
		EmployeeID:    c.EmployeeID,
		ReservationID: c.ReservationID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateRentalRequest struct {
	Comments   string `db:"comments"    json:"comments"    validate:"omitempty,max=500"`
	RentalDate string `json:"rental_date" validate:"omitempty"`
	EmployeeID string `db:"employee_id" json:"employee_id" validate:"omitempty"`
}

type RentalResponse struct {
	ID            string `json:"id"`
	Comments      string `json:"comments"`
	RentalDate    string `json:"rental_date"`
	EmployeeID    string `json:"employee_id"`
	ReservationID string `json:"reservation_id"`
	gDto.Metadata
}

func (r *RentalResponse) FromModel(model model.RentalAgreement) {
	r.ID = model.ID
	r.Comments = model.Comments
	r.RentalDate = model.RentalDate.Format(constant.DateOnlyLayout)
	r.EmployeeID = model.EmployeeID
	r.ReservationID = model.ReservationID
	r.Metadata.FromModel(model.Metadata)
}

type GetRentalsResponse struct {
	Rentals   []RentalResponse `json:"rentals"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetRentalsResponse) FromModels(models []model.RentalAgreement, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rentals = make([]RentalResponse, len(models))
	for i, mod := range models {
		r.Rentals[i].FromModel(mod)
	}
}

// RentalRecordedEvent is the payload published to the rentals topic when a
// vehicle is handed over.
type RentalRecordedEvent struct {
	RentalID      string `json:"rental_id"`
	ReservationID string `json:"reservation_id"`
	EmployeeID    string `json:"employee_id"`
	RentalDate    string `json:"rental_date"`
}
