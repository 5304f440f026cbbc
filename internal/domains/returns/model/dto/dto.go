package dto

import (
	"fleet/internal/domains/returns/model"
	"fleet/shared"
	"fleet/shared/constant"
	gDto "fleet/shared/dto"
	gModel "fleet/shared/model"
	"fleet/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateReturnRequest struct {
	ReservationID string  `json:"reservation_id" validate:"required"`
	EmployeeID    string  `json:"employee_id"    validate:"required"`
	Comments      string  `json:"comments"       validate:"omitempty,max=500"`
	ReturnDate    string  `json:"return_date"    validate:"required"`
	Upcharge      float64 `json:"upcharge"       validate:"omitempty,gte=0"`
}

func (c *CreateReturnRequest) ToModel(user string) (model.ReturnRecord, error) {
	returnDate, err := time.Parse(constant.DateOnlyLayout, c.ReturnDate)
	if err != nil {
		return model.ReturnRecord{}, err
	}

	return model.ReturnRecord{
		ID:            uuid.NewString(),
		Comments:      c.Comments,
		ReturnDate:    returnDate,
		Upcharge:      c.Upcharge,
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

type UpdateReturnRequest struct {
	Comments   string  `db:"comments"    json:"comments"    validate:"omitempty,max=500"`
	ReturnDate string  `json:"return_date" validate:"omitempty"`
	Upcharge   float64 `db:"upcharge"    json:"upcharge"    validate:"omitempty,gte=0"`
	EmployeeID string  `db:"employee_id" json:"employee_id" validate:"omitempty"`
}

type ReturnResponse struct {
	ID            string  `json:"id"`
	Comments      string  `json:"comments"`
	ReturnDate    string  `json:"return_date"`
	Upcharge      float64 `json:"upcharge"`
	EmployeeID    string  `json:"employee_id"`
	ReservationID string  `json:"reservation_id"`
	gDto.Metadata
}

func (r *ReturnResponse) FromModel(model model.ReturnRecord) {
	r.ID = model.ID
	r.Comments = model.Comments
	r.ReturnDate = model.ReturnDate.Format(constant.DateOnlyLayout)
	r.Upcharge = model.Upcharge
	r.EmployeeID = model.EmployeeID
	r.ReservationID = model.ReservationID
	r.Metadata.FromModel(model.Metadata)
}

type GetReturnsResponse struct {
	Returns   []ReturnResponse `json:"returns"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReturnsResponse) FromModels(models []model.ReturnRecord, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Returns = make([]ReturnResponse, len(models))
	for i, mod := range models {
		r.Returns[i].FromModel(mod)
	}
}

// ReturnRecordedEvent is the payload published to the returns topic when a
// vehicle comes back; Accrued carries the amount added to the branch ledger.
type ReturnRecordedEvent struct {
	ReturnID      string  `json:"return_id"`
	ReservationID string  `json:"reservation_id"`
	EmployeeID    string  `json:"employee_id"`
	ReturnDate    string  `json:"return_date"`
	Upcharge      float64 `json:"upcharge"`
	Accrued       float64 `json:"accrued"`
}
