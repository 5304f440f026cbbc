package model

import (
	"fleet/shared/model"
	"time"
)

const (
	TableName  = "return_records"
	EntityName = "return_record"

	FieldID            = "id"
	FieldComments      = "comments"
	FieldReturnDate    = "return_date"
	FieldUpcharge      = "upcharge"
	FieldEmployeeID    = "employee_id"
	FieldReservationID = "reservation_id"
)

// ReturnRecord records the return of a reservation's vehicle, carrying any
// upcharge added on top of the reservation price. At most one may exist per
// reservation.
type ReturnRecord struct {
	ID            string    `db:"id"`
	Comments      string    `db:"comments"`
	ReturnDate    time.Time `db:"return_date"`
	Upcharge      float64   `db:"upcharge"`
	EmployeeID    string    `db:"employee_id"`
	ReservationID string    `db:"reservation_id"`
	model.Metadata
}
