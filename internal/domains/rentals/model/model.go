package model

import (
	"fleet/shared/model"
	"time"
)

const (
	TableName  = "rental_agreements"
	EntityName = "rental_agreement"

	FieldID            = "id"
	FieldComments      = "comments"
	FieldRentalDate    = "rental_date"
	FieldEmployeeID    = "employee_id"
	FieldReservationID = "reservation_id"
)

// RentalAgreement records the hand-over of a reservation's vehicle. At most
// one may exist per reservation.
type RentalAgreement struct {
	ID            string    `db:"id"`
	Comments      string    `db:"comments"`
	RentalDate    time.Time `db:"rental_date"`
	EmployeeID    string    `db:"employee_id"`
	ReservationID string    `db:"reservation_id"`
	model.Metadata
}
