package model

import (
	"fleet/shared/model"
	"time"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID            = "id"
	FieldStartDate     = "start_date"
	FieldEndDate       = "end_date"
	FieldPrice         = "price"
	FieldStartBranchID = "start_branch_id"
	FieldEndBranchID   = "end_branch_id"
	FieldVehicleID     = "vehicle_id"
	FieldCustomerID    = "customer_id"
)

// Reservation books one vehicle for one customer over an inclusive date
// range. Price is always derived from the vehicle day-rate and the range,
// never taken from input.
type Reservation struct {
	ID            string    `db:"id"`
	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	Price         float64   `db:"price"`
	StartBranchID string    `db:"start_branch_id"`
	EndBranchID   string    `db:"end_branch_id"`
	VehicleID     string    `db:"vehicle_id"`
	CustomerID    string    `db:"customer_id"`
	model.Metadata
}
