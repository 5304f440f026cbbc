package model

import (
	"fleet/shared/model"
)

const (
	TableName  = "vehicles"
	EntityName = "vehicle"

	FieldID        = "id"
	FieldMake      = "make"
	FieldModel     = "model"
	FieldBodyStyle = "body_style"
	FieldYear      = "year"
	FieldColour    = "colour"
	FieldMileage   = "mileage"
	FieldStatus    = "status"
	FieldDayRate   = "day_rate"
	FieldBranchID  = "branch_id"
)

const (
	StatusAvailable = "available"
	StatusRented    = "rented"
	StatusServiced  = "serviced"
)

// Vehicle is a rentable car. Status is a stored default; the authoritative
// occupancy for a date is derived from the reservation history.
type Vehicle struct {
	ID        string  `db:"id"`
	Make      string  `db:"make"`
	Model     string  `db:"model"`
	BodyStyle string  `db:"body_style"`
	Year      int     `db:"year"`
	Colour    string  `db:"colour"`
	Mileage   int     `db:"mileage"`
	Status    string  `db:"status"`
	DayRate   float64 `db:"day_rate"`
	BranchID  *string `db:"branch_id"`
	model.Metadata
}
