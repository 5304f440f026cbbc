package model

import (
	"fleet/shared/model"
)

const (
	TableName  = "employees"
	EntityName = "employee"

	FieldID       = "id"
	FieldUsername = "username"
	FieldName     = "name"
	FieldSurname  = "surname"
	FieldPosition = "position"
	FieldBranchID = "branch_id"
)

// Employee works at one branch at most. Position is one of the role
// constants in shared/constant.
type Employee struct {
	ID       string `db:"id"`
	Username string `db:"username"`
	model.Person
	Position string  `db:"position"`
	BranchID *string `db:"branch_id"`
	model.Metadata
}
