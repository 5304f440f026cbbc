package model

import (
	"fleet/shared/model"
)

const (
	TableName  = "customers"
	EntityName = "customer"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldName     = "name"
	FieldSurname  = "surname"
	FieldAddress  = "address"
	FieldBranchID = "branch_id"
)

type Customer struct {
	ID    string `db:"id"`
	Email string `db:"email"`
	model.Person
	Address  string  `db:"address"`
	BranchID *string `db:"branch_id"`
	model.Metadata
}
