package model

import (
	"fleet/shared/model"
)

const (
	TableName  = "branches"
	EntityName = "branch"

	FieldID        = "id"
	FieldName      = "name"
	FieldAddress   = "address"
	FieldCompanyID = "company_id"
	FieldManagerID = "manager_id"
	FieldRevenueID = "revenue_id"
)

// Branch is a physical rental location. ManagerID is a bare employee id
// stored without an integrity check; RevenueID links the branch's ledger
// entry when one has been assigned.
type Branch struct {
	ID        string  `db:"id"`
	Name      string  `db:"name"`
	Address   string  `db:"address"`
	CompanyID string  `db:"company_id"`
	ManagerID *string `db:"manager_id"`
	RevenueID *string `db:"revenue_id"`
	model.Metadata
}
