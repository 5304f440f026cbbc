package model

import (
	"fleet/shared/model"
)

const (
	TableName  = "companies"
	EntityName = "company"

	FieldID      = "id"
	FieldName    = "name"
	FieldDomain  = "domain"
	FieldAddress = "address"
	FieldOwner   = "owner"
	FieldLogoURL = "logo_url"
)

// Company is the single rental business owning every branch. The table holds
// at most one row; registration guards against a second one.
type Company struct {
	ID      string `db:"id"`
	Name    string `db:"name"`
	Domain  string `db:"domain"`
	Address string `db:"address"`
	Owner   string `db:"owner"`
	LogoURL string `db:"logo_url"`
	model.Metadata
}
