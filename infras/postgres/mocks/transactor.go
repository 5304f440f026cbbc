package mocks

import (
	"context"
	"fleet/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
}

// WithTransaction implements postgres.Transactor. The callback runs with a
// nil transaction handle; repository mocks never touch it.
func (t *transactorImpl) WithTransaction(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
