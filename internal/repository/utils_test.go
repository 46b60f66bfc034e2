package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	rollbackErr error
	rolledBack  bool
}

func (f *fakeTx) Commit(ctx context.Context) error { return nil }

func (f *fakeTx) Rollback(ctx context.Context) error {
	f.rolledBack = true
	return f.rollbackErr
}

func TestSafeRollback(t *testing.T) {
	for _, err := range []error{nil, pgx.ErrTxClosed, errors.New("connection reset")} {
		tx := &fakeTx{rollbackErr: err}
		assert.NotPanics(t, func() { SafeRollback(context.Background(), tx) })
		assert.True(t, tx.rolledBack)
	}
}
