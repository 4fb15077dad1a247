package schedule

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Totaedandan/auame/internal/domain"
	"github.com/Totaedandan/auame/pkg/dbmetrics"
)

type failingDB struct {
	DBExecutor
}

func (failingDB) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return nil, errors.New("connection refused")
}

func TestRepository_SaveBeginFailure(t *testing.T) {
	repo := NewRepository(failingDB{})

	err := repo.Save(context.Background(), domain.Schedule{
		domain.Monday: {Enabled: true, Start: "10:00", End: "19:00"},
	})
	assert.ErrorIs(t, err, ErrTransaction)
}
