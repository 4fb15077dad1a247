package psqlbuilder

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelect_DollarPlaceholders(t *testing.T) {
	query, args, err := Select("id", "status").
		From("bookings").
		Where(squirrel.Eq{"date": "2025-06-02"}).
		Where(squirrel.NotEq{"status": "Canceled"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "SELECT id, status FROM bookings WHERE date = $1 AND status <> $2", query)
	assert.Equal(t, []interface{}{"2025-06-02", "Canceled"}, args)
}

func TestUpdate_DollarPlaceholders(t *testing.T) {
	query, args, err := Update("bookings").
		Set("status", "Paid").
		Where(squirrel.Eq{"id": "abc"}).
		ToSql()

	require.NoError(t, err)
	assert.Equal(t, "UPDATE bookings SET status = $1 WHERE id = $2", query)
	assert.Len(t, args, 2)
}
