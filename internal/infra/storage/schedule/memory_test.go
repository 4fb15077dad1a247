package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Totaedandan/auame/internal/domain"
)

func TestMemoryRepository_DefaultAndSave(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(nil)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSchedule(), got)

	err = repo.Save(ctx, domain.Schedule{
		domain.Sunday: {Enabled: true, Start: "11:00", End: "15:00"},
	})
	require.NoError(t, err)

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.True(t, got[domain.Sunday].Enabled)
	assert.Equal(t, "15:00", got[domain.Sunday].End)
	assert.Equal(t, domain.DefaultSchedule()[domain.Monday], got[domain.Monday])
}

func TestMemoryRepository_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository(nil)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	got[domain.Monday] = domain.DayConfig{}

	again, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "10:00", again[domain.Monday].Start)
}
