package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsAgainstSeed(t *testing.T) {
	uc := NewDashboardUsecase(quietLogger(), newTestRepo())

	stats, err := uc.GetStats(context.Background(), testDay.Format("2006-01-02"))
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Completed)
	assert.Equal(t, 2, stats.Today)

	require.Len(t, stats.PerDoctor, 4)
	sum := 0
	for _, d := range stats.PerDoctor {
		sum += d.Count
	}
	assert.Equal(t, stats.Total, sum)

	assert.Equal(t, 2, stats.PerStatus["pending"])
	assert.Equal(t, 2, stats.PerStatus["confirmed"])
	assert.Equal(t, 1, stats.PerStatus["completed"])
}

func TestGetStatsRejectsBadDate(t *testing.T) {
	uc := NewDashboardUsecase(quietLogger(), newTestRepo())

	_, err := uc.GetStats(context.Background(), "05/10/2024")
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}
