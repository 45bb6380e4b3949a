package estimator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/quickbite-api/internal/models"
)

func TestEstimateBatch_PositionalResults(t *testing.T) {
	est := New(42, 0)

	orders := []models.EstimateRequest{
		validRequest(),
		validRequest(),
		validRequest(),
		validRequest(),
		validRequest(),
	}

	results := est.EstimateBatch(context.Background(), orders)
	require.Len(t, results, len(orders))

	for i, res := range results {
		assert.Equal(t, i, res.Index)
		assert.True(t, res.Success)
		require.NotNil(t, res.Estimate)
	}
}

func TestEstimateBatch_IsolatesFailures(t *testing.T) {
	est := New(42, 0)

	bad := validRequest()
	bad.Distance = nil

	orders := []models.EstimateRequest{
		validRequest(),
		bad,
		validRequest(),
	}

	results := est.EstimateBatch(context.Background(), orders)
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	assert.True(t, results[2].Success)

	assert.False(t, results[1].Success)
	assert.Nil(t, results[1].Estimate)
	assert.Contains(t, results[1].Error, "distance")
}

func TestEstimateBatch_Empty(t *testing.T) {
	est := New(42, 0)

	results := est.EstimateBatch(context.Background(), nil)
	assert.Empty(t, results)
}
