package estimator

import (
	"context"
	"sync"

	"github.com/quickbite/quickbite-api/internal/models"
)

// batchResult tags an outcome with its input position so concurrent
// completion order cannot reorder the response.
type batchResult struct {
	index    int
	estimate *models.DeliveryEstimate
	err      error
}

// EstimateBatch fans out one goroutine per order and collects results
// positionally. A failed item carries its own error; the rest of the
// batch is unaffected.
func (e *Estimator) EstimateBatch(ctx context.Context, orders []models.EstimateRequest) []models.BatchEstimateResult {
	resultChan := make(chan batchResult, len(orders))

	var wg sync.WaitGroup
	for i, order := range orders {
		wg.Add(1)
		go func(index int, req models.EstimateRequest) {
			defer wg.Done()

			estimate, err := e.Estimate(ctx, req)
			resultChan <- batchResult{index: index, estimate: estimate, err: err}
		}(i, order)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	results := make([]models.BatchEstimateResult, len(orders))
	for res := range resultChan {
		if res.err != nil {
			results[res.index] = models.BatchEstimateResult{
				Index: res.index,
				Error: res.err.Error(),
			}
			continue
		}
		results[res.index] = models.BatchEstimateResult{
			Index:    res.index,
			Success:  true,
			Estimate: res.estimate,
		}
	}

	return results
}
