package doofinder

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Bulk limits.
const (
	// MaxBulkSize is the largest number of items one bulk request accepts.
	MaxBulkSize = 100

	// DefaultBatchConcurrency is the default number of bulk requests in flight.
	DefaultBatchConcurrency = 5

	defaultBatchTimeout = 30 * time.Second
)

// BatchOperation selects the bulk endpoint used by a BatchExecutor.
type BatchOperation string

// Supported batch operations.
const (
	BatchCreate BatchOperation = "create"
	BatchUpdate BatchOperation = "update"
	BatchDelete BatchOperation = "delete"
)

// Static errors for err113 compliance.
var (
	ErrUnsupportedBatchOperation = errors.New("unsupported batch operation")
	ErrBatchFailed               = errors.New("batch failed")
)

// BatchResult is the outcome of one chunk of a batch.
type BatchResult struct {
	Chunk    int           `json:"chunk"              yaml:"chunk"`
	Items    int           `json:"items"              yaml:"items"`
	Response *Response     `json:"response,omitempty" yaml:"response,omitempty"`
	Error    error         `json:"-"                  yaml:"-"`
	Duration time.Duration `json:"duration"           yaml:"duration"`
}

// Success reports whether the chunk request succeeded.
func (r BatchResult) Success() bool {
	return r.Error == nil
}

// BatchResults holds the chunk outcomes of a batch, in chunk order.
type BatchResults []BatchResult

// Err joins the errors of every failed chunk, or returns nil.
func (r BatchResults) Err() error {
	var errs []error

	for _, result := range r {
		if result.Error != nil {
			errs = append(errs, fmt.Errorf("chunk %d: %w", result.Chunk, result.Error))
		}
	}

	if len(errs) == 0 {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrBatchFailed, errors.Join(errs...))
}

// BatchExecutor splits large item sets into bulk requests of at most
// MaxBulkSize items and sends them concurrently.
type BatchExecutor struct {
	items       ItemsClient
	concurrency int
	chunkSize   int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor. A non-positive concurrency
// uses DefaultBatchConcurrency.
func NewBatchExecutor(items ItemsClient, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	return &BatchExecutor{
		items:       items,
		concurrency: concurrency,
		chunkSize:   MaxBulkSize,
		timeout:     defaultBatchTimeout,
	}
}

// SetChunkSize sets the number of items per request, capped at MaxBulkSize.
func (b *BatchExecutor) SetChunkSize(size int) {
	if size <= 0 || size > MaxBulkSize {
		size = MaxBulkSize
	}

	b.chunkSize = size
}

// SetTimeout sets the timeout applied to each bulk request.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs operation over items in chunks. Delete uses the "id" field of
// each item. A failed chunk does not stop the others; inspect the results or
// call BatchResults.Err.
func (b *BatchExecutor) Execute(ctx context.Context, operation BatchOperation, hashID, index string, items []map[string]any) (BatchResults, error) {
	send, err := b.sender(operation)
	if err != nil {
		return nil, err
	}

	chunks := chunk(items, b.chunkSize)
	results := make(BatchResults, len(chunks))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for number, items := range chunks {
		waitGroup.Add(1)

		go func(number int, items []map[string]any) {
			defer waitGroup.Done()

			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			response, err := send(opCtx, hashID, index, items)

			results[number] = BatchResult{
				Chunk:    number,
				Items:    len(items),
				Response: response,
				Error:    err,
				Duration: time.Since(start),
			}
		}(number, items)
	}

	waitGroup.Wait()

	return results, nil
}

type bulkSender func(ctx context.Context, hashID, index string, items []map[string]any) (*Response, error)

func (b *BatchExecutor) sender(operation BatchOperation) (bulkSender, error) {
	switch operation {
	case BatchCreate:
		return b.items.CreateBulk, nil
	case BatchUpdate:
		return b.items.UpdateBulk, nil
	case BatchDelete:
		return func(ctx context.Context, hashID, index string, items []map[string]any) (*Response, error) {
			ids := make([]string, 0, len(items))
			for _, item := range items {
				ids = append(ids, Item(item).ID())
			}

			return b.items.DeleteBulk(ctx, hashID, index, ids)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBatchOperation, operation)
	}
}

func chunk(items []map[string]any, size int) [][]map[string]any {
	chunks := make([][]map[string]any, 0, (len(items)+size-1)/size)

	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end])
	}

	return chunks
}
