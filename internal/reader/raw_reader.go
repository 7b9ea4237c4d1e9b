package reader

import "context"

// Record is one CSV row keyed by header name. Line is the 1-based line the
// row started on.
type Record struct {
	Line   int
	Fields map[string]string
}

type ParallelReaderResult struct {
	Record Record
	Err    error
}

type RawParallelReader interface {
	ReadParallel(ctx context.Context, workerCount int) (<-chan ParallelReaderResult, error)
}
