package reader

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

type CSVReader struct {
	reader io.Reader
}

func NewCSVReader(reader io.Reader) *CSVReader {
	return &CSVReader{
		reader: reader,
	}
}

func newCSV(r io.Reader) (*csv.Reader, []string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	headers, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, fmt.Errorf("csv has no header row")
		}
		return nil, nil, err
	}
	for i, h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	return cr, headers, nil
}

func toRecord(cr *csv.Reader, headers, row []string) Record {
	line, _ := cr.FieldPos(0)
	fields := make(map[string]string, len(headers))
	for i, h := range headers {
		fields[h] = row[i]
	}
	return Record{Line: line, Fields: fields}
}

// ReadParallel streams records through workerCount goroutines. Output order
// is not the file order; Record.Line identifies each row.
func (cr *CSVReader) ReadParallel(ctx context.Context, workerCount int) (<-chan ParallelReaderResult, error) {
	if workerCount < 1 {
		workerCount = 1
	}

	csvReader, headers, err := newCSV(cr.reader)
	if err != nil {
		return nil, err
	}

	out := make(chan ParallelReaderResult)
	jobs := make(chan Record, workerCount*2)
	var wg sync.WaitGroup

	// the feeder counts too, so out stays open while it may still send
	wg.Add(workerCount + 1)
	for w := 0; w < workerCount; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case rec, ok := <-jobs:
					if !ok {
						return
					}
					select {
					case out <- ParallelReaderResult{Record: rec}:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	go func() {
		defer wg.Done()
		defer close(jobs)

		for {
			row, err := csvReader.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				slog.Error("Error reading CSV row", "error", err)
				select {
				case out <- ParallelReaderResult{Err: err}:
				case <-ctx.Done():
					return
				}
				// a wrong field count is confined to its row; anything else ends the read
				var pe *csv.ParseError
				if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
					continue
				}
				return
			}

			select {
			case jobs <- toRecord(csvReader, headers, row):
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(out)
	}()

	return out, nil
}
