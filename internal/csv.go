package internal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
)

type Result[T any] struct {
	Value T
	Error error
	Line  int
}

// ParseCSV yields one decoded value per data row. Blank lines and lines
// starting with '#' are skipped. When hasHeader is set the first row is
// passed to every fromCSV call as the header slice. Iteration stops after
// the first error.
func ParseCSV[T any](r io.Reader, hasHeader bool, fromCSV func(record, headers []string) (T, error)) iter.Seq[Result[T]] {
	return func(yield func(Result[T]) bool) {
		reader := csv.NewReader(r)
		reader.Comment = '#'
		reader.FieldsPerRecord = -1
		reader.TrimLeadingSpace = true

		var headers []string
		for {
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(Result[T]{Error: fmt.Errorf("failed to read CSV: %w", err)})
				return
			}
			line, _ := reader.FieldPos(0)

			if hasHeader && headers == nil {
				headers = make([]string, len(record))
				for i, h := range record {
					headers[i] = strings.TrimSpace(h)
				}
				continue
			}

			value, err := fromCSV(record, headers)
			if err != nil {
				yield(Result[T]{Error: fmt.Errorf("line %d: %w", line, err), Line: line})
				return
			}
			if !yield(Result[T]{Value: value, Line: line}) {
				return
			}
		}
	}
}
