package batch

import (
	"context"
	"runtime"
	"strings"
	"sync"

	"github.com/HxshPatil/indian-names-corrector/internal/corrector"
)

// Result is one corrected output row.
type Result struct {
	FirstName      string
	CorrectedFirst string
	LastName       string
	CorrectedLast  string
	FullName       string
	WasCorrected   string // "Yes" / "No"
}

// Processor corrects rows with a fixed pool of workers. Rows are independent
// and the vocabularies are read-only, so no coordination is needed beyond
// assembling results back into input order.
type Processor struct {
	corrector *corrector.NameCorrector
	workers   int
}

// NewProcessor builds a Processor. A non-positive worker count defaults to
// the number of CPUs.
func NewProcessor(nc *corrector.NameCorrector, workers int) *Processor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Processor{corrector: nc, workers: workers}
}

// Process corrects every row. The returned slice matches the input order
// regardless of how rows were scheduled across workers. A failed row passes
// its original values through unchanged; it never aborts the batch.
func (p *Processor) Process(ctx context.Context, rows []Row) []Result {
	results := make([]Result, len(rows))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.correctRow(ctx, rows[i])
			}
		}()
	}
	for i := range rows {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results
}

func (p *Processor) correctRow(ctx context.Context, row Row) Result {
	res := Result{
		FirstName:    row.FirstName,
		LastName:     row.LastName,
		WasCorrected: "No",
	}

	first := strings.TrimSpace(row.FirstName)
	last := strings.TrimSpace(row.LastName)
	if first == "" && last == "" {
		// Nothing to correct; pass the row through.
		return res
	}

	correctedFirst := p.corrector.CorrectFirst(ctx, first)
	correctedLast := p.corrector.CorrectLast(ctx, last)

	res.CorrectedFirst = correctedFirst
	res.CorrectedLast = correctedLast
	res.FullName = strings.TrimSpace(correctedFirst + " " + correctedLast)
	if correctedFirst != strings.ToLower(first) || correctedLast != strings.ToLower(last) {
		res.WasCorrected = "Yes"
	}
	return res
}
