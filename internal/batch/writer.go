package batch

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var outputHeader = []string{
	"First Name",
	"Corrected First Name",
	"Last Name",
	"Corrected Last Name",
	"Corrected Full Name",
	"Was Corrected",
}

// OutputPath derives a collision-free output location next to the input
// file, e.g. names.csv -> corrected_names_1a2b3c4d.csv.
func OutputPath(inputPath string) string {
	dir := filepath.Dir(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(dir, fmt.Sprintf("corrected_%s_%s.csv", base, uuid.NewString()[:8]))
}

// WriteCSV writes results as UTF-8 CSV at path.
func WriteCSV(path string, results []Result) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(outputHeader); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range results {
		rec := []string{r.FirstName, r.CorrectedFirst, r.LastName, r.CorrectedLast, r.FullName, r.WasCorrected}
		if err := w.Write(rec); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	return f.Close()
}
