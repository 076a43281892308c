// Package export writes a user's spend history as CSV. The format round-
// trips through the backup importer.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/arjunsachdev/regretly/internal/spend"
)

var header = []string{"id", "date", "amount", "category", "mood", "type", "description", "created_at"}

// WriteCSV streams the records to w in the backup format, preserving the
// order they are given in.
func WriteCSV(w io.Writer, spends []*spend.Spend) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, sp := range spends {
		record := []string{
			sp.ID.String(),
			sp.Date.Format(time.DateOnly),
			strconv.FormatFloat(sp.Amount, 'f', -1, 64),
			string(sp.Category),
			string(sp.Mood),
			string(sp.Type),
			sp.Description,
			sp.CreatedAt.Format(time.RFC3339),
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}

	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}

	return nil
}
