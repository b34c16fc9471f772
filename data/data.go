// Package data reads underlying bars and writes theo reports as CSV.
package data

import (
	"os"
	"sort"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"github.com/tantralabs/theo/logger"
	"github.com/tantralabs/theo/models"
)

// LoadBars reads OHLCV bars from a CSV file with a header row of
// timestamp,open,high,low,close,volume.
func LoadBars(path string) ([]*models.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening bars %s", path)
	}
	defer f.Close()

	bars := []*models.Bar{}
	if err := gocsv.UnmarshalFile(f, &bars); err != nil {
		return nil, errors.Wrapf(err, "parsing bars %s", path)
	}
	logger.Debugf("Loaded %d bars from %s", len(bars), path)
	return bars, nil
}

// Closes returns the close prices ordered by timestamp. bars is not modified.
func Closes(bars []*models.Bar) []float64 {
	sorted := make([]*models.Bar, len(bars))
	copy(sorted, bars)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Timestamp < sorted[j].Timestamp })

	closes := make([]float64, len(sorted))
	for i, bar := range sorted {
		closes[i] = bar.Close
	}
	return closes
}

// WriteRows writes rows to path as CSV, replacing any existing file.
func WriteRows(path string, rows []*models.TheoRow) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		f.Close()
		return errors.Wrapf(err, "writing rows to %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
