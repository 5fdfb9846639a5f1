package snapshot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/rustyeddy/traderpulse/pipeline"
)

// ExportCSV writes each output table of a run as a CSV file in dir,
// creating the directory if needed. File names are fixed so the dashboard
// can pick them up without configuration.
func ExportCSV(dir string, res *pipeline.Result) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	files := []struct {
		name string
		rows any
	}{
		{"sentiment.csv", &res.Sentiment},
		{"trades.csv", &res.Trades},
		{"daily_metrics.csv", &res.Daily},
		{"trader_profiles.csv", &res.Profiles},
		{"daily_with_segments.csv", &res.DailySegmented},
	}

	for _, f := range files {
		if err := writeCSV(filepath.Join(dir, f.name), f.rows); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(path string, rows any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
