package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/traderpulse/pipeline"
	"github.com/rustyeddy/traderpulse/snapshot"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the output tables for the dashboard",
	Long: `Run the pipeline and write the output tables as CSV files, a
SQLite snapshot, or both. Destinations come from the config file's export
section; flags override.

Examples:
  traderpulse export --csv-dir ./out
  traderpulse export --db ./pulse.sqlite`,
	RunE: runExport,
}

var (
	exportCSVDir string
	exportDBPath string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportCSVDir, "csv-dir", "", "directory for CSV exports")
	exportCmd.Flags().StringVarP(&exportDBPath, "db", "d", "", "path to SQLite snapshot file")
}

func runExport(cmd *cobra.Command, args []string) error {
	opts, cfg, err := pipelineOptions()
	if err != nil {
		return err
	}

	csvDir := exportCSVDir
	if csvDir == "" {
		csvDir = cfg.Export.CSVDir
	}
	dbPath := exportDBPath
	if dbPath == "" {
		dbPath = cfg.Export.SQLitePath
	}
	if csvDir == "" && dbPath == "" {
		return fmt.Errorf("nothing to export: set --csv-dir or --db (or the config export section)")
	}

	res, err := pipeline.Run(opts)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	if csvDir != "" {
		if err := snapshot.ExportCSV(csvDir, res); err != nil {
			return fmt.Errorf("csv export: %w", err)
		}
		fmt.Printf("CSV tables written to %s\n", csvDir)
	}

	if dbPath != "" {
		db, err := snapshot.NewSQLite(dbPath)
		if err != nil {
			return fmt.Errorf("open snapshot db: %w", err)
		}
		defer db.Close()
		if err := db.WriteResult(res); err != nil {
			return fmt.Errorf("snapshot write: %w", err)
		}
		fmt.Printf("Snapshot %s written to %s\n", res.RunID, dbPath)
	}

	return nil
}
