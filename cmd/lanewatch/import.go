package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lanewatch/lanewatch/internal/cli"
	"github.com/lanewatch/lanewatch/internal/engine"
	"github.com/lanewatch/lanewatch/internal/loader"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import an orders CSV into a snapshot",
		Long: `Import a supply chain orders CSV export into the local snapshot database.

The file is parsed, derived fields are computed, and the rows are stored as a
new snapshot that later commands analyze without re-reading the CSV.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().String("name", "", "Snapshot name (default: the file name)")
	cmd.Flags().Bool("dry-run", false, "Parse and summarize without saving")
	cmd.Flags().Bool("no-progress", false, "Disable the progress bar")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	name, _ := cmd.Flags().GetString("name")
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	noProgress, _ := cmd.Flags().GetBool("no-progress")

	slog.Info(cli.FormatTitle("Importing orders"))
	orders, err := loader.LoadFile(path, !noProgress)
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return fmt.Errorf("no usable rows in %s", path)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Parsed %d orders", len(orders))))

	kpis := engine.ComputeKPIs(orders)
	summary := fmt.Sprintf(`Orders: %d
Total sales: %s
Total profit: %s
On-time rate: %s`,
		kpis.Orders,
		cli.FormatMoney(kpis.TotalSales),
		cli.FormatMoney(kpis.TotalProfit),
		cli.FormatPercent(kpis.OnTimeRate*100))

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		slog.Info(cli.FormatWarning("Dry run mode - not saving to database"))
		fmt.Println(cli.RenderBox("Import Summary", summary))
		return nil
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	id, err := store.SaveSnapshot(ctx, name, path, orders)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	slog.Info(cli.FormatSuccess("Import complete!"), "snapshot", id)
	fmt.Println(cli.RenderBox("Import Summary", summary+"\nSnapshot: "+id))

	return nil
}
