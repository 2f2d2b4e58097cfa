package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lanewatch/lanewatch/internal/config"
	"github.com/lanewatch/lanewatch/internal/engine"
	"github.com/lanewatch/lanewatch/internal/loader"
	"github.com/lanewatch/lanewatch/internal/model"
	"github.com/lanewatch/lanewatch/internal/storage"
)

const dateLayout = "2006-01-02"

func dbPath() string {
	if p := viper.GetString("database.path"); p != "" {
		return config.ExpandPath(p)
	}
	return config.DefaultDatabasePath()
}

func openStore() (*storage.Store, error) {
	store, err := storage.Open(dbPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return store, nil
}

// addDataFlags registers the flags that select the working dataset.
func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().String("csv", "", "Load orders directly from a CSV export instead of a snapshot")
	cmd.Flags().String("snapshot", "", "Snapshot ID to analyze (default: latest)")
}

// addFilterFlags registers the shared dataset filter flags.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().String("from", "", "Only include orders on or after this date (format: 2006-01-02)")
	cmd.Flags().String("to", "", "Only include orders on or before this date (format: 2006-01-02)")
	cmd.Flags().StringSlice("markets", []string{}, "Filter by markets (comma-separated)")
	cmd.Flags().StringSlice("segments", []string{}, "Filter by customer segments (comma-separated)")
	cmd.Flags().IntSlice("years", []int{}, "Filter by order years (comma-separated)")
}

func filterFromFlags(cmd *cobra.Command) (model.Filter, error) {
	var f model.Filter

	fromStr, _ := cmd.Flags().GetString("from")
	if fromStr != "" {
		from, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return f, fmt.Errorf("invalid --from date: %w", err)
		}
		f.From = from
	}

	toStr, _ := cmd.Flags().GetString("to")
	if toStr != "" {
		to, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return f, fmt.Errorf("invalid --to date: %w", err)
		}
		f.To = to
	}

	f.Markets, _ = cmd.Flags().GetStringSlice("markets")
	f.Segments, _ = cmd.Flags().GetStringSlice("segments")
	f.Years, _ = cmd.Flags().GetIntSlice("years")

	return f, nil
}

// loadOrders resolves the working dataset from --csv, --snapshot, or the
// latest snapshot, then applies the shared filter flags.
func loadOrders(ctx context.Context, cmd *cobra.Command) ([]model.Order, error) {
	filter, err := filterFromFlags(cmd)
	if err != nil {
		return nil, err
	}

	var orders []model.Order

	csvPath, _ := cmd.Flags().GetString("csv")
	if csvPath != "" {
		orders, err = loader.LoadFile(config.ExpandPath(csvPath), false)
		if err != nil {
			return nil, err
		}
		return engine.Apply(orders, filter), nil
	}

	store, err := openStore()
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	snapshotID, _ := cmd.Flags().GetString("snapshot")
	if snapshotID != "" {
		orders, err = store.LoadSnapshot(ctx, snapshotID)
	} else {
		orders, _, err = store.LoadLatest(ctx)
	}
	if err != nil {
		return nil, err
	}

	return engine.Apply(orders, filter), nil
}

// addFormatFlag registers the output format flag.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "table", "Output format (table, json)")
}

func wantJSON(cmd *cobra.Command) bool {
	format, _ := cmd.Flags().GetString("format")
	return format == "json"
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
