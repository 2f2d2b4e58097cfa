package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/lanewatch/lanewatch/internal/cli"
)

func snapshotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List imported snapshots",
		RunE:  runSnapshots,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshotsDelete,
	})

	addFormatFlag(cmd)
	return cmd
}

func runSnapshots(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	snaps, err := store.ListSnapshots(ctx)
	if err != nil {
		return err
	}

	if wantJSON(cmd) {
		return printJSON(snaps)
	}

	if len(snaps) == 0 {
		slog.Info(cli.FormatWarning("No snapshots yet. Import one with: lanewatch import <file.csv>"))
		return nil
	}

	rows := make([][]string, 0, len(snaps))
	for _, s := range snaps {
		rows = append(rows, []string{
			s.ID,
			s.Name,
			fmt.Sprintf("%d", s.RowCount),
			s.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	fmt.Println(cli.FormatTitle("Snapshots"))
	fmt.Print(cli.RenderTable([]string{"ID", "Name", "Rows", "Created"}, rows))
	return nil
}

func runSnapshotsDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.DeleteSnapshot(cmd.Context(), args[0]); err != nil {
		return err
	}

	slog.Info(cli.FormatSuccess("Snapshot deleted"), "id", args[0])
	return nil
}
