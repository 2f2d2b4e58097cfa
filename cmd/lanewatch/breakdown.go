package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lanewatch/lanewatch/internal/cli"
	"github.com/lanewatch/lanewatch/internal/engine"
)

func breakdownCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breakdown",
		Short: "Break the dataset down by segment, status and market",
		RunE:  runBreakdown,
	}

	addDataFlags(cmd)
	addFilterFlags(cmd)
	addFormatFlag(cmd)
	return cmd
}

func runBreakdown(cmd *cobra.Command, _ []string) error {
	orders, err := loadOrders(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	segments := engine.SalesBySegment(orders)
	status := engine.SplitByStatus(orders)
	markets := engine.TotalsByMarket(orders)

	if wantJSON(cmd) {
		return printJSON(struct {
			Segments []engine.SegmentSales `json:"segments"`
			Status   engine.StatusSplit    `json:"status"`
			Markets  []engine.MarketTotals `json:"markets"`
		}{Segments: segments, Status: status, Markets: markets})
	}

	segRows := make([][]string, 0, len(segments))
	for _, s := range segments {
		segRows = append(segRows, []string{s.Segment, cli.FormatMoney(s.Sales)})
	}
	fmt.Println(cli.FormatTitle("Sales by Segment"))
	fmt.Print(cli.RenderTable([]string{"Segment", "Sales"}, segRows))
	fmt.Println()

	total := status.OnTime + status.Late
	latePct := 0.0
	if total > 0 {
		latePct = 100 * float64(status.Late) / float64(total)
	}
	fmt.Println(cli.RenderBox("Delivery Status", fmt.Sprintf(
		"On time: %d\nLate: %d\nLate share: %s",
		status.OnTime, status.Late, cli.FormatPercent(latePct))))

	marketRows := make([][]string, 0, len(markets))
	for _, m := range markets {
		marketRows = append(marketRows, []string{
			m.Market,
			cli.FormatMoney(m.Sales),
			cli.FormatMoney(m.Profit),
		})
	}
	fmt.Println(cli.FormatTitle("Markets"))
	fmt.Print(cli.RenderTable([]string{"Market", "Sales", "Profit"}, marketRows))

	return nil
}
