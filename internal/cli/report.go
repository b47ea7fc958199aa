package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/supuni9622/crm-application/reports"
	"github.com/supuni9622/crm-application/users"
)

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the sales, customer and campaign reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, slot, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer slot.Close()

			if _, err := authorize(store, users.RoleUser); err != nil {
				return err
			}

			source, err := newSource(rootOpts)
			if err != nil {
				return err
			}
			overview, err := reports.NewService(source).Overview(cmd.Context())
			if err != nil {
				return err
			}

			return newFormatter(rootOpts, cmd.OutOrStdout()).Print(overview, func() string {
				return renderOverview(overview)
			})
		},
	}
}

func renderOverview(o *reports.Overview) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Sales") + "\n")
	b.WriteString(renderPairs([][2]string{
		{"Revenue", formatMoney(o.Sales.TotalRevenue)},
		{"Orders", formatInt(o.Sales.TotalOrders)},
		{"Average order", formatMoney(o.Sales.AverageOrderValue)},
	}) + "\n")
	products := make([][]string, 0, len(o.Sales.ProductRevenue))
	for _, p := range o.Sales.ProductRevenue {
		products = append(products, []string{p.Name, formatMoney(p.Amount)})
	}
	b.WriteString(renderTable([]string{"Product", "Revenue"}, products) + "\n\n")

	b.WriteString(headerStyle.Render("Customers") + "\n")
	b.WriteString(renderPairs([][2]string{
		{"Customers", formatInt(o.Customers.TotalCustomers)},
		{"Average spend", formatMoney(o.Customers.AverageSpend)},
		{"Opt-in rate", fmt.Sprintf("%d%%", o.Customers.OptInRate)},
		{"Segments", formatInt(o.Customers.SegmentCount)},
	}) + "\n")
	tiers := make([][]string, 0, len(o.Customers.SpendingTiers))
	for _, t := range o.Customers.SpendingTiers {
		tiers = append(tiers, []string{t.Name, formatInt(t.Count)})
	}
	b.WriteString(renderTable([]string{"Spend", "Customers"}, tiers) + "\n\n")

	b.WriteString(headerStyle.Render("Campaigns") + "\n")
	types := make([][]string, 0, len(o.Campaigns.ByType))
	for _, t := range o.Campaigns.ByType {
		types = append(types, []string{
			string(t.Type),
			formatInt(t.Campaigns),
			formatInt(t.Sent),
			fmt.Sprintf("%.1f%%", t.DeliveryRate),
			fmt.Sprintf("%.1f%%", t.OptOutRate),
		})
	}
	b.WriteString(renderTable([]string{"Type", "Campaigns", "Sent", "Delivered", "Opt-outs"}, types))

	return b.String()
}
