package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/supuni9622/crm-application/crm"
	"github.com/supuni9622/crm-application/crm/mocksource"
	crmerrors "github.com/supuni9622/crm-application/internal/errors"
	"github.com/supuni9622/crm-application/table"
	"github.com/supuni9622/crm-application/users"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Search   string
	OrderBy  string
	Page     int // 1-based
	PageSize int
	Tab      string
	Days     int
	Status   string
	Type     string
}

// Collections are the names accepted by list.
var Collections = []string{"customers", "products", "transactions", "campaigns", "segments"}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:       "list <" + strings.Join(Collections, "|") + ">",
		Short:     "List a collection as a searchable, sortable table",
		ValidArgs: Collections,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Long: `List one of the dashboard collections. Requires a signed-in session.

Examples:
  crm list customers --search jane
  crm list customers --tab opted-in --order-by "total_spent desc"
  crm list transactions --days 7 --status completed --page 2
  crm list campaigns --type sms --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd, args[0])
		},
	}

	cmd.Flags().StringVar(&opts.Search, "search", "", "case-insensitive text matched against the search column")
	cmd.Flags().StringVar(&opts.OrderBy, "order-by", "", `sort expression such as "name" or "name desc"`)
	cmd.Flags().IntVar(&opts.Page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&opts.PageSize, "page-size", table.DefaultPageSize, "rows per page")
	cmd.Flags().StringVar(&opts.Tab, "tab", "all", "customers: all|active|new|opted-in|opted-out")
	cmd.Flags().IntVar(&opts.Days, "days", 0, "transactions: only the last N days (0 for all)")
	cmd.Flags().StringVar(&opts.Status, "status", "all", "transactions: all|completed|processing|refunded")
	cmd.Flags().StringVar(&opts.Type, "type", "all", "campaigns: all|sms|automated")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command, collection string) error {
	if opts.Page < 1 {
		return crmerrors.Wrapf(crmerrors.ErrInvalidRequest, "page must be at least 1")
	}
	if opts.Days < 0 {
		return crmerrors.Wrapf(crmerrors.ErrInvalidRequest, "days must not be negative")
	}

	store, slot, err := openSession(opts.RootOptions)
	if err != nil {
		return err
	}
	defer slot.Close()

	if _, err := authorize(store, users.RoleUser); err != nil {
		return err
	}

	source, err := newSource(opts.RootOptions)
	if err != nil {
		return err
	}

	out := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	ctx := cmd.Context()

	switch collection {
	case "customers":
		return listCustomers(ctx, opts, source, out)
	case "products":
		rows, err := source.Products(ctx)
		if err != nil {
			return err
		}
		return printView(opts, out, crm.ProductTable(), rows)
	case "transactions":
		return listTransactions(ctx, opts, source, out)
	case "campaigns":
		campaignType, err := crm.ParseCampaignType(opts.Type)
		if err != nil {
			return err
		}
		rows, err := source.Campaigns(ctx)
		if err != nil {
			return err
		}
		return printView(opts, out, crm.CampaignTable(), crm.FilterCampaigns(rows, campaignType))
	case "segments":
		rows, err := source.Segments(ctx)
		if err != nil {
			return err
		}
		return printView(opts, out, crm.SegmentTable(), rows)
	}
	return crmerrors.Wrapf(crmerrors.ErrInvalidRequest, "unknown collection %q", collection)
}

func listCustomers(ctx context.Context, opts *ListOptions, source *mocksource.Source, out *OutputFormatter) error {
	tab, err := crm.ParseCustomerTab(opts.Tab)
	if err != nil {
		return err
	}
	rows, err := source.Customers(ctx)
	if err != nil {
		return err
	}
	return printView(opts, out, crm.CustomerTable(), crm.FilterCustomers(rows, tab, opts.nowTime()))
}

func listTransactions(ctx context.Context, opts *ListOptions, source *mocksource.Source, out *OutputFormatter) error {
	status, err := crm.ParseTransactionStatus(opts.Status)
	if err != nil {
		return err
	}
	rows, err := source.Transactions(ctx)
	if err != nil {
		return err
	}
	return printView(opts, out, crm.TransactionTable(), crm.FilterTransactions(rows, opts.Days, status, opts.nowTime()))
}

// printView applies the list flags to rows and prints the resulting page.
func printView[T any](opts *ListOptions, out *OutputFormatter, tbl *table.Table[T], rows []T) error {
	col, dir, err := tbl.ParseOrderBy(opts.OrderBy)
	if err != nil {
		return err
	}
	view, err := tbl.Apply(rows, table.State{
		SortColumn:    col,
		SortDirection: dir,
		SearchText:    opts.Search,
		PageIndex:     opts.Page - 1,
		PageSize:      opts.PageSize,
	})
	if err != nil {
		return err
	}

	return out.Print(view, func() string {
		columns := tbl.Columns()
		headers := make([]string, len(columns))
		for i, c := range columns {
			headers[i] = c.Header()
		}
		cells := make([][]string, 0, len(view.Rows))
		for _, r := range view.Rows {
			line := make([]string, len(columns))
			for i, c := range columns {
				line[i] = c.Cell(r)
			}
			cells = append(cells, line)
		}
		footer := fmt.Sprintf("page %d of %d, %s rows", view.PageIndex+1, max(view.PageCount, 1), formatInt(view.Total))
		return renderTable(headers, cells) + "\n" + muted(footer)
	})
}
