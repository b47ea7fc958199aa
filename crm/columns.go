package crm

import (
	"strings"

	"github.com/supuni9622/crm-application/table"
)

// Column configurations for each collection. The first argument to MustNew
// is the column free-text search runs against.

var customerTable = table.MustNew("name",
	table.Column[Customer]{Key: "name", Label: "Name", Value: func(c Customer) any { return c.Name }},
	table.Column[Customer]{Key: "email", Label: "Email", Value: func(c Customer) any { return c.Email }},
	table.Column[Customer]{Key: "phone", Label: "Phone", Value: func(c Customer) any { return c.Phone }},
	table.Column[Customer]{Key: "created_at", Label: "Created", Value: func(c Customer) any { return c.CreatedAt }},
	table.Column[Customer]{Key: "last_activity", Label: "Last Activity", Value: func(c Customer) any {
		if c.LastActivity == nil {
			return nil
		}
		return *c.LastActivity
	}},
	table.Column[Customer]{Key: "opt_in_status", Label: "Status", Value: func(c Customer) any { return c.OptInStatus },
		Text: func(c Customer) string {
			if c.OptInStatus {
				return "opted-in"
			}
			return "opted-out"
		}},
	table.Column[Customer]{Key: "channel_preference", Label: "Channels", Value: func(c Customer) any {
		return strings.Join(c.ChannelPreference, ", ")
	}},
	table.Column[Customer]{Key: "total_spent", Label: "Total Spent", Value: func(c Customer) any { return c.TotalSpent }},
	table.Column[Customer]{Key: "orders_count", Label: "Orders", Value: func(c Customer) any { return c.OrdersCount }},
)

var productTable = table.MustNew("name",
	table.Column[Product]{Key: "name", Label: "Name", Value: func(p Product) any { return p.Name }},
	table.Column[Product]{Key: "category", Label: "Category", Value: func(p Product) any { return p.Category }},
	table.Column[Product]{Key: "price", Label: "Price", Value: func(p Product) any { return p.Price }},
	table.Column[Product]{Key: "total_sales", Label: "Sales", Value: func(p Product) any { return p.TotalSales }},
	table.Column[Product]{Key: "total_revenue", Label: "Revenue", Value: func(p Product) any { return p.TotalRevenue }},
	table.Column[Product]{Key: "inventory", Label: "Inventory", Value: func(p Product) any { return p.Inventory }},
)

var transactionTable = table.MustNew("customer_name",
	table.Column[Transaction]{Key: "customer_name", Label: "Customer", Value: func(t Transaction) any { return t.CustomerName }},
	table.Column[Transaction]{Key: "product_name", Label: "Product", Value: func(t Transaction) any { return t.ProductName }},
	table.Column[Transaction]{Key: "amount", Label: "Amount", Value: func(t Transaction) any { return t.Amount }},
	table.Column[Transaction]{Key: "date", Label: "Date", Value: func(t Transaction) any { return t.Date }},
	table.Column[Transaction]{Key: "status", Label: "Status", Value: func(t Transaction) any { return t.Status }},
)

var campaignTable = table.MustNew("title",
	table.Column[Campaign]{Key: "title", Label: "Title", Value: func(c Campaign) any { return c.Title }},
	table.Column[Campaign]{Key: "type", Label: "Type", Value: func(c Campaign) any { return c.Type }},
	table.Column[Campaign]{Key: "trigger", Label: "Trigger", Value: func(c Campaign) any {
		if c.Trigger == nil {
			return nil
		}
		return *c.Trigger
	}},
	table.Column[Campaign]{Key: "status", Label: "Status", Value: func(c Campaign) any { return c.Status }},
	table.Column[Campaign]{Key: "created_at", Label: "Created", Value: func(c Campaign) any { return c.CreatedAt }},
	table.Column[Campaign]{Key: "sent_count", Label: "Sent", Value: func(c Campaign) any { return c.SentCount }},
	table.Column[Campaign]{Key: "delivered_count", Label: "Delivered", Value: func(c Campaign) any { return c.DeliveredCount }},
)

var segmentTable = table.MustNew("name",
	table.Column[Segment]{Key: "name", Label: "Name", Value: func(s Segment) any { return s.Name }},
	table.Column[Segment]{Key: "description", Label: "Description", Value: func(s Segment) any { return s.Description }},
	table.Column[Segment]{Key: "customer_count", Label: "Customers", Value: func(s Segment) any { return s.CustomerCount }},
	table.Column[Segment]{Key: "created_at", Label: "Created", Value: func(s Segment) any { return s.CreatedAt }},
)

func CustomerTable() *table.Table[Customer]       { return customerTable }
func ProductTable() *table.Table[Product]         { return productTable }
func TransactionTable() *table.Table[Transaction] { return transactionTable }
func CampaignTable() *table.Table[Campaign]       { return campaignTable }
func SegmentTable() *table.Table[Segment]         { return segmentTable }
