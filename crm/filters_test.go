package crm_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/supuni9622/crm-application/crm"
	crmerrors "github.com/supuni9622/crm-application/internal/errors"
	"github.com/supuni9622/crm-application/table"
)

var now = time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)

func ago(d time.Duration) *time.Time {
	t := now.Add(-d)
	return &t
}

func customerIDs(cs []crm.Customer) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.ID
	}
	return out
}

func txIDs(txs []crm.Transaction) []string {
	out := make([]string, len(txs))
	for i, t := range txs {
		out[i] = t.ID
	}
	return out
}

func fixtureCustomers() []crm.Customer {
	day := 24 * time.Hour
	return []crm.Customer{
		{ID: "recent", Name: "Recent Buyer", CreatedAt: now.Add(-2 * day), LastActivity: ago(day), OptInStatus: true},
		{ID: "stale", Name: "Stale Buyer", CreatedAt: now.Add(-400 * day), LastActivity: ago(45 * day), OptInStatus: false},
		{ID: "never", Name: "Never Active", CreatedAt: now.Add(-10 * day), OptInStatus: true},
	}
}

func TestFilterCustomers(t *testing.T) {
	customers := fixtureCustomers()

	tests := []struct {
		tab  crm.CustomerTab
		want []string
	}{
		{crm.TabAll, []string{"recent", "stale", "never"}},
		{crm.TabActive, []string{"recent"}},
		{crm.TabNew, []string{"recent"}},
		{crm.TabOptedIn, []string{"recent", "never"}},
		{crm.TabOptedOut, []string{"stale"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			require.Equal(t, tt.want, customerIDs(crm.FilterCustomers(customers, tt.tab, now)))
		})
	}
}

func TestParseCustomerTab(t *testing.T) {
	tab, err := crm.ParseCustomerTab("")
	require.NoError(t, err)
	require.Equal(t, crm.TabAll, tab)

	tab, err = crm.ParseCustomerTab("Opted-In")
	require.NoError(t, err)
	require.Equal(t, crm.TabOptedIn, tab)

	_, err = crm.ParseCustomerTab("vip")
	require.True(t, crmerrors.Is(err, crmerrors.ErrInvalidRequest))
}

func TestFilterTransactions(t *testing.T) {
	day := 24 * time.Hour
	txs := []crm.Transaction{
		{ID: "today", CustomerID: "c1", Date: now.Add(-time.Hour), Status: crm.TransactionCompleted},
		{ID: "week", CustomerID: "c2", Date: now.Add(-6 * day), Status: crm.TransactionRefunded},
		{ID: "cutoff", CustomerID: "c1", Date: now.Add(-7 * day), Status: crm.TransactionCompleted},
		{ID: "old", CustomerID: "c1", Date: now.Add(-60 * day), Status: crm.TransactionProcessing},
	}

	require.Equal(t, []string{"today", "week", "cutoff", "old"}, txIDs(crm.FilterTransactions(txs, 0, "", now)))
	require.Equal(t, []string{"today", "week", "cutoff"}, txIDs(crm.FilterTransactions(txs, 7, "", now)))
	require.Equal(t, []string{"today", "cutoff"}, txIDs(crm.FilterTransactions(txs, 7, crm.TransactionCompleted, now)))
	require.Equal(t, []string{"old"}, txIDs(crm.FilterTransactions(txs, 90, crm.TransactionProcessing, now)))
	require.Equal(t, []string{"today", "cutoff", "old"}, txIDs(crm.TransactionsForCustomer(txs, "c1")))

	status, err := crm.ParseTransactionStatus("all")
	require.NoError(t, err)
	require.Empty(t, status)
	_, err = crm.ParseTransactionStatus("lost")
	require.Error(t, err)
}

func TestFilterCampaigns(t *testing.T) {
	campaigns := []crm.Campaign{
		{ID: "a", Type: crm.CampaignSMS},
		{ID: "b", Type: crm.CampaignAutomated},
	}
	ct, err := crm.ParseCampaignType("automated")
	require.NoError(t, err)
	got := crm.FilterCampaigns(campaigns, ct)
	require.Len(t, got, 1)
	require.Equal(t, "b", got[0].ID)
	require.Len(t, crm.FilterCampaigns(campaigns, ""), 2)

	_, err = crm.ParseCampaignType("email")
	require.Error(t, err)
}

func TestGrowthPercentage(t *testing.T) {
	require.Equal(t, 100.0, crm.GrowthPercentage(5, 0))
	require.Equal(t, 0.0, crm.GrowthPercentage(0, 0))
	require.Equal(t, 50.0, crm.GrowthPercentage(150, 100))
	require.Equal(t, -25.0, crm.GrowthPercentage(75, 100))
}

func TestCustomerTable(t *testing.T) {
	customers := []crm.Customer{
		{ID: "cust1", Name: "John Smith", TotalSpent: 1299.99},
		{ID: "cust2", Name: "Jane Cooper", TotalSpent: 899.50},
		{ID: "cust3", Name: "Robert Johnson", TotalSpent: 499.99},
	}

	view, err := crm.CustomerTable().Apply(customers, table.State{SearchText: "jane", PageSize: 10})
	require.NoError(t, err)
	require.Equal(t, []string{"cust2"}, customerIDs(view.Rows))

	view, err = crm.CustomerTable().Apply(customers, table.State{SortColumn: "total_spent", SortDirection: table.Asc})
	require.NoError(t, err)
	require.Equal(t, []string{"cust3", "cust2", "cust1"}, customerIDs(view.Rows))

	view, err = crm.CustomerTable().Apply(customers, table.State{SortColumn: "last_activity", SortDirection: table.Desc})
	require.NoError(t, err)
	require.Equal(t, []string{"cust1", "cust2", "cust3"}, customerIDs(view.Rows), "all missing keeps input order")
}

func TestSearchColumns(t *testing.T) {
	require.Equal(t, "name", crm.CustomerTable().SearchColumn())
	require.Equal(t, "name", crm.ProductTable().SearchColumn())
	require.Equal(t, "customer_name", crm.TransactionTable().SearchColumn())
	require.Equal(t, "title", crm.CampaignTable().SearchColumn())
	require.Equal(t, "name", crm.SegmentTable().SearchColumn())
}
