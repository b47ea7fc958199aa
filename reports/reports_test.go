package reports_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/supuni9622/crm-application/crm"
	"github.com/supuni9622/crm-application/crm/mocksource"
	"github.com/supuni9622/crm-application/reports"
)

func TestBuildSalesReport(t *testing.T) {
	june := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	may := time.Date(2025, 5, 2, 0, 0, 0, 0, time.UTC)
	txs := []crm.Transaction{
		{ProductName: "Basic Plan", Amount: 100, Date: june},
		{ProductName: "Premium", Amount: 50.5, Date: may},
		{ProductName: "Basic Plan", Amount: 25.25, Date: june},
	}

	report := reports.BuildSalesReport(txs)
	require.Equal(t, 175.75, report.TotalRevenue)
	require.Equal(t, 3, report.TotalOrders)
	require.Equal(t, 58.58, report.AverageOrderValue)
	require.Equal(t, []crm.PeriodAmount{{Period: "Jun", Amount: 125.25}, {Period: "May", Amount: 50.5}}, report.MonthlyRevenue)
	require.Equal(t, []reports.NamedAmount{{Name: "Basic Plan", Amount: 125.25}, {Name: "Premium", Amount: 50.5}}, report.ProductRevenue)

	empty := reports.BuildSalesReport(nil)
	require.Zero(t, empty.AverageOrderValue)
	require.NotNil(t, empty.MonthlyRevenue)
}

func TestBuildCustomerReport(t *testing.T) {
	customers := []crm.Customer{
		{TotalSpent: 100, OptInStatus: true},
		{TotalSpent: 100.01},
		{TotalSpent: 500},
		{TotalSpent: 1000, OptInStatus: true},
		{TotalSpent: 1000.5, OptInStatus: true},
	}
	segments := []crm.Segment{{Name: "VIP", CustomerCount: 12}}

	report := reports.BuildCustomerReport(customers, segments)
	require.Equal(t, []reports.NamedCount{
		{Name: "0-100", Count: 1},
		{Name: "101-500", Count: 2},
		{Name: "501-1000", Count: 1},
		{Name: "1000+", Count: 1},
	}, report.SpendingTiers)
	require.Equal(t, 60, report.OptInRate)
	require.Equal(t, 1, report.SegmentCount)
	require.Equal(t, []reports.NamedCount{{Name: "VIP", Count: 12}}, report.SegmentDistribution)
}

func TestBuildCampaignSummary(t *testing.T) {
	summary := reports.BuildCampaignSummary([]crm.Campaign{
		{Type: crm.CampaignSMS, SentCount: 200, DeliveredCount: 190, FailedCount: 10, OptOutCount: 2},
		{Type: crm.CampaignAutomated},
	})
	require.Len(t, summary.ByType, 2)
	require.Equal(t, 95.0, summary.ByType[0].DeliveryRate)
	require.Equal(t, 5.0, summary.ByType[0].FailureRate)
	require.Equal(t, 1.0, summary.ByType[0].OptOutRate)
	require.Zero(t, summary.ByType[1].DeliveryRate)
}

func TestService_Overview(t *testing.T) {
	src, err := mocksource.New()
	require.NoError(t, err)

	overview, err := reports.NewService(src).Overview(context.Background())
	require.NoError(t, err)
	require.Equal(t, 7, overview.Sales.TotalOrders)
	require.Equal(t, 1199.93, overview.Sales.TotalRevenue)
	require.Equal(t, 5, overview.Customers.TotalCustomers)
	require.Len(t, overview.Campaigns.ByType, 2)
}

type failingSource struct {
	crm.DataSource
}

func (failingSource) Transactions(context.Context) ([]crm.Transaction, error) {
	return nil, errors.New("backend down")
}

func TestService_PropagatesErrors(t *testing.T) {
	_, err := reports.NewService(failingSource{}).Sales(context.Background())
	require.ErrorContains(t, err, "backend down")
}
