package mocksource_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/supuni9622/crm-application/crm"
	"github.com/supuni9622/crm-application/crm/mocksource"
	crmerrors "github.com/supuni9622/crm-application/internal/errors"
	"github.com/supuni9622/crm-application/users"
)

func newSource(t *testing.T, opts ...mocksource.Option) *mocksource.Source {
	t.Helper()
	src, err := mocksource.New(opts...)
	require.NoError(t, err)
	return src
}

func TestSource_Collections(t *testing.T) {
	ctx := context.Background()
	src := newSource(t)

	customers, err := src.Customers(ctx)
	require.NoError(t, err)
	require.Len(t, customers, 5)
	require.Equal(t, "John Smith", customers[0].Name)
	require.NotNil(t, customers[0].LastActivity)
	require.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), customers[0].CreatedAt.UTC())

	products, err := src.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 4)

	txs, err := src.Transactions(ctx)
	require.NoError(t, err)
	require.Len(t, txs, 7)
	require.Equal(t, crm.TransactionRefunded, txs[4].Status)

	campaigns, err := src.Campaigns(ctx)
	require.NoError(t, err)
	require.Len(t, campaigns, 5)
	require.Nil(t, campaigns[0].Trigger)
	require.NotNil(t, campaigns[2].Trigger)
	require.Equal(t, crm.TriggerBirthday, *campaigns[2].Trigger)

	segments, err := src.Segments(ctx)
	require.NoError(t, err)
	require.Len(t, segments, 4)
	require.Equal(t, true, segments[1].Filters[0].Value)

	sub, err := src.Subscription(ctx)
	require.NoError(t, err)
	require.Equal(t, crm.PlanPro, sub.Plan)
	require.Equal(t, 6500, sub.CreditsRemaining())

	stats, err := src.DashboardStats(ctx)
	require.NoError(t, err)
	require.Equal(t, 1247, stats.TotalCustomers)
	require.Len(t, stats.RecentTransactions, 3)
	require.Equal(t, "tx1", stats.RecentTransactions[0].ID)
	require.Len(t, stats.RevenueByPeriod, 6)
}

func TestSource_Customer(t *testing.T) {
	src := newSource(t)

	c, err := src.Customer(context.Background(), "cust2")
	require.NoError(t, err)
	require.Equal(t, "Jane Cooper", c.Name)

	_, err = src.Customer(context.Background(), "cust99")
	require.True(t, crmerrors.Is(err, crmerrors.ErrRecordNotFound))
}

func TestSource_ReturnsCopies(t *testing.T) {
	src := newSource(t)
	ctx := context.Background()

	first, err := src.Customers(ctx)
	require.NoError(t, err)
	first[0].Name = "changed"

	second, err := src.Customers(ctx)
	require.NoError(t, err)
	require.Equal(t, "John Smith", second[0].Name)
}

func TestSource_ReturnsDeepCopies(t *testing.T) {
	src := newSource(t)
	ctx := context.Background()

	customers, err := src.Customers(ctx)
	require.NoError(t, err)
	wantActivity := *customers[0].LastActivity
	*customers[0].LastActivity = time.Time{}
	customers[0].ChannelPreference[0] = "pigeon"

	single, err := src.Customer(ctx, customers[0].ID)
	require.NoError(t, err)
	single.SegmentIDs[0] = "changed"

	again, err := src.Customers(ctx)
	require.NoError(t, err)
	require.Equal(t, wantActivity, *again[0].LastActivity)
	require.Equal(t, "sms", again[0].ChannelPreference[0])
	require.Equal(t, "seg1", again[0].SegmentIDs[0])

	campaigns, err := src.Campaigns(ctx)
	require.NoError(t, err)
	idx := slices.IndexFunc(campaigns, func(c crm.Campaign) bool { return c.Trigger != nil })
	require.GreaterOrEqual(t, idx, 0)
	want := *campaigns[idx].Trigger
	*campaigns[idx].Trigger = "changed"

	campaigns, err = src.Campaigns(ctx)
	require.NoError(t, err)
	require.Equal(t, want, *campaigns[idx].Trigger)

	segments, err := src.Segments(ctx)
	require.NoError(t, err)
	segments[0].Filters[0].Field = "changed"

	segments, err = src.Segments(ctx)
	require.NoError(t, err)
	require.Equal(t, "last_activity", segments[0].Filters[0].Field)
}

func TestSource_Accounts(t *testing.T) {
	accounts := newSource(t).Accounts()
	require.Len(t, accounts, 2)
	require.Equal(t, "admin@example.com", accounts[0].Email)
	require.Equal(t, users.RoleAdmin, accounts[0].Role)
	require.Equal(t, users.RoleUser, accounts[1].Role)
	require.NotEmpty(t, accounts[1].Password)
}

func TestSource_Delay(t *testing.T) {
	src := newSource(t, mocksource.WithDelay(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := src.Customers(ctx)
	require.ErrorIs(t, err, context.Canceled)

	fast := newSource(t, mocksource.WithDelay(time.Millisecond))
	_, err = fast.Products(context.Background())
	require.NoError(t, err)
}

func TestNew_BadSeed(t *testing.T) {
	_, err := mocksource.New(mocksource.WithSeed([]byte("customers: [")))
	require.Error(t, err)

	_, err = mocksource.New(mocksource.WithSeed([]byte("dashboard:\n  recent_transaction_ids: [missing]\n")))
	require.Error(t, err)
}
