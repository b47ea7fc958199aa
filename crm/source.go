// Package crm holds the dashboard's record types, the data source contract
// and the view filters and table configurations built on them.
package crm

import "context"

// DataSource serves the dashboard collections. Each call is a single round
// trip and honors context cancellation.
type DataSource interface {
	DashboardStats(ctx context.Context) (*DashboardStats, error)
	Customers(ctx context.Context) ([]Customer, error)
	// Customer fails with ErrRecordNotFound for an unknown id.
	Customer(ctx context.Context, id string) (*Customer, error)
	Products(ctx context.Context) ([]Product, error)
	Transactions(ctx context.Context) ([]Transaction, error)
	Campaigns(ctx context.Context) ([]Campaign, error)
	Segments(ctx context.Context) ([]Segment, error)
	Subscription(ctx context.Context) (*Subscription, error)
}
