package reports

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"

	"github.com/supuni9622/crm-application/crm"
)

// Service builds reports from a data source, fetching independent
// collections concurrently.
type Service struct {
	source crm.DataSource
}

func NewService(source crm.DataSource) *Service {
	return &Service{source: source}
}

// Overview is every report at once.
type Overview struct {
	Sales     SalesReport     `json:"sales"`
	Customers CustomerReport  `json:"customers"`
	Campaigns CampaignSummary `json:"campaigns"`
}

type collections struct {
	transactions []crm.Transaction
	customers    []crm.Customer
	segments     []crm.Segment
	campaigns    []crm.Campaign
}

type want struct {
	transactions, customers, segments, campaigns bool
}

// fetch loads the requested collections in parallel. The first failure
// cancels the rest.
func (s *Service) fetch(ctx context.Context, w want) (*collections, error) {
	var c collections
	p := pool.New().WithContext(ctx).WithCancelOnError()

	if w.transactions {
		p.Go(func(ctx context.Context) error {
			txs, err := s.source.Transactions(ctx)
			c.transactions = txs
			return errors.Wrap(err, "transactions")
		})
	}
	if w.customers {
		p.Go(func(ctx context.Context) error {
			customers, err := s.source.Customers(ctx)
			c.customers = customers
			return errors.Wrap(err, "customers")
		})
	}
	if w.segments {
		p.Go(func(ctx context.Context) error {
			segments, err := s.source.Segments(ctx)
			c.segments = segments
			return errors.Wrap(err, "segments")
		})
	}
	if w.campaigns {
		p.Go(func(ctx context.Context) error {
			campaigns, err := s.source.Campaigns(ctx)
			c.campaigns = campaigns
			return errors.Wrap(err, "campaigns")
		})
	}

	if err := p.Wait(); err != nil {
		return nil, errors.Wrap(err, "[reports fetch]")
	}
	return &c, nil
}

func (s *Service) Sales(ctx context.Context) (SalesReport, error) {
	c, err := s.fetch(ctx, want{transactions: true})
	if err != nil {
		return SalesReport{}, err
	}
	return BuildSalesReport(c.transactions), nil
}

func (s *Service) Customers(ctx context.Context) (CustomerReport, error) {
	c, err := s.fetch(ctx, want{customers: true, segments: true})
	if err != nil {
		return CustomerReport{}, err
	}
	return BuildCustomerReport(c.customers, c.segments), nil
}

func (s *Service) Campaigns(ctx context.Context) (CampaignSummary, error) {
	c, err := s.fetch(ctx, want{campaigns: true})
	if err != nil {
		return CampaignSummary{}, err
	}
	return BuildCampaignSummary(c.campaigns), nil
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	c, err := s.fetch(ctx, want{transactions: true, customers: true, segments: true, campaigns: true})
	if err != nil {
		return nil, err
	}
	return &Overview{
		Sales:     BuildSalesReport(c.transactions),
		Customers: BuildCustomerReport(c.customers, c.segments),
		Campaigns: BuildCampaignSummary(c.campaigns),
	}, nil
}
