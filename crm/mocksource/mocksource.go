// Package mocksource serves the dashboard fixtures from an embedded YAML
// document, optionally with simulated latency.
package mocksource

import (
	"context"
	_ "embed"
	"slices"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/supuni9622/crm-application/crm"
	crmerrors "github.com/supuni9622/crm-application/internal/errors"
	"github.com/supuni9622/crm-application/users"
)

//go:embed seed.yaml
var defaultSeed []byte

var _ crm.DataSource = (*Source)(nil)

type dashboardSeed struct {
	crm.DashboardStats   `yaml:",inline"`
	RecentTransactionIDs []string `yaml:"recent_transaction_ids"`
}

type seed struct {
	Accounts     []*users.Account  `yaml:"accounts"`
	Dashboard    dashboardSeed     `yaml:"dashboard"`
	Customers    []crm.Customer    `yaml:"customers"`
	Products     []crm.Product     `yaml:"products"`
	Transactions []crm.Transaction `yaml:"transactions"`
	Campaigns    []crm.Campaign    `yaml:"campaigns"`
	Segments     []crm.Segment     `yaml:"segments"`
	Subscription crm.Subscription  `yaml:"subscription"`
}

// Source is an in-memory crm.DataSource.
type Source struct {
	raw   []byte
	delay time.Duration
	data  seed
}

// Option defines a function type to modify the Source instance.
type Option func(*Source)

// WithDelay makes every call wait d before answering.
func WithDelay(d time.Duration) Option {
	return func(s *Source) {
		s.delay = d
	}
}

// WithSeed replaces the embedded fixture document.
func WithSeed(doc []byte) Option {
	return func(s *Source) {
		s.raw = doc
	}
}

func New(options ...Option) (*Source, error) {
	s := &Source{raw: defaultSeed}
	for _, opt := range options {
		opt(s)
	}

	if err := yaml.Unmarshal(s.raw, &s.data); err != nil {
		return nil, errors.Wrap(err, "[mocksource New] decode seed")
	}

	for _, id := range s.data.Dashboard.RecentTransactionIDs {
		i := slices.IndexFunc(s.data.Transactions, func(t crm.Transaction) bool { return t.ID == id })
		if i < 0 {
			return nil, errors.Errorf("[mocksource New] dashboard references unknown transaction %q", id)
		}
		s.data.Dashboard.RecentTransactions = append(s.data.Dashboard.RecentTransactions, s.data.Transactions[i])
	}
	return s, nil
}

// Accounts returns the demo login identities.
func (s *Source) Accounts() []*users.Account {
	out := make([]*users.Account, 0, len(s.data.Accounts))
	for _, a := range s.data.Accounts {
		copied := *a
		out = append(out, &copied)
	}
	return out
}

func (s *Source) DashboardStats(ctx context.Context) (*crm.DashboardStats, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	stats := s.data.Dashboard.DashboardStats.Clone()
	return &stats, nil
}

func (s *Source) Customers(ctx context.Context) ([]crm.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return crm.CloneAll(s.data.Customers), nil
}

func (s *Source) Customer(ctx context.Context, id string) (*crm.Customer, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	for _, c := range s.data.Customers {
		if c.ID == id {
			copied := c.Clone()
			return &copied, nil
		}
	}
	return nil, errors.Wrapf(crmerrors.ErrRecordNotFound, "[Source Customer] %s", id)
}

func (s *Source) Products(ctx context.Context) ([]crm.Product, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return crm.CloneAll(s.data.Products), nil
}

func (s *Source) Transactions(ctx context.Context) ([]crm.Transaction, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return crm.CloneAll(s.data.Transactions), nil
}

func (s *Source) Campaigns(ctx context.Context) ([]crm.Campaign, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return crm.CloneAll(s.data.Campaigns), nil
}

func (s *Source) Segments(ctx context.Context) ([]crm.Segment, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return crm.CloneAll(s.data.Segments), nil
}

func (s *Source) Subscription(ctx context.Context) (*crm.Subscription, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	sub := s.data.Subscription
	return &sub, nil
}

func (s *Source) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
