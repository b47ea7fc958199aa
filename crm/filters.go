package crm

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	crmerrors "github.com/supuni9622/crm-application/internal/errors"
)

// CustomerTab is one of the customer list tabs.
type CustomerTab string

const (
	TabAll      CustomerTab = "all"
	TabActive   CustomerTab = "active"
	TabNew      CustomerTab = "new"
	TabOptedIn  CustomerTab = "opted-in"
	TabOptedOut CustomerTab = "opted-out"
)

const (
	ActiveWindow = 30 * 24 * time.Hour
	NewWindow    = 7 * 24 * time.Hour
)

// ParseCustomerTab treats empty as all.
func ParseCustomerTab(s string) (CustomerTab, error) {
	switch tab := CustomerTab(strings.ToLower(strings.TrimSpace(s))); tab {
	case "":
		return TabAll, nil
	case TabAll, TabActive, TabNew, TabOptedIn, TabOptedOut:
		return tab, nil
	}
	return "", errors.Wrapf(crmerrors.ErrInvalidRequest, "[ParseCustomerTab] unknown tab %q", s)
}

// FilterCustomers returns the customers shown under tab. Active means activity
// within the last 30 days; new means created within the last 7 days.
func FilterCustomers(customers []Customer, tab CustomerTab, now time.Time) []Customer {
	var keep func(Customer) bool
	switch tab {
	case TabActive:
		cutoff := now.Add(-ActiveWindow)
		keep = func(c Customer) bool { return c.LastActivity != nil && c.LastActivity.After(cutoff) }
	case TabNew:
		cutoff := now.Add(-NewWindow)
		keep = func(c Customer) bool { return c.CreatedAt.After(cutoff) }
	case TabOptedIn:
		keep = func(c Customer) bool { return c.OptInStatus }
	case TabOptedOut:
		keep = func(c Customer) bool { return !c.OptInStatus }
	default:
		return customers
	}
	return filter(customers, keep)
}

// ParseTransactionStatus treats empty and "all" as no filter.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch st := TransactionStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case "", "all":
		return "", nil
	case TransactionCompleted, TransactionRefunded, TransactionProcessing:
		return st, nil
	}
	return "", errors.Wrapf(crmerrors.ErrInvalidRequest, "[ParseTransactionStatus] unknown status %q", s)
}

// FilterTransactions keeps transactions dated on or after now minus days
// (days <= 0 disables the range) and with the given status (empty is all).
func FilterTransactions(txs []Transaction, days int, status TransactionStatus, now time.Time) []Transaction {
	if days <= 0 && status == "" {
		return txs
	}
	cutoff := now.AddDate(0, 0, -days)
	return filter(txs, func(t Transaction) bool {
		if days > 0 && t.Date.Before(cutoff) {
			return false
		}
		return status == "" || t.Status == status
	})
}

// TransactionsForCustomer keeps one customer's transactions.
func TransactionsForCustomer(txs []Transaction, customerID string) []Transaction {
	return filter(txs, func(t Transaction) bool { return t.CustomerID == customerID })
}

// ParseCampaignType treats empty and "all" as no filter.
func ParseCampaignType(s string) (CampaignType, error) {
	switch ct := CampaignType(strings.ToLower(strings.TrimSpace(s))); ct {
	case "", "all":
		return "", nil
	case CampaignSMS, CampaignAutomated:
		return ct, nil
	}
	return "", errors.Wrapf(crmerrors.ErrInvalidRequest, "[ParseCampaignType] unknown type %q", s)
}

func FilterCampaigns(campaigns []Campaign, campaignType CampaignType) []Campaign {
	if campaignType == "" {
		return campaigns
	}
	return filter(campaigns, func(c Campaign) bool { return c.Type == campaignType })
}

// GrowthPercentage is the percent change from previous to current. A zero
// baseline reports 100 for any growth and 0 otherwise.
func GrowthPercentage(current, previous float64) float64 {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return (current - previous) / previous * 100
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
