// Package reports derives the sales, customer and campaign aggregates shown
// on the report pages.
package reports

import (
	"math"

	"github.com/supuni9622/crm-application/crm"
)

type NamedAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type SalesReport struct {
	TotalRevenue      float64            `json:"total_revenue"`
	AverageOrderValue float64            `json:"average_order_value"`
	TotalOrders       int                `json:"total_orders"`
	MonthlyRevenue    []crm.PeriodAmount `json:"monthly_revenue"`
	ProductRevenue    []NamedAmount      `json:"product_revenue"`
}

type CustomerReport struct {
	TotalCustomers      int          `json:"total_customers"`
	AverageSpend        float64      `json:"average_spend"`
	OptInRate           int          `json:"opt_in_rate"` // Whole percent
	SegmentCount        int          `json:"segment_count"`
	SegmentDistribution []NamedCount `json:"segment_distribution"`
	SpendingTiers       []NamedCount `json:"spending_tiers"`
}

type CampaignTypeSummary struct {
	Type         crm.CampaignType `json:"type"`
	Campaigns    int              `json:"campaigns"`
	Sent         int              `json:"sent"`
	Delivered    int              `json:"delivered"`
	Failed       int              `json:"failed"`
	OptOuts      int              `json:"opt_outs"`
	DeliveryRate float64          `json:"delivery_rate"`
	FailureRate  float64          `json:"failure_rate"`
	OptOutRate   float64          `json:"opt_out_rate"`
}

type CampaignSummary struct {
	ByType []CampaignTypeSummary `json:"by_type"`
}

// Spending tiers by total spent, upper bounds inclusive.
var spendingTiers = []struct {
	name  string
	upper float64
}{
	{"0-100", 100},
	{"101-500", 500},
	{"501-1000", 1000},
	{"1000+", math.Inf(1)},
}

// BuildSalesReport aggregates transactions. Months and products appear in
// the order they are first seen.
func BuildSalesReport(txs []crm.Transaction) SalesReport {
	report := SalesReport{
		TotalOrders:    len(txs),
		MonthlyRevenue: []crm.PeriodAmount{},
		ProductRevenue: []NamedAmount{},
	}

	months := map[string]int{}
	products := map[string]int{}
	for _, t := range txs {
		report.TotalRevenue += t.Amount

		month := t.Date.Format("Jan")
		if i, ok := months[month]; ok {
			report.MonthlyRevenue[i].Amount += t.Amount
		} else {
			months[month] = len(report.MonthlyRevenue)
			report.MonthlyRevenue = append(report.MonthlyRevenue, crm.PeriodAmount{Period: month, Amount: t.Amount})
		}

		if i, ok := products[t.ProductName]; ok {
			report.ProductRevenue[i].Amount += t.Amount
		} else {
			products[t.ProductName] = len(report.ProductRevenue)
			report.ProductRevenue = append(report.ProductRevenue, NamedAmount{Name: t.ProductName, Amount: t.Amount})
		}
	}

	if len(txs) > 0 {
		report.AverageOrderValue = cents(report.TotalRevenue / float64(len(txs)))
	}
	report.TotalRevenue = cents(report.TotalRevenue)
	for i := range report.MonthlyRevenue {
		report.MonthlyRevenue[i].Amount = cents(report.MonthlyRevenue[i].Amount)
	}
	for i := range report.ProductRevenue {
		report.ProductRevenue[i].Amount = cents(report.ProductRevenue[i].Amount)
	}
	return report
}

func BuildCustomerReport(customers []crm.Customer, segments []crm.Segment) CustomerReport {
	report := CustomerReport{
		TotalCustomers:      len(customers),
		SegmentCount:        len(segments),
		SegmentDistribution: make([]NamedCount, 0, len(segments)),
		SpendingTiers:       make([]NamedCount, len(spendingTiers)),
	}
	for i, tier := range spendingTiers {
		report.SpendingTiers[i].Name = tier.name
	}

	var spent float64
	optedIn := 0
	for _, c := range customers {
		spent += c.TotalSpent
		if c.OptInStatus {
			optedIn++
		}
		for i, tier := range spendingTiers {
			if c.TotalSpent <= tier.upper {
				report.SpendingTiers[i].Count++
				break
			}
		}
	}
	if len(customers) > 0 {
		report.AverageSpend = cents(spent / float64(len(customers)))
		report.OptInRate = int(math.Round(float64(optedIn) / float64(len(customers)) * 100))
	}

	for _, s := range segments {
		report.SegmentDistribution = append(report.SegmentDistribution, NamedCount{Name: s.Name, Count: s.CustomerCount})
	}
	return report
}

// BuildCampaignSummary totals delivery counters per campaign type. Rates are
// percentages of sent messages and zero when nothing was sent.
func BuildCampaignSummary(campaigns []crm.Campaign) CampaignSummary {
	summary := CampaignSummary{ByType: []CampaignTypeSummary{}}
	index := map[crm.CampaignType]int{}
	for _, c := range campaigns {
		i, ok := index[c.Type]
		if !ok {
			i = len(summary.ByType)
			index[c.Type] = i
			summary.ByType = append(summary.ByType, CampaignTypeSummary{Type: c.Type})
		}
		s := &summary.ByType[i]
		s.Campaigns++
		s.Sent += c.SentCount
		s.Delivered += c.DeliveredCount
		s.Failed += c.FailedCount
		s.OptOuts += c.OptOutCount
	}
	for i := range summary.ByType {
		s := &summary.ByType[i]
		s.DeliveryRate = rate(s.Delivered, s.Sent)
		s.FailureRate = rate(s.Failed, s.Sent)
		s.OptOutRate = rate(s.OptOuts, s.Sent)
	}
	return summary
}

func rate(n, of int) float64 {
	if of == 0 {
		return 0
	}
	return cents(float64(n) / float64(of) * 100)
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}
