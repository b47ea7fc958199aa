package crm

import "time"

type TransactionStatus string

const (
	TransactionCompleted  TransactionStatus = "completed"
	TransactionRefunded   TransactionStatus = "refunded"
	TransactionProcessing TransactionStatus = "processing"
)

type CampaignType string

const (
	CampaignSMS       CampaignType = "sms"
	CampaignAutomated CampaignType = "automated"
)

type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignScheduled CampaignStatus = "scheduled"
	CampaignRunning   CampaignStatus = "running"
	CampaignCompleted CampaignStatus = "completed"
)

type CampaignTrigger string

const (
	TriggerBirthday      CampaignTrigger = "birthday"
	TriggerFirstPurchase CampaignTrigger = "first_purchase"
)

type SubscriptionPlan string

const (
	PlanFree  SubscriptionPlan = "free"
	PlanBasic SubscriptionPlan = "basic"
	PlanPro   SubscriptionPlan = "pro"
)

type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionCanceled SubscriptionStatus = "canceled"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
)

type Customer struct {
	ID                string     `json:"id" yaml:"id"`
	Name              string     `json:"name" yaml:"name"`
	Email             string     `json:"email" yaml:"email"`
	Phone             string     `json:"phone" yaml:"phone"`
	CreatedAt         time.Time  `json:"created_at" yaml:"created_at"`
	LastActivity      *time.Time `json:"last_activity,omitempty" yaml:"last_activity"`
	OptInStatus       bool       `json:"opt_in_status" yaml:"opt_in_status"`
	ChannelPreference []string   `json:"channel_preference" yaml:"channel_preference"`
	SegmentIDs        []string   `json:"segment_ids" yaml:"segment_ids"`
	TotalSpent        float64    `json:"total_spent" yaml:"total_spent"`
	OrdersCount       int        `json:"orders_count" yaml:"orders_count"`
}

type Product struct {
	ID           string  `json:"id" yaml:"id"`
	Name         string  `json:"name" yaml:"name"`
	Description  string  `json:"description" yaml:"description"`
	Price        float64 `json:"price" yaml:"price"`
	Category     string  `json:"category" yaml:"category"`
	Inventory    int     `json:"inventory" yaml:"inventory"`
	ImageURL     string  `json:"image_url,omitempty" yaml:"image_url"`
	TotalSales   int     `json:"total_sales" yaml:"total_sales"`
	TotalRevenue float64 `json:"total_revenue" yaml:"total_revenue"`
}

type Transaction struct {
	ID           string            `json:"id" yaml:"id"`
	CustomerID   string            `json:"customer_id" yaml:"customer_id"`
	CustomerName string            `json:"customer_name" yaml:"customer_name"`
	ProductID    string            `json:"product_id" yaml:"product_id"`
	ProductName  string            `json:"product_name" yaml:"product_name"`
	Amount       float64           `json:"amount" yaml:"amount"`
	Date         time.Time         `json:"date" yaml:"date"`
	Status       TransactionStatus `json:"status" yaml:"status"`
}

type Campaign struct {
	ID             string           `json:"id" yaml:"id"`
	Title          string           `json:"title" yaml:"title"`
	Type           CampaignType     `json:"type" yaml:"type"`
	Status         CampaignStatus   `json:"status" yaml:"status"`
	CreatedAt      time.Time        `json:"created_at" yaml:"created_at"`
	ScheduledAt    *time.Time       `json:"scheduled_at,omitempty" yaml:"scheduled_at"`
	SentCount      int              `json:"sent_count" yaml:"sent_count"`
	DeliveredCount int              `json:"delivered_count" yaml:"delivered_count"`
	FailedCount    int              `json:"failed_count" yaml:"failed_count"`
	OptOutCount    int              `json:"opt_out_count" yaml:"opt_out_count"`
	Message        string           `json:"message" yaml:"message"`
	SegmentIDs     []string         `json:"segment_ids" yaml:"segment_ids"`
	Trigger        *CampaignTrigger `json:"trigger,omitempty" yaml:"trigger"`
}

// SegmentFilter is one rule of a segment. Value is a string, number, bool
// or list of strings depending on the field.
type SegmentFilter struct {
	Field    string `json:"field" yaml:"field"`
	Operator string `json:"operator" yaml:"operator"`
	Value    any    `json:"value" yaml:"value"`
}

type Segment struct {
	ID            string          `json:"id" yaml:"id"`
	Name          string          `json:"name" yaml:"name"`
	Description   string          `json:"description" yaml:"description"`
	CustomerCount int             `json:"customer_count" yaml:"customer_count"`
	CreatedAt     time.Time       `json:"created_at" yaml:"created_at"`
	Filters       []SegmentFilter `json:"filters" yaml:"filters"`
}

type Subscription struct {
	ID             string             `json:"id" yaml:"id"`
	Plan           SubscriptionPlan   `json:"plan" yaml:"plan"`
	Status         SubscriptionStatus `json:"status" yaml:"status"`
	StartDate      time.Time          `json:"start_date" yaml:"start_date"`
	EndDate        time.Time          `json:"end_date" yaml:"end_date"`
	Amount         float64            `json:"amount" yaml:"amount"`
	ContactsLimit  int                `json:"contacts_limit" yaml:"contacts_limit"`
	CampaignsLimit int                `json:"campaigns_limit" yaml:"campaigns_limit"`
	CreditsUsed    int                `json:"credits_used" yaml:"credits_used"`
	CreditsTotal   int                `json:"credits_total" yaml:"credits_total"`
}

// CreditsRemaining never goes below zero.
func (s *Subscription) CreditsRemaining() int {
	return max(s.CreditsTotal-s.CreditsUsed, 0)
}

type CampaignPerformance struct {
	OpenRate   float64 `json:"open_rate" yaml:"open_rate"`
	ClickRate  float64 `json:"click_rate" yaml:"click_rate"`
	OptOutRate float64 `json:"opt_out_rate" yaml:"opt_out_rate"`
}

type PeriodAmount struct {
	Period string  `json:"period" yaml:"period"`
	Amount float64 `json:"amount" yaml:"amount"`
}

type DashboardStats struct {
	TotalCustomers      int                 `json:"total_customers" yaml:"total_customers"`
	NewCustomers        int                 `json:"new_customers" yaml:"new_customers"`
	ActiveCampaigns     int                 `json:"active_campaigns" yaml:"active_campaigns"`
	TotalRevenue        float64             `json:"total_revenue" yaml:"total_revenue"`
	CampaignPerformance CampaignPerformance `json:"campaign_performance" yaml:"campaign_performance"`
	RecentTransactions  []Transaction       `json:"recent_transactions" yaml:"recent_transactions"`
	RevenueByPeriod     []PeriodAmount      `json:"revenue_by_period" yaml:"revenue_by_period"`
}
