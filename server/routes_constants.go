package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos
const (
	// Auth Routes - Login & Logout
	RouteLogin        = "/login"
	RouteAuthLogin    = "/auth/login"
	RouteAuthLogout   = "/auth/logout"
	RouteUnauthorized = "/unauthorized"

	// Dashboard
	RouteDashboard    = "/dashboard"
	RouteAPIDashboard = "/api/dashboard"
	RouteAPIMe        = "/api/me"

	// Collections
	RouteAPICustomers    = "/api/customers"
	RouteAPICustomer     = "/api/customers/{id}"
	RouteAPIProducts     = "/api/products"
	RouteAPITransactions = "/api/transactions"
	RouteAPICampaigns    = "/api/campaigns"
	RouteAPISegments     = "/api/segments"

	// Reports
	RouteAPIReportsSales     = "/api/reports/sales"
	RouteAPIReportsCustomers = "/api/reports/customers"
	RouteAPIReportsCampaigns = "/api/reports/campaigns"

	// Admin Routes
	RouteAPISubscription = "/api/subscription"
)
