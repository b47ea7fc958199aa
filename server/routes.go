package server

import (
	"github.com/supuni9622/crm-application/users"
)

func (s *Server) initRoutes() {
	// LOGIN
	s.RegisterRouteHandler("GET "+RouteLogin, ChainMiddleware(s.LoginPageHandler(), s.PageMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAuthLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.PageMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAuthLogout, ChainMiddleware(s.LogoutHandler(), s.PageMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteUnauthorized, ChainMiddleware(s.UnauthorizedHandler(), s.PageMiddleware()...))

	// Any authenticated user
	s.RegisterRouteHandler("GET "+RouteDashboard, ChainMiddleware(s.DashboardPageHandler(), s.PageMiddleware(s.RequireRole(users.RoleUser))...))
	s.RegisterRouteHandler("GET "+RouteAPIMe, ChainMiddleware(s.MeHandler(), s.APIMiddleware(s.RequireRole(users.RoleUser))...))
	s.RegisterRouteHandler("GET "+RouteAPIDashboard, ChainMiddleware(s.DashboardHandler(), s.APIMiddleware(s.RequireRole(users.RoleUser))...))
	s.RegisterRouteHandler("GET "+RouteAPICustomers, ChainMiddleware(s.CustomersHandler(), s.APIMiddleware(s.RequireRole(users.RoleUser))...))
	s.RegisterRouteHandler("GET "+RouteAPICustomer, ChainMiddleware(s.CustomerDetailHandler(), s.APIMiddleware(s.RequireRole(users.RoleUser))...))
	s.RegisterRouteHandler("GET "+RouteAPIProducts, ChainMiddleware(s.ProductsHandler(), s.APIMiddleware(s.RequireRole(users.RoleUser))...))
	s.RegisterRouteHandler("GET "+RouteAPITransactions, ChainMiddleware(s.TransactionsHandler(), s.APIMiddleware(s.RequireRole(users.RoleUser))...))
	s.RegisterRouteHandler("GET "+RouteAPICampaigns, ChainMiddleware(s.CampaignsHandler(), s.APIMiddleware(s.RequireRole(users.RoleUser))...))
	s.RegisterRouteHandler("GET "+RouteAPISegments, ChainMiddleware(s.SegmentsHandler(), s.APIMiddleware(s.RequireRole(users.RoleUser))...))
	s.RegisterRouteHandler("GET "+RouteAPIReportsSales, ChainMiddleware(s.SalesReportHandler(), s.APIMiddleware(s.RequireRole(users.RoleUser))...))
	s.RegisterRouteHandler("GET "+RouteAPIReportsCustomers, ChainMiddleware(s.CustomerReportHandler(), s.APIMiddleware(s.RequireRole(users.RoleUser))...))
	s.RegisterRouteHandler("GET "+RouteAPIReportsCampaigns, ChainMiddleware(s.CampaignReportHandler(), s.APIMiddleware(s.RequireRole(users.RoleUser))...))

	// Admin only
	s.RegisterRouteHandler("GET "+RouteAPISubscription, ChainMiddleware(s.SubscriptionHandler(), s.APIMiddleware(s.RequireRole(users.RoleAdmin))...))
}
