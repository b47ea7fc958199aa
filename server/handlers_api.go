package server

import (
	"net/http"

	"github.com/supuni9622/crm-application/crm"
	crmerrors "github.com/supuni9622/crm-application/internal/errors"
	"github.com/supuni9622/crm-application/users"
)

type dashboardPageResponse struct {
	User  *users.User         `json:"user"`
	Stats *crm.DashboardStats `json:"stats"`
}

type meResponse struct {
	*users.User
	Initials string `json:"initials"`
}

type customerDetailResponse struct {
	Customer     *crm.Customer     `json:"customer"`
	Initials     string            `json:"initials"`
	Transactions []crm.Transaction `json:"transactions"`
}

func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFrom(r.Context())
		if !ok {
			writeJSONError(w, http.StatusUnauthorized, "not logged in")
			return
		}
		writeJSON(w, http.StatusOK, meResponse{User: user, Initials: user.Initials()})
	}
}

func (s *Server) DashboardPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.source.DashboardStats(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		user, _ := userFrom(r.Context())
		writeJSON(w, http.StatusOK, dashboardPageResponse{User: user, Stats: stats})
	}
}

func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := s.source.DashboardStats(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, stats)
	}
}

func (s *Server) CustomersHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tab, err := crm.ParseCustomerTab(r.URL.Query().Get("tab"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		customers, err := s.source.Customers(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		serveTable(w, r, crm.CustomerTable(), crm.FilterCustomers(customers, tab, s.nowTime()))
	}
}

func (s *Server) CustomerDetailHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, err := s.source.Customer(r.Context(), r.PathValue("id"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		txs, err := s.source.Transactions(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, customerDetailResponse{
			Customer:     customer,
			Initials:     users.Initials(customer.Name),
			Transactions: crm.TransactionsForCustomer(txs, customer.ID),
		})
	}
}

func (s *Server) ProductsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		products, err := s.source.Products(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		serveTable(w, r, crm.ProductTable(), products)
	}
}

func (s *Server) TransactionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days, err := queryInt(r, "days", 0)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if days < 0 {
			writeError(w, r, crmerrors.Wrapf(crmerrors.ErrInvalidRequest, "days must not be negative"))
			return
		}
		status, err := crm.ParseTransactionStatus(r.URL.Query().Get("status"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		txs, err := s.source.Transactions(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		serveTable(w, r, crm.TransactionTable(), crm.FilterTransactions(txs, days, status, s.nowTime()))
	}
}

func (s *Server) CampaignsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		campaignType, err := crm.ParseCampaignType(r.URL.Query().Get("type"))
		if err != nil {
			writeError(w, r, err)
			return
		}
		campaigns, err := s.source.Campaigns(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		serveTable(w, r, crm.CampaignTable(), crm.FilterCampaigns(campaigns, campaignType))
	}
}

func (s *Server) SegmentsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		segments, err := s.source.Segments(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		serveTable(w, r, crm.SegmentTable(), segments)
	}
}

func (s *Server) SalesReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := s.reports.Sales(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func (s *Server) CustomerReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := s.reports.Customers(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func (s *Server) CampaignReportHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := s.reports.Campaigns(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

func (s *Server) SubscriptionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub, err := s.source.Subscription(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, sub)
	}
}
