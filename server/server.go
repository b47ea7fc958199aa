package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/supuni9622/crm-application/auth"
	"github.com/supuni9622/crm-application/crm"
	"github.com/supuni9622/crm-application/internal/config"
	"github.com/supuni9622/crm-application/reports"
)

// Deps are the collaborators the HTTP surface is built on.
type Deps struct {
	Exchange auth.Exchange
	Source   crm.DataSource
}

type Server struct {
	env     string // Environment (e.g., "DEV", "PROD")
	mux     *http.ServeMux
	routes  []string
	config  config.Config
	auth    auth.Exchange
	source  crm.DataSource
	reports *reports.Service
	nowTime func() time.Time
}

// ServerOption defines a function type to modify the Server instance.
type ServerOption func(*Server)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServerOption {
	return func(s *Server) {
		s.nowTime = nowFunc
	}
}

func New(config config.Config, deps Deps, options ...ServerOption) (*Server, error) {
	if deps.Exchange == nil {
		return nil, errors.New("[Server New] login exchange is required")
	}
	if deps.Source == nil {
		return nil, errors.New("[Server New] data source is required")
	}

	s := &Server{
		env:     config.GetEnv(),
		mux:     http.NewServeMux(),
		config:  config,
		auth:    deps.Exchange,
		source:  deps.Source,
		reports: reports.NewService(deps.Source),
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(s)
	}

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

// Routes lists the registered patterns in registration order.
func (s *Server) Routes() []string {
	return append([]string(nil), s.routes...)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Info().Msgf("[%-19s] %s", displayMethod, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
