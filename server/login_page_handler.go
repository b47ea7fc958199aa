package server

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/supuni9622/crm-application/gate"
	crmerrors "github.com/supuni9622/crm-application/internal/errors"
)

type loginPageResponse struct {
	AppName       string `json:"app_name"`
	Action        string `json:"action"`
	From          string `json:"from,omitempty"`
	Authenticated bool   `json:"authenticated"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	From     string `json:"from"`
}

// LoginPageHandler describes the login entry point and echoes the location
// the user was sent from.
func (s *Server) LoginPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, loginPageResponse{
			AppName:       s.config.GetAppName(),
			Action:        RouteAuthLogin,
			From:          r.URL.Query().Get(gate.FromParam),
			Authenticated: s.sessionFor(w, r).IsSessionValid(),
		})
	}
}

// LoginSubmissionHandler processes the login form or JSON body
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseLoginRequest(w, r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "Invalid login request")
			return
		}

		token, err := s.auth.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if crmerrors.Is(err, crmerrors.ErrAuthenticationRejected) {
				log.Debug().Err(err).Msg("login rejected")
				writeJSONError(w, http.StatusUnauthorized, "Invalid credentials")
				return
			}
			writeError(w, r, err)
			return
		}

		if err := s.sessionFor(w, r).SetCredential(token); err != nil {
			writeError(w, r, err)
			return
		}
		redirectSuccess(w, r, gate.SafeReturnPath(req.From))
	}
}

func parseLoginRequest(w http.ResponseWriter, r *http.Request) (loginRequest, error) {
	var req loginRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req)
		return req, err
	}

	if err := r.ParseForm(); err != nil {
		return req, err
	}
	req.Email = r.FormValue("email")
	req.Password = r.FormValue("password")
	req.From = r.FormValue(gate.FromParam)
	return req, nil
}

func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := s.sessionFor(w, r).ClearCredential(); err != nil {
			log.Err(err).Msg("Failed to clear session on logout")
		}
		redirectSuccess(w, r, RouteLogin)
	}
}

func (s *Server) UnauthorizedHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusForbidden, "You do not have permission to view this page")
	}
}
