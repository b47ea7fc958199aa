package server

import (
	"net/http"
	"sync"

	"github.com/supuni9622/crm-application/session"
)

var _ session.Storage = (*cookieSlot)(nil)

// cookieSlot is the credential slot of a single request: it reads the
// incoming cookie and writes Set-Cookie headers on the response.
type cookieSlot struct {
	w      http.ResponseWriter
	secure bool
	maxAge int

	mu      sync.Mutex
	value   string
	present bool
}

func newCookieSlot(w http.ResponseWriter, r *http.Request, secure bool, maxAge int) *cookieSlot {
	slot := &cookieSlot{w: w, secure: secure, maxAge: maxAge}
	if c, err := r.Cookie(session.SlotName); err == nil {
		slot.value = c.Value
		slot.present = true
	}
	return slot
}

func (c *cookieSlot) Load() (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.present, nil
}

func (c *cookieSlot) Save(token string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value, c.present = token, true
	c.setCookie(token, c.maxAge)
	return nil
}

func (c *cookieSlot) Remove() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value, c.present = "", false
	c.setCookie("", -1) // Delete cookie
	return nil
}

func (c *cookieSlot) setCookie(value string, maxAge int) {
	http.SetCookie(c.w, &http.Cookie{
		Name:     session.SlotName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	})
}

// sessionFor builds the session store for one request.
func (s *Server) sessionFor(w http.ResponseWriter, r *http.Request) *session.Store {
	secure := s.config.GetCookieSecure() || getScheme(r) == "https"
	maxAge := int(s.config.GetTokenTTL().Seconds())
	return session.New(newCookieSlot(w, r, secure, maxAge), session.WithNowTime(s.nowTime))
}
