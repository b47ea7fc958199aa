package cli_test

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/supuni9622/crm-application/internal/cli"
	"github.com/supuni9622/crm-application/internal/config"
	crmerrors "github.com/supuni9622/crm-application/internal/errors"
)

var now = time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC)

type harness struct {
	cfg   config.Config
	state string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	t.Setenv("ENV", "TEST")
	t.Setenv("DATA_DELAY", "0s")

	cfg, err := config.New()
	require.NoError(t, err)
	return &harness{cfg: cfg, state: filepath.Join(t.TempDir(), "crm.db")}
}

func (h *harness) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand(h.cfg, cli.WithNowTime(func() time.Time { return now }))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--state", h.state}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (h *harness) login(t *testing.T, email string) {
	t.Helper()
	_, err := h.run(t, "login", "--email", email, "--password", "password")
	require.NoError(t, err)
}

func TestCommandPresence(t *testing.T) {
	cmd := cli.NewRootCommand(newHarness(t).cfg)
	for _, name := range []string{"serve", "login", "logout", "whoami", "list", "report", "subscription"} {
		t.Run(name, func(t *testing.T) {
			sub, _, err := cmd.Find([]string{name})
			require.NoError(t, err)
			require.Equal(t, name, sub.Name())
		})
	}

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	require.Equal(t, "text", formatFlag.DefValue)
}

func TestInvalidFormat(t *testing.T) {
	h := newHarness(t)
	_, err := h.run(t, "--format", "xml", "whoami")
	require.Error(t, err)
}

func TestSessionLifecycle(t *testing.T) {
	h := newHarness(t)

	out, err := h.run(t, "whoami")
	require.NoError(t, err)
	require.Contains(t, out, "not logged in")

	_, err = h.run(t, "login", "--email", "user@example.com", "--password", "wrong")
	require.EqualError(t, err, "invalid credentials")

	h.login(t, "user@example.com")

	out, err = h.run(t, "--format", "json", "whoami")
	require.NoError(t, err)
	var who struct {
		Authenticated bool `json:"authenticated"`
		User          struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &who))
	require.True(t, who.Authenticated)
	require.Equal(t, "user@example.com", who.User.Email)
	require.Equal(t, "user", who.User.Role)

	_, err = h.run(t, "logout")
	require.NoError(t, err)

	out, err = h.run(t, "whoami")
	require.NoError(t, err)
	require.Contains(t, out, "not logged in")
}

func TestListRequiresLogin(t *testing.T) {
	h := newHarness(t)

	_, err := h.run(t, "list", "customers")
	require.Error(t, err)
	require.True(t, crmerrors.Is(err, crmerrors.ErrNotAuthenticated))
	require.Contains(t, err.Error(), "login required")
}

func TestList(t *testing.T) {
	h := newHarness(t)
	h.login(t, "user@example.com")

	t.Run("search customers", func(t *testing.T) {
		out, err := h.run(t, "--format", "json", "list", "customers", "--search", "jane")
		require.NoError(t, err)

		var view struct {
			Rows []struct {
				Name string `json:"name"`
			} `json:"rows"`
			Total int `json:"total"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &view))
		require.Equal(t, 1, view.Total)
		require.Equal(t, "Jane Cooper", view.Rows[0].Name)
	})

	t.Run("text table", func(t *testing.T) {
		out, err := h.run(t, "list", "products", "--order-by", "price desc")
		require.NoError(t, err)
		require.Contains(t, out, "Annual Subscription")
		require.Contains(t, out, "page 1 of 1")
	})

	t.Run("transactions by status", func(t *testing.T) {
		out, err := h.run(t, "--format", "json", "list", "transactions", "--status", "refunded")
		require.NoError(t, err)
		require.Contains(t, out, `"total": 1`)
	})

	t.Run("unknown collection", func(t *testing.T) {
		_, err := h.run(t, "list", "invoices")
		require.Error(t, err)
	})

	t.Run("bad order by", func(t *testing.T) {
		_, err := h.run(t, "list", "customers", "--order-by", "shoe_size")
		require.Error(t, err)
		require.True(t, crmerrors.Is(err, crmerrors.ErrUnknownColumn))
	})

	t.Run("page out of range is empty", func(t *testing.T) {
		out, err := h.run(t, "--format", "json", "list", "customers", "--page", "9")
		require.NoError(t, err)
		require.Contains(t, out, `"rows": []`)
	})
}

func TestSubscriptionIsAdminOnly(t *testing.T) {
	h := newHarness(t)

	h.login(t, "user@example.com")
	_, err := h.run(t, "subscription")
	require.Error(t, err)
	require.True(t, crmerrors.Is(err, crmerrors.ErrInsufficientRole))
	require.Contains(t, err.Error(), "unauthorized")

	h.login(t, "admin@example.com")
	out, err := h.run(t, "subscription")
	require.NoError(t, err)
	require.Contains(t, out, "Credits left")
}

func TestReport(t *testing.T) {
	h := newHarness(t)
	h.login(t, "user@example.com")

	out, err := h.run(t, "--format", "json", "report")
	require.NoError(t, err)

	var overview struct {
		Sales struct {
			TotalOrders int `json:"total_orders"`
		} `json:"sales"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &overview))
	require.Equal(t, 7, overview.Sales.TotalOrders)
}
