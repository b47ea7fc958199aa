// Package cli is the terminal front end: it keeps the session in a SQLite
// slot so logins survive between invocations.
package cli

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/supuni9622/crm-application/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Format string // "json" | "text"
	State  string

	config  config.Config
	nowTime func() time.Time
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// RootOption defines a function type to modify the RootOptions instance.
type RootOption func(*RootOptions)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) RootOption {
	return func(o *RootOptions) {
		o.nowTime = nowFunc
	}
}

// NewRootCommand creates the root command for the crm CLI.
func NewRootCommand(cfg config.Config, options ...RootOption) *cobra.Command {
	opts := &RootOptions{config: cfg, nowTime: time.Now}
	for _, opt := range options {
		opt(opts)
	}

	cmd := &cobra.Command{
		Use:   "crm",
		Short: "CRM dashboard",
		Long:  "Browse customers, products, transactions, campaigns and segments from the terminal or serve them over HTTP.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.State, "state", cfg.GetStatePath(), "path to the SQLite session file")

	cmd.AddCommand(NewServeCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewWhoamiCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewSubscriptionCommand(opts))

	return cmd
}
