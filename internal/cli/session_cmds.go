package cli

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	crmerrors "github.com/supuni9622/crm-application/internal/errors"
	"github.com/supuni9622/crm-application/users"
)

// LoginOptions holds flags for the login command.
type LoginOptions struct {
	*RootOptions
	Email    string
	Password string
}

type whoamiResult struct {
	Authenticated bool        `json:"authenticated"`
	User          *users.User `json:"user,omitempty"`
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LoginOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and keep the session",
		Long: `Exchange an email and password for a session token and store it
in the state file, replacing any previous session.

Examples:
  crm login --email admin@example.com --password password`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Email, "email", "", "account email (required)")
	_ = cmd.MarkFlagRequired("email")
	cmd.Flags().StringVar(&opts.Password, "password", "", "account password (required)")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runLogin(opts *LoginOptions, cmd *cobra.Command) error {
	source, err := newSource(opts.RootOptions)
	if err != nil {
		return err
	}
	exchange, err := newExchange(opts.RootOptions, source)
	if err != nil {
		return err
	}

	raw, err := exchange.Login(cmd.Context(), opts.Email, opts.Password)
	if err != nil {
		if crmerrors.Is(err, crmerrors.ErrAuthenticationRejected) {
			return errors.New("invalid credentials")
		}
		return err
	}

	store, slot, err := openSession(opts.RootOptions)
	if err != nil {
		return err
	}
	defer slot.Close()

	if err := store.SetCredential(raw); err != nil {
		return err
	}
	user, ok := store.CurrentUser()
	if !ok {
		return errors.New("[runLogin] issued token is not a valid session")
	}

	return newFormatter(opts.RootOptions, cmd.OutOrStdout()).Print(whoamiResult{Authenticated: true, User: user}, func() string {
		return fmt.Sprintf("Logged in as %s (%s)", user.Name, user.Role)
	})
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, slot, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer slot.Close()

			if err := store.ClearCredential(); err != nil {
				return err
			}
			return newFormatter(rootOpts, cmd.OutOrStdout()).Print(whoamiResult{}, func() string {
				return "Logged out"
			})
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, slot, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer slot.Close()

			user, ok := store.CurrentUser()
			result := whoamiResult{Authenticated: ok, User: user}
			return newFormatter(rootOpts, cmd.OutOrStdout()).Print(result, func() string {
				if !ok {
					return "not logged in"
				}
				return renderPairs([][2]string{
					{"Name", user.Name},
					{"Email", user.Email},
					{"Role", string(user.Role)},
					{"Initials", user.Initials()},
				})
			})
		},
	}
}
