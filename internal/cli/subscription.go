package cli

import (
	"github.com/spf13/cobra"

	"github.com/supuni9622/crm-application/users"
)

// NewSubscriptionCommand creates the subscription command. Admin only.
func NewSubscriptionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "subscription",
		Short: "Show the account subscription (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, slot, err := openSession(rootOpts)
			if err != nil {
				return err
			}
			defer slot.Close()

			if _, err := authorize(store, users.RoleAdmin); err != nil {
				return err
			}

			source, err := newSource(rootOpts)
			if err != nil {
				return err
			}
			sub, err := source.Subscription(cmd.Context())
			if err != nil {
				return err
			}

			return newFormatter(rootOpts, cmd.OutOrStdout()).Print(sub, func() string {
				return renderPairs([][2]string{
					{"Plan", string(sub.Plan)},
					{"Status", string(sub.Status)},
					{"Renews", sub.EndDate.Format("2 Jan 2006")},
					{"Amount", formatMoney(sub.Amount)},
					{"Contacts limit", formatInt(sub.ContactsLimit)},
					{"Campaigns limit", formatInt(sub.CampaignsLimit)},
					{"Credits left", formatInt(sub.CreditsRemaining()) + " of " + formatInt(sub.CreditsTotal)},
				})
			})
		},
	}
}
