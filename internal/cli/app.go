package cli

import (
	"github.com/pkg/errors"

	"github.com/supuni9622/crm-application/auth"
	"github.com/supuni9622/crm-application/crm/mocksource"
	"github.com/supuni9622/crm-application/gate"
	"github.com/supuni9622/crm-application/session"
	"github.com/supuni9622/crm-application/session/sqliteslot"
	"github.com/supuni9622/crm-application/token"
	"github.com/supuni9622/crm-application/users"
	fakeuserrepo "github.com/supuni9622/crm-application/users/repofake"
)

// openSession opens the persisted slot and the store over it. The caller
// closes the returned slot.
func openSession(opts *RootOptions) (*session.Store, *sqliteslot.Slot, error) {
	slot, err := sqliteslot.Open(opts.State, session.SlotName)
	if err != nil {
		return nil, nil, errors.Wrap(err, "[openSession] open state")
	}
	return session.New(slot, session.WithNowTime(opts.nowTime)), slot, nil
}

func newSource(opts *RootOptions) (*mocksource.Source, error) {
	source, err := mocksource.New(mocksource.WithDelay(opts.config.GetDataDelay()))
	if err != nil {
		return nil, errors.Wrap(err, "[newSource] load mock data")
	}
	return source, nil
}

func newExchange(opts *RootOptions, source *mocksource.Source) (auth.Exchange, error) {
	issuer, err := token.NewIssuer(
		token.NewHMACSigner(opts.config.GetTokenSecret()),
		opts.config.GetTokenTTL(),
		token.WithNowTime(opts.nowTime),
	)
	if err != nil {
		return nil, errors.Wrap(err, "[newExchange] issuer")
	}
	return auth.NewMockExchange(
		fakeuserrepo.NewFakeUserRepo(source.Accounts()...),
		issuer,
		auth.WithDelay(opts.config.GetDataDelay()),
	)
}

// authorize runs the gate for a command. Unauthenticated and forbidden
// outcomes come back as distinct errors.
func authorize(store *session.Store, required users.Role) (*users.User, error) {
	out := gate.New(store, required).Evaluate("")
	switch out.State {
	case gate.Authorized:
		return out.User, nil
	case gate.Forbidden:
		return nil, errors.Wrap(out.Err(), "unauthorized")
	}
	return nil, out.Err()
}
