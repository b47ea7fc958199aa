package errors_test

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	crmerrors "github.com/supuni9622/crm-application/internal/errors"
)

func TestWrapf(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, crmerrors.Wrapf(nil, "context %d", 1))
	})

	t.Run("keeps the chain", func(t *testing.T) {
		err := crmerrors.Wrapf(crmerrors.ErrRecordNotFound, "customer %s", "cust9")
		require.EqualError(t, err, "customer cust9: record not found")
		require.True(t, crmerrors.Is(err, crmerrors.ErrRecordNotFound))
	})

	t.Run("pkg errors wrap is still matched", func(t *testing.T) {
		err := pkgerrors.Wrap(crmerrors.ErrAuthenticationRejected, "[Login] exchange")
		require.True(t, crmerrors.Is(err, crmerrors.ErrAuthenticationRejected))
		require.False(t, crmerrors.Is(err, crmerrors.ErrInsufficientRole))
	})
}
