package fakeuserrepo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	crmerrors "github.com/supuni9622/crm-application/internal/errors"
	"github.com/supuni9622/crm-application/users"
	fakeuserrepo "github.com/supuni9622/crm-application/users/repofake"
)

func TestFakeUserRepo(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo(
		&users.Account{User: users.User{ID: "u1", Email: "Admin@Example.com", Role: users.RoleAdmin}},
		&users.Account{User: users.User{Email: "user@example.com", Role: users.RoleUser}},
	)

	t.Run("lookup by email ignores case", func(t *testing.T) {
		a, err := repo.GetByEmail("admin@example.com")
		require.NoError(t, err)
		require.Equal(t, "u1", a.ID)
	})

	t.Run("generated id", func(t *testing.T) {
		a, err := repo.GetByEmail("user@example.com")
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)

		byID, err := repo.GetByID(a.ID)
		require.NoError(t, err)
		require.Equal(t, a, byID)
	})

	t.Run("list pages", func(t *testing.T) {
		all, err := repo.List(0, 0)
		require.NoError(t, err)
		require.Len(t, all, 2)

		one, err := repo.List(1, 1)
		require.NoError(t, err)
		require.Len(t, one, 1)

		none, err := repo.List(5, 10)
		require.NoError(t, err)
		require.Empty(t, none)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repo.Delete("user@example.com"))
		_, err := repo.GetByEmail("user@example.com")
		require.ErrorIs(t, err, crmerrors.ErrRecordNotFound)
		require.ErrorIs(t, repo.Delete("user@example.com"), crmerrors.ErrRecordNotFound)
	})
}
