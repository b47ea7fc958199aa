package sqliteslot_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/supuni9622/crm-application/session"
	"github.com/supuni9622/crm-application/session/sqliteslot"
)

func openSlot(t *testing.T, path string) *sqliteslot.Slot {
	t.Helper()
	slot, err := sqliteslot.Open(path, session.SlotName)
	require.NoError(t, err)
	t.Cleanup(func() { _ = slot.Close() })
	return slot
}

func TestSlot_RoundTrip(t *testing.T) {
	slot := openSlot(t, filepath.Join(t.TempDir(), "state", "crm.db"))

	_, ok, err := slot.Load()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, slot.Save("first"))
	require.NoError(t, slot.Save("second"))

	got, ok, err := slot.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "second", got)

	require.NoError(t, slot.Remove())
	require.NoError(t, slot.Remove())
	_, ok, err = slot.Load()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestSlot_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.db")

	first, err := sqliteslot.Open(path, "")
	require.NoError(t, err)
	require.NoError(t, first.Save("persisted"))
	require.NoError(t, first.Close())

	second := openSlot(t, path)
	got, ok, err := second.Load()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "persisted", got)
}

func TestSlot_NamesAreIndependent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.db")
	a := openSlot(t, path)
	b, err := sqliteslot.Open(path, "other")
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })

	require.NoError(t, a.Save("a-token"))
	_, ok, err := b.Load()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestOpen_RequiresPath(t *testing.T) {
	_, err := sqliteslot.Open(" ", session.SlotName)
	require.Error(t, err)
}
