package fakeslot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	fakeslot "github.com/supuni9622/crm-application/session/slotfake"
)

func TestFakeSlot(t *testing.T) {
	slot := fakeslot.NewFakeSlot()
	_, ok, err := slot.Load()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, slot.Save("tok"))
	got, ok, _ := slot.Load()
	require.True(t, ok)
	require.Equal(t, "tok", got)

	require.NoError(t, slot.Remove())
	_, ok, _ = slot.Load()
	require.False(t, ok)

	seeded := fakeslot.NewFakeSlotWith("seed")
	got, ok, _ = seeded.Load()
	require.True(t, ok)
	require.Equal(t, "seed", got)
}
