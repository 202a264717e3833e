package status

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tgasparic/paketnik/internal/model"
)

func TestNext(t *testing.T) {
	assert.Equal(t, model.StatusNotified, Next(model.StatusPending))
	assert.Equal(t, model.StatusDelivered, Next(model.StatusNotified))
	assert.Equal(t, "", Next(model.StatusDelivered))
	assert.Equal(t, "", Next("bogus"))
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(model.StatusPending))
	assert.True(t, Known(model.StatusNotified))
	assert.True(t, Known(model.StatusDelivered))
	assert.False(t, Known(""))
	// Display labels are not statuses; only canonical names count.
	assert.False(t, Known("Notified"))
}

func TestPlanTransitionTable(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	cases := []struct {
		from, to string
		ok       bool
		notify   bool
	}{
		{model.StatusPending, model.StatusNotified, true, true},
		{model.StatusNotified, model.StatusDelivered, true, false},
		{model.StatusPending, model.StatusDelivered, false, false},
		{model.StatusPending, model.StatusPending, false, false},
		{model.StatusNotified, model.StatusPending, false, false},
		{model.StatusDelivered, model.StatusNotified, false, false},
		{model.StatusDelivered, model.StatusPending, false, false},
		{model.StatusPending, "bogus", false, false},
	}

	for _, c := range cases {
		entry, notifyOwner, err := Plan(c.from, c.to, now)
		if !c.ok {
			var terr *InvalidTransitionError
			require.ErrorAs(t, err, &terr, "%s → %s", c.from, c.to)
			assert.Equal(t, c.from, terr.From)
			assert.Equal(t, c.to, terr.To)
			assert.Empty(t, entry)
			continue
		}
		require.NoError(t, err, "%s → %s", c.from, c.to)
		assert.Equal(t, c.notify, notifyOwner, "%s → %s", c.from, c.to)
	}
}

func TestPlanEntryText(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	entry, _, err := Plan(model.StatusPending, model.StatusNotified, now)
	require.NoError(t, err)
	assert.Equal(t, "Status updated to notified at 2026-03-14 15:09:26", entry)
}

func TestCreationEntry(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	assert.Equal(t, "Item created at 2026-03-14 15:09:26", CreationEntry(now))
}
