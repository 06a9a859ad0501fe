package rpgtoolkit

import (
	"context"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
)

func TestActionResolvedEventCarriesEntry(t *testing.T) {
	character := &entities.Character{ID: "shoji"}
	entry := &entities.HistoryEntry{
		ID:     "entry-1",
		Label:  "Convergence",
		Record: &entities.Record{PrimaryValue: 14},
	}

	event := NewActionResolvedEvent(character, entry)

	assert.Equal(t, EventActionResolved, event.Type())
	assert.Equal(t, "shoji", event.Source().GetID())
	assert.Equal(t, "entry-1", event.Target().GetID())

	got, ok := EntryFromEvent(event)
	require.True(t, ok)
	assert.Equal(t, entry, got)

	value, ok := event.Context().Get(ContextKeyValue)
	require.True(t, ok)
	assert.Equal(t, 14, value)
}

func TestSkillRolledEventIsDelivered(t *testing.T) {
	bus := events.NewBus()

	var received *entities.HistoryEntry
	bus.SubscribeFunc(EventSkillRolled, 0, func(_ context.Context, event events.Event) error {
		received, _ = EntryFromEvent(event)
		return nil
	})

	entry := &entities.HistoryEntry{ID: "entry-2", Label: "Skill - Will"}
	err := bus.Publish(context.Background(), NewSkillRolledEvent(&entities.Character{ID: "shoji"}, entry))
	require.NoError(t, err)

	assert.Equal(t, entry, received)
}
