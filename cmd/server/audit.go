package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/engine/rpgtoolkit"
)

const auditPriority = 100

// subscribeAudit logs every resolved action and skill check published on bus
func subscribeAudit(bus events.EventBus, logger *slog.Logger) {
	handler := func(ctx context.Context, event events.Event) error {
		entry, ok := rpgtoolkit.EntryFromEvent(event)
		if !ok {
			return nil
		}

		attrs := []any{
			"event", event.Type(),
			"entry_id", entry.ID,
			"label", entry.Label,
		}
		if event.Source() != nil {
			attrs = append(attrs, "character_id", event.Source().GetID())
		}
		if entry.Record != nil {
			attrs = append(attrs,
				"primary", entry.Record.PrimaryLabel,
				"value", entry.Record.PrimaryValue,
				"critical", entry.Record.IsCritical,
			)
		}
		logger.InfoContext(ctx, "Sheet roll", attrs...)
		return nil
	}

	bus.SubscribeFunc(rpgtoolkit.EventActionResolved, auditPriority, handler)
	bus.SubscribeFunc(rpgtoolkit.EventSkillRolled, auditPriority, handler)
}
