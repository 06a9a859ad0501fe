// Package sheet implements the sheet orchestrator: it resolves actions for the
// loaded character, keeps the session history and announces results on the event bus
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet Service

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/session"
)

// DefaultHistoryLimit is how many entries a session keeps
const DefaultHistoryLimit = 50

// Service defines the operations of the character sheet
type Service interface {
	// Sheet
	GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error)
	ListSkills(ctx context.Context, input *ListSkillsInput) (*ListSkillsOutput, error)

	// Rolls, both are recorded in the history
	RollSkill(ctx context.Context, input *RollSkillInput) (*RollSkillOutput, error)
	ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error)

	// History
	ListHistory(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error)
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)

	// Resources
	UpdateResources(ctx context.Context, input *UpdateResourcesInput) (*UpdateResourcesOutput, error)
}

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	Character   *entities.Character
	Engine      engine.Engine
	SessionRepo session.Repository

	// Optional
	IDGenerator  idgen.Generator
	Clock        clock.Clock
	EventBus     events.EventBus
	HistoryLimit int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Character == nil {
		vb.RequiredField("Character")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	errors.ValidateMin("HistoryLimit", c.HistoryLimit, 0, vb)

	return vb.Build()
}

type orchestrator struct {
	character    *entities.Character
	engine       engine.Engine
	sessionRepo  session.Repository
	idGen        idgen.Generator
	clock        clock.Clock
	eventBus     events.EventBus
	historyLimit int

	// mu makes resolve and append one step
	mu sync.Mutex
}

// NewOrchestrator creates a new sheet orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		character:    cfg.Character,
		engine:       cfg.Engine,
		sessionRepo:  cfg.SessionRepo,
		idGen:        cfg.IDGenerator,
		clock:        cfg.Clock,
		eventBus:     cfg.EventBus,
		historyLimit: cfg.HistoryLimit,
	}
	if o.idGen == nil {
		o.idGen = idgen.NewUUID("entry")
	}
	if o.clock == nil {
		o.clock = clock.New()
	}
	if o.historyLimit == 0 {
		o.historyLimit = DefaultHistoryLimit
	}

	return o, nil
}

// GetSheet computes every derived number of the sheet
func (o *orchestrator) GetSheet(ctx context.Context, input *GetSheetInput) (*GetSheetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	armor, err := o.engine.ArmorClass(ctx, &engine.ArmorClassInput{
		Character: o.character,
		Context:   input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute armor class")
	}

	skills, err := o.engine.SkillTable(ctx, &engine.SkillTableInput{Character: o.character})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute skill table")
	}

	resources, err := o.currentResources(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	modifiers := make(map[entities.Attribute]int, len(entities.AllAttributes))
	for _, attr := range entities.AllAttributes {
		score, _ := o.character.Attributes.Score(attr)
		modifiers[attr] = o.engine.CalculateModifier(score)
	}

	return &GetSheetOutput{
		Character:  o.character,
		Modifiers:  modifiers,
		Mastery:    o.engine.CalculateMastery(o.character.Level),
		SaveDC:     o.engine.CalculateSaveDC(o.character),
		ArmorClass: armor,
		Resources:  resources,
		Skills:     skills.Skills,
		Weapons:    o.engine.ListWeapons(),
		Abilities:  o.engine.ListAbilities(),
	}, nil
}

// ListSkills returns the skill table of the character
func (o *orchestrator) ListSkills(ctx context.Context, _ *ListSkillsInput) (*ListSkillsOutput, error) {
	out, err := o.engine.SkillTable(ctx, &engine.SkillTableInput{Character: o.character})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute skill table")
	}

	return &ListSkillsOutput{Skills: out.Skills}, nil
}

// RollSkill rolls a d20 plus the skill total and records it
func (o *orchestrator) RollSkill(ctx context.Context, input *RollSkillInput) (*RollSkillOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if strings.TrimSpace(input.Skill) == "" {
		return nil, errors.InvalidArgument("skill is required")
	}

	table, err := o.engine.SkillTable(ctx, &engine.SkillTableInput{Character: o.character})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compute skill table")
	}

	var skill *engine.SkillTotal
	for _, s := range table.Skills {
		if strings.EqualFold(s.Name, strings.TrimSpace(input.Skill)) {
			skill = s
			break
		}
	}
	if skill == nil {
		return nil, errors.NotFoundf("skill %q not found", input.Skill).WithMeta("skill", input.Skill)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	out, err := o.engine.RollSkillCheck(ctx, &engine.RollSkillCheckInput{
		Skill: skill.Name,
		Total: skill.Total,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", skill.Name)
	}

	entry, err := o.record(ctx, input.SessionID, out.Check.Label, out.Check.Record())
	if err != nil {
		return nil, err
	}
	o.publish(ctx, rpgtoolkit.NewSkillRolledEvent(o.character, entry))

	slog.Info("Skill rolled",
		"session_id", input.SessionID,
		"skill", skill.Name,
		"roll", out.Check.Roll,
		"total", out.Check.Total,
	)

	return &RollSkillOutput{
		Check: out.Check,
		Entry: entry,
	}, nil
}

// ResolveAction resolves an ability and records it
func (o *orchestrator) ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	out, err := o.engine.Resolve(ctx, &engine.ResolveInput{
		Ability:   input.Ability,
		Context:   input.Context,
		Character: o.character,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", input.Ability)
	}

	entry, err := o.record(ctx, input.SessionID, out.Record.Ability, out.Record)
	if err != nil {
		return nil, err
	}
	o.publish(ctx, rpgtoolkit.NewActionResolvedEvent(o.character, entry))

	slog.Info("Action resolved",
		"session_id", input.SessionID,
		"ability", input.Ability,
		"weapon", input.Context.Weapon,
		"critical", out.Record.IsCritical,
		"damage", out.Record.DamageTotal,
	)

	return &ResolveActionOutput{
		Record: out.Record,
		Entry:  entry,
	}, nil
}

// ListHistory returns the session's entries newest first
func (o *orchestrator) ListHistory(ctx context.Context, input *ListHistoryInput) (*ListHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidField("limit", input.Limit, "must not be negative")
	}

	out, err := o.sessionRepo.ListHistory(ctx, session.ListHistoryInput{
		SessionID: input.SessionID,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list history")
	}

	return &ListHistoryOutput{Entries: out.Entries}, nil
}

// ClearHistory empties the session's history
func (o *orchestrator) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	out, err := o.sessionRepo.ClearHistory(ctx, session.ClearHistoryInput{SessionID: input.SessionID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to clear history")
	}

	slog.Info("History cleared",
		"session_id", input.SessionID,
		"entries_deleted", out.EntriesDeleted,
	)

	return &ClearHistoryOutput{EntriesDeleted: out.EntriesDeleted}, nil
}

// UpdateResources stores new pool values. Out of range values are rejected, not clamped.
func (o *orchestrator) UpdateResources(ctx context.Context, input *UpdateResourcesInput) (*UpdateResourcesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	pools := o.character.Pools
	vb := errors.NewValidationBuilder()
	// current HP has no upper bound
	errors.ValidateMin("hp", input.Resources.HP, engine.MinHitPoints(pools.HP), vb)
	errors.ValidateRange("energy", input.Resources.Energy, 0, pools.Energy, vb)
	errors.ValidateRange("stored_energy", input.Resources.StoredEnergy, 0, pools.StoredEnergy, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	err := o.sessionRepo.SaveResources(ctx, session.SaveResourcesInput{
		SessionID: input.SessionID,
		Resources: input.Resources,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save resources")
	}

	slog.Info("Resources updated",
		"session_id", input.SessionID,
		"hp", input.Resources.HP,
		"energy", input.Resources.Energy,
		"stored_energy", input.Resources.StoredEnergy,
	)

	return &UpdateResourcesOutput{Resources: input.Resources}, nil
}

// currentResources reads the session's pools. A session that never stored any starts full.
func (o *orchestrator) currentResources(ctx context.Context, sessionID string) (entities.Resources, error) {
	out, err := o.sessionRepo.GetResources(ctx, session.GetResourcesInput{SessionID: sessionID})
	if err != nil {
		if errors.IsNotFound(err) {
			return o.character.FullResources(), nil
		}
		return entities.Resources{}, errors.Wrap(err, "failed to get resources")
	}
	return out.Resources, nil
}

func (o *orchestrator) record(ctx context.Context, sessionID, label string, record *entities.Record) (*entities.HistoryEntry, error) {
	entry := &entities.HistoryEntry{
		ID:        o.idGen.Generate(),
		Timestamp: o.clock.Now(),
		Label:     label,
		Record:    record,
	}

	_, err := o.sessionRepo.AppendHistory(ctx, session.AppendHistoryInput{
		SessionID: sessionID,
		Entry:     entry,
		Limit:     o.historyLimit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to append history")
	}

	return entry, nil
}

// publish announces an entry. The entry is already stored, so a failing
// subscriber is logged and not returned.
func (o *orchestrator) publish(ctx context.Context, event events.Event) {
	if o.eventBus == nil {
		return
	}
	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("failed to publish event", "type", event.Type(), "error", err)
	}
}
