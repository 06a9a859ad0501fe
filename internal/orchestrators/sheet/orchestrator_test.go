package sheet_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	enginemock "github.com/KirkDiggler/rpg-sheet/internal/engine/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	mockclock "github.com/KirkDiggler/rpg-sheet/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
	idgenmock "github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/repositories/session"
	sessionmock "github.com/KirkDiggler/rpg-sheet/internal/repositories/session/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

const testSessionID = "table-1"

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockEngine   *enginemock.MockEngine
	mockRepo     *sessionmock.MockRepository
	character    *entities.Character
	now          time.Time
	orchestrator sheet.Service
	ctx          context.Context
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.mockRepo = sessionmock.NewMockRepository(s.ctrl)
	s.character = testutils.CreateTestCharacter()
	s.now = time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	s.ctx = context.Background()

	var err error
	s.orchestrator, err = sheet.NewOrchestrator(&sheet.Config{
		Character:    s.character,
		Engine:       s.mockEngine,
		SessionRepo:  s.mockRepo,
		IDGenerator:  idgen.NewSequential("entry"),
		Clock:        clock.Func(func() time.Time { return s.now }),
		HistoryLimit: 5,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) skillTable() *engine.SkillTableOutput {
	return &engine.SkillTableOutput{
		Skills: []*engine.SkillTotal{
			{Name: "Athletics", Attribute: entities.AttributeStrength, Total: 15},
			{Name: "Will", Attribute: entities.AttributeWisdom, Total: 8},
		},
	}
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_RequiresDependencies() {
	_, err := sheet.NewOrchestrator(&sheet.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Character")
	s.Contains(err.Error(), "Engine")
	s.Contains(err.Error(), "SessionRepo")

	_, err = sheet.NewOrchestrator(nil)
	s.Require().Error(err)

	_, err = sheet.NewOrchestrator(&sheet.Config{
		Character:    s.character,
		Engine:       s.mockEngine,
		SessionRepo:  s.mockRepo,
		HistoryLimit: -1,
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "HistoryLimit")
}

func (s *OrchestratorTestSuite) TestResolveAction_AppendsHistory() {
	actx := entities.ActionContext{Weapon: engine.WeaponHookSword, Stance: entities.StanceSun, StyleRank: 2}
	record := &entities.Record{Ability: "Hook Sword (G4)", DamageTotal: 16, PrimaryValue: 16}

	s.mockEngine.EXPECT().
		Resolve(s.ctx, &engine.ResolveInput{
			Ability:   entities.AbilityArmedAttack,
			Context:   actx,
			Character: s.character,
		}).
		Return(&engine.ResolveOutput{Record: record}, nil)

	expectedEntry := &entities.HistoryEntry{
		ID:        "entry_1",
		Timestamp: s.now,
		Label:     "Hook Sword (G4)",
		Record:    record,
	}
	s.mockRepo.EXPECT().
		AppendHistory(s.ctx, session.AppendHistoryInput{
			SessionID: testSessionID,
			Entry:     expectedEntry,
			Limit:     5,
		}).
		Return(&session.AppendHistoryOutput{Size: 1}, nil)

	out, err := s.orchestrator.ResolveAction(s.ctx, &sheet.ResolveActionInput{
		SessionID: testSessionID,
		Ability:   entities.AbilityArmedAttack,
		Context:   actx,
	})
	s.Require().NoError(err)
	s.Same(record, out.Record)
	s.Equal(expectedEntry, out.Entry)
}

func (s *OrchestratorTestSuite) TestResolveAction_EngineErrorKeepsCode() {
	s.mockEngine.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidField("weapon", "spoon", "unknown weapon"))

	_, err := s.orchestrator.ResolveAction(s.ctx, &sheet.ResolveActionInput{
		SessionID: testSessionID,
		Ability:   entities.AbilityArmedAttack,
		Context:   entities.ActionContext{Weapon: "spoon"},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Equal("weapon", errors.GetMeta(err)["field"])
}

func (s *OrchestratorTestSuite) TestResolveAction_HistoryFailure() {
	s.mockEngine.EXPECT().
		Resolve(gomock.Any(), gomock.Any()).
		Return(&engine.ResolveOutput{Record: &entities.Record{Ability: "Convergence"}}, nil)
	s.mockRepo.EXPECT().
		AppendHistory(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("redis down"))

	_, err := s.orchestrator.ResolveAction(s.ctx, &sheet.ResolveActionInput{
		SessionID: testSessionID,
		Ability:   entities.AbilityConvergence,
	})
	s.Require().Error(err)
	s.True(errors.IsInternal(err))
}

func (s *OrchestratorTestSuite) TestResolveAction_RequiresSession() {
	_, err := s.orchestrator.ResolveAction(s.ctx, &sheet.ResolveActionInput{Ability: entities.AbilityArmedAttack})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ResolveAction(s.ctx, nil)
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestRollSkill_MatchesNameCaseInsensitively() {
	s.mockEngine.EXPECT().
		SkillTable(s.ctx, &engine.SkillTableInput{Character: s.character}).
		Return(s.skillTable(), nil)
	check := &entities.SkillCheck{Label: "Skill - Will", Skill: "Will", Roll: 12, Modifier: 8, Total: 20}
	s.mockEngine.EXPECT().
		RollSkillCheck(s.ctx, &engine.RollSkillCheckInput{Skill: "Will", Total: 8}).
		Return(&engine.RollSkillCheckOutput{Check: check}, nil)
	s.mockRepo.EXPECT().
		AppendHistory(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input session.AppendHistoryInput) (*session.AppendHistoryOutput, error) {
			s.Equal("Skill - Will", input.Entry.Label)
			s.Equal(20, input.Entry.Record.PrimaryValue)
			s.Equal(entities.PrimaryLabelResult, input.Entry.Record.PrimaryLabel)
			return &session.AppendHistoryOutput{Size: 1}, nil
		})

	out, err := s.orchestrator.RollSkill(s.ctx, &sheet.RollSkillInput{SessionID: testSessionID, Skill: " will "})
	s.Require().NoError(err)
	s.Equal(check, out.Check)
	s.Equal("entry_1", out.Entry.ID)
}

func (s *OrchestratorTestSuite) TestRollSkill_UnknownSkill() {
	s.mockEngine.EXPECT().SkillTable(gomock.Any(), gomock.Any()).Return(s.skillTable(), nil)

	_, err := s.orchestrator.RollSkill(s.ctx, &sheet.RollSkillInput{SessionID: testSessionID, Skill: "Cooking"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
	s.Equal("Cooking", errors.GetMeta(err)["skill"])
}

func (s *OrchestratorTestSuite) TestRollSkill_RequiresSkill() {
	_, err := s.orchestrator.RollSkill(s.ctx, &sheet.RollSkillInput{SessionID: testSessionID, Skill: "  "})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetSheet_FreshSessionStartsFull() {
	armor := &engine.ArmorClassOutput{Base: 28, Current: 28}
	s.mockEngine.EXPECT().ArmorClass(s.ctx, gomock.Any()).Return(armor, nil)
	s.mockEngine.EXPECT().SkillTable(s.ctx, gomock.Any()).Return(s.skillTable(), nil)
	s.mockEngine.EXPECT().CalculateModifier(gomock.Any()).DoAndReturn(engine.Modifier).Times(6)
	s.mockEngine.EXPECT().CalculateMastery(6).Return(3)
	s.mockEngine.EXPECT().CalculateSaveDC(s.character).Return(16)
	s.mockEngine.EXPECT().ListWeapons().Return(engine.DefaultWeapons())
	s.mockEngine.EXPECT().ListAbilities().Return(nil)
	s.mockRepo.EXPECT().
		GetResources(s.ctx, session.GetResourcesInput{SessionID: testSessionID}).
		Return(nil, errors.NotFound("no resources"))

	out, err := s.orchestrator.GetSheet(s.ctx, &sheet.GetSheetInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal(entities.Resources{HP: 99, Energy: 39, StoredEnergy: 70}, out.Resources)
	s.Equal(5, out.Modifiers[entities.AttributeStrength])
	s.Equal(-2, out.Modifiers[entities.AttributeDexterity])
	s.Equal(3, out.Mastery)
	s.Equal(16, out.SaveDC)
	s.Same(armor, out.ArmorClass)
	s.Len(out.Skills, 2)
	s.Len(out.Weapons, 10)
}

func (s *OrchestratorTestSuite) TestGetSheet_RepositoryFailure() {
	s.mockEngine.EXPECT().ArmorClass(gomock.Any(), gomock.Any()).Return(&engine.ArmorClassOutput{}, nil)
	s.mockEngine.EXPECT().SkillTable(gomock.Any(), gomock.Any()).Return(s.skillTable(), nil)
	s.mockRepo.EXPECT().GetResources(gomock.Any(), gomock.Any()).Return(nil, errors.Unavailable("redis down"))

	_, err := s.orchestrator.GetSheet(s.ctx, &sheet.GetSheetInput{SessionID: testSessionID})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestUpdateResources() {
	testCases := []struct {
		name      string
		resources entities.Resources
		field     string
	}{
		{name: "full", resources: entities.Resources{HP: 99, Energy: 39, StoredEnergy: 70}},
		{name: "lowest hp rounds down", resources: entities.Resources{HP: -50}},
		{name: "hp too low", resources: entities.Resources{HP: -51}, field: "hp"},
		{name: "hp above pool", resources: entities.Resources{HP: 120}},
		{name: "negative energy", resources: entities.Resources{HP: 1, Energy: -1}, field: "energy"},
		{name: "energy over max", resources: entities.Resources{HP: 1, Energy: 40}, field: "energy"},
		{name: "stored over max", resources: entities.Resources{HP: 1, StoredEnergy: 71}, field: "stored_energy"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			input := &sheet.UpdateResourcesInput{SessionID: testSessionID, Resources: tc.resources}
			if tc.field == "" {
				s.mockRepo.EXPECT().
					SaveResources(s.ctx, session.SaveResourcesInput{SessionID: testSessionID, Resources: tc.resources}).
					Return(nil)

				out, err := s.orchestrator.UpdateResources(s.ctx, input)
				s.Require().NoError(err)
				s.Equal(tc.resources, out.Resources)
				return
			}

			_, err := s.orchestrator.UpdateResources(s.ctx, input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.field)
		})
	}
}

func (s *OrchestratorTestSuite) TestListHistory() {
	entries := []*entities.HistoryEntry{{ID: "entry_2"}, {ID: "entry_1"}}
	s.mockRepo.EXPECT().
		ListHistory(s.ctx, session.ListHistoryInput{SessionID: testSessionID, Limit: 2}).
		Return(&session.ListHistoryOutput{Entries: entries}, nil)

	out, err := s.orchestrator.ListHistory(s.ctx, &sheet.ListHistoryInput{SessionID: testSessionID, Limit: 2})
	s.Require().NoError(err)
	s.Equal(entries, out.Entries)

	_, err = s.orchestrator.ListHistory(s.ctx, &sheet.ListHistoryInput{SessionID: testSessionID, Limit: -1})
	s.Require().Error(err)
	s.Equal("limit", errors.GetMeta(err)["field"])
}

func (s *OrchestratorTestSuite) TestClearHistory() {
	s.mockRepo.EXPECT().
		ClearHistory(s.ctx, session.ClearHistoryInput{SessionID: testSessionID}).
		Return(&session.ClearHistoryOutput{EntriesDeleted: 3}, nil)

	out, err := s.orchestrator.ClearHistory(s.ctx, &sheet.ClearHistoryInput{SessionID: testSessionID})
	s.Require().NoError(err)
	s.Equal(3, out.EntriesDeleted)
}

func (s *OrchestratorTestSuite) TestRollSkill_StampsEntryFromGenerators() {
	mockIDs := idgenmock.NewMockGenerator(s.ctrl)
	mockClock := mockclock.NewMockClock(s.ctrl)
	orchestrator, err := sheet.NewOrchestrator(&sheet.Config{
		Character:   s.character,
		Engine:      s.mockEngine,
		SessionRepo: s.mockRepo,
		IDGenerator: mockIDs,
		Clock:       mockClock,
	})
	s.Require().NoError(err)

	check := &entities.SkillCheck{Label: "Skill - Athletics", Skill: "Athletics", Roll: 3, Modifier: 15, Total: 18}
	stamped := time.Date(2026, 3, 15, 9, 30, 0, 0, time.UTC)

	s.mockEngine.EXPECT().SkillTable(s.ctx, gomock.Any()).Return(s.skillTable(), nil)
	s.mockEngine.EXPECT().
		RollSkillCheck(s.ctx, &engine.RollSkillCheckInput{Skill: "Athletics", Total: 15}).
		Return(&engine.RollSkillCheckOutput{Check: check}, nil)
	mockIDs.EXPECT().Generate().Return("entry_abc")
	mockClock.EXPECT().Now().Return(stamped)
	s.mockRepo.EXPECT().
		AppendHistory(s.ctx, session.AppendHistoryInput{
			SessionID: testSessionID,
			Entry: &entities.HistoryEntry{
				ID:        "entry_abc",
				Timestamp: stamped,
				Label:     "Skill - Athletics",
				Record:    check.Record(),
			},
			Limit: sheet.DefaultHistoryLimit,
		}).
		Return(&session.AppendHistoryOutput{Size: 1}, nil)

	out, err := orchestrator.RollSkill(s.ctx, &sheet.RollSkillInput{SessionID: testSessionID, Skill: "Athletics"})
	s.Require().NoError(err)
	s.Equal("entry_abc", out.Entry.ID)
	s.Equal(stamped, out.Entry.Timestamp)
}
