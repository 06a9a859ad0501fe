package v1alpha1_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
	sheetmock "github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet/mock"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockSheet *sheetmock.MockService
	handler   *v1alpha1.Handler
	ctx       context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSheet = sheetmock.NewMockService(s.ctrl)
	s.ctx = context.Background()

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		SheetService:     s.mockSheet,
		DefaultSessionID: "local",
	})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) request(fields map[string]interface{}) *structpb.Struct {
	in, err := structpb.NewStruct(fields)
	s.Require().NoError(err)
	return in
}

func (s *HandlerTestSuite) TestNewHandler_RequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.Require().Error(err)

	_, err = v1alpha1.NewHandler(nil)
	s.Require().Error(err)
}

func (s *HandlerTestSuite) TestResolveAction_Success() {
	record := &entities.Record{
		Ability:      "Hook Sword (G4)",
		HasAttack:    true,
		AttackRoll:   10,
		AttackTotal:  28,
		DamageRolls:  []int{4},
		DamageTotal:  16,
		PrimaryLabel: entities.PrimaryLabelDamage,
		PrimaryValue: 16,
	}
	s.mockSheet.EXPECT().
		ResolveAction(s.ctx, &sheet.ResolveActionInput{
			SessionID: "local",
			Ability:   entities.AbilityArmedAttack,
			Context: entities.ActionContext{
				Weapon:    engine.WeaponHookSword,
				Stance:    entities.StanceSun,
				StyleRank: 3,
			},
		}).
		Return(&sheet.ResolveActionOutput{
			Record: record,
			Entry: &entities.HistoryEntry{
				ID:        "entry_1",
				Timestamp: time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC),
				Label:     record.Ability,
				Record:    record,
			},
		}, nil)

	out, err := s.handler.ResolveAction(s.ctx, s.request(map[string]interface{}{
		"ability": "armed_attack",
		"context": map[string]interface{}{
			"weapon":     "hook_sword",
			"stance":     "sun",
			"style_rank": 3,
		},
	}))
	s.Require().NoError(err)

	var resp v1alpha1.ResolveActionResponse
	s.Require().NoError(v1alpha1.DecodeStruct(out, &resp))
	s.Equal(28, resp.Record.AttackTotal)
	s.Equal([]int{4}, resp.Record.DamageRolls)
	s.Equal(16, resp.Record.PrimaryValue)
	s.Equal("entry_1", resp.Entry.ID)
	s.True(resp.Entry.Timestamp.Equal(time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)))
}

func (s *HandlerTestSuite) TestResolveAction_MapsErrorCode() {
	s.mockSheet.EXPECT().
		ResolveAction(gomock.Any(), gomock.Any()).
		Return(nil, errors.InvalidField("style_rank", 11, "must be between 0 and 10"))

	_, err := s.handler.ResolveAction(s.ctx, s.request(map[string]interface{}{
		"session_id": "table-1",
		"ability":    "armed_attack",
		"context":    map[string]interface{}{"style_rank": 11},
	}))
	s.Require().Error(err)
	s.Equal(codes.InvalidArgument, status.Code(err))

	restored := errors.FromGRPCError(err)
	s.Equal("style_rank", errors.GetMeta(restored)["field"])
}

func (s *HandlerTestSuite) TestResolveAction_RejectsBadRequests() {
	testCases := []struct {
		name   string
		fields map[string]interface{}
	}{
		{name: "missing ability", fields: map[string]interface{}{}},
		{name: "unknown key", fields: map[string]interface{}{"ability": "armed_attack", "weapon": "hook_sword"}},
		{name: "wrong type", fields: map[string]interface{}{"ability": "armed_attack", "context": "sun"}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.handler.ResolveAction(s.ctx, s.request(tc.fields))
			s.Require().Error(err)
			s.Equal(codes.InvalidArgument, status.Code(err))
		})
	}
}

func (s *HandlerTestSuite) TestGetSheet() {
	character := testutils.CreateTestCharacter()
	s.mockSheet.EXPECT().
		GetSheet(s.ctx, &sheet.GetSheetInput{SessionID: "local"}).
		Return(&sheet.GetSheetOutput{
			Character:  character,
			Modifiers:  map[entities.Attribute]int{entities.AttributeStrength: 5},
			Mastery:    3,
			SaveDC:     16,
			ArmorClass: &engine.ArmorClassOutput{Base: 28, Current: 28},
			Resources:  character.FullResources(),
			Skills: []*engine.SkillTotal{
				{Name: "Athletics", Attribute: entities.AttributeStrength, Total: 15},
			},
			Weapons:   engine.DefaultWeapons(),
			Abilities: []*engine.AbilityInfo{{ID: entities.AbilityConvergence, Name: "Convergence", Kind: engine.AbilityKindTechnique, Cost: 1}},
		}, nil)

	out, err := s.handler.GetSheet(s.ctx, nil)
	s.Require().NoError(err)

	var resp v1alpha1.GetSheetResponse
	s.Require().NoError(v1alpha1.DecodeStruct(out, &resp))
	s.Equal("Shoji Yoshiro", resp.Character.Name)
	s.Equal(5, resp.Modifiers["strength"])
	s.Equal(16, resp.SaveDC)
	s.Equal(28, resp.ArmorClass.Current)
	s.Equal(99, resp.Resources.HP)
	s.Require().Len(resp.Skills, 1)
	s.Equal("strength", resp.Skills[0].Attribute)
	s.Len(resp.Weapons, 10)
	s.Equal("1d8", resp.Weapons[0].Damage)
	s.Equal(1, resp.Abilities[0].Cost)
}

func (s *HandlerTestSuite) TestRollSkill() {
	check := &entities.SkillCheck{Label: "Skill - Will", Skill: "Will", Roll: 12, Modifier: 8, Total: 20}
	s.mockSheet.EXPECT().
		RollSkill(s.ctx, &sheet.RollSkillInput{SessionID: "local", Skill: "Will"}).
		Return(&sheet.RollSkillOutput{
			Check: check,
			Entry: &entities.HistoryEntry{ID: "entry_1", Label: check.Label, Record: check.Record()},
		}, nil)

	out, err := s.handler.RollSkill(s.ctx, s.request(map[string]interface{}{"skill": "Will"}))
	s.Require().NoError(err)

	var resp v1alpha1.RollSkillResponse
	s.Require().NoError(v1alpha1.DecodeStruct(out, &resp))
	s.Equal(check, resp.Check)
	s.Equal(entities.PrimaryLabelResult, resp.Entry.Record.PrimaryLabel)

	_, err = s.handler.RollSkill(s.ctx, s.request(map[string]interface{}{}))
	s.Equal(codes.InvalidArgument, status.Code(err))
}

func (s *HandlerTestSuite) TestHistory() {
	s.mockSheet.EXPECT().
		ListHistory(s.ctx, &sheet.ListHistoryInput{SessionID: "local", Limit: 10}).
		Return(&sheet.ListHistoryOutput{Entries: []*entities.HistoryEntry{{ID: "entry_2"}, {ID: "entry_1"}}}, nil)
	s.mockSheet.EXPECT().
		ClearHistory(s.ctx, &sheet.ClearHistoryInput{SessionID: "local"}).
		Return(&sheet.ClearHistoryOutput{EntriesDeleted: 2}, nil)

	out, err := s.handler.ListHistory(s.ctx, s.request(map[string]interface{}{"limit": 10}))
	s.Require().NoError(err)
	var list v1alpha1.ListHistoryResponse
	s.Require().NoError(v1alpha1.DecodeStruct(out, &list))
	s.Require().Len(list.Entries, 2)
	s.Equal("entry_2", list.Entries[0].ID)

	out, err = s.handler.ClearHistory(s.ctx, s.request(nil))
	s.Require().NoError(err)
	var cleared v1alpha1.ClearHistoryResponse
	s.Require().NoError(v1alpha1.DecodeStruct(out, &cleared))
	s.Equal(2, cleared.EntriesDeleted)
}

func (s *HandlerTestSuite) TestUpdateResources() {
	resources := entities.Resources{HP: 40, Energy: 10, StoredEnergy: 0}
	s.mockSheet.EXPECT().
		UpdateResources(s.ctx, &sheet.UpdateResourcesInput{SessionID: "local", Resources: resources}).
		Return(&sheet.UpdateResourcesOutput{Resources: resources}, nil)

	out, err := s.handler.UpdateResources(s.ctx, s.request(map[string]interface{}{
		"resources": map[string]interface{}{"hp": 40, "energy": 10},
	}))
	s.Require().NoError(err)

	var resp v1alpha1.UpdateResourcesResponse
	s.Require().NoError(v1alpha1.DecodeStruct(out, &resp))
	s.Equal(resources, resp.Resources)
}

func (s *HandlerTestSuite) TestServiceDescRoundTrip() {
	listener := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	v1alpha1.RegisterSheetServiceServer(server, s.handler)
	go func() {
		_ = server.Serve(listener)
	}()
	defer server.Stop()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	s.Require().NoError(err)
	defer conn.Close()

	s.mockSheet.EXPECT().
		ListSkills(gomock.Any(), &sheet.ListSkillsInput{}).
		Return(&sheet.ListSkillsOutput{Skills: []*engine.SkillTotal{{Name: "Will", Attribute: entities.AttributeWisdom, Total: 8}}}, nil)
	s.mockSheet.EXPECT().
		RollSkill(gomock.Any(), gomock.Any()).
		Return(nil, errors.NotFoundf("skill %q not found", "Cooking").WithMeta("skill", "Cooking"))

	client := v1alpha1.NewSheetServiceClient(conn)

	out, err := client.ListSkills(s.ctx, &structpb.Struct{})
	s.Require().NoError(err)
	var skills v1alpha1.ListSkillsResponse
	s.Require().NoError(v1alpha1.DecodeStruct(out, &skills))
	s.Require().Len(skills.Skills, 1)
	s.Equal(8, skills.Skills[0].Total)

	_, err = client.RollSkill(s.ctx, s.request(map[string]interface{}{"skill": "Cooking"}))
	s.Require().Error(err)
	s.Equal(codes.NotFound, status.Code(err))
	s.Equal("Cooking", errors.GetMeta(errors.FromGRPCError(err))["skill"])
}
