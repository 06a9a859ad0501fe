package v1alpha1

import (
	"bytes"
	"encoding/json"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

// DecodeStruct decodes a Struct document into dst. Unknown keys are rejected.
func DecodeStruct(in *structpb.Struct, dst interface{}) error {
	if in == nil {
		in = &structpb.Struct{}
	}

	data, err := protojson.Marshal(in)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read request")
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid request")
	}
	return nil
}

// EncodeStruct encodes v into a Struct document
func EncodeStruct(v interface{}) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response")
	}

	out := &structpb.Struct{}
	if err := protojson.Unmarshal(data, out); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response")
	}
	return out, nil
}

func convertCharacter(c *entities.Character) CharacterView {
	if c == nil {
		return CharacterView{}
	}
	return CharacterView{
		ID:         c.ID,
		Name:       c.Name,
		Level:      c.Level,
		Attributes: c.Attributes,
		Armor:      c.Armor,
		Pools:      c.Pools,
	}
}

func convertSkills(skills []*engine.SkillTotal) []SkillView {
	views := make([]SkillView, 0, len(skills))
	for _, s := range skills {
		views = append(views, SkillView{
			Name:      s.Name,
			Attribute: string(s.Attribute),
			Total:     s.Total,
			Breakdown: s.Breakdown,
		})
	}
	return views
}

func convertWeapons(weapons []*engine.Weapon) []WeaponView {
	views := make([]WeaponView, 0, len(weapons))
	for _, w := range weapons {
		views = append(views, WeaponView{
			ID:                string(w.ID),
			Name:              w.Name,
			AttackBonus:       w.AttackBonus,
			Damage:            w.Damage.String(),
			CriticalDamage:    w.CriticalDamage.String(),
			CriticalThreshold: w.CriticalThreshold,
			FlatDamage:        w.FlatDamage,
		})
	}
	return views
}

func convertAbilities(abilities []*engine.AbilityInfo) []AbilityView {
	views := make([]AbilityView, 0, len(abilities))
	for _, a := range abilities {
		views = append(views, AbilityView{
			ID:   string(a.ID),
			Name: a.Name,
			Kind: string(a.Kind),
			Cost: a.Cost,
		})
	}
	return views
}

func convertArmorClass(ac *engine.ArmorClassOutput) ArmorClassView {
	if ac == nil {
		return ArmorClassView{}
	}
	return ArmorClassView{
		Base:    ac.Base,
		Current: ac.Current,
		Bonuses: ac.Bonuses,
	}
}

func convertEntry(e *entities.HistoryEntry) HistoryEntryView {
	if e == nil {
		return HistoryEntryView{}
	}
	return HistoryEntryView{
		ID:        e.ID,
		Timestamp: e.Timestamp,
		Label:     e.Label,
		Record:    e.Record,
	}
}

func convertEntries(entries []*entities.HistoryEntry) []HistoryEntryView {
	views := make([]HistoryEntryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, convertEntry(e))
	}
	return views
}

func convertSheet(out *sheet.GetSheetOutput) *GetSheetResponse {
	modifiers := make(map[string]int, len(out.Modifiers))
	for attr, mod := range out.Modifiers {
		modifiers[string(attr)] = mod
	}

	return &GetSheetResponse{
		Character:  convertCharacter(out.Character),
		Modifiers:  modifiers,
		Mastery:    out.Mastery,
		SaveDC:     out.SaveDC,
		ArmorClass: convertArmorClass(out.ArmorClass),
		Resources:  out.Resources,
		Skills:     convertSkills(out.Skills),
		Weapons:    convertWeapons(out.Weapons),
		Abilities:  convertAbilities(out.Abilities),
	}
}
