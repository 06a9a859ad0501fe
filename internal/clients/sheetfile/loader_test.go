package sheetfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/clients/sheetfile"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/testutils"
)

func TestLoad_EmbeddedSheetMatchesFixture(t *testing.T) {
	character, err := sheetfile.New(nil).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, testutils.CreateTestCharacter(), character)
}

func TestLoad_SkillsTableOverridesSheet(t *testing.T) {
	dir := t.TempDir()
	skillsPath := filepath.Join(dir, "pericias.csv")
	require.NoError(t, os.WriteFile(skillsPath, []byte(
		"Pericia,Atributo,Total\n"+
			"Athletics,For,0\n"+
			"Fighting,FOR,0\n"+
			"Marksmanship,Des,0\n"+
			"Fortitude,Con,0\n"+
			"Integrity,Con,0\n"+
			"Perception,Sab,0\n"+
			"Will,Sab,0\n"+
			"Cunning,Int,0\n"+
			"Sorcery,Int,0\n"+
			"Smithing,Int,0\n"+
			"Crafting,Int,0\n"+
			"Stealth,Des,0\n"+
			"Reflexes,Des,0\n"+
			"Acrobatics,Des,0\n"+
			"Sleight of Hand,Des,0\n",
	), 0o600))

	character, err := sheetfile.New(&sheetfile.Config{SkillsPath: skillsPath}).Load(context.Background())
	require.NoError(t, err)

	require.Len(t, character.Skills, 15)
	assert.Equal(t, "Athletics", character.Skills[0].Name)
	assert.Equal(t, "For", character.Skills[0].Attribute)
}

func TestLoad_SheetFileFromDisk(t *testing.T) {
	dir := t.TempDir()
	sheetPath := filepath.Join(dir, "sheet.yaml")
	require.NoError(t, os.WriteFile(sheetPath, []byte(`
id: kenta
name: Kenta
level: 1
attributes: {strength: 10, dexterity: 10, constitution: 10, intelligence: 10, wisdom: 10, charisma: 10}
pools: {hp: 12, energy: 4, stored_energy: 0}
skills:
  - {name: Athletics, attribute: Strength}
`), 0o600))

	character, err := sheetfile.New(&sheetfile.Config{SheetPath: sheetPath}).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "kenta", character.ID)
	require.Len(t, character.Skills, 1)
	assert.Equal(t, "Strength", character.Skills[0].Attribute)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := sheetfile.New(&sheetfile.Config{SheetPath: filepath.Join(t.TempDir(), "nope.yaml")}).
		Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.yaml")
}

func TestParseSheet_RejectsUnknownKeys(t *testing.T) {
	_, err := sheetfile.ParseSheet([]byte("id: shoji\nlevle: 6\n"))
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = sheetfile.ParseSheet(nil)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestParseSkills(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    int
		wantErr string
	}{
		{name: "english header", input: "name,attribute\nWill,Wis\n", want: 1},
		{name: "accented header", input: "Perícia,Atributo\nVontade,Sab\nLuta,For\n", want: 2},
		{name: "byte order mark", input: "\ufeffname,attribute\nWill,Wis\n", want: 1},
		{name: "blank names skipped", input: "name,attribute\n,Wis\nWill,Wis\n", want: 1},
		{name: "empty", input: "", wantErr: "empty"},
		{name: "no attribute column", input: "name,total\nWill,8\n", wantErr: "header"},
		{name: "header only", input: "name,attribute\n", wantErr: "no rows"},
		{name: "short row", input: "name,attribute\nWill\n", wantErr: "missing columns"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			skills, err := sheetfile.ParseSkills(strings.NewReader(tc.input))
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.True(t, errors.IsInvalidArgument(err))
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, skills, tc.want)
		})
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, sheetfile.Validate(testutils.CreateTestCharacter()))

	character := testutils.CreateTestCharacter()
	character.Level = 0
	character.Skills[0].Attribute = "Luck"
	character.SkillBonuses.Mastery = append(character.SkillBonuses.Mastery, "Cooking")
	character.SpellcastingSkill = "Alchemy"

	err := sheetfile.Validate(character)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	for _, want := range []string{"level", "Luck", "Cooking", "Alchemy"} {
		assert.Contains(t, err.Error(), want)
	}

	assert.Error(t, sheetfile.Validate(nil))
}
