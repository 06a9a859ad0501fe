// Package sheetfile reads the character sheet from a YAML file and the skills
// table from a CSV file. Both fall back to the copies embedded in the binary.
package sheetfile

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/csv"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

//go:embed data/shoji.yaml
var defaultSheet []byte

//go:embed data/skills.csv
var defaultSkills []byte

// Header names accepted for the skills table columns
var (
	nameColumns      = []string{"name", "skill", "pericia", "perícia"}
	attributeColumns = []string{"attribute", "atributo"}
)

// Loader loads the character of the sheet
type Loader interface {
	Load(ctx context.Context) (*entities.Character, error)
}

// Config holds the file locations. Empty paths use the embedded files.
type Config struct {
	SheetPath  string
	SkillsPath string
}

type loader struct {
	sheetPath  string
	skillsPath string
}

// New creates a loader
func New(cfg *Config) Loader {
	l := &loader{}
	if cfg != nil {
		l.sheetPath = cfg.SheetPath
		l.skillsPath = cfg.SkillsPath
	}
	return l
}

// Load reads and validates the character. Skills listed in the sheet file are
// used unless a skills table path is configured.
func (l *loader) Load(_ context.Context) (*entities.Character, error) {
	sheetData := defaultSheet
	if l.sheetPath != "" {
		data, err := os.ReadFile(l.sheetPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read sheet file %s", l.sheetPath)
		}
		sheetData = data
	}

	character, err := ParseSheet(sheetData)
	if err != nil {
		return nil, err
	}

	if l.skillsPath != "" || len(character.Skills) == 0 {
		skillsData := defaultSkills
		if l.skillsPath != "" {
			data, err := os.ReadFile(l.skillsPath)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to read skills table %s", l.skillsPath)
			}
			skillsData = data
		}

		skills, err := ParseSkills(bytes.NewReader(skillsData))
		if err != nil {
			return nil, err
		}
		character.Skills = skills
	}

	if err := Validate(character); err != nil {
		return nil, err
	}

	slog.Debug("Sheet loaded",
		"character_id", character.ID,
		"sheet_path", l.sheetPath,
		"skills_path", l.skillsPath,
		"skills", len(character.Skills),
	)

	return character, nil
}

// ParseSheet decodes a YAML character sheet. Unknown keys are rejected.
func ParseSheet(data []byte) (*entities.Character, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	character := &entities.Character{}
	if err := decoder.Decode(character); err != nil {
		if err == io.EOF {
			return nil, errors.InvalidArgument("sheet file is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse sheet file")
	}

	return character, nil
}

// ParseSkills reads a skills table with a header row naming the skill and
// attribute columns. Other columns are ignored.
func ParseSkills(r io.Reader) ([]entities.Skill, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.InvalidArgument("skills table is empty")
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read skills table header")
	}

	nameIdx := columnIndex(header, nameColumns)
	attrIdx := columnIndex(header, attributeColumns)
	if nameIdx < 0 || attrIdx < 0 {
		return nil, errors.InvalidArgumentf("skills table header must name the skill and attribute columns, got %v", header)
	}

	var skills []entities.Skill
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read skills table")
		}
		if nameIdx >= len(row) || attrIdx >= len(row) {
			line, _ := reader.FieldPos(0)
			return nil, errors.InvalidArgumentf("skills table line %d is missing columns", line)
		}

		name := strings.TrimSpace(row[nameIdx])
		if name == "" {
			continue
		}
		skills = append(skills, entities.Skill{
			Name:      name,
			Attribute: strings.TrimSpace(row[attrIdx]),
		})
	}

	if len(skills) == 0 {
		return nil, errors.InvalidArgument("skills table has no rows")
	}
	return skills, nil
}

// Validate checks the loaded character is usable by the engine
func Validate(c *entities.Character) error {
	if c == nil {
		return errors.InvalidArgument("character is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", c.ID, vb)
	errors.ValidateRequired("name", c.Name, vb)
	errors.ValidateMin("level", c.Level, 1, vb)
	for _, attr := range entities.AllAttributes {
		score, _ := c.Attributes.Score(attr)
		errors.ValidateMin("attributes."+string(attr), score, 1, vb)
	}
	errors.ValidateMin("pools.hp", c.Pools.HP, 1, vb)
	errors.ValidateMin("pools.energy", c.Pools.Energy, 0, vb)
	errors.ValidateMin("pools.stored_energy", c.Pools.StoredEnergy, 0, vb)

	known := make(map[string]bool, len(c.Skills))
	for _, skill := range c.Skills {
		if known[skill.Name] {
			vb.Fieldf("skills", "duplicate skill %q", skill.Name)
		}
		known[skill.Name] = true
		if _, err := engine.ParseAttribute(skill.Attribute); err != nil {
			vb.Fieldf("skills", "skill %q has unknown attribute %q", skill.Name, skill.Attribute)
		}
	}

	checkMembers := func(field string, names []string) {
		for _, name := range names {
			if !known[name] {
				vb.Fieldf(field, "unknown skill %q", name)
			}
		}
	}
	checkMembers("skill_bonuses.mastery", c.SkillBonuses.Mastery)
	checkMembers("skill_bonuses.specialization", c.SkillBonuses.Specialization)
	for _, flat := range c.SkillBonuses.Flat {
		checkMembers("skill_bonuses.flat", flat.Skills)
	}
	if c.SpellcastingSkill != "" && !known[c.SpellcastingSkill] {
		vb.Fieldf("spellcasting_skill", "unknown skill %q", c.SpellcastingSkill)
	}

	return vb.Build()
}

func columnIndex(header []string, names []string) int {
	for i, column := range header {
		column = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(column, "\ufeff")))
		for _, name := range names {
			if column == name {
				return i
			}
		}
	}
	return -1
}
