package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/rpg-sheet/internal/engine"
	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

const historyTimeFormat = "15:04:05"

// renderRecord prints the result card of one resolved ability or skill check
func renderRecord(w io.Writer, r *entities.Record) {
	header := r.Ability
	if r.Range != "" {
		header += " [" + r.Range + "]"
	}
	fmt.Fprintln(w, header)

	primary := fmt.Sprintf("  %s: %d", r.PrimaryLabel, r.PrimaryValue)
	if r.IsCritical {
		primary += "  CRITICAL"
	}
	fmt.Fprintln(w, primary)

	if r.HasAttack && r.PrimaryLabel != entities.PrimaryLabelResult {
		fmt.Fprintf(w, "  Attack: %d (d20 %d%s)\n", r.AttackTotal, r.AttackRoll, formatBonuses(r.AttackBonuses))
	} else if r.HasAttack {
		fmt.Fprintf(w, "  Roll: d20 %d%s\n", r.AttackRoll, formatBonuses(r.AttackBonuses))
	}

	if len(r.DamageRolls) > 0 || len(r.DamageBonuses) > 0 {
		fmt.Fprintf(w, "  Dice: %s%s\n", formatRolls(r.DamageRolls), formatBonuses(r.DamageBonuses))
	}
	for _, extra := range r.ExtraDice {
		fmt.Fprintf(w, "  Extra: %s\n", extra)
	}
	if r.SaveDC > 0 || r.Cost > 0 {
		fmt.Fprintf(w, "  Save DC: %d  Cost: %d\n", r.SaveDC, r.Cost)
	}
	if r.Description != "" {
		fmt.Fprintf(w, "  %s\n", r.Description)
	}
	for _, note := range r.Notes {
		fmt.Fprintf(w, "  * %s\n", note)
	}
}

// renderSheet prints the character summary, defenses, pools and arsenal
func renderSheet(w io.Writer, out *sheet.GetSheetOutput) {
	c := out.Character
	fmt.Fprintf(w, "%s (level %d)\n", c.Name, c.Level)
	fmt.Fprintf(w, "Mastery +%d  Save DC %d\n", out.Mastery, out.SaveDC)
	if out.ArmorClass != nil {
		fmt.Fprintf(w, "Armor class %d (base %d%s)\n", out.ArmorClass.Current, out.ArmorClass.Base, formatBonuses(out.ArmorClass.Bonuses))
	}
	fmt.Fprintf(w, "HP %d/%d  Energy %d/%d  Stored energy %d/%d\n\n",
		out.Resources.HP, c.Pools.HP,
		out.Resources.Energy, c.Pools.Energy,
		out.Resources.StoredEnergy, c.Pools.StoredEnergy,
	)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, attr := range entities.AllAttributes {
		score, _ := c.Attributes.Score(attr)
		fmt.Fprintf(tw, "%s\t%d\t%s\n", attr, score, signed(out.Modifiers[attr]))
	}
	_ = tw.Flush()
	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WEAPON\tID\tATTACK\tDAMAGE\tCRITICAL")
	for _, weapon := range out.Weapons {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s+%d\t%s on %d+\n",
			weapon.Name, weapon.ID, signed(weapon.AttackBonus),
			weapon.Damage, weapon.FlatDamage,
			weapon.CriticalDamage, weapon.CriticalThreshold,
		)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ABILITY\tID\tKIND\tCOST")
	for _, ability := range out.Abilities {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\n", ability.Name, ability.ID, ability.Kind, ability.Cost)
	}
	_ = tw.Flush()
}

// renderSkills prints the skill table with totals and their sources
func renderSkills(w io.Writer, skills []*engine.SkillTotal) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SKILL\tATTRIBUTE\tTOTAL\tBREAKDOWN")
	for _, skill := range skills {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", skill.Name, skill.Attribute, signed(skill.Total),
			strings.TrimPrefix(formatBonuses(skill.Breakdown), " "))
	}
	_ = tw.Flush()
}

// renderHistory prints entries in the order given, newest first
func renderHistory(w io.Writer, entries []*entities.HistoryEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No history yet")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, entry := range entries {
		value := ""
		if entry.Record != nil {
			value = fmt.Sprintf("%s %d", entry.Record.PrimaryLabel, entry.Record.PrimaryValue)
			if entry.Record.IsCritical {
				value += " (critical)"
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.Timestamp.Local().Format(historyTimeFormat), entry.Label, value)
	}
	_ = tw.Flush()
}

func formatBonuses(bonuses []entities.Bonus) string {
	var b strings.Builder
	for _, bonus := range bonuses {
		fmt.Fprintf(&b, " %s %s", signed(bonus.Value), bonus.Source)
	}
	return b.String()
}

func formatRolls(rolls []int) string {
	parts := make([]string, len(rolls))
	for i, roll := range rolls {
		parts[i] = fmt.Sprint(roll)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func signed(v int) string {
	if v < 0 {
		return fmt.Sprint(v)
	}
	return fmt.Sprintf("+%d", v)
}
