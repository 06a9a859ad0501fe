package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/orchestrators/sheet"
)

// addLocalCommands registers the commands that run the sheet in-process.
// History outlives one command only when sessions are stored in redis.
func addLocalCommands(root *cobra.Command) {
	root.AddCommand(
		sheetCmd(),
		skillsCmd(),
		rollSkillCmd(),
		resolveCmd(),
		historyCmd(),
		resourcesCmd(),
	)
}

// withApp builds the sheet for one command and closes it afterwards
func withApp(cmd *cobra.Command, fn func(a *app) error) error {
	a, err := newApp(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}

func contextFlags(cmd *cobra.Command, actx *entities.ActionContext) {
	cmd.Flags().StringVar((*string)(&actx.Weapon), "weapon", "", "weapon ID, e.g. hook_sword")
	cmd.Flags().StringVar((*string)(&actx.Stance), "stance", "", "combat stance: none or sun")
	cmd.Flags().IntVar(&actx.StyleRank, "style-rank", 0, "hidden style rank (0-10)")
	cmd.Flags().BoolVar(&actx.DescendingStrike, "descending-strike", false, "descending strike is active")
	cmd.Flags().IntVar(&actx.ExtraArmor, "extra-armor", 0, "free armor class adjustment")
}

func sheetCmd() *cobra.Command {
	var actx entities.ActionContext
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Show the character sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app) error {
				out, err := a.sheet.GetSheet(cmd.Context(), &sheet.GetSheetInput{
					SessionID: cfg.Session.ID,
					Context:   actx,
				})
				if err != nil {
					return err
				}
				renderSheet(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
	contextFlags(cmd, &actx)
	return cmd
}

func skillsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "Show skill totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app) error {
				out, err := a.sheet.ListSkills(cmd.Context(), &sheet.ListSkillsInput{})
				if err != nil {
					return err
				}
				renderSkills(cmd.OutOrStdout(), out.Skills)
				return nil
			})
		},
	}
}

func rollSkillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll-skill [skill]",
		Short: "Roll a skill check",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				out, err := a.sheet.RollSkill(cmd.Context(), &sheet.RollSkillInput{
					SessionID: cfg.Session.ID,
					Skill:     strings.Join(args, " "),
				})
				if err != nil {
					return err
				}
				renderRecord(cmd.OutOrStdout(), out.Entry.Record)
				return nil
			})
		},
	}
}

func resolveCmd() *cobra.Command {
	var actx entities.ActionContext
	cmd := &cobra.Command{
		Use:   "resolve [ability]",
		Short: "Resolve a weapon ability or blood technique",
		Long: `Resolve an ability and print its result card. Examples:

  resolve armed_attack --weapon hook_sword --stance sun
  resolve hidden_cut_ritual --weapon great_scythe --style-rank 4
  resolve blood_pool`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				out, err := a.sheet.ResolveAction(cmd.Context(), &sheet.ResolveActionInput{
					SessionID: cfg.Session.ID,
					Ability:   entities.AbilityID(args[0]),
					Context:   actx,
				})
				if err != nil {
					return err
				}
				renderRecord(cmd.OutOrStdout(), out.Record)
				return nil
			})
		},
	}
	contextFlags(cmd, &actx)
	return cmd
}

func historyCmd() *cobra.Command {
	var (
		limit int
		clearAll bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the session history, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app) error {
				if clearAll {
					out, err := a.sheet.ClearHistory(cmd.Context(), &sheet.ClearHistoryInput{SessionID: cfg.Session.ID})
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted %d entries\n", out.EntriesDeleted)
					return nil
				}

				out, err := a.sheet.ListHistory(cmd.Context(), &sheet.ListHistoryInput{
					SessionID: cfg.Session.ID,
					Limit:     limit,
				})
				if err != nil {
					return err
				}
				renderHistory(cmd.OutOrStdout(), out.Entries)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum entries to show (0 = all)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "delete the history instead of listing it")
	return cmd
}

func resourcesCmd() *cobra.Command {
	var res entities.Resources
	cmd := &cobra.Command{
		Use:   "resources",
		Short: "Set current hit points, energy and stored energy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(a *app) error {
				out, err := a.sheet.UpdateResources(cmd.Context(), &sheet.UpdateResourcesInput{
					SessionID: cfg.Session.ID,
					Resources: res,
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "HP %d  Energy %d  Stored energy %d\n",
					out.Resources.HP, out.Resources.Energy, out.Resources.StoredEnergy)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&res.HP, "hp", 0, "current hit points")
	cmd.Flags().IntVar(&res.Energy, "energy", 0, "current energy")
	cmd.Flags().IntVar(&res.StoredEnergy, "stored-energy", 0, "current stored energy")
	_ = cmd.MarkFlagRequired("hp")
	_ = cmd.MarkFlagRequired("energy")
	_ = cmd.MarkFlagRequired("stored-energy")
	return cmd
}
