package client

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/handlers/sheet/v1alpha1"
)

// contextFlags binds the situational choices shared by sheet and resolve
func contextFlags(cmd *cobra.Command, actx *entities.ActionContext) {
	cmd.Flags().StringVar((*string)(&actx.Weapon), "weapon", "", "weapon ID, e.g. hook_sword")
	cmd.Flags().StringVar((*string)(&actx.Stance), "stance", "", "combat stance: none or sun")
	cmd.Flags().IntVar(&actx.StyleRank, "style-rank", 0, "hidden style rank (0-10)")
	cmd.Flags().BoolVar(&actx.DescendingStrike, "descending-strike", false, "descending strike is active")
	cmd.Flags().IntVar(&actx.ExtraArmor, "extra-armor", 0, "free armor class adjustment")
}

func (c *commands) sheetCmd() *cobra.Command {
	req := &v1alpha1.GetSheetRequest{}
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Get the rendered character sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.SessionID = c.opts.Session()
			return c.invoke(cmd, v1alpha1.SheetServiceClient.GetSheet, req)
		},
	}
	contextFlags(cmd, &req.Context)
	return cmd
}

func (c *commands) skillsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skills",
		Short: "List skill totals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.invoke(cmd, v1alpha1.SheetServiceClient.ListSkills, &v1alpha1.ListSkillsRequest{})
		},
	}
}

func (c *commands) rollSkillCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roll-skill [skill]",
		Short: "Roll a skill check",
		Long: `Roll a d20 plus the skill total. Skill names match case-insensitively. Examples:

  roll-skill Will
  roll-skill "sleight of hand"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.invoke(cmd, v1alpha1.SheetServiceClient.RollSkill, &v1alpha1.RollSkillRequest{
				SessionID: c.opts.Session(),
				Skill:     strings.Join(args, " "),
			})
		},
	}
}

func (c *commands) resolveCmd() *cobra.Command {
	req := &v1alpha1.ResolveActionRequest{}
	cmd := &cobra.Command{
		Use:   "resolve [ability]",
		Short: "Resolve an ability",
		Long: `Resolve a weapon ability or blood technique. Examples:

  resolve armed_attack --weapon hook_sword --stance sun
  resolve hidden_cut --weapon great_axe --style-rank 3
  resolve piercing_blood`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.SessionID = c.opts.Session()
			req.Ability = entities.AbilityID(args[0])
			return c.invoke(cmd, v1alpha1.SheetServiceClient.ResolveAction, req)
		},
	}
	contextFlags(cmd, &req.Context)
	return cmd
}

func (c *commands) historyCmd() *cobra.Command {
	req := &v1alpha1.ListHistoryRequest{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List the session history, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.SessionID = c.opts.Session()
			return c.invoke(cmd, v1alpha1.SheetServiceClient.ListHistory, req)
		},
	}
	cmd.Flags().IntVar(&req.Limit, "limit", 0, "maximum entries to list (0 = all)")
	return cmd
}

func (c *commands) clearHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-history",
		Short: "Delete every history entry of the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.invoke(cmd, v1alpha1.SheetServiceClient.ClearHistory, &v1alpha1.ClearHistoryRequest{
				SessionID: c.opts.Session(),
			})
		},
	}
}

func (c *commands) updateResourcesCmd() *cobra.Command {
	req := &v1alpha1.UpdateResourcesRequest{}
	cmd := &cobra.Command{
		Use:   "update-resources",
		Short: "Set current hit points, energy and stored energy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req.SessionID = c.opts.Session()
			return c.invoke(cmd, v1alpha1.SheetServiceClient.UpdateResources, req)
		},
	}
	cmd.Flags().IntVar(&req.Resources.HP, "hp", 0, "current hit points")
	cmd.Flags().IntVar(&req.Resources.Energy, "energy", 0, "current energy")
	cmd.Flags().IntVar(&req.Resources.StoredEnergy, "stored-energy", 0, "current stored energy")
	_ = cmd.MarkFlagRequired("hp")
	_ = cmd.MarkFlagRequired("energy")
	_ = cmd.MarkFlagRequired("stored-energy")
	return cmd
}
