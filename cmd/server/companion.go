package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/progression"
)

var (
	companionID       uint64
	companionOwner    string
	companionTemplate uint32
	companionEnhance  []string
)

var companionCmd = &cobra.Command{
	Use:   "companion",
	Short: "Manage companions",
}

var companionRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a newly minted companion",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		comp := &entities.Companion{
			ID:         companionID,
			OwnerID:    companionOwner,
			TemplateID: companionTemplate,
		}
		for _, raw := range companionEnhance {
			e, err := parseEnhancement(raw)
			if err != nil {
				return err
			}
			comp.Enhancements = append(comp.Enhancements, e)
		}

		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.progression.RegisterCompanion(ctx, &progression.RegisterCompanionInput{Companion: comp})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Companion)
		})
	},
}

var companionListCmd = &cobra.Command{
	Use:   "list <owner>",
	Short: "List the companions of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.progression.ListCompanions(ctx, &progression.ListCompanionsInput{OwnerID: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Companions)
		})
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer <companion-id> <new-owner>",
	Short: "Move a companion to another account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUint(args[0], "companion-id")
		if err != nil {
			return err
		}

		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.progression.TransferCompanion(ctx, &progression.TransferCompanionInput{
				CompanionID: id,
				NewOwnerID:  args[1],
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]interface{}{
				"companion":      out.Companion,
				"previous_owner": out.PreviousOwner,
			})
		})
	},
}

// parseEnhancement reads skill:fixed:percent
func parseEnhancement(raw string) (entities.SkillEnhancement, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return entities.SkillEnhancement{}, errors.InvalidArgumentf("enhancement %q must be skill:fixed:percent", raw)
	}

	skill := entities.Skill(parts[0])
	if !skill.Valid() {
		return entities.SkillEnhancement{}, errors.InvalidArgumentf("unknown skill %q", parts[0])
	}
	fixed, err := parseUint(parts[1], "fixed bonus")
	if err != nil {
		return entities.SkillEnhancement{}, err
	}
	percent, err := parseUint(parts[2], "percent bonus")
	if err != nil {
		return entities.SkillEnhancement{}, err
	}
	if fixed > uint64(^uint32(0)) || percent > uint64(^uint32(0)) {
		return entities.SkillEnhancement{}, errors.OutOfRangef("enhancement %q is too large", raw)
	}

	return entities.SkillEnhancement{
		Skill:      skill,
		FixedMax:   uint32(fixed),
		Fixed:      uint32(fixed),
		PercentMax: uint32(percent),
		Percent:    uint32(percent),
	}, nil
}

func init() {
	companionRegisterCmd.Flags().Uint64Var(&companionID, "id", 0, "companion ID")
	companionRegisterCmd.Flags().StringVar(&companionOwner, "owner", "", "owning account")
	companionRegisterCmd.Flags().Uint32Var(&companionTemplate, "template", 0, "companion template ID")
	companionRegisterCmd.Flags().StringArrayVar(&companionEnhance, "enhance", nil, "skill enhancement, skill:fixed:percent")
	_ = companionRegisterCmd.MarkFlagRequired("id")
	_ = companionRegisterCmd.MarkFlagRequired("owner")

	companionCmd.AddCommand(companionRegisterCmd)
	companionCmd.AddCommand(companionListCmd)
}
