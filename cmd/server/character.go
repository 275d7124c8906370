package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/progression"
)

var (
	createID    uint64
	createOwner string
	createXP    map[string]string
)

var characterCmd = &cobra.Command{
	Use:   "character",
	Short: "Manage characters",
}

var characterCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Store a new character",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		xp := make(map[entities.Skill]uint64, len(createXP))
		for skill, raw := range createXP {
			v, err := parseUint(raw, "xp for "+skill)
			if err != nil {
				return err
			}
			xp[entities.Skill(skill)] = v
		}

		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.progression.CreateCharacter(ctx, &progression.CreateCharacterInput{
				ID:      createID,
				OwnerID: createOwner,
				XP:      xp,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Character)
		})
	},
}

var characterLevelCmd = &cobra.Command{
	Use:   "level <character-id> <skill>",
	Short: "Print a character's experience and level in a skill",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUint(args[0], "character-id")
		if err != nil {
			return err
		}

		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.progression.GetLevel(ctx, &progression.GetLevelInput{
				CharacterID: id,
				Skill:       entities.Skill(args[1]),
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]interface{}{
				"character_id": id,
				"skill":        args[1],
				"xp":           out.XP,
				"level":        out.Level,
			})
		})
	},
}

var characterListCmd = &cobra.Command{
	Use:   "list <owner>",
	Short: "List the characters of an account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.progression.ListCharacters(ctx, &progression.ListCharactersInput{OwnerID: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Characters)
		})
	},
}

var characterDeleteCmd = &cobra.Command{
	Use:   "delete <character-id>",
	Short: "Remove a character and its queue",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUint(args[0], "character-id")
		if err != nil {
			return err
		}

		return withApp(cmd, func(ctx context.Context, a *app) error {
			if _, err := a.progression.DeleteCharacter(ctx, &progression.DeleteCharacterInput{CharacterID: id}); err != nil {
				return err
			}
			return printJSON(cmd, map[string]interface{}{"deleted": id})
		})
	},
}

func init() {
	characterCreateCmd.Flags().Uint64Var(&createID, "id", 0, "character ID")
	characterCreateCmd.Flags().StringVar(&createOwner, "owner", "", "owning account")
	characterCreateCmd.Flags().StringToStringVar(&createXP, "xp", nil, "starting experience, skill=amount")
	_ = characterCreateCmd.MarkFlagRequired("id")
	_ = characterCreateCmd.MarkFlagRequired("owner")

	characterCmd.AddCommand(characterCreateCmd)
	characterCmd.AddCommand(characterLevelCmd)
	characterCmd.AddCommand(characterListCmd)
	characterCmd.AddCommand(characterDeleteCmd)
}
