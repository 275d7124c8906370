package main

import (
	"context"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/clanbattle"
)

var (
	battleClanA    string
	battleClanB    string
	battleMembersA []string
	battleMembersB []string
	battleSkill    string
	battleWordA    uint64
	battleWordB    uint64
)

var battleCmd = &cobra.Command{
	Use:   "battle",
	Short: "Resolve a clan battle",
	Long: `Resolve a battle between two stored clans (--clan-a/--clan-b) or two explicit member
lists (--members-a/--members-b, 0 for an empty slot). Random words are drawn when not given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		flags := cmd.Flags()
		wordA, wordB := battleWordA, battleWordB
		if !flags.Changed("word-a") {
			wordA = rand.Uint64()
		}
		if !flags.Changed("word-b") {
			wordB = rand.Uint64()
		}
		skill := entities.Skill(battleSkill)

		byClan := battleClanA != "" || battleClanB != ""
		byMembers := len(battleMembersA) > 0 || len(battleMembersB) > 0
		if byClan == byMembers {
			return errors.InvalidArgument("give either --clan-a/--clan-b or --members-a/--members-b")
		}

		var membersA, membersB []uint64
		if byMembers {
			var err error
			if membersA, err = parseIDs(battleMembersA, "member"); err != nil {
				return err
			}
			if membersB, err = parseIDs(battleMembersB, "member"); err != nil {
				return err
			}
		}

		return withApp(cmd, func(ctx context.Context, a *app) error {
			var (
				out *clanbattle.ResolveOutput
				err error
			)
			if byClan {
				out, err = a.clanBattle.Resolve(ctx, &clanbattle.ResolveInput{
					ClanA: battleClanA,
					ClanB: battleClanB,
					Skill: skill,
					WordA: wordA,
					WordB: wordB,
				})
			} else {
				out, err = a.clanBattle.ResolveRosters(ctx, &clanbattle.ResolveRostersInput{
					MembersA: membersA,
					MembersB: membersB,
					Skill:    skill,
					WordA:    wordA,
					WordB:    wordB,
				})
			}
			if err != nil {
				return err
			}

			return printJSON(cmd, map[string]interface{}{
				"battle_id": out.BattleID,
				"a_won":     out.Result.DidAWin,
				"wins_a":    out.Result.WinsA,
				"wins_b":    out.Result.WinsB,
				"walkover":  out.Result.Walkover,
				"word_a":    wordA,
				"word_b":    wordB,
				"roster_a":  out.RosterA,
				"roster_b":  out.RosterB,
				"matchups":  out.Result.Matchups,
			})
		})
	},
}

var battleLimit int

var battlesCmd = &cobra.Command{
	Use:   "battles",
	Short: "Inspect recorded clan battles",
}

var battlesShowCmd = &cobra.Command{
	Use:   "show <battle-id>",
	Short: "Print a recorded battle",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.clanBattle.GetBattle(ctx, &clanbattle.GetBattleInput{BattleID: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Record)
		})
	},
}

var battlesHistoryCmd = &cobra.Command{
	Use:   "history <clan-id>",
	Short: "List the recent battles of a clan, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.clanBattle.ListClanBattles(ctx, &clanbattle.ListClanBattlesInput{
				ClanID: args[0],
				Limit:  battleLimit,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Records)
		})
	},
}

var rosterCmd = &cobra.Command{
	Use:   "roster",
	Short: "Manage clan rosters",
}

var rosterSetCmd = &cobra.Command{
	Use:   "set <clan-id> [member-id...]",
	Short: "Replace a clan roster, 0 marks an empty slot",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		members, err := parseIDs(args[1:], "member")
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			_, err := a.clanBattle.SetRoster(ctx, &clanbattle.SetRosterInput{ClanID: args[0], MemberIDs: members})
			return err
		})
	},
}

var rosterJoinCmd = &cobra.Command{
	Use:   "join <clan-id> <character-id>",
	Short: "Add a character to a clan",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUint(args[1], "character-id")
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.clanBattle.JoinClan(ctx, &clanbattle.JoinClanInput{ClanID: args[0], CharacterID: id})
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]interface{}{"clan_id": args[0], "size": out.Size})
		})
	},
}

var rosterLeaveCmd = &cobra.Command{
	Use:   "leave <clan-id> <character-id>",
	Short: "Remove a character from a clan",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUint(args[1], "character-id")
		if err != nil {
			return err
		}
		return withApp(cmd, func(ctx context.Context, a *app) error {
			_, err := a.clanBattle.LeaveClan(ctx, &clanbattle.LeaveClanInput{ClanID: args[0], CharacterID: id})
			return err
		})
	},
}

func init() {
	flags := battleCmd.Flags()
	flags.StringVar(&battleClanA, "clan-a", "", "attacking clan")
	flags.StringVar(&battleClanB, "clan-b", "", "defending clan")
	flags.StringSliceVar(&battleMembersA, "members-a", nil, "attacking character IDs")
	flags.StringSliceVar(&battleMembersB, "members-b", nil, "defending character IDs")
	flags.StringVar(&battleSkill, "skill", string(entities.SkillMelee), "skill the battle is fought in")
	flags.Uint64Var(&battleWordA, "word-a", 0, "random word of the attacking side")
	flags.Uint64Var(&battleWordB, "word-b", 0, "random word of the defending side")

	battlesHistoryCmd.Flags().IntVar(&battleLimit, "limit", 10, "number of battles to list")
	battlesCmd.AddCommand(battlesShowCmd)
	battlesCmd.AddCommand(battlesHistoryCmd)

	rosterCmd.AddCommand(rosterSetCmd)
	rosterCmd.AddCommand(rosterJoinCmd)
	rosterCmd.AddCommand(rosterLeaveCmd)
}
