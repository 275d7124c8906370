package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/engine/queue"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/orchestrators/progression"
)

var (
	startActions   []string
	startBoost     string
	startOverwrite bool
)

var startCmd = &cobra.Command{
	Use:   "start <character-id>",
	Short: "Queue actions for a character",
	Long: `Queue actions for a character. Each --action is ACTION[/CHOICE]:SECONDS[+COMPANION],
for example --action 3/2:1800+7 cooks with choice 2 for half an hour with companion 7.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUint(args[0], "character-id")
		if err != nil {
			return err
		}

		var boost *entities.Boost
		if startBoost != "" {
			if boost, err = parseBoost(startBoost); err != nil {
				return err
			}
		}

		actions := make([]engine.QueueAction, 0, len(startActions))
		for _, raw := range startActions {
			action, err := parseAction(raw)
			if err != nil {
				return err
			}
			action.Boost = boost
			actions = append(actions, action)
		}

		mode := queue.ModeAppend
		if startOverwrite {
			mode = queue.ModeOverwrite
		}

		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.progression.StartActions(ctx, &progression.StartActionsInput{
				CharacterID: id,
				Actions:     actions,
				Mode:        mode,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Queued)
		})
	},
}

var advanceCmd = &cobra.Command{
	Use:   "advance <character-id> <elapsed-seconds>",
	Short: "Process elapsed time on a character's queue",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUint(args[0], "character-id")
		if err != nil {
			return err
		}
		elapsed, err := parseUint(args[1], "elapsed-seconds")
		if err != nil {
			return err
		}

		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.progression.Advance(ctx, &progression.AdvanceInput{
				CharacterID: id,
				Elapsed:     elapsed,
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, map[string]interface{}{
				"xp":                out.Result.XP,
				"consumed":          out.Result.Consumed,
				"produced":          out.Result.Produced,
				"actions":           out.Result.Actions,
				"completed":         out.Result.Completed,
				"remaining_queue":   out.Result.RemainingQueueLength,
				"discarded":         out.Result.Discarded,
				"character_version": out.Character.Version,
			})
		})
	},
}

var cancelCmd = &cobra.Command{
	Use:   "cancel <character-id> <queue-id>",
	Short: "Remove a queued action without reward",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseUint(args[0], "character-id")
		if err != nil {
			return err
		}

		return withApp(cmd, func(ctx context.Context, a *app) error {
			out, err := a.progression.CancelAction(ctx, &progression.CancelActionInput{
				CharacterID: id,
				QueueID:     args[1],
			})
			if err != nil {
				return err
			}
			return printJSON(cmd, out.Character.Queue)
		})
	},
}

// parseAction reads ACTION[/CHOICE]:SECONDS[+COMPANION]
func parseAction(raw string) (engine.QueueAction, error) {
	var action engine.QueueAction

	head, duration, ok := strings.Cut(raw, ":")
	if !ok {
		return action, errors.InvalidArgumentf("action %q must be ACTION[/CHOICE]:SECONDS[+COMPANION]", raw)
	}

	if d, companion, found := strings.Cut(duration, "+"); found {
		id, err := parseUint(companion, "companion")
		if err != nil {
			return action, err
		}
		action.CompanionID = id
		duration = d
	}

	seconds, err := parseUint(duration, "duration")
	if err != nil {
		return action, err
	}
	action.Duration = seconds

	actionID, choiceID, hasChoice := strings.Cut(head, "/")
	id, err := parseUint(actionID, "action")
	if err != nil {
		return action, err
	}
	if id > uint64(^uint32(0)) {
		return action, errors.OutOfRangef("action %d out of range", id)
	}
	action.ActionID = entities.ActionID(id)

	if hasChoice {
		choice, err := parseUint(choiceID, "choice")
		if err != nil {
			return action, err
		}
		if choice > uint64(^uint32(0)) {
			return action, errors.OutOfRangef("choice %d out of range", choice)
		}
		action.ChoiceID = entities.ChoiceID(choice)
	}

	return action, nil
}

// parseBoost reads START:DURATION:MAGNITUDE
func parseBoost(raw string) (*entities.Boost, error) {
	parts := strings.Split(raw, ":")
	if len(parts) != 3 {
		return nil, errors.InvalidArgumentf("boost %q must be START:DURATION:MAGNITUDE", raw)
	}

	start, err := parseUint(parts[0], "boost start")
	if err != nil {
		return nil, err
	}
	duration, err := parseUint(parts[1], "boost duration")
	if err != nil {
		return nil, err
	}
	magnitude, err := parseUint(parts[2], "boost magnitude")
	if err != nil {
		return nil, err
	}
	if magnitude > uint64(^uint32(0)) {
		return nil, errors.OutOfRangef("boost magnitude %d out of range", magnitude)
	}

	return &entities.Boost{Start: start, Duration: duration, Magnitude: uint32(magnitude)}, nil
}

func init() {
	startCmd.Flags().StringArrayVar(&startActions, "action", nil, "action to queue, ACTION[/CHOICE]:SECONDS[+COMPANION]")
	startCmd.Flags().StringVar(&startBoost, "boost", "", "boost applied to every queued action, START:DURATION:MAGNITUDE")
	startCmd.Flags().BoolVar(&startOverwrite, "overwrite", false, "replace the current queue")
	_ = startCmd.MarkFlagRequired("action")
}
