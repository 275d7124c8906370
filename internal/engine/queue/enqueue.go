package queue

import (
	"github.com/KirkDiggler/rpg-progression/internal/engine/companion"
	"github.com/KirkDiggler/rpg-progression/internal/engine/levels"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Enqueue validates and schedules new actions. New actions start back to back after the
// existing queue (or at now when overwriting or when the queue has already run out).
func (p *Processor) Enqueue(input *EnqueueInput) (*EnqueueOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if len(input.Actions) == 0 {
		return nil, errors.InvalidArgument("at least one action is required")
	}

	char := input.Character.Clone()
	if input.Mode == ModeOverwrite {
		char.Queue = nil
	}

	total := char.RemainingQueueTime()
	start := max(input.Now, char.QueueEnd())
	queued := make([]*entities.QueuedAction, 0, len(input.Actions))

	for i, action := range input.Actions {
		if err := p.validateAction(char, &action, input); err != nil {
			return nil, errors.Wrapf(err, "invalid action at index %d", i)
		}

		var err error
		if total, err = add(total, action.Duration); err != nil || total > p.maxQueueSeconds {
			return nil, errors.InvalidArgumentf("queue would exceed %d seconds", p.maxQueueSeconds).
				WithMeta("character_id", char.ID)
		}

		qa := &entities.QueuedAction{
			ID:        p.idGen.Generate(),
			ActionID:  action.ActionID,
			ChoiceID:  action.ChoiceID,
			Duration:  action.Duration,
			StartTime: start,
		}
		if action.Boost != nil {
			boost := *action.Boost
			qa.Boost = &boost
		}
		if action.CompanionID != 0 {
			qa.Companion = &entities.CompanionBinding{
				CompanionID: action.CompanionID,
				BoundAt:     input.Now,
			}
		}

		char.Queue = append(char.Queue, qa)
		queued = append(queued, qa)
		start = satAdd(start, action.Duration)
	}

	return &EnqueueOutput{
		Character: char,
		Queued:    queued,
	}, nil
}

func (p *Processor) validateAction(char *entities.Character, action *ActionInput, input *EnqueueInput) error {
	if action.Duration == 0 {
		return errors.InvalidArgument("duration must be positive")
	}

	rates, err := p.resolveRates(action.ActionID, action.ChoiceID)
	if err != nil {
		if errors.IsNotFound(err) {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown action")
		}
		return err
	}

	if level := levels.LevelForXP(char.SkillXP(rates.Skill)); level < rates.MinLevel {
		return errors.InvalidArgumentf("%s level %d is below required level %d", rates.Skill, level, rates.MinLevel)
	}

	if action.Boost != nil && action.Boost.Duration == 0 {
		return errors.InvalidArgument("boost duration must be positive")
	}

	if action.CompanionID != 0 {
		comp, ok := input.Companions[action.CompanionID]
		if !ok {
			return errors.InvalidArgumentf("companion %d not found", action.CompanionID)
		}
		if err := companion.CheckBindable(char.OwnerID, comp, input.Now); err != nil {
			return err
		}
	}
	return nil
}
