package queue

import (
	"github.com/KirkDiggler/rpg-progression/internal/engine/companion"
	"github.com/KirkDiggler/rpg-progression/internal/engine/overlap"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// Advance processes the queue head first with the elapsed time budget. Experience and items
// are derived from cumulative counters on each queued action, so processing 62s and then 10s
// gives the same totals as processing 72s at once. Time beyond the end of the queue is
// discarded.
func (p *Processor) Advance(input *AdvanceInput) (*AdvanceOutput, error) {
	if input == nil || input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	char := input.Character.Clone()
	out := &AdvanceOutput{
		Character: char,
		XP:        make(map[entities.Skill]uint64),
		Consumed:  make(map[entities.ItemID]uint64),
		Produced:  make(map[entities.ItemID]uint64),
	}

	budget := input.Elapsed
	remaining := char.Queue[:0:0]
	for _, qa := range char.Queue {
		if budget == 0 {
			remaining = append(remaining, qa)
			continue
		}

		result, err := p.advanceAction(char, qa, budget, input.Companions, out)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to advance queued action %s", qa.ID)
		}
		budget -= result.Advanced

		out.Actions = append(out.Actions, *result)
		if result.Completed {
			out.Completed = append(out.Completed, qa.ID)
			continue
		}
		remaining = append(remaining, qa)
	}

	char.Queue = remaining
	out.RemainingQueueLength = len(remaining)
	out.Discarded = budget
	return out, nil
}

func (p *Processor) advanceAction(
	char *entities.Character,
	qa *entities.QueuedAction,
	budget uint64,
	companions map[uint64]*entities.Companion,
	out *AdvanceOutput,
) (*ActionResult, error) {
	rates, err := p.resolveRates(qa.ActionID, qa.ChoiceID)
	if err != nil {
		return nil, err
	}

	advanced := min(budget, qa.Remaining())
	sliceStart := satAdd(qa.StartTime, qa.Elapsed)
	prog := &qa.Progress

	productive := min(advanced, productiveRoom(char, qa, rates))
	result := &ActionResult{
		QueueID:    qa.ID,
		ActionID:   qa.ActionID,
		Skill:      rates.Skill,
		Advanced:   advanced,
		Productive: productive,
		Starved:    productive < advanced,
	}

	window := overlap.Interval{Start: sliceStart, Duration: productive}
	prog.Productive += productive
	if qa.Boost != nil {
		prog.Boosted += overlap.BoostedTime(window.Start, window.Duration, qa.Boost.Start, qa.Boost.Duration)
	}

	var fixed, percent uint32
	if qa.Companion != nil {
		comp := companions[qa.Companion.CompanionID]
		eligible := companion.EligibleWindow(qa.Companion, qa.StartTime, comp, char.OwnerID)
		prog.Assisted += overlap.Intersect(window, eligible).Duration
		if comp != nil {
			fixed, percent = comp.BonusFor(rates.Skill)
		}
		slice := overlap.Interval{Start: sliceStart, Duration: advanced}
		result.CompanionIneligible = overlap.Intersect(slice, eligible).Duration < advanced
	}

	own, bonus, err := earnedXP(rates, qa, fixed, percent)
	if err != nil {
		return nil, err
	}
	// own experience only grows with the counters; the bonus may drop when the companion
	// record is gone or no longer matches the skill, and awarded bonus is never taken back
	var delta uint64
	if awardedOwn := prog.AwardedXP - prog.CompanionXP; own > awardedOwn {
		delta = own - awardedOwn
	}
	if bonus > prog.CompanionXP {
		if delta, err = add(delta, bonus-prog.CompanionXP); err != nil {
			return nil, err
		}
		prog.CompanionXP = bonus
	}
	if prog.AwardedXP, err = add(prog.AwardedXP, delta); err != nil {
		return nil, err
	}
	if delta > 0 {
		if char.XP == nil {
			char.XP = make(map[entities.Skill]uint64)
		}
		if char.XP[rates.Skill], err = add(char.XP[rates.Skill], delta); err != nil {
			return nil, errors.Wrapf(err, "experience overflow in %s", rates.Skill)
		}
		if out.XP[rates.Skill], err = add(out.XP[rates.Skill], delta); err != nil {
			return nil, err
		}
	}
	result.XP = delta

	if err := applyItems(char, qa, rates, out); err != nil {
		return nil, err
	}

	qa.Elapsed += advanced
	result.Completed = qa.Complete()
	return result, nil
}

// productiveRoom is how much more productive time the inventory can sustain for qa
func productiveRoom(char *entities.Character, qa *entities.QueuedAction, rates entities.Rates) uint64 {
	room := maxUint64
	for _, in := range rates.Inputs {
		budget := satAdd(qa.Progress.Consumed[in.ItemID], char.Inventory[in.ItemID])
		limit := productiveLimit(budget, in.PerHour, rates.UnitSeconds)
		if limit <= qa.Progress.Productive {
			return 0
		}
		room = min(room, limit-qa.Progress.Productive)
	}
	return room
}

// earnedXP derives the experience earned so far by qa from its counters. own covers the base
// rate and the boost; bonus is the companion's share of the assisted time.
func earnedXP(rates entities.Rates, qa *entities.QueuedAction, fixed, percent uint32) (own, bonus uint64, err error) {
	prog := qa.Progress
	unit := rates.UnitSeconds

	own, err = mulDiv(credit(prog.Productive, unit), rates.XPPerHour, secondsPerHour)
	if err != nil {
		return 0, 0, err
	}

	if qa.Boost != nil && prog.Boosted > 0 {
		boostRate, err := mul(rates.XPPerHour, uint64(qa.Boost.Magnitude))
		if err != nil {
			return 0, 0, err
		}
		boost, err := mulDiv(credit(prog.Boosted, unit), boostRate, secondsPerHour*100)
		if err != nil {
			return 0, 0, err
		}
		if own, err = add(own, boost); err != nil {
			return 0, 0, err
		}
	}

	if prog.Assisted > 0 && (fixed > 0 || percent > 0) {
		pctRate, err := mulDiv(rates.XPPerHour, uint64(percent), 100)
		if err != nil {
			return 0, 0, err
		}
		companionRate, err := add(pctRate, uint64(fixed))
		if err != nil {
			return 0, 0, err
		}
		if bonus, err = mulDiv(credit(prog.Assisted, unit), companionRate, secondsPerHour); err != nil {
			return 0, 0, err
		}
	}
	return own, bonus, nil
}

func applyItems(char *entities.Character, qa *entities.QueuedAction, rates entities.Rates, out *AdvanceOutput) error {
	prog := &qa.Progress
	credited := credit(prog.Productive, rates.UnitSeconds)

	for _, in := range rates.Inputs {
		want, err := mulDiv(credited, in.PerHour, secondsPerHour)
		if err != nil {
			return err
		}
		delta := want - prog.Consumed[in.ItemID]
		if delta == 0 {
			continue
		}
		if char.Inventory[in.ItemID] < delta {
			return errors.Internalf("input %d short by %d", in.ItemID, delta-char.Inventory[in.ItemID])
		}
		char.Inventory[in.ItemID] -= delta
		if prog.Consumed == nil {
			prog.Consumed = make(map[entities.ItemID]uint64)
		}
		prog.Consumed[in.ItemID] = want
		out.Consumed[in.ItemID] += delta
	}

	for _, o := range rates.Outputs {
		want, err := mulDiv(credited, o.PerHour, secondsPerHour)
		if err != nil {
			return err
		}
		delta := want - prog.Produced[o.ItemID]
		if delta == 0 {
			continue
		}
		if char.Inventory == nil {
			char.Inventory = make(map[entities.ItemID]uint64)
		}
		if char.Inventory[o.ItemID], err = add(char.Inventory[o.ItemID], delta); err != nil {
			return errors.Wrapf(err, "inventory overflow for item %d", o.ItemID)
		}
		if prog.Produced == nil {
			prog.Produced = make(map[entities.ItemID]uint64)
		}
		prog.Produced[o.ItemID] = want
		if out.Produced[o.ItemID], err = add(out.Produced[o.ItemID], delta); err != nil {
			return err
		}
	}
	return nil
}
