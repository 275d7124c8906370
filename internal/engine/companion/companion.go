// Package companion decides when a companion bound to a queued action contributes its bonus.
//
// A binding only records when it was created. Ownership is always read from the companion
// record at evaluation time, and any transfer after the binding became active voids it from
// that transfer onwards, even if the companion later returns to the same owner.
package companion

import (
	"github.com/KirkDiggler/rpg-progression/internal/engine/overlap"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// MaxTransferHistory is how many transfer timestamps a companion keeps
const MaxTransferHistory = 32

// Bind attaches comp to the queued action at slot. The companion must belong to the
// character's owner and must not have been reassigned after now.
func Bind(character *entities.Character, slot int, comp *entities.Companion, now uint64) (*entities.CompanionBinding, error) {
	if character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if comp == nil {
		return nil, errors.InvalidArgument("companion is required")
	}
	if slot < 0 || slot >= len(character.Queue) {
		return nil, errors.InvalidArgumentf("queue slot %d out of range", slot)
	}
	if err := CheckBindable(character.OwnerID, comp, now); err != nil {
		return nil, err
	}

	binding := &entities.CompanionBinding{CompanionID: comp.ID, BoundAt: now}
	character.Queue[slot].Companion = binding
	return binding, nil
}

// CheckBindable validates that ownerID may bind comp at now
func CheckBindable(ownerID string, comp *entities.Companion, now uint64) error {
	if comp.OwnerID != ownerID {
		return errors.InvalidArgumentf("companion %d is not owned by %s", comp.ID, ownerID).
			WithMeta("companion_id", comp.ID)
	}
	if comp.LastAssignment > now {
		return errors.InvalidArgumentf("companion %d was reassigned after %d", comp.ID, now).
			WithMeta("companion_id", comp.ID)
	}
	return nil
}

// EligibleWindow returns the time range in which the binding contributes. The window opens at
// the later of the binding time and the action start, and closes at the first transfer after
// that point. It is empty when the companion changed hands before the anchor and is no
// longer owned by ownerID.
func EligibleWindow(binding *entities.CompanionBinding, actionStart uint64, comp *entities.Companion, ownerID string) overlap.Interval {
	if binding == nil || comp == nil || comp.ID != binding.CompanionID {
		return overlap.Interval{}
	}
	anchor := max(binding.BoundAt, actionStart)
	if comp.LastAssignment <= anchor {
		if comp.OwnerID != ownerID {
			return overlap.Interval{Start: anchor}
		}
		return overlap.Interval{Start: anchor, Duration: ^uint64(0) - anchor}
	}

	// an older transfer may have been dropped, so anything after anchor is unknown
	if comp.HistoryTruncated && (len(comp.Transfers) == 0 || comp.Transfers[0] > anchor) {
		return overlap.Interval{Start: anchor}
	}
	for _, at := range comp.Transfers {
		if at > anchor {
			return overlap.Interval{Start: anchor, Duration: at - anchor}
		}
	}
	// LastAssignment is after anchor but no transfer is recorded: the companion was minted later
	return overlap.Interval{Start: anchor}
}

// IsEligible reports whether the binding contributes at evaluation
func IsEligible(binding *entities.CompanionBinding, actionStart uint64, comp *entities.Companion, ownerID string, evaluation uint64) bool {
	w := EligibleWindow(binding, actionStart, comp, ownerID)
	return evaluation >= w.Start && evaluation < w.End()
}

// Transfer moves comp to newOwner at the given time and records the transfer.
func Transfer(comp *entities.Companion, newOwner string, at uint64) error {
	if comp == nil {
		return errors.InvalidArgument("companion is required")
	}
	if newOwner == "" {
		return errors.InvalidArgument("new owner is required")
	}
	if newOwner == comp.OwnerID {
		return errors.InvalidArgumentf("companion %d already owned by %s", comp.ID, newOwner)
	}
	if at < comp.LastAssignment {
		return errors.FailedPreconditionf("transfer at %d precedes last assignment %d", at, comp.LastAssignment)
	}

	comp.OwnerID = newOwner
	comp.LastAssignment = at
	comp.Transfers = append(comp.Transfers, at)
	if len(comp.Transfers) > MaxTransferHistory {
		comp.Transfers = append([]uint64(nil), comp.Transfers[len(comp.Transfers)-MaxTransferHistory:]...)
		comp.HistoryTruncated = true
	}
	return nil
}
