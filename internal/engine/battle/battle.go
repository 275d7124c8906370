// Package battle resolves clan battles between two rosters.
//
// Real combatants of each side are shuffled with that side's random word and paired by index.
// Every combatant flips a number of coins that grows with its level; the combatant with more
// heads wins the matchup, equal heads go to the higher level, and anything else is a draw.
// The side winning more matchups wins the battle.
package battle

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-progression/internal/engine/roller"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

// MaxRosterSize is the largest roster accepted, missing slots included
const MaxRosterSize = 32

// Side identifies a side of the battle
type Side int

// Sides
const (
	SideNone Side = iota
	SideA
	SideB
)

// String returns the side name
func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	default:
		return "none"
	}
}

// Combatant is one roster slot. An ID of zero marks a missing combatant.
type Combatant struct {
	ID    uint64
	Level uint32
}

var _ core.Entity = (*Combatant)(nil)

// GetID returns the character id
func (c *Combatant) GetID() string {
	return strconv.FormatUint(c.ID, 10)
}

// GetType returns the entity type
func (c *Combatant) GetType() string {
	return "combatant"
}

// Missing reports whether the slot is empty
func (c *Combatant) Missing() bool {
	return c.ID == 0
}

// Input contains both rosters and their random words
type Input struct {
	RosterA []Combatant
	RosterB []Combatant
	WordA   uint64
	WordB   uint64
	Skill   entities.Skill
	// Tiers overrides the default roll tiers when set
	Tiers []entities.RollTier
}

// Matchup records one paired contest
type Matchup struct {
	A          Combatant
	B          Combatant
	RollsA     uint32
	RollsB     uint32
	SuccessesA uint32
	SuccessesB uint32
	Winner     Side
}

// Result is the battle outcome
type Result struct {
	DidAWin bool
	WinsA   int
	WinsB   int
	// Walkover is set when the sides had different numbers of real combatants
	Walkover bool
	Matchups []Matchup
}

var defaultTiers = []entities.RollTier{
	{MinLevel: 0, Rolls: 1},
	{MinLevel: 20, Rolls: 2},
	{MinLevel: 40, Rolls: 3},
	{MinLevel: 60, Rolls: 4},
	{MinLevel: 80, Rolls: 5},
	{MinLevel: 100, Rolls: 6},
}

// DefaultTiers returns a copy of the default roll tier table
func DefaultTiers() []entities.RollTier {
	return append([]entities.RollTier(nil), defaultTiers...)
}

// RollsForLevel returns the roll count of the highest tier at or below level
func RollsForLevel(tiers []entities.RollTier, level uint32) uint32 {
	var rolls uint32
	for _, t := range tiers {
		if level < t.MinLevel {
			break
		}
		rolls = t.Rolls
	}
	return rolls
}

// Resolve runs the battle. It is a pure function of its input.
func Resolve(input *Input) (*Result, error) {
	if err := validate(input); err != nil {
		return nil, err
	}

	sideA := present(input.RosterA)
	sideB := present(input.RosterB)

	if len(sideA) != len(sideB) {
		return &Result{DidAWin: len(sideA) > len(sideB), Walkover: true}, nil
	}
	if len(sideA) == 0 {
		// nobody showed up on either side: A does not win
		return &Result{}, nil
	}

	if err := roller.Shuffle(roller.NewSeeded(input.WordA), sideA); err != nil {
		return nil, err
	}
	if err := roller.Shuffle(roller.NewSeeded(input.WordB), sideB); err != nil {
		return nil, err
	}

	tiers := input.Tiers
	if len(tiers) == 0 {
		tiers = defaultTiers
	}

	coinsA := roller.NewCoins(input.WordA)
	coinsB := roller.NewCoins(input.WordB)
	result := &Result{Matchups: make([]Matchup, 0, len(sideA))}

	for i := range sideA {
		m := Matchup{
			A:      sideA[i],
			B:      sideB[i],
			RollsA: RollsForLevel(tiers, sideA[i].Level),
			RollsB: RollsForLevel(tiers, sideB[i].Level),
		}
		m.SuccessesA = coinsA.Flip(m.RollsA)
		m.SuccessesB = coinsB.Flip(m.RollsB)
		m.Winner = matchupWinner(&m)

		switch m.Winner {
		case SideA:
			result.WinsA++
		case SideB:
			result.WinsB++
		}
		result.Matchups = append(result.Matchups, m)
	}

	result.DidAWin = result.WinsA > result.WinsB
	return result, nil
}

func matchupWinner(m *Matchup) Side {
	switch {
	case m.SuccessesA > m.SuccessesB:
		return SideA
	case m.SuccessesB > m.SuccessesA:
		return SideB
	case m.A.Level > m.B.Level:
		return SideA
	case m.B.Level > m.A.Level:
		return SideB
	default:
		return SideNone
	}
}

func present(roster []Combatant) []Combatant {
	out := make([]Combatant, 0, len(roster))
	for _, c := range roster {
		if !c.Missing() {
			out = append(out, c)
		}
	}
	return out
}

func validate(input *Input) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if !input.Skill.Valid() {
		return errors.InvalidArgumentf("unknown skill %q", input.Skill)
	}
	if len(input.RosterA) > MaxRosterSize || len(input.RosterB) > MaxRosterSize {
		return errors.InvalidArgumentf("rosters are limited to %d slots", MaxRosterSize)
	}
	return nil
}
