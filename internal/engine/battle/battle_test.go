package battle_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/engine/battle"
	"github.com/KirkDiggler/rpg-progression/internal/engine/levels"
	"github.com/KirkDiggler/rpg-progression/internal/engine/roller"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

type BattleTestSuite struct {
	suite.Suite
}

func roster(firstID uint64, lvls ...uint32) []battle.Combatant {
	out := make([]battle.Combatant, 0, len(lvls))
	for i, l := range lvls {
		out = append(out, battle.Combatant{ID: firstID + uint64(i), Level: l})
	}
	return out
}

func (s *BattleTestSuite) resolve(a, b []battle.Combatant, wordA, wordB uint64) bool {
	res, err := battle.Resolve(&battle.Input{
		RosterA: a,
		RosterB: b,
		WordA:   wordA,
		WordB:   wordB,
		Skill:   entities.SkillMelee,
	})
	s.Require().NoError(err)
	return res.DidAWin
}

func (s *BattleTestSuite) TestSingleCombatant_EqualLevels() {
	lvl := levels.LevelForXP(1000)
	a := roster(1, lvl)
	b := roster(101, lvl)

	// one coin each: heads against heads is a draw, which A does not win
	s.False(s.resolve(a, b, 1, 1))
	s.True(s.resolve(a, b, 1, 0))
	s.False(s.resolve(a, b, 0, 1))
}

func (s *BattleTestSuite) TestMissingCombatants() {
	s.Run("real against empty", func() {
		for word := uint64(0); word < 5; word++ {
			s.True(s.resolve(roster(1, 10), nil, word, word+1))
			s.True(s.resolve(roster(1, 10), []battle.Combatant{{}}, word, 3))
		}
	})

	s.Run("missing against real", func() {
		s.False(s.resolve([]battle.Combatant{{}}, roster(101, 1), 7, 0))
	})

	s.Run("more real combatants wins", func() {
		res, err := battle.Resolve(&battle.Input{
			RosterA: []battle.Combatant{{ID: 1, Level: 1}, {}, {ID: 3, Level: 1}},
			RosterB: roster(101, 99),
			Skill:   entities.SkillMelee,
		})
		s.Require().NoError(err)
		s.True(res.DidAWin)
		s.True(res.Walkover)
		s.Empty(res.Matchups)
	})

	s.Run("both empty defaults to A losing", func() {
		s.False(s.resolve(nil, nil, 1, 0))
		s.False(s.resolve([]battle.Combatant{{}}, []battle.Combatant{{}, {}}, 5, 5))
	})
}

func (s *BattleTestSuite) TestMultipleCombatants() {
	s.True(s.resolve(roster(1, 20, 20), roster(101, 20, 20), 3, 1))
	s.True(s.resolve(roster(1, 20, 40), roster(101, 20, 20), 3, 1))
	s.False(s.resolve(roster(1, 20, 20), roster(101, 20, 40), 3, 3))
}

func (s *BattleTestSuite) TestHigherLevelDominates() {
	var winsA, winsB int
	for word := uint64(0); word < 50; word++ {
		if s.resolve(roster(1, 75), roster(101, 60), word, 1) {
			winsA++
		} else {
			winsB++
		}
	}
	s.Equal(46, winsA)
	s.Greater(winsA, winsB+10)
	s.Positive(winsB)
}

func (s *BattleTestSuite) TestHigherAverageWinsMajority() {
	var winsA int
	for i := uint64(0); i < 200; i++ {
		wordA := roller.Digest(i, 'a', 0)
		wordB := roller.Digest(i, 'b', 0)
		if s.resolve(roster(1, 70, 70, 70), roster(101, 50, 50, 50), wordA, wordB) {
			winsA++
		}
	}
	s.Equal(173, winsA)
	s.Less(winsA, 200)
}

func (s *BattleTestSuite) TestShuffleChangesOutcome() {
	a := roster(1, 99, 5, 3, 3)
	b := roster(101, 6, 6, 4, 2)

	base := s.resolve(a, b, 1, 1)
	s.False(base)
	s.True(s.resolve(a, b, 2, 1))

	var flips int
	for word := uint64(1); word < 100; word++ {
		if s.resolve(a, b, word, 1) != base {
			flips++
		}
	}
	s.Positive(flips)
}

func (s *BattleTestSuite) TestDeterministic() {
	a := roster(1, 10, 45, 88, 3)
	b := roster(101, 50, 50, 50, 50)
	input := &battle.Input{RosterA: a, RosterB: b, WordA: 987654321, WordB: 123456789, Skill: entities.SkillRanged}

	first, err := battle.Resolve(input)
	s.Require().NoError(err)
	second, err := battle.Resolve(input)
	s.Require().NoError(err)
	s.Equal(first, second)
	s.Len(first.Matchups, 4)
	s.Equal(first.WinsA > first.WinsB, first.DidAWin)

	// rosters are not reordered in place
	s.Equal(roster(1, 10, 45, 88, 3), a)
}

func (s *BattleTestSuite) TestMatchupDetails() {
	res, err := battle.Resolve(&battle.Input{
		RosterA: roster(1, 40),
		RosterB: roster(101, 19),
		WordA:   0b111,
		WordB:   0b1,
		Skill:   entities.SkillMelee,
	})
	s.Require().NoError(err)
	s.Require().Len(res.Matchups, 1)

	m := res.Matchups[0]
	s.Equal(uint32(3), m.RollsA)
	s.Equal(uint32(1), m.RollsB)
	s.Equal(uint32(3), m.SuccessesA)
	s.Equal(uint32(1), m.SuccessesB)
	s.Equal(battle.SideA, m.Winner)
	s.Equal("1", m.A.GetID())
	s.Equal("combatant", m.A.GetType())
	s.True(res.DidAWin)
}

func (s *BattleTestSuite) TestTierOverride() {
	tiers := []entities.RollTier{{MinLevel: 0, Rolls: 1}, {MinLevel: 50, Rolls: 2}}
	s.Equal(uint32(1), battle.RollsForLevel(tiers, 49))
	s.Equal(uint32(2), battle.RollsForLevel(tiers, 100))

	res, err := battle.Resolve(&battle.Input{
		RosterA: roster(1, 45),
		RosterB: roster(101, 45),
		WordA:   0b10,
		WordB:   0b01,
		Skill:   entities.SkillThieving,
		Tiers:   tiers,
	})
	s.Require().NoError(err)
	// one coin each: A flips tails, B flips heads
	s.False(res.DidAWin)
	s.Equal(battle.SideB, res.Matchups[0].Winner)
}

func (s *BattleTestSuite) TestDefaultTiers() {
	tiers := battle.DefaultTiers()
	testCases := []struct {
		level uint32
		rolls uint32
	}{
		{1, 1}, {19, 1}, {20, 2}, {39, 2}, {40, 3}, {60, 4}, {80, 5}, {99, 5}, {100, 6},
	}
	for _, tc := range testCases {
		s.Equal(tc.rolls, battle.RollsForLevel(tiers, tc.level), "level %d", tc.level)
	}
}

func (s *BattleTestSuite) TestSameCharacterIDs() {
	same := func(n int, level uint32) []battle.Combatant {
		out := make([]battle.Combatant, n)
		for i := range out {
			out[i] = battle.Combatant{ID: 5, Level: level}
		}
		return out
	}

	s.True(s.resolve(same(1, 5), same(1, 5), 1, 0))
	s.False(s.resolve(same(1, 5), same(1, 5), 1, 1))
	s.True(s.resolve(same(2, 20), same(2, 20), 3, 1))
	s.True(s.resolve(same(2, 20), roster(101, 20, 20), 3, 1))
}

func (s *BattleTestSuite) TestValidation() {
	testCases := []struct {
		name  string
		input *battle.Input
	}{
		{name: "nil input", input: nil},
		{name: "unknown skill", input: &battle.Input{Skill: "juggling"}},
		{name: "oversize roster", input: &battle.Input{Skill: entities.SkillMelee, RosterA: make([]battle.Combatant, battle.MaxRosterSize+1)}},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := battle.Resolve(tc.input)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func TestBattleTestSuite(t *testing.T) {
	suite.Run(t, new(BattleTestSuite))
}
