package queue_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/catalog"
	"github.com/KirkDiggler/rpg-progression/internal/engine/companion"
	"github.com/KirkDiggler/rpg-progression/internal/engine/queue"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
)

const (
	actionFight entities.ActionID = 1
	actionChop  entities.ActionID = 2
	actionSmelt entities.ActionID = 3
	actionCook  entities.ActionID = 4
	actionFish  entities.ActionID = 5

	itemBones  entities.ItemID = 301
	itemLog    entities.ItemID = 101
	itemOre    entities.ItemID = 401
	itemBronze entities.ItemID = 402

	now uint64 = 1000
)

type ProcessorTestSuite struct {
	suite.Suite
	processor *queue.Processor
	character *entities.Character
	pet       *entities.Companion
}

func (s *ProcessorTestSuite) SetupTest() {
	cat, err := catalog.New(&catalog.File{
		Actions: []entities.ActionConfig{
			{
				ID: actionFight, Name: "fight", Skill: entities.SkillMelee, XPPerHour: 1800, UnitSeconds: 72,
				Outputs: []entities.ItemAmount{{ItemID: itemBones, PerHour: 50}},
			},
			{
				ID: actionChop, Name: "chop", Skill: entities.SkillWoodcutting, XPPerHour: 3600,
				Outputs: []entities.ItemAmount{{ItemID: itemLog, PerHour: 120}},
			},
			{
				ID: actionSmelt, Name: "smelt", Skill: entities.SkillSmithing, XPPerHour: 3600,
				Inputs:  []entities.ItemAmount{{ItemID: itemOre, PerHour: 3600}},
				Outputs: []entities.ItemAmount{{ItemID: itemBronze, PerHour: 1800}},
			},
			{
				ID: actionCook, Name: "cook", Skill: entities.SkillCooking,
				Choices: []entities.ChoiceConfig{
					{ID: 1, Name: "shrimp", MinLevel: 1, XPPerHour: 2400},
					{ID: 2, Name: "trout", MinLevel: 20, XPPerHour: 4000},
				},
			},
			{ID: actionFish, Name: "fish", Skill: entities.SkillFishing, MinLevel: 10, XPPerHour: 1800},
		},
	})
	s.Require().NoError(err)

	s.processor, err = queue.NewProcessor(&queue.Config{
		Catalog:     cat,
		IDGenerator: idgen.NewSequential("qa"),
	})
	s.Require().NoError(err)

	s.character = &entities.Character{
		ID:        42,
		OwnerID:   "alice",
		XP:        map[entities.Skill]uint64{},
		Inventory: map[entities.ItemID]uint64{},
	}
	s.pet = &entities.Companion{
		ID:             7,
		OwnerID:        "alice",
		LastAssignment: 500,
		Transfers:      []uint64{500},
		Enhancements: []entities.SkillEnhancement{
			{Skill: entities.SkillWoodcutting, FixedMax: 360, Fixed: 360, PercentMax: 10, Percent: 10},
		},
	}
}

func (s *ProcessorTestSuite) companions() map[uint64]*entities.Companion {
	return map[uint64]*entities.Companion{s.pet.ID: s.pet}
}

func (s *ProcessorTestSuite) enqueue(actions ...queue.ActionInput) {
	out, err := s.processor.Enqueue(&queue.EnqueueInput{
		Character:  s.character,
		Actions:    actions,
		Now:        now,
		Companions: s.companions(),
	})
	s.Require().NoError(err)
	s.character = out.Character
}

func (s *ProcessorTestSuite) advance(elapsed uint64) *queue.AdvanceOutput {
	out, err := s.processor.Advance(&queue.AdvanceInput{
		Character:  s.character,
		Elapsed:    elapsed,
		Companions: s.companions(),
	})
	s.Require().NoError(err)
	s.character = out.Character
	return out
}

func (s *ProcessorTestSuite) TestNewProcessor_Validation() {
	_, err := queue.NewProcessor(&queue.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = queue.NewProcessor(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ProcessorTestSuite) TestAdvance_SplitMatchesSingle() {
	s.enqueue(queue.ActionInput{ActionID: actionFight, Duration: 72})
	fresh := s.character.Clone()

	first := s.advance(62)
	s.Empty(first.XP)
	s.Equal(1, first.RemainingQueueLength)
	s.Equal(uint64(62), s.character.Queue[0].Elapsed)

	second := s.advance(10)
	s.Equal(uint64(36), second.XP[entities.SkillMelee])
	s.Equal(uint64(1), second.Produced[itemBones])
	s.Equal([]string{"qa_1"}, second.Completed)
	s.Zero(second.RemainingQueueLength)

	single, err := s.processor.Advance(&queue.AdvanceInput{Character: fresh, Elapsed: 72})
	s.Require().NoError(err)
	s.Equal(uint64(36), single.XP[entities.SkillMelee])
	s.Equal(s.character.XP, single.Character.XP)
	s.Equal(s.character.Inventory, single.Character.Inventory)
}

func (s *ProcessorTestSuite) TestAdvance_SurplusDiscarded() {
	s.enqueue(queue.ActionInput{ActionID: actionFight, Duration: 72})

	out := s.advance(100)
	s.Equal(uint64(36), out.XP[entities.SkillMelee])
	s.Equal(uint64(28), out.Discarded)
	s.Empty(s.character.Queue)

	again := s.advance(50)
	s.Empty(again.XP)
	s.Equal(uint64(50), again.Discarded)
	s.Equal(uint64(36), s.character.XP[entities.SkillMelee])
}

func (s *ProcessorTestSuite) TestAdvance_HeadFirst() {
	s.enqueue(
		queue.ActionInput{ActionID: actionChop, Duration: 1800},
		queue.ActionInput{ActionID: actionChop, Duration: 1800},
	)

	out := s.advance(2700)
	s.Require().Len(out.Actions, 2)
	s.True(out.Actions[0].Completed)
	s.Equal(uint64(1800), out.Actions[0].XP)
	s.False(out.Actions[1].Completed)
	s.Equal(uint64(900), out.Actions[1].XP)
	s.Equal(uint64(2700), out.XP[entities.SkillWoodcutting])
	s.Equal(uint64(90), out.Produced[itemLog])
	s.Equal(1, out.RemainingQueueLength)
	s.Equal(uint64(900), s.character.Queue[0].Remaining())
}

func (s *ProcessorTestSuite) TestAdvance_Boost() {
	s.enqueue(queue.ActionInput{
		ActionID: actionChop,
		Duration: 3600,
		Boost:    &entities.Boost{Start: now + 1800, Duration: 3600, Magnitude: 50},
	})

	out := s.advance(3600)
	s.Equal(uint64(3600+900), out.XP[entities.SkillWoodcutting])
	s.Equal(uint64(3600), out.Actions[0].Productive)
}

func (s *ProcessorTestSuite) TestAdvance_CompanionBonus() {
	s.enqueue(queue.ActionInput{ActionID: actionChop, Duration: 3600, CompanionID: s.pet.ID})

	out := s.advance(3600)
	// base 3600 + (3600 * 10% + 360) per hour
	s.Equal(uint64(4320), out.XP[entities.SkillWoodcutting])
	s.False(out.Actions[0].CompanionIneligible)
}

func (s *ProcessorTestSuite) TestAdvance_CompanionRoundTripVoidsBonus() {
	s.enqueue(queue.ActionInput{ActionID: actionChop, Duration: 3600, CompanionID: s.pet.ID})

	first := s.advance(1800)
	s.Equal(uint64(2160), first.XP[entities.SkillWoodcutting])

	s.Require().NoError(companion.Transfer(s.pet, "bob", now+1800))
	s.Require().NoError(companion.Transfer(s.pet, "alice", now+1810))

	second := s.advance(1800)
	s.Equal(uint64(1800), second.XP[entities.SkillWoodcutting])
	s.True(second.Actions[0].CompanionIneligible)
	s.Equal(uint64(3960), s.character.XP[entities.SkillWoodcutting])
}

func (s *ProcessorTestSuite) TestAdvance_TransferMidSlice() {
	s.enqueue(queue.ActionInput{ActionID: actionChop, Duration: 3600, CompanionID: s.pet.ID})

	s.Require().NoError(companion.Transfer(s.pet, "bob", now+500))

	out := s.advance(3600)
	// only the first 500 seconds were assisted
	s.Equal(uint64(3600+100), out.XP[entities.SkillWoodcutting])
	s.True(out.Actions[0].CompanionIneligible)
}

func (s *ProcessorTestSuite) TestAdvance_LaterActionKeepsBonusAfterRoundTrip() {
	s.enqueue(
		queue.ActionInput{ActionID: actionChop, Duration: 3600},
		queue.ActionInput{ActionID: actionChop, Duration: 3600, CompanionID: s.pet.ID},
	)

	s.Require().NoError(companion.Transfer(s.pet, "bob", now+1000))
	s.Require().NoError(companion.Transfer(s.pet, "alice", now+1100))

	out := s.advance(7200)
	s.Require().Len(out.Actions, 2)
	s.Equal(uint64(3600), out.Actions[0].XP)
	s.Equal(uint64(4320), out.Actions[1].XP)
	s.False(out.Actions[1].CompanionIneligible)
}

func (s *ProcessorTestSuite) TestAdvance_MissingCompanionKeepsBaseXP() {
	s.enqueue(queue.ActionInput{ActionID: actionChop, Duration: 3600, CompanionID: s.pet.ID})

	first := s.advance(1800)
	s.Equal(uint64(2160), first.XP[entities.SkillWoodcutting])

	out, err := s.processor.Advance(&queue.AdvanceInput{Character: s.character, Elapsed: 1800})
	s.Require().NoError(err)
	s.Equal(uint64(1800), out.XP[entities.SkillWoodcutting])
	s.True(out.Actions[0].CompanionIneligible)
	s.Equal([]string{"qa_1"}, out.Completed)
	s.Equal(uint64(3960), out.Character.XP[entities.SkillWoodcutting])
}

func (s *ProcessorTestSuite) TestAdvance_CompanionRecordReturns() {
	s.enqueue(queue.ActionInput{ActionID: actionChop, Duration: 3600, CompanionID: s.pet.ID})
	s.advance(1800)

	gap, err := s.processor.Advance(&queue.AdvanceInput{Character: s.character, Elapsed: 900})
	s.Require().NoError(err)
	s.Equal(uint64(900), gap.XP[entities.SkillWoodcutting])
	s.character = gap.Character

	// 900s of base plus 900s of bonus at 720 per hour
	back := s.advance(900)
	s.Equal(uint64(1080), back.XP[entities.SkillWoodcutting])
	s.Equal(uint64(2160+900+1080), s.character.XP[entities.SkillWoodcutting])
}

func (s *ProcessorTestSuite) TestAdvance_Starved() {
	s.character.Inventory[itemOre] = 100
	s.enqueue(queue.ActionInput{ActionID: actionSmelt, Duration: 3600})

	out := s.advance(1800)
	s.Require().Len(out.Actions, 1)
	s.True(out.Actions[0].Starved)
	s.Equal(uint64(100), out.Actions[0].Productive)
	s.Equal(uint64(100), out.XP[entities.SkillSmithing])
	s.Equal(uint64(100), out.Consumed[itemOre])
	s.Equal(uint64(50), out.Produced[itemBronze])
	s.Zero(s.character.Inventory[itemOre])
	s.Equal(1, out.RemainingQueueLength)
	s.Equal(uint64(1800), s.character.Queue[0].Elapsed)

	s.character.Inventory[itemOre] = 100
	resumed := s.advance(1800)
	s.Equal(uint64(100), resumed.XP[entities.SkillSmithing])
	s.Equal(uint64(100), resumed.Consumed[itemOre])
	s.Equal([]string{"qa_1"}, resumed.Completed)
}

func (s *ProcessorTestSuite) TestAdvance_OverflowRejectsWholeCall() {
	s.character.XP[entities.SkillWoodcutting] = ^uint64(0) - 100
	s.enqueue(queue.ActionInput{ActionID: actionChop, Duration: 3600})
	before := s.character.Clone()

	_, err := s.processor.Advance(&queue.AdvanceInput{Character: s.character, Elapsed: 3600})
	s.Require().Error(err)
	s.True(errors.IsOutOfRange(err))
	s.Equal(before, s.character)
}

func (s *ProcessorTestSuite) TestAdvance_UnknownAction() {
	s.character.Queue = []*entities.QueuedAction{{ID: "qa_x", ActionID: 99, Duration: 10}}

	_, err := s.processor.Advance(&queue.AdvanceInput{Character: s.character, Elapsed: 10})
	s.True(errors.IsNotFound(err))
}

func (s *ProcessorTestSuite) TestEnqueue_Schedules() {
	s.enqueue(
		queue.ActionInput{ActionID: actionChop, Duration: 600},
		queue.ActionInput{ActionID: actionCook, ChoiceID: 1, Duration: 300},
	)
	s.Require().Len(s.character.Queue, 2)
	s.Equal("qa_1", s.character.Queue[0].ID)
	s.Equal(now, s.character.Queue[0].StartTime)
	s.Equal("qa_2", s.character.Queue[1].ID)
	s.Equal(now+600, s.character.Queue[1].StartTime)

	s.enqueue(queue.ActionInput{ActionID: actionChop, Duration: 100})
	s.Require().Len(s.character.Queue, 3)
	s.Equal(now+900, s.character.Queue[2].StartTime)
}

func (s *ProcessorTestSuite) TestEnqueue_Overwrite() {
	s.enqueue(queue.ActionInput{ActionID: actionChop, Duration: 600})

	out, err := s.processor.Enqueue(&queue.EnqueueInput{
		Character: s.character,
		Actions:   []queue.ActionInput{{ActionID: actionFight, Duration: 72}},
		Mode:      queue.ModeOverwrite,
		Now:       now + 10,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Character.Queue, 1)
	s.Equal(actionFight, out.Character.Queue[0].ActionID)
	s.Equal(now+10, out.Character.Queue[0].StartTime)
	s.Len(s.character.Queue, 1, "input character must not be modified")
}

func (s *ProcessorTestSuite) TestEnqueue_Rejections() {
	s.character.Queue = nil
	foreign := &entities.Companion{ID: 8, OwnerID: "bob"}
	future := &entities.Companion{ID: 9, OwnerID: "alice", LastAssignment: now + 1}

	testCases := []struct {
		name   string
		action queue.ActionInput
	}{
		{name: "unknown action", action: queue.ActionInput{ActionID: 99, Duration: 10}},
		{name: "choice from another action", action: queue.ActionInput{ActionID: actionChop, ChoiceID: 1, Duration: 10}},
		{name: "zero duration", action: queue.ActionInput{ActionID: actionChop}},
		{name: "level too low", action: queue.ActionInput{ActionID: actionFish, Duration: 10}},
		{name: "choice level too low", action: queue.ActionInput{ActionID: actionCook, ChoiceID: 2, Duration: 10}},
		{name: "empty boost", action: queue.ActionInput{ActionID: actionChop, Duration: 10, Boost: &entities.Boost{Magnitude: 10}}},
		{name: "unknown companion", action: queue.ActionInput{ActionID: actionChop, Duration: 10, CompanionID: 77}},
		{name: "companion owned by someone else", action: queue.ActionInput{ActionID: actionChop, Duration: 10, CompanionID: 8}},
		{name: "companion reassigned in the future", action: queue.ActionInput{ActionID: actionChop, Duration: 10, CompanionID: 9}},
		{name: "queue too long", action: queue.ActionInput{ActionID: actionChop, Duration: queue.DefaultMaxQueueSeconds + 1}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.processor.Enqueue(&queue.EnqueueInput{
				Character: s.character,
				Actions:   []queue.ActionInput{tc.action},
				Now:       now,
				Companions: map[uint64]*entities.Companion{
					foreign.ID: foreign,
					future.ID:  future,
				},
			})
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
	s.Empty(s.character.Queue)
}

func (s *ProcessorTestSuite) TestEnqueue_LevelRequirementMet() {
	s.character.XP[entities.SkillFishing] = 1016 // level 10
	s.enqueue(queue.ActionInput{ActionID: actionFish, Duration: 10})
	s.Len(s.character.Queue, 1)
}

func (s *ProcessorTestSuite) TestCancel() {
	s.enqueue(
		queue.ActionInput{ActionID: actionChop, Duration: 600},
		queue.ActionInput{ActionID: actionChop, Duration: 600},
	)

	out, err := s.processor.Cancel(s.character, "qa_1")
	s.Require().NoError(err)
	s.Require().Len(out.Queue, 1)
	s.Equal("qa_2", out.Queue[0].ID)
	s.Len(s.character.Queue, 2)

	_, err = s.processor.Cancel(s.character, "qa_missing")
	s.True(errors.IsNotFound(err))
}

func TestProcessorTestSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}
