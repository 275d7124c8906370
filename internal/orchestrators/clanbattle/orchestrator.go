// Package clanbattle fields clan rosters from stored characters and resolves battles between them
package clanbattle

//go:generate mockgen -destination=mock/mock_service.go -package=clanbattlemock github.com/KirkDiggler/rpg-progression/internal/orchestrators/clanbattle Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/engine/battle"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	battlerecord "github.com/KirkDiggler/rpg-progression/internal/repositories/battle_record"
	characterrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/character"
	rosterrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/roster"
)

// Service defines the clan battle operations
type Service interface {
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error)
	ResolveRosters(ctx context.Context, input *ResolveRostersInput) (*ResolveOutput, error)

	// Battle history of stored clans
	GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error)
	ListClanBattles(ctx context.Context, input *ListClanBattlesInput) (*ListClanBattlesOutput, error)

	// Roster management
	SetRoster(ctx context.Context, input *SetRosterInput) (*SetRosterOutput, error)
	JoinClan(ctx context.Context, input *JoinClanInput) (*JoinClanOutput, error)
	LeaveClan(ctx context.Context, input *LeaveClanInput) (*LeaveClanOutput, error)
}

// Config holds the dependencies for the clan battle orchestrator
type Config struct {
	Engine        engine.Engine
	CharacterRepo characterrepo.Repository
	RosterRepo    rosterrepo.Repository
	RecordRepo    battlerecord.Repository
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.RosterRepo == nil {
		vb.RequiredField("RosterRepo")
	}
	if c.RecordRepo == nil {
		vb.RequiredField("RecordRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	engine        engine.Engine
	characterRepo characterrepo.Repository
	rosterRepo    rosterrepo.Repository
	recordRepo    battlerecord.Repository
	idGen         idgen.Generator
}

// NewOrchestrator creates a new clan battle orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		engine:        cfg.Engine,
		characterRepo: cfg.CharacterRepo,
		rosterRepo:    cfg.RosterRepo,
		recordRepo:    cfg.RecordRepo,
		idGen:         cfg.IDGenerator,
	}, nil
}

func (o *orchestrator) Resolve(ctx context.Context, input *ResolveInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ClanA == "" || input.ClanB == "" {
		return nil, errors.InvalidArgument("both clan IDs are required")
	}
	if input.ClanA == input.ClanB {
		return nil, errors.InvalidArgumentf("clan %s cannot battle itself", input.ClanA)
	}

	membersA, err := o.members(ctx, input.ClanA)
	if err != nil {
		return nil, err
	}
	membersB, err := o.members(ctx, input.ClanB)
	if err != nil {
		return nil, err
	}

	out, err := o.ResolveRosters(ctx, &ResolveRostersInput{
		MembersA: membersA,
		MembersB: membersB,
		Skill:    input.Skill,
		WordA:    input.WordA,
		WordB:    input.WordB,
	})
	if err != nil {
		return nil, err
	}

	record, err := o.recordRepo.Create(ctx, battlerecord.CreateInput{
		Record: &battlerecord.Record{
			ID:       o.idGen.Generate(),
			ClanA:    input.ClanA,
			ClanB:    input.ClanB,
			Skill:    input.Skill,
			WordA:    input.WordA,
			WordB:    input.WordB,
			DidAWin:  out.Result.DidAWin,
			WinsA:    out.Result.WinsA,
			WinsB:    out.Result.WinsB,
			Walkover: out.Result.Walkover,
			Matchups: out.Result.Matchups,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to record battle")
	}
	out.BattleID = record.Record.ID

	slog.Info("Clan battle resolved",
		"battle_id", out.BattleID,
		"clan_a", input.ClanA,
		"clan_b", input.ClanB,
		"skill", input.Skill,
		"a_won", out.Result.DidAWin,
		"wins_a", out.Result.WinsA,
		"wins_b", out.Result.WinsB)

	return out, nil
}

func (o *orchestrator) ResolveRosters(ctx context.Context, input *ResolveRostersInput) (*ResolveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Skill.Valid() {
		return nil, errors.InvalidArgumentf("unknown skill %q", input.Skill)
	}
	if len(input.MembersA) > battle.MaxRosterSize || len(input.MembersB) > battle.MaxRosterSize {
		return nil, errors.InvalidArgumentf("rosters hold at most %d members", battle.MaxRosterSize)
	}

	rosterA, err := o.field(ctx, input.MembersA, input.Skill)
	if err != nil {
		return nil, err
	}
	rosterB, err := o.field(ctx, input.MembersB, input.Skill)
	if err != nil {
		return nil, err
	}

	result, err := o.engine.ResolveBattle(ctx, &engine.ResolveBattleInput{
		RosterA: rosterA,
		RosterB: rosterB,
		WordA:   input.WordA,
		WordB:   input.WordB,
		Skill:   input.Skill,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve battle")
	}

	return &ResolveOutput{
		Result:  result,
		RosterA: fielded(rosterA),
		RosterB: fielded(rosterB),
	}, nil
}

func (o *orchestrator) GetBattle(ctx context.Context, input *GetBattleInput) (*GetBattleOutput, error) {
	if input == nil || input.BattleID == "" {
		return nil, errors.InvalidArgument("battle ID is required")
	}

	out, err := o.recordRepo.Get(ctx, battlerecord.GetInput{ID: input.BattleID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get battle")
	}
	return &GetBattleOutput{Record: out.Record}, nil
}

func (o *orchestrator) ListClanBattles(ctx context.Context, input *ListClanBattlesInput) (*ListClanBattlesOutput, error) {
	if input == nil || input.ClanID == "" {
		return nil, errors.InvalidArgument("clan ID is required")
	}

	out, err := o.recordRepo.ListByClan(ctx, battlerecord.ListByClanInput{
		ClanID: input.ClanID,
		Limit:  input.Limit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list battles of clan %s", input.ClanID)
	}
	return &ListClanBattlesOutput{Records: out.Records}, nil
}

func (o *orchestrator) SetRoster(ctx context.Context, input *SetRosterInput) (*SetRosterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.rosterRepo.SetMembers(ctx, rosterrepo.SetMembersInput{
		ClanID:    input.ClanID,
		MemberIDs: input.MemberIDs,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to set roster for clan %s", input.ClanID)
	}

	slog.Info("Clan roster replaced", "clan_id", input.ClanID, "slots", len(input.MemberIDs))
	return &SetRosterOutput{}, nil
}

func (o *orchestrator) JoinClan(ctx context.Context, input *JoinClanInput) (*JoinClanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	// only stored characters may join
	if _, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to get character %d", input.CharacterID)
	}

	out, err := o.rosterRepo.AddMember(ctx, rosterrepo.AddMemberInput{
		ClanID:      input.ClanID,
		CharacterID: input.CharacterID,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to join clan %s", input.ClanID)
	}

	slog.Info("Character joined clan", "clan_id", input.ClanID, "character_id", input.CharacterID)
	return &JoinClanOutput{Size: out.Size}, nil
}

func (o *orchestrator) LeaveClan(ctx context.Context, input *LeaveClanInput) (*LeaveClanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.rosterRepo.RemoveMember(ctx, rosterrepo.RemoveMemberInput{
		ClanID:      input.ClanID,
		CharacterID: input.CharacterID,
	}); err != nil {
		return nil, errors.Wrapf(err, "failed to leave clan %s", input.ClanID)
	}

	slog.Info("Character left clan", "clan_id", input.ClanID, "character_id", input.CharacterID)
	return &LeaveClanOutput{}, nil
}

func (o *orchestrator) members(ctx context.Context, clanID string) ([]uint64, error) {
	out, err := o.rosterRepo.GetMembers(ctx, rosterrepo.GetMembersInput{ClanID: clanID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get roster for clan %s", clanID)
	}
	return out.MemberIDs, nil
}

// field turns member ids into combatants. Characters that no longer exist leave an empty slot.
func (o *orchestrator) field(ctx context.Context, members []uint64, skill entities.Skill) ([]battle.Combatant, error) {
	roster := make([]battle.Combatant, len(members))
	for i, id := range members {
		if id == 0 {
			continue
		}

		out, err := o.characterRepo.Get(ctx, characterrepo.GetInput{ID: id})
		if err != nil {
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "roster member not found, fielding empty slot", "character_id", id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %d", id)
		}

		roster[i] = battle.Combatant{
			ID:    id,
			Level: o.engine.LevelForXP(out.Character.SkillXP(skill)),
		}
	}
	return roster, nil
}

func fielded(roster []battle.Combatant) []Combatant {
	out := make([]Combatant, len(roster))
	for i, c := range roster {
		out[i] = Combatant{CharacterID: c.ID, Level: c.Level}
	}
	return out
}
