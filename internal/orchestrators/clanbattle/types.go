package clanbattle

import (
	"github.com/KirkDiggler/rpg-progression/internal/engine"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	battlerecord "github.com/KirkDiggler/rpg-progression/internal/repositories/battle_record"
)

// ResolveInput defines a battle between two stored clans
type ResolveInput struct {
	ClanA string
	ClanB string
	Skill entities.Skill
	WordA uint64
	WordB uint64
}

// ResolveRostersInput defines a battle between explicit member lists.
// A member id of zero marks an empty slot.
type ResolveRostersInput struct {
	MembersA []uint64
	MembersB []uint64
	Skill    entities.Skill
	WordA    uint64
	WordB    uint64
}

// ResolveOutput contains the battle result and the combatants as fielded.
// BattleID is set when the battle was fought between stored clans and recorded.
type ResolveOutput struct {
	BattleID string
	Result   *engine.ResolveBattleOutput
	RosterA  []Combatant
	RosterB  []Combatant
}

// Combatant is a fielded roster slot
type Combatant struct {
	CharacterID uint64
	Level       uint32
}

// SetRosterInput replaces the member list of a clan
type SetRosterInput struct {
	ClanID    string
	MemberIDs []uint64
}

// SetRosterOutput defines the output of a roster replacement
type SetRosterOutput struct{}

// JoinClanInput adds a character to a clan
type JoinClanInput struct {
	ClanID      string
	CharacterID uint64
}

// JoinClanOutput contains the roster size after joining
type JoinClanOutput struct {
	Size int
}

// LeaveClanInput removes a character from a clan
type LeaveClanInput struct {
	ClanID      string
	CharacterID uint64
}

// LeaveClanOutput defines the output of leaving a clan
type LeaveClanOutput struct{}

// GetBattleInput identifies a recorded battle
type GetBattleInput struct {
	BattleID string
}

// GetBattleOutput contains the battle record
type GetBattleOutput struct {
	Record *battlerecord.Record
}

// ListClanBattlesInput selects the recent battles of a clan
type ListClanBattlesInput struct {
	ClanID string
	Limit  int
}

// ListClanBattlesOutput contains records newest first
type ListClanBattlesOutput struct {
	Records []*battlerecord.Record
}
