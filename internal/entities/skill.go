package entities

// Skill identifies a trainable skill. Experience is tracked per character per skill.
type Skill string

// Skills
const (
	SkillMelee       Skill = "melee"
	SkillRanged      Skill = "ranged"
	SkillMagic       Skill = "magic"
	SkillDefence     Skill = "defence"
	SkillHealth      Skill = "health"
	SkillWoodcutting Skill = "woodcutting"
	SkillFishing     Skill = "fishing"
	SkillMining      Skill = "mining"
	SkillSmithing    Skill = "smithing"
	SkillThieving    Skill = "thieving"
	SkillCrafting    Skill = "crafting"
	SkillCooking     Skill = "cooking"
	SkillFiremaking  Skill = "firemaking"
	SkillAlchemy     Skill = "alchemy"
	SkillFletching   Skill = "fletching"
	SkillForging     Skill = "forging"
)

var knownSkills = map[Skill]struct{}{
	SkillMelee: {}, SkillRanged: {}, SkillMagic: {}, SkillDefence: {}, SkillHealth: {},
	SkillWoodcutting: {}, SkillFishing: {}, SkillMining: {}, SkillSmithing: {}, SkillThieving: {},
	SkillCrafting: {}, SkillCooking: {}, SkillFiremaking: {}, SkillAlchemy: {}, SkillFletching: {},
	SkillForging: {},
}

// Valid reports whether s is a recognised skill
func (s Skill) Valid() bool {
	_, ok := knownSkills[s]
	return ok
}

// String returns the skill name
func (s Skill) String() string {
	return string(s)
}
