package entities

// MaxEnhancements is the number of skills a companion can enhance
const MaxEnhancements = 2

// Companion is an assistive creature owned by an account. LastAssignment is moved to the
// transfer time whenever the owner changes; Transfers keeps the recent transfer timestamps
// in ascending order.
type Companion struct {
	ID             uint64   `json:"id"`
	OwnerID        string   `json:"owner_id"`
	TemplateID     uint32   `json:"template_id"`
	LastAssignment uint64   `json:"last_assignment"`
	Transfers      []uint64 `json:"transfers,omitempty"`
	// HistoryTruncated is set once older transfer timestamps have been dropped
	HistoryTruncated bool               `json:"history_truncated,omitempty"`
	Enhancements     []SkillEnhancement `json:"enhancements,omitempty"`
}

// SkillEnhancement is a companion bonus for one skill. The rolled Fixed and Percent values
// are clamped into their template ranges when applied.
type SkillEnhancement struct {
	Skill      Skill  `json:"skill" yaml:"skill"`
	FixedMin   uint32 `json:"fixed_min" yaml:"fixed_min"`
	FixedMax   uint32 `json:"fixed_max" yaml:"fixed_max"`
	Fixed      uint32 `json:"fixed" yaml:"fixed"`
	PercentMin uint32 `json:"percent_min" yaml:"percent_min"`
	PercentMax uint32 `json:"percent_max" yaml:"percent_max"`
	Percent    uint32 `json:"percent" yaml:"percent"`
}

// EffectiveFixed returns the fixed bonus clamped to [FixedMin, FixedMax]
func (e SkillEnhancement) EffectiveFixed() uint32 {
	return clamp(e.Fixed, e.FixedMin, e.FixedMax)
}

// EffectivePercent returns the percentage bonus clamped to [PercentMin, PercentMax]
func (e SkillEnhancement) EffectivePercent() uint32 {
	return clamp(e.Percent, e.PercentMin, e.PercentMax)
}

func clamp(v, lo, hi uint32) uint32 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// BonusFor returns the effective fixed and percentage bonus for a skill
func (c *Companion) BonusFor(skill Skill) (fixed, percent uint32) {
	for _, e := range c.Enhancements {
		if e.Skill == skill {
			return e.EffectiveFixed(), e.EffectivePercent()
		}
	}
	return 0, 0
}

// Clone returns a deep copy of the companion
func (c *Companion) Clone() *Companion {
	out := *c
	out.Transfers = append([]uint64(nil), c.Transfers...)
	out.Enhancements = append([]SkillEnhancement(nil), c.Enhancements...)
	return &out
}
