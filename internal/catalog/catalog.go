// Package catalog holds the static action and roll-tier tables, loaded from YAML
package catalog

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-progression/internal/engine/queue"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

//go:embed default.yaml
var defaultCatalog []byte

// File is the on-disk catalog layout
type File struct {
	Actions   []entities.ActionConfig `yaml:"actions"`
	RollTiers []SkillTiers            `yaml:"roll_tiers"`
}

// SkillTiers overrides the battle roll tiers for one skill
type SkillTiers struct {
	Skill entities.Skill      `yaml:"skill"`
	Tiers []entities.RollTier `yaml:"tiers"`
}

// Catalog is an immutable in-memory action catalog
type Catalog struct {
	actions   map[entities.ActionID]*entities.ActionConfig
	rollTiers map[entities.Skill][]entities.RollTier
}

var _ queue.ActionCatalog = (*Catalog)(nil)

// New builds a catalog after validating every record
func New(file *File) (*Catalog, error) {
	if file == nil {
		return nil, errors.InvalidArgument("catalog file is required")
	}

	c := &Catalog{
		actions:   make(map[entities.ActionID]*entities.ActionConfig, len(file.Actions)),
		rollTiers: make(map[entities.Skill][]entities.RollTier, len(file.RollTiers)),
	}

	for i := range file.Actions {
		action := file.Actions[i]
		if err := validateAction(&action); err != nil {
			return nil, err
		}
		if _, exists := c.actions[action.ID]; exists {
			return nil, errors.AlreadyExistsf("duplicate action id %d", action.ID)
		}
		c.actions[action.ID] = &action
	}

	for _, st := range file.RollTiers {
		if !st.Skill.Valid() {
			return nil, errors.InvalidArgumentf("roll tiers: unknown skill %q", st.Skill)
		}
		if err := ValidateTiers(st.Tiers); err != nil {
			return nil, errors.Wrapf(err, "roll tiers for %s", st.Skill)
		}
		c.rollTiers[st.Skill] = append([]entities.RollTier(nil), st.Tiers...)
	}

	return c, nil
}

// Load decodes a YAML catalog. Unknown fields are rejected.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog")
	}
	return New(&file)
}

// LoadFile loads a catalog from path
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("catalog file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Default returns the built-in catalog
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
}

// GetAction returns an action config by id
func (c *Catalog) GetAction(id entities.ActionID) (*entities.ActionConfig, error) {
	action, ok := c.actions[id]
	if !ok {
		return nil, errors.NotFoundf("action %d not found", id).WithMeta("action_id", id)
	}
	return action, nil
}

// Actions lists all actions ordered by id
func (c *Catalog) Actions() []*entities.ActionConfig {
	out := make([]*entities.ActionConfig, 0, len(c.actions))
	for _, a := range c.actions {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RollTiers returns the roll tier override for skill, or nil when the default table applies
func (c *Catalog) RollTiers(skill entities.Skill) []entities.RollTier {
	return c.rollTiers[skill]
}

func validateAction(a *entities.ActionConfig) error {
	vb := errors.NewValidationBuilder()
	if a.ID == 0 {
		vb.RequiredField("ID")
	}
	if !a.Skill.Valid() {
		vb.Fieldf("Skill", "unknown skill %q", a.Skill)
	}
	validateFlows(vb, "Inputs", a.Inputs)
	validateFlows(vb, "Outputs", a.Outputs)

	seen := make(map[entities.ChoiceID]struct{}, len(a.Choices))
	for _, choice := range a.Choices {
		if choice.ID == 0 {
			vb.Field("Choices", "choice id must be non-zero")
			continue
		}
		if _, dup := seen[choice.ID]; dup {
			vb.Fieldf("Choices", "duplicate choice id %d", choice.ID)
		}
		seen[choice.ID] = struct{}{}
		validateFlows(vb, "Choices.Inputs", choice.Inputs)
		validateFlows(vb, "Choices.Outputs", choice.Outputs)
	}

	if err := vb.Build(); err != nil {
		return errors.Wrapf(err, "action %d (%s)", a.ID, a.Name)
	}
	return nil
}

// validateFlows rejects zero ids and rates. Progress is counted per item, so an item may
// appear only once in a list.
func validateFlows(vb *errors.ValidationBuilder, field string, flows []entities.ItemAmount) {
	seen := make(map[entities.ItemID]struct{}, len(flows))
	for _, f := range flows {
		if f.ItemID == 0 {
			vb.Field(field, "item id must be non-zero")
		}
		if _, dup := seen[f.ItemID]; dup && f.ItemID != 0 {
			vb.Fieldf(field, "item %d listed more than once", f.ItemID)
		}
		seen[f.ItemID] = struct{}{}
		if f.PerHour == 0 {
			vb.Fieldf(field, "item %d has zero rate", f.ItemID)
		}
	}
}

// ValidateTiers checks that tiers are ordered by level and grant a non-decreasing, positive
// number of rolls.
func ValidateTiers(tiers []entities.RollTier) error {
	if len(tiers) == 0 {
		return errors.InvalidArgument("at least one tier is required")
	}
	if tiers[0].MinLevel > 1 {
		return errors.InvalidArgument("first tier must cover level 1")
	}
	for i, t := range tiers {
		if t.Rolls == 0 {
			return errors.InvalidArgumentf("tier %d grants no rolls", i)
		}
		if i == 0 {
			continue
		}
		if t.MinLevel <= tiers[i-1].MinLevel {
			return errors.InvalidArgumentf("tier %d level %d is not above %d", i, t.MinLevel, tiers[i-1].MinLevel)
		}
		if t.Rolls < tiers[i-1].Rolls {
			return errors.InvalidArgumentf("tier %d grants fewer rolls than tier %d", i, i-1)
		}
	}
	return nil
}
