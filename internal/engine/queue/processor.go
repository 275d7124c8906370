// Package queue advances a character's action queue by elapsed time, turning productive time
// into experience and item flows.
//
// All operations work on a copy of the character and return it; the caller persists the copy
// only when no error was returned, so a failed call leaves no partial state behind.
package queue

import (
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
)

// DefaultMaxQueueSeconds caps the total remaining duration a queue may hold
const DefaultMaxQueueSeconds uint64 = 24 * 60 * 60

const secondsPerHour = 3600

// ActionCatalog is the read-only action/choice configuration table
type ActionCatalog interface {
	// GetAction returns the action config or a NotFound error
	GetAction(id entities.ActionID) (*entities.ActionConfig, error)
}

// Config configures a Processor
type Config struct {
	Catalog         ActionCatalog
	IDGenerator     idgen.Generator
	MaxQueueSeconds uint64
}

// Validate checks the processor dependencies
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	return vb.Build()
}

// Processor implements queue enqueue, advance and cancel
type Processor struct {
	catalog         ActionCatalog
	idGen           idgen.Generator
	maxQueueSeconds uint64
}

// NewProcessor creates a queue processor
func NewProcessor(cfg *Config) (*Processor, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	maxQueue := cfg.MaxQueueSeconds
	if maxQueue == 0 {
		maxQueue = DefaultMaxQueueSeconds
	}

	return &Processor{
		catalog:         cfg.Catalog,
		idGen:           cfg.IDGenerator,
		maxQueueSeconds: maxQueue,
	}, nil
}

// Cancel removes a queued action without rewarding it
func (p *Processor) Cancel(character *entities.Character, queueID string) (*entities.Character, error) {
	if character == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	out := character.Clone()
	for i, qa := range out.Queue {
		if qa.ID != queueID {
			continue
		}
		out.Queue = append(out.Queue[:i], out.Queue[i+1:]...)
		return out, nil
	}

	return nil, errors.NotFoundf("queued action %s not found", queueID).
		WithMeta("character_id", character.ID)
}

func (p *Processor) resolveRates(actionID entities.ActionID, choiceID entities.ChoiceID) (entities.Rates, error) {
	action, err := p.catalog.GetAction(actionID)
	if err != nil {
		return entities.Rates{}, err
	}
	rates, ok := action.Resolve(choiceID)
	if !ok {
		return entities.Rates{}, errors.InvalidArgumentf("choice %d does not belong to action %d", choiceID, actionID)
	}
	return rates, nil
}
