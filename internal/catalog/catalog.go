// Package catalog loads the roulette pool and the sellable item list.
package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
	"github.com/osse101/FNTDWorld_Go/internal/draw"
	"github.com/osse101/FNTDWorld_Go/internal/validation"
)

//go:embed default_catalog.yaml
var defaultCatalog []byte

//go:embed catalog.schema.json
var catalogSchema []byte

// SchemaName is the key the catalog schema is registered under
const SchemaName = "catalog.schema.json"

type document struct {
	Roulette []domain.RewardOutcome `yaml:"roulette"`
	Items    []domain.Item          `yaml:"items"`
}

// Catalog is the immutable reward configuration known at startup
type Catalog struct {
	outcomes []domain.RewardOutcome
	items    []domain.Item
	byID     map[string]domain.Item
}

// OutcomeView is a roulette entry with its normalized probability
type OutcomeView struct {
	domain.RewardOutcome
	Probability float64 `json:"probability"`
}

// Default returns the embedded catalog
func Default(v validation.SchemaValidator) (*Catalog, error) {
	return Parse(defaultCatalog, v)
}

// Load reads a YAML catalog from path. An empty path loads the embedded default.
func Load(path string, v validation.SchemaValidator) (*Catalog, error) {
	if path == "" {
		return Default(v)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}
	c, err := Parse(data, v)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse validates data against the catalog schema, decodes it and checks the
// invariants the schema can't express: unique IDs and a drawable pool.
func Parse(data []byte, v validation.SchemaValidator) (*Catalog, error) {
	if v == nil {
		v = validation.NewSchemaValidator()
	}
	if err := v.RegisterSchema(SchemaName, catalogSchema); err != nil {
		return nil, err
	}
	if err := v.ValidateYAML(data, SchemaName); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to decode catalog: %v", domain.ErrInvalidInput, err)
	}
	return New(doc.Roulette, doc.Items)
}

// New builds a catalog from already decoded entries. Roulette outcomes without a
// matching item get one derived from the outcome so every win is sellable.
func New(outcomes []domain.RewardOutcome, items []domain.Item) (*Catalog, error) {
	if err := draw.Validate(outcomes); err != nil {
		return nil, err
	}

	c := &Catalog{
		outcomes: make([]domain.RewardOutcome, 0, len(outcomes)),
		items:    make([]domain.Item, 0, len(items)+len(outcomes)),
		byID:     make(map[string]domain.Item, len(items)+len(outcomes)),
	}

	seen := make(map[string]bool, len(outcomes))
	for _, o := range outcomes {
		if err := checkEntry(o.ID, o.Rarity, o.Value); err != nil {
			return nil, err
		}
		if seen[o.ID] {
			return nil, fmt.Errorf("%w: duplicate roulette id %q", domain.ErrInvalidInput, o.ID)
		}
		seen[o.ID] = true
		c.outcomes = append(c.outcomes, o)
	}

	for _, it := range items {
		if err := checkEntry(it.ID, it.Rarity, it.Value); err != nil {
			return nil, err
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate item id %q", domain.ErrInvalidInput, it.ID)
		}
		c.byID[it.ID] = it
		c.items = append(c.items, it)
	}

	for _, o := range c.outcomes {
		if _, ok := c.byID[o.ID]; ok {
			continue
		}
		it := domain.Item{ID: o.ID, Name: o.Name, Rarity: o.Rarity, Value: o.Value, Icon: o.Icon}
		c.byID[o.ID] = it
		c.items = append(c.items, it)
	}

	return c, nil
}

func checkEntry(id string, rarity domain.Rarity, value int) error {
	if id == "" {
		return fmt.Errorf("%w: empty id", domain.ErrInvalidInput)
	}
	if _, err := domain.ParseRarity(string(rarity)); err != nil {
		return fmt.Errorf("entry %q: %w", id, err)
	}
	if value < 0 {
		return fmt.Errorf("%w: entry %q has negative value %d", domain.ErrInvalidInput, id, value)
	}
	return nil
}

// Outcomes returns a copy of the roulette pool in catalog order
func (c *Catalog) Outcomes() []domain.RewardOutcome {
	out := make([]domain.RewardOutcome, len(c.outcomes))
	copy(out, c.outcomes)
	return out
}

// Items returns a copy of the sellable items
func (c *Catalog) Items() []domain.Item {
	out := make([]domain.Item, len(c.items))
	copy(out, c.items)
	return out
}

// Item looks up a sellable item by ID
func (c *Catalog) Item(id string) (domain.Item, error) {
	it, ok := c.byID[id]
	if !ok {
		return domain.Item{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return it, nil
}

// HasItem reports whether id is a known item
func (c *Catalog) HasItem(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// View returns the pool with probabilities for display
func (c *Catalog) View() []OutcomeView {
	probs := draw.Probabilities(c.outcomes)
	out := make([]OutcomeView, len(c.outcomes))
	for i, o := range c.outcomes {
		out[i] = OutcomeView{RewardOutcome: o, Probability: probs[i]}
	}
	return out
}

// Enrich resolves inventory IDs against the item list, keeping unknown IDs
func (c *Catalog) Enrich(inventory []string) []domain.InventoryEntry {
	out := make([]domain.InventoryEntry, len(inventory))
	for i, id := range inventory {
		entry := domain.InventoryEntry{Index: i, ItemID: id}
		if it, ok := c.byID[id]; ok {
			item := it
			entry.Item = &item
			entry.Known = true
		}
		out[i] = entry
	}
	return out
}
