package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FNTDWorld_Go/internal/domain"
)

func TestDefault(t *testing.T) {
	c, err := Default(nil)
	require.NoError(t, err)

	outcomes := c.Outcomes()
	require.Len(t, outcomes, 8)
	assert.Equal(t, "golden_freddy", outcomes[0].ID)
	assert.Equal(t, domain.RarityLegendary, outcomes[0].Rarity)
	assert.Equal(t, 5.0, outcomes[0].Weight)
	assert.Equal(t, 5000, outcomes[0].Value)

	weights := make([]float64, len(outcomes))
	for i, o := range outcomes {
		weights[i] = o.Weight
	}
	assert.Equal(t, []float64{5, 10, 10, 15, 15, 15, 15, 15}, weights)

	for _, o := range outcomes {
		assert.True(t, c.HasItem(o.ID), "every roulette outcome should be sellable: %s", o.ID)
	}

	springtrap, err := c.Item("springtrap")
	require.NoError(t, err)
	assert.Equal(t, 2500, springtrap.Value)
	assert.Equal(t, "Damaged but dangerous springlock suit", springtrap.Description)
}

func TestView_ProbabilitiesSumToOne(t *testing.T) {
	c, err := Default(nil)
	require.NoError(t, err)

	sum := 0.0
	for _, v := range c.View() {
		sum += v.Probability
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, 0.05, c.View()[0].Probability, 1e-9)
}

func TestParse_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "empty pool",
			yaml: "roulette: []\n",
		},
		{
			name: "zero weight",
			yaml: "roulette:\n  - {id: a, name: A, rarity: common, weight: 0, value: 1}\n",
		},
		{
			name: "negative value",
			yaml: "roulette:\n  - {id: a, name: A, rarity: common, weight: 1, value: -1}\n",
		},
		{
			name: "unknown rarity",
			yaml: "roulette:\n  - {id: a, name: A, rarity: mythic, weight: 1, value: 1}\n",
		},
		{
			name: "duplicate roulette id",
			yaml: "roulette:\n  - {id: a, name: A, rarity: common, weight: 1, value: 1}\n  - {id: a, name: B, rarity: rare, weight: 1, value: 1}\n",
		},
		{
			name: "duplicate item id",
			yaml: "roulette:\n  - {id: a, name: A, rarity: common, weight: 1, value: 1}\nitems:\n  - {id: x, name: X, rarity: common, value: 1}\n  - {id: x, name: Y, rarity: common, value: 2}\n",
		},
		{
			name: "unknown field",
			yaml: "roulette:\n  - {id: a, name: A, rarity: common, weight: 1, value: 1, chance: 5}\n",
		},
		{
			name: "malformed yaml",
			yaml: "roulette: [",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNew_DerivesMissingItems(t *testing.T) {
	c, err := New(
		[]domain.RewardOutcome{{ID: "a", Name: "A", Rarity: domain.RarityRare, Weight: 1, Value: 42, Icon: "*"}},
		nil,
	)
	require.NoError(t, err)

	it, err := c.Item("a")
	require.NoError(t, err)
	assert.Equal(t, domain.Item{ID: "a", Name: "A", Rarity: domain.RarityRare, Value: 42, Icon: "*"}, it)
}

func TestItem_NotFound(t *testing.T) {
	c, err := Default(nil)
	require.NoError(t, err)

	_, err = c.Item("puppet")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEnrich(t *testing.T) {
	c, err := Default(nil)
	require.NoError(t, err)

	entries := c.Enrich([]string{"foxy", "retired_unit", "foxy"})

	require.Len(t, entries, 3)
	assert.True(t, entries[0].Known)
	assert.Equal(t, "Foxy", entries[0].Item.Name)
	assert.False(t, entries[1].Known)
	assert.Nil(t, entries[1].Item)
	assert.Equal(t, 2, entries[2].Index)
}

func TestLoad(t *testing.T) {
	t.Run("empty path loads default", func(t *testing.T) {
		c, err := Load("", nil)
		require.NoError(t, err)
		assert.Len(t, c.Outcomes(), 8)
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		content := "roulette:\n  - {id: only, name: Only, rarity: epic, weight: 2.5, value: 10}\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		c, err := Load(path, nil)
		require.NoError(t, err)
		assert.Equal(t, "only", c.Outcomes()[0].ID)
		assert.Equal(t, 2.5, c.Outcomes()[0].Weight)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
		assert.Error(t, err)
	})
}

func TestOutcomes_ReturnsCopy(t *testing.T) {
	c, err := Default(nil)
	require.NoError(t, err)

	o := c.Outcomes()
	o[0].ID = "mutated"

	assert.Equal(t, "golden_freddy", c.Outcomes()[0].ID)
}
