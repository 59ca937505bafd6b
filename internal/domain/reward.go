package domain

import (
	"fmt"
	"strings"
)

// Rarity is the tier of a reward outcome
type Rarity string

const (
	RarityCommon    Rarity = "common"
	RarityRare      Rarity = "rare"
	RarityEpic      Rarity = "epic"
	RarityLegendary Rarity = "legendary"
)

// AllRarities lists the tiers from lowest to highest
var AllRarities = []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}

// ParseRarity converts a case-insensitive string to a Rarity
func ParseRarity(s string) (Rarity, error) {
	r := Rarity(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllRarities {
		if r == known {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: unknown rarity %q", ErrInvalidInput, s)
}

// RewardOutcome is one entry of the weighted roulette catalog
type RewardOutcome struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Rarity Rarity  `json:"rarity" yaml:"rarity"`
	Weight float64 `json:"weight" yaml:"weight"`
	Value  int     `json:"value" yaml:"value"`
	Icon   string  `json:"icon,omitempty" yaml:"icon"`
}

// Item is a sellable catalog entry that inventories reference by ID
type Item struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Rarity      Rarity `json:"rarity" yaml:"rarity"`
	Value       int    `json:"value" yaml:"value"`
	Icon        string `json:"icon,omitempty" yaml:"icon"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// InventoryEntry is an inventory slot enriched with catalog data.
// Known is false when the stored ID no longer exists in the catalog.
type InventoryEntry struct {
	Index  int    `json:"index"`
	ItemID string `json:"item_id"`
	Item   *Item  `json:"item,omitempty"`
	Known  bool   `json:"known"`
}

// SpinResult is returned by a completed spin
type SpinResult struct {
	Outcome      RewardOutcome   `json:"outcome"`
	Tape         []RewardOutcome `json:"tape"`
	WinningIndex int             `json:"winning_index"`
	Cost         int             `json:"cost"`
	Account      Account         `json:"account"`
}

// SellResult is returned by a completed sale
type SellResult struct {
	ItemID      string  `json:"item_id"`
	ItemName    string  `json:"item_name"`
	MoneyGained int     `json:"money_gained"`
	Account     Account `json:"account"`
}
