package main

import (
	"github.com/osse101/FNTDWorld_Go/internal/draw"
	"github.com/osse101/FNTDWorld_Go/internal/utils"
)

// pickSource returns the draw source for a run. A non-zero seed wins over secure.
func pickSource(seed int64, secure bool) draw.Source {
	switch {
	case seed != 0:
		return utils.SeededSource(seed)
	case secure:
		return utils.SecureRandomFloat
	default:
		return utils.RandomFloat
	}
}
